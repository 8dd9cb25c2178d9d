package reminders

import (
	"context"
	"fmt"
	"time"
)

// Trigger fires at a time of day. It carries no date.
type Trigger struct {
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
	Repeats bool `json:"repeats"`
}

// TriggerAt takes the hour and minute of t in t's location
func TriggerAt(t time.Time) Trigger {
	return Trigger{
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Repeats: true,
	}
}

// Clock formats the trigger as HH:MM
func (t Trigger) Clock() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

type Content struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type ScheduledTrigger struct {
	ID      string  `json:"id"`
	Trigger Trigger `json:"trigger"`
	Content Content `json:"content"`
}

// TriggerScheduler registers triggers with whatever delivers them
type TriggerScheduler interface {
	Schedule(ctx context.Context, trigger Trigger, content Content) (string, error)
	CancelAll(ctx context.Context) error
	Scheduled(ctx context.Context) ([]ScheduledTrigger, error)
}
