package reminders

import (
	"context"
	"sync"
	"time"

	"github.com/appditto/survey-push-server/models/dbmodels"
	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// ReminderStore persists cron triggers between restarts
type ReminderStore interface {
	Save(reminder *dbmodels.ScheduledReminder) error
	All() ([]dbmodels.ScheduledReminder, error)
	DeleteAll() error
}

// FireFunc delivers a reminder when its trigger comes due
type FireFunc func(ctx context.Context, content Content) error

// CronScheduler is a TriggerScheduler on top of gocron. Each trigger is a
// daily job tagged with its id.
type CronScheduler struct {
	cron  *gocron.Scheduler
	store ReminderStore
	fire  FireFunc

	// gocron's builder is not safe for concurrent use
	mu        sync.Mutex
	scheduled []ScheduledTrigger
}

// NewCronScheduler starts the underlying scheduler. store may be nil.
func NewCronScheduler(loc *time.Location, store ReminderStore, fire FireFunc) *CronScheduler {
	s := gocron.NewScheduler(loc)
	s.StartAsync()
	return &CronScheduler{
		cron:  s,
		store: store,
		fire:  fire,
	}
}

func (c *CronScheduler) Schedule(ctx context.Context, trigger Trigger, content Content) (string, error) {
	id := uuid.New().String()
	if err := c.add(id, trigger, content); err != nil {
		return "", err
	}
	if c.store != nil {
		err := c.store.Save(&dbmodels.ScheduledReminder{
			TriggerID: id,
			Hour:      trigger.Hour,
			Minute:    trigger.Minute,
			Repeats:   trigger.Repeats,
			Title:     content.Title,
			Body:      content.Body,
		})
		if err != nil {
			c.remove(id)
			return "", err
		}
	}
	return id, nil
}

func (c *CronScheduler) add(id string, trigger Trigger, content Content) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.cron.Every(1).Day().At(trigger.Clock()).Tag(id).Do(c.run, content); err != nil {
		return err
	}
	c.scheduled = append(c.scheduled, ScheduledTrigger{
		ID:      id,
		Trigger: trigger,
		Content: content,
	})
	return nil
}

func (c *CronScheduler) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.cron.RemoveByTag(id); err != nil {
		klog.Errorf("Error removing trigger %s: %v", id, err)
	}
	kept := c.scheduled[:0]
	for _, s := range c.scheduled {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	c.scheduled = kept
}

func (c *CronScheduler) run(content Content) {
	if err := c.fire(context.Background(), content); err != nil {
		klog.Errorf("Error delivering reminder %q: %v", content.Body, err)
	}
}

// CancelAll removes every trigger, there is no selective cancel. Jobs are
// kept running when the store cannot be cleared, so what runs matches what
// Restore would bring back.
func (c *CronScheduler) CancelAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store != nil {
		if err := c.store.DeleteAll(); err != nil {
			return err
		}
	}
	c.cron.Clear()
	c.scheduled = nil
	return nil
}

func (c *CronScheduler) Scheduled(ctx context.Context) ([]ScheduledTrigger, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ret := make([]ScheduledTrigger, len(c.scheduled))
	copy(ret, c.scheduled)
	return ret, nil
}

// Restore re-registers persisted triggers, returns how many were loaded
func (c *CronScheduler) Restore(ctx context.Context) (int, error) {
	if c.store == nil {
		return 0, nil
	}
	reminders, err := c.store.All()
	if err != nil {
		return 0, err
	}
	for _, r := range reminders {
		trigger := Trigger{Hour: r.Hour, Minute: r.Minute, Repeats: r.Repeats}
		if err := c.add(r.TriggerID, trigger, Content{Title: r.Title, Body: r.Body}); err != nil {
			return 0, err
		}
	}
	return len(reminders), nil
}

// Jobs is the number of jobs gocron is holding
func (c *CronScheduler) Jobs() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cron.Jobs())
}

func (c *CronScheduler) Stop() {
	c.cron.Stop()
}
