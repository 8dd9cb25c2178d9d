package dbmodels

// A daily reminder registered with the cron scheduler, restored on boot
type ScheduledReminder struct {
	Base
	TriggerID string `json:"trigger_id" gorm:"uniqueIndex"`
	Hour      int    `json:"hour"`
	Minute    int    `json:"minute"`
	Repeats   bool   `json:"repeats"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}
