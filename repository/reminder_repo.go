package repository

import (
	"github.com/appditto/survey-push-server/models/dbmodels"
	"gorm.io/gorm"
)

// Persists the cron triggers so they survive a restart
type ReminderRepo struct {
	DB *gorm.DB
}

func (repo *ReminderRepo) Save(reminder *dbmodels.ScheduledReminder) error {
	return repo.DB.Create(reminder).Error
}

func (repo *ReminderRepo) All() ([]dbmodels.ScheduledReminder, error) {
	var reminders []dbmodels.ScheduledReminder
	if err := repo.DB.Order("created_at asc").Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (repo *ReminderRepo) DeleteAll() error {
	return repo.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&dbmodels.ScheduledReminder{}).Error
}
