package database

import (
	"fmt"

	"github.com/appditto/survey-push-server/models/dbmodels"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Host     string
	Port     string
	Password string
	User     string
	DBName   string
	SSLMode  string
}

var allModels = []interface{}{
	&dbmodels.PushToken{},
	&dbmodels.KvEntry{},
	&dbmodels.ScheduledReminder{},
}

func NewConnection(config *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return db, err
	}
	return db, nil
}

func DropAndCreateTables(db *gorm.DB) error {
	if err := db.Migrator().DropTable(allModels...); err != nil {
		return err
	}
	return db.Migrator().CreateTable(allModels...)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(allModels...)
}
