package repository

import (
	"os"
	"testing"

	"github.com/appditto/survey-push-server/database"
	"github.com/appditto/survey-push-server/utils"
	"gorm.io/gorm"
)

func init() {
	os.Setenv("MOCK_REDIS", "true")
}

// Postgres backed tests need DB_MOCK_HOST and friends
func mockDB(t *testing.T) *gorm.DB {
	if os.Getenv("DB_MOCK_HOST") == "" {
		t.Skip("DB_MOCK_HOST not set")
	}
	mockDb, err := database.NewConnection(&database.Config{
		Host:     os.Getenv("DB_MOCK_HOST"),
		Port:     os.Getenv("DB_MOCK_PORT"),
		Password: os.Getenv("DB_MOCK_PASS"),
		User:     os.Getenv("DB_MOCK_USER"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
		DBName:   "testing",
	})
	utils.AssertEqual(t, nil, err)
	err = database.DropAndCreateTables(mockDb)
	utils.AssertEqual(t, nil, err)
	return mockDb
}
