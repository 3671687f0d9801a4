package models

import (
	"fmt"
	"testing"

	"assetman/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points db.Instance at a fresh in-memory SQLite database.
func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	instance, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("sqlite open: %v", err)
	}
	db.Instance = instance
	if err := db.Instance.AutoMigrate(&Employee{}, &Asset{}, &CompanySettings{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}

func mustCreateEmployee(t *testing.T, username, password, status string) Employee {
	t.Helper()
	e := Employee{
		Username: username,
		FullName: "Test " + username,
		Email:    username + "@example.com",
		Status:   status,
	}
	if err := EmployeeCreate(&e, password); err != nil {
		t.Fatalf("EmployeeCreate(%s): %v", username, err)
	}
	return e
}
