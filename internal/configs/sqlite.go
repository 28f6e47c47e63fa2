package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "worklog-system.com/worklog-system/internal/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	err = db.AutoMigrate(
		&model.Organization{},
		&model.Project{},
		&model.Task{},
		&model.Profile{},
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
