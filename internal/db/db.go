package db

import (
	"fmt"
	"pubfeed/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the Postgres connection and migrates the schema. The returned
// handle is passed to the services; nothing holds it in a package global.
func Init(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	logrus.Info("Database connection established")

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	logrus.Info("Database migration completed")

	return conn, nil
}

// Migrate creates the tables for the three entities.
func Migrate(conn *gorm.DB) error {
	err := conn.AutoMigrate(
		&models.User{},
		&models.Publication{},
		&models.Vote{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
