package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"partner-ads/internal/domain/campaigns"
	"partner-ads/internal/domain/displays"
	"partner-ads/internal/domain/media"
	"partner-ads/internal/domain/revenues"
	"partner-ads/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Open connects to the database behind dsn. Postgres URLs and keyword DSNs
// go to the postgres driver; "sqlite://", "file:" and "*.db" go to sqlite.
func Open(dsn string, logLevel gormLogger.LogLevel) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty database dsn")
	}

	db, err := gorm.Open(dialector(dsn), &gorm.Config{
		Logger: gormLogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), gormLogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

func dialector(dsn string) gorm.Dialector {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.Open(withForeignKeys(strings.TrimPrefix(dsn, "sqlite://")))
	case strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"):
		return sqlite.Open(withForeignKeys(dsn))
	default:
		return postgres.Open(dsn)
	}
}

// sqlite only enforces ON DELETE rules when foreign keys are switched on
// for the connection.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// Migrate creates or updates every table of the domain.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&media.Image{},
		&displays.Display{},
		&campaigns.Campaign{},
		&campaigns.CampaignDisplay{},
		&campaigns.CampaignImage{},
		&revenues.Revenue{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
