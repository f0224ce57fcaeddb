package config

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/cv-matcher/internal/models"
)

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	}

	db, err := OpenDatabase(cfg.Database.Driver, cfg.GetDatabaseDSN(), logger.Default.LogMode(logLevel))
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Database connected successfully (%s)\n", cfg.Database.Driver)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("✅ Database migration completed")

	return db, nil
}

// OpenDatabase opens a gorm handle for driver. SQLite handles are limited to one
// open connection so writes are serialized by the pool.
func OpenDatabase(driver, dsn string, gormLogger logger.Interface) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)

		// References are declared in the schema but not enforced on insert.
		if err := db.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
			return nil, fmt.Errorf("failed to configure sqlite: %w", err)
		}
	}

	return db, nil
}

// Migrate creates any missing tables. It is safe to run on every start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.CV{},
		&models.JobDescription{},
		&models.AnalysisResult{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
