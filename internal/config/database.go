package config

import (
	"time"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fleetops/internal/models"
)

// OpenDB opens the gorm connection and migrates the schema. The handle is
// returned to the caller; nothing is stored globally.
func OpenDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.New(logrus.StandardLogger(), gormlogger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      gormlogger.Warn,
		}),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Vehicle{},
		&models.Fleet{},
		&models.Trip{},
		&models.Maintenance{},
		&models.Alert{},
		&models.Invoice{},
		&models.Geofence{},
		&models.PricingRule{},
		&models.Station{},
		&models.ActivityLog{},
		&models.Report{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
