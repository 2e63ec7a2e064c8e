package database

import (
	"context"
	"fmt"

	"github.com/RigelNana/arksignup/services/signup-service/config"
	"github.com/RigelNana/arksignup/services/signup-service/models"
	"github.com/RigelNana/arksignup/services/signup-service/repository"
	"github.com/sirupsen/logrus"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open builds the signup store selected by cfg.Driver. The returned handle is
// meant to live for the whole process.
func Open(ctx context.Context, cfg config.StoreConfig, logger *logrus.Logger) (repository.SignupRepository, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		repo, err := repository.NewMongoSignupRepository(ctx, cfg.MongoURI, cfg.Database, cfg.Collection)
		if err != nil {
			return nil, err
		}
		logger.WithFields(logrus.Fields{
			"database":   cfg.Database,
			"collection": cfg.Collection,
		}).Info("mongo client created")
		return repository.WithMetrics(repo), nil
	case config.DriverPostgres:
		db, err := OpenGorm(postgres.Open(cfg.DSN))
		if err != nil {
			return nil, err
		}
		logger.Info("postgres connected and migrated")
		return repository.WithMetrics(repository.NewGormSignupRepository(db, cfg.Driver)), nil
	case config.DriverSQLite:
		db, err := OpenGorm(sqlite.Open(cfg.DSN))
		if err != nil {
			return nil, err
		}
		logger.Info("sqlite opened and migrated")
		return repository.WithMetrics(repository.NewGormSignupRepository(db, cfg.Driver)), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

// OpenGorm opens a gorm handle and migrates the signups table.
func OpenGorm(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// Auto migrate the schema
	if err := db.AutoMigrate(&models.SignupRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate signups table: %w", err)
	}
	return db, nil
}
