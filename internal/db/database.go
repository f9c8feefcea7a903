package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Siddhardha2330/backendrepo/internal/config"
	"github.com/Siddhardha2330/backendrepo/internal/models"
)

type Client struct {
	DB *gorm.DB
}

// New connects to Postgres using the configured DSN and applies the
// connection pool limits. The pool is process-wide: initialized once at
// startup and torn down via Close on shutdown.
func New(cfg *config.Config) (*Client, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
	)
	return Open(postgres.Open(dsn))
}

// Open connects through an explicit dialector. Tests use this with the
// sqlite driver; production goes through New.
func Open(dialector gorm.Dialector) (*Client, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	// Connection Pool Settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Client{DB: db}, nil
}

// AutoMigrate creates/updates tables based on struct definitions.
func (c *Client) AutoMigrate() error {
	return c.DB.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Submission{},
	)
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
