package database

import (
	"fmt"
	"log"
	"time"

	"squadhr/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects gorm to postgres and applies the pool settings from cfg.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	deadline := time.Now().Add(30 * time.Second)
	for {
		err = sqlDB.Ping()
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database not reachable: %w", err)
		}
		log.Printf("⏳ Waiting for database: %v", err)
		time.Sleep(2 * time.Second)
	}

	log.Println("✅ Connected to database")
	return db, nil
}
