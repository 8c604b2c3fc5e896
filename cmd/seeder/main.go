package main

import (
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"streamku_backend/internals/configs"
	database "streamku_backend/internals/databases"
	"streamku_backend/internals/databases/seeds"
)

const (
	maxRetries = 30
	retryDelay = 2 * time.Second
)

// waitForDB retries until Postgres accepts connections, 30 attempts
// two seconds apart, so the seeder survives a cold docker-compose start.
func waitForDB(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		db, err = database.Open(dsn)
		if err == nil {
			if sqlDB, derr := db.DB(); derr != nil {
				err = derr
			} else if perr := sqlDB.Ping(); perr != nil {
				err = perr
			} else {
				return db, nil
			}
		}
		log.Printf("attempt %d/%d - database not ready, waiting %s...", attempt, maxRetries, retryDelay)
		time.Sleep(retryDelay)
	}
	return nil, err
}

func main() {
	configs.LoadEnv()

	log.Println("seeding streaming service database...")

	db, err := waitForDB(database.BuildDSN())
	if err != nil {
		log.Fatalf("database connection timeout: %v", err)
	}

	if err := seeds.ResetSchema(db); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}
	log.Println("schema created")

	if err := seeds.SeedAll(db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("seed data inserted")

	if err := seeds.CreateIndexes(db); err != nil {
		log.Fatalf("index creation failed: %v", err)
	}
	log.Println("indexes created")

	log.Println("database setup completed")
	log.Println("default admin: username=admin password=admin123")

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	os.Exit(0)
}
