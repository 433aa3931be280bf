package main

import (
	"log"
	"os"

	"ai-ordering-be/internal/model"
	"ai-ordering-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting GORM Migration...")

	color.White("Step 1: Setting up Extensions...")
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	color.White("Step 2: Running AutoMigrate...")
	models := []interface{}{
		&model.Business{},
		&model.BusinessOpeningHour{},
		&model.Employee{},
		&model.Item{},
		&model.Session{},
		&model.Order{},
		&model.OrderStatusHistory{},
		&model.AuditLog{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	color.White("Step 3: Creating partial indexes...")
	postMigrationSQL := []string{
		// One eligible session per conversation key. The bot relies on this
		// to never fan out into parallel active sessions.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_sessions_eligible
		 ON sessions (business_id, customer_id, channel)
		 WHERE locked = false AND assigned_employee_id IS NULL AND deleted_at IS NULL;`,

		// Cancellation path scans accepted, future-scheduled orders.
		`CREATE INDEX IF NOT EXISTS idx_orders_cancelable
		 ON orders (business_id, customer_id, scheduled_for)
		 WHERE status = 'accepted';`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	color.Green("Success: Database migration completed via GORM.")
}
