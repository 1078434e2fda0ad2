// Command initdb creates the schema and, unless disabled, loads the demo
// data set (the four role accounts, sample airlines, flights and
// passengers).
package main

import (
	"log"

	"flight-management-system/internal/config"
	"flight-management-system/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Connected to database")

	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	log.Println("Schema created")

	if cfg.Database.SeedDemo {
		if err := db.SeedDemoData(); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Demo data loaded")
		log.Println("Accounts: admin/admin123 supervisor/supervisor123 agent1/agent123 viewer/viewer123")
	}

	log.Println("Database initialized")
}
