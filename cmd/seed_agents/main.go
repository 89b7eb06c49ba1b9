package main

import (
	"log"
	"os"

	"ecomia-be/internal/model"
	"ecomia-be/pkg/agent/prompt"
	"ecomia-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Agent Definition Seeder...")

	// 3. Upsert the built-in agent roster (idempotent on agent_key)
	for _, cfg := range prompt.StaticDefaults {
		definition := model.AgentDefinition{
			AgentKey:      cfg.Key,
			Name:          cfg.Name,
			Description:   cfg.Description,
			DefaultPrompt: cfg.DefaultPrompt,
			Active:        true,
		}

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "agent_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "default_prompt", "active", "updated_at"}),
		}).Create(&definition).Error
		if err != nil {
			log.Fatalf("Error: Failed to seed agent %q: %v", cfg.Key, err)
		}
		log.Printf("Seeded agent: %s (%s)", cfg.Name, cfg.Key)
	}

	log.Println("✅ Success: Agent definition seeding completed.")
}
