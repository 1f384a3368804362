package main

import (
	"log"
	"os"

	"compound-words/internal/store"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./compound.db"
	}

	log.Printf("Setting up database at: %s\n", dbPath)

	db, err := store.InitDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Drop and recreate run history tables
	log.Println("Resetting run history tables...")
	if err := store.ResetSchema(db); err != nil {
		log.Fatalf("Failed to reset schema: %v", err)
	}

	log.Println("Database setup completed successfully!")
}
