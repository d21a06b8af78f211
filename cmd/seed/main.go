// Command main runs the database seeder for Warbler.
package main

import (
	"flag"
	"log"

	"warbler/internal/config"
	"warbler/internal/database"
	"warbler/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	numUsers := flag.Int("users", 15, "Number of users to create")
	numMessages := flag.Int("warbles", 100, "Number of warbles to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if err := s.Run(*numUsers, *numMessages, *shouldClean); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Done. %d users seeded, all with the password %q", *numUsers, seed.DefaultPassword)
}
