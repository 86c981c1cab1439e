// Command main runs the database seeder for Pollbox.
package main

import (
	"flag"
	"log"

	"pollbox/internal/config"
	"pollbox/internal/database"
	"pollbox/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPolls := flag.Int("polls", 25, "Number of polls to create")
	numVotes := flag.Int("votes", 300, "Number of votes to cast")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	withFixture := flag.Bool("fixture", true, "Load the fixed verification dataset first")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plaintext passwords (fast local seeding only)")
	flag.Parse()

	log.Println("Pollbox Database Seeder")
	log.Printf("Target: %d users, %d polls, %d votes, clean=%v fixture=%v\n",
		*numUsers, *numPolls, *numVotes, *shouldClean, *withFixture)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumPolls:    *numPolls,
		NumVotes:    *numVotes,
		ShouldClean: *shouldClean,
		WithFixture: *withFixture,
		SkipBcrypt:  *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All generated users have the password: password123")
}
