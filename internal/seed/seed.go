package seed

import (
	"fmt"
	"log"
	"time"

	"pollbox/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPolls    int
	NumVotes    int
	ShouldClean bool
	WithFixture bool
	SkipBcrypt  bool
	MaxDays     int
}

// Seed populates the database. With WithFixture set it loads the fixed
// verification dataset first, then layers random factory data on top.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users, %d polls, %d votes...",
		opts.NumUsers, opts.NumPolls, opts.NumVotes)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: Could not clear all existing data, continuing anyway...")
		}
	}

	if opts.WithFixture {
		if err := LoadFixture(db, time.Now()); err != nil {
			return fmt.Errorf("failed to load fixture: %w", err)
		}
		log.Println("Verification fixture loaded (10 users, 3 polls, 11 votes)")
	}

	factory := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d users created", len(users))

	polls := make([]*models.Poll, 0, opts.NumPolls)
	if len(users) > 0 {
		for i := 0; i < opts.NumPolls; i++ {
			poll, err := factory.CreatePoll(users[i%len(users)])
			if err != nil {
				return fmt.Errorf("failed to create polls: %w", err)
			}
			polls = append(polls, poll)
		}
	}
	log.Printf("%d polls created", len(polls))

	if len(users) > 0 && len(polls) > 0 {
		cast, err := factory.CastVotes(users, polls, opts.NumVotes)
		if err != nil {
			return fmt.Errorf("failed to cast votes: %w", err)
		}
		log.Printf("%d votes cast", cast)
	}

	log.Println("Database seeding completed successfully")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE votes, poll_options, polls, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
