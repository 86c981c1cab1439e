package seed

import (
	"fmt"
	"time"

	"pollbox/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// FixtureSet is the fixed verification dataset: 10 users, 3 polls with
// 11 options between them, and 11 votes. Poll 2 is multi-select and
// carries 4 votes, two of them from user 4 on different options. The
// analytics queries have known answers against this set.
type FixtureSet struct {
	Users []models.User
	Polls []models.Poll
	Votes []models.Vote
}

var fixtureUsernames = []string{
	"alice", "bob", "carol", "dana", "erin",
	"frank", "grace", "henry", "iris", "jack",
}

// Fixture builds the verification dataset relative to the given
// reference time. Poll 1 is already expired at now; polls 2 and 3 are
// open. Votes on poll 2 land inside the trailing 24h trending window,
// poll 1's votes land outside it, and poll 3 has two in and two out.
func Fixture(now time.Time) FixtureSet {
	password := fixturePassword()

	var users []models.User
	for i, name := range fixtureUsernames {
		users = append(users, models.User{
			ID:       uint(i + 1),
			Username: name,
			Email:    fmt.Sprintf("%s@example.com", name),
			Password: password,
		})
	}

	polls := []models.Poll{
		{
			ID:        1,
			Title:     "Tabs or spaces?",
			CreatorID: 1,
			ExpiresAt: now.Add(-24 * time.Hour),
			Options: []models.PollOption{
				{ID: 1, PollID: 1, Text: "Tabs"},
				{ID: 2, PollID: 1, Text: "Spaces"},
			},
		},
		{
			ID:            2,
			Title:         "Which languages do you use?",
			CreatorID:     2,
			ExpiresAt:     now.Add(72 * time.Hour),
			IsMultiSelect: true,
			Options: []models.PollOption{
				{ID: 3, PollID: 2, Text: "Go"},
				{ID: 4, PollID: 2, Text: "Rust"},
				{ID: 5, PollID: 2, Text: "Python"},
				{ID: 6, PollID: 2, Text: "TypeScript"},
			},
		},
		{
			ID:        3,
			Title:     "Best standup time?",
			CreatorID: 1,
			ExpiresAt: now.Add(48 * time.Hour),
			Options: []models.PollOption{
				{ID: 7, PollID: 3, Text: "9:00"},
				{ID: 8, PollID: 3, Text: "9:30"},
				{ID: 9, PollID: 3, Text: "10:00"},
				{ID: 10, PollID: 3, Text: "10:30"},
				{ID: 11, PollID: 3, Text: "None"},
			},
		},
	}

	votes := []models.Vote{
		// Poll 1, cast while it was still open, outside the trending window.
		{ID: 1, UserID: 1, PollID: 1, OptionID: 1, CreatedAt: now.Add(-72 * time.Hour)},
		{ID: 2, UserID: 2, PollID: 1, OptionID: 2, CreatedAt: now.Add(-70 * time.Hour)},
		{ID: 3, UserID: 3, PollID: 1, OptionID: 1, CreatedAt: now.Add(-68 * time.Hour)},
		// Poll 2, all recent. User 4 votes twice, on different options.
		{ID: 4, UserID: 4, PollID: 2, OptionID: 3, CreatedAt: now.Add(-12 * time.Hour)},
		{ID: 5, UserID: 4, PollID: 2, OptionID: 4, CreatedAt: now.Add(-11 * time.Hour)},
		{ID: 6, UserID: 5, PollID: 2, OptionID: 3, CreatedAt: now.Add(-10 * time.Hour)},
		{ID: 7, UserID: 6, PollID: 2, OptionID: 5, CreatedAt: now.Add(-9 * time.Hour)},
		// Poll 3, two inside the window and two outside.
		{ID: 8, UserID: 7, PollID: 3, OptionID: 7, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 9, UserID: 8, PollID: 3, OptionID: 8, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: 10, UserID: 9, PollID: 3, OptionID: 7, CreatedAt: now.Add(-30 * time.Hour)},
		{ID: 11, UserID: 10, PollID: 3, OptionID: 9, CreatedAt: now.Add(-28 * time.Hour)},
	}

	return FixtureSet{Users: users, Polls: polls, Votes: votes}
}

// LoadFixture persists the verification dataset. Existing rows with the
// same IDs will conflict; call clearData first on a dirty database.
func LoadFixture(db *gorm.DB, now time.Time) error {
	fx := Fixture(now)

	if err := db.Create(&fx.Users).Error; err != nil {
		return fmt.Errorf("failed to create fixture users: %w", err)
	}
	// Options ride along via the association.
	if err := db.Create(&fx.Polls).Error; err != nil {
		return fmt.Errorf("failed to create fixture polls: %w", err)
	}
	if err := db.Create(&fx.Votes).Error; err != nil {
		return fmt.Errorf("failed to create fixture votes: %w", err)
	}
	return nil
}

func fixturePassword() string {
	// MinCost keeps repeated seeding cheap; fixture accounts are not real.
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Fixture!Passw0rd"), bcrypt.MinCost)
	return string(hashed)
}
