// Package seed provides database seeding utilities for development and
// testing: a fixed verification fixture and gofakeit-backed factories
// for larger demo datasets.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"pollbox/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Factory{db: db, opts: opts, rng: rng}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePoll constructs and persists a poll with 2..5 options owned by
// the given user. Roughly a quarter of generated polls are multi-select
// and a fifth are already expired.
func (f *Factory) CreatePoll(creator *models.User, overrides ...func(*models.Poll)) (*models.Poll, error) {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 30
	}

	poll := &models.Poll{
		Title:         gofakeit.Question(),
		Description:   gofakeit.Sentence(10),
		CreatorID:     creator.ID,
		IsMultiSelect: f.rng.Intn(4) == 0,
		ExpiresAt:     time.Now().Add(time.Duration(1+f.rng.Intn(maxDays)) * 24 * time.Hour),
		CreatedAt:     time.Now().Add(-time.Duration(f.rng.Intn(maxDays*24)) * time.Hour),
	}
	if f.rng.Intn(5) == 0 {
		poll.ExpiresAt = time.Now().Add(-time.Duration(1+f.rng.Intn(maxDays)) * 24 * time.Hour)
	}

	numOptions := 2 + f.rng.Intn(4)
	for i := 0; i < numOptions; i++ {
		poll.Options = append(poll.Options, models.PollOption{
			Text: gofakeit.BuzzWord(),
		})
	}

	for _, override := range overrides {
		override(poll)
	}

	if err := f.db.Create(poll).Error; err != nil {
		return nil, err
	}
	return poll, nil
}

// CastVotes persists up to `target` random legal votes across the given
// polls and users. Single-select uniqueness per (user, poll) and
// multi-select uniqueness per (user, option) are respected, so the
// returned count may fall short of the target on small datasets.
func (f *Factory) CastVotes(users []*models.User, polls []*models.Poll, target int) (int, error) {
	votedPoll := make(map[[2]uint]bool)   // (user, poll) for single-select
	votedOption := make(map[[2]uint]bool) // (user, option) for multi-select

	cast := 0
	for attempts := 0; cast < target && attempts < target*10; attempts++ {
		user := users[f.rng.Intn(len(users))]
		poll := polls[f.rng.Intn(len(polls))]
		if len(poll.Options) == 0 {
			continue
		}
		option := poll.Options[f.rng.Intn(len(poll.Options))]

		if poll.IsMultiSelect {
			key := [2]uint{user.ID, option.ID}
			if votedOption[key] {
				continue
			}
			votedOption[key] = true
		} else {
			key := [2]uint{user.ID, poll.ID}
			if votedPoll[key] {
				continue
			}
			votedPoll[key] = true
		}

		vote := &models.Vote{
			UserID:      user.ID,
			PollID:      poll.ID,
			OptionID:    option.ID,
			IsAnonymous: f.rng.Intn(10) == 0,
			CreatedAt:   time.Now().Add(-time.Duration(f.rng.Intn(72)) * time.Hour),
		}
		if err := f.db.Create(vote).Error; err != nil {
			return cast, err
		}
		cast++
	}
	return cast, nil
}
