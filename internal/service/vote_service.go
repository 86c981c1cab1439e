package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"pollbox/internal/events"
	"pollbox/internal/middleware"
	"pollbox/internal/models"
	"pollbox/internal/observability"
	"pollbox/internal/repository"
)

type VoteService struct {
	voteRepo repository.VoteRepository
	pollRepo repository.PollRepository
	producer *events.Producer
	now      func() time.Time
}

type CastVoteInput struct {
	UserID      uint
	PollID      uint
	OptionID    uint
	IsAnonymous bool
}

func NewVoteService(
	voteRepo repository.VoteRepository,
	pollRepo repository.PollRepository,
	producer *events.Producer,
	now func() time.Time,
) *VoteService {
	if now == nil {
		now = time.Now
	}
	return &VoteService{
		voteRepo: voteRepo,
		pollRepo: pollRepo,
		producer: producer,
		now:      now,
	}
}

// CastVote enforces the invariants the schema cannot express: the option must
// belong to the poll, the poll must still be open, and uniqueness is per
// (user, poll) on single-select polls and per (user, option) on multi-select.
func (s *VoteService) CastVote(ctx context.Context, in CastVoteInput) (*models.Vote, error) {
	// GetByID excludes soft-deleted polls, so a vote on one fails here.
	poll, err := s.pollRepo.GetByID(ctx, in.PollID)
	if err != nil {
		observability.VotesRejected.WithLabelValues("poll_not_found").Inc()
		return nil, err
	}

	castAt := s.now()
	if !poll.ExpiresAt.After(castAt) {
		observability.VotesRejected.WithLabelValues("poll_expired").Inc()
		return nil, models.NewValidationError("Poll has expired")
	}

	option, err := s.pollRepo.GetOption(ctx, in.OptionID)
	if err != nil {
		observability.VotesRejected.WithLabelValues("option_not_found").Inc()
		return nil, err
	}
	if option.PollID != poll.ID {
		observability.VotesRejected.WithLabelValues("option_mismatch").Inc()
		return nil, models.NewValidationError("Option does not belong to this poll")
	}
	if option.IsDeleted {
		observability.VotesRejected.WithLabelValues("option_deleted").Inc()
		return nil, models.NewValidationError("Option has been removed")
	}

	if poll.IsMultiSelect {
		voted, err := s.voteRepo.HasVotedOption(ctx, in.UserID, in.OptionID)
		if err != nil {
			return nil, err
		}
		if voted {
			observability.VotesRejected.WithLabelValues("duplicate_option").Inc()
			return nil, models.NewConflictError("You have already voted for this option")
		}
	} else {
		count, err := s.voteRepo.CountByUserAndPoll(ctx, in.UserID, in.PollID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			observability.VotesRejected.WithLabelValues("duplicate_poll").Inc()
			return nil, models.NewConflictError("You have already voted in this poll")
		}
	}

	vote := &models.Vote{
		UserID:      in.UserID,
		PollID:      in.PollID,
		OptionID:    in.OptionID,
		IsAnonymous: in.IsAnonymous,
		CreatedAt:   castAt,
	}
	if err := s.voteRepo.Create(ctx, vote); err != nil {
		return nil, err
	}

	observability.VotesCast.WithLabelValues(strconv.FormatUint(uint64(in.PollID), 10)).Inc()

	// Best-effort: a vote that persisted but failed to publish stays valid.
	if err := s.producer.PublishVote(ctx, in.PollID, in.OptionID, in.UserID, in.IsAnonymous, castAt); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to publish vote event",
			slog.Any("poll_id", in.PollID),
			slog.String("error", err.Error()),
		)
	}

	return vote, nil
}

// ListUserVotes returns the caller's votes in a poll, oldest first.
func (s *VoteService) ListUserVotes(ctx context.Context, userID, pollID uint) ([]models.Vote, error) {
	return s.voteRepo.ListByUserAndPoll(ctx, userID, pollID)
}
