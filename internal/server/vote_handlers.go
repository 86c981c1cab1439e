package server

import (
	"pollbox/internal/models"
	"pollbox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CastVote handles POST /api/polls/:id/votes
func (s *Server) CastVote(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	pollID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		OptionID    uint `json:"option_id"`
		IsAnonymous bool `json:"is_anonymous"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.OptionID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("option_id is required"))
	}

	vote, err := s.voteService.CastVote(ctx, service.CastVoteInput{
		UserID:      userID,
		PollID:      pollID,
		OptionID:    req.OptionID,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(vote)
}

// GetMyVotes handles GET /api/polls/:id/votes/me
func (s *Server) GetMyVotes(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	pollID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	votes, err := s.voteService.ListUserVotes(ctx, userID, pollID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(votes)
}
