package server

import (
	"time"

	"pollbox/internal/models"
	"pollbox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePoll handles POST /api/polls
func (s *Server) CreatePoll(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title         string    `json:"title"`
		Description   string    `json:"description,omitempty"`
		ExpiresAt     time.Time `json:"expires_at"`
		IsMultiSelect bool      `json:"is_multi_select"`
		Options       []string  `json:"options"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	poll, err := s.pollService.CreatePoll(ctx, service.CreatePollInput{
		CreatorID:     userID,
		Title:         req.Title,
		Description:   req.Description,
		ExpiresAt:     req.ExpiresAt,
		IsMultiSelect: req.IsMultiSelect,
		Options:       req.Options,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(poll)
}

// ListPolls handles GET /api/polls
func (s *Server) ListPolls(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 20)

	polls, err := s.pollService.ListPolls(ctx, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(polls)
}

// GetPoll handles GET /api/polls/:id
func (s *Server) GetPoll(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	poll, err := s.pollService.GetPoll(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(poll)
}

// DeletePoll handles DELETE /api/polls/:id
func (s *Server) DeletePoll(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	pollID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.pollService.DeletePoll(ctx, service.DeletePollInput{
		UserID: userID,
		PollID: pollID,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
