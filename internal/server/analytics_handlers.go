package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetPollStatuses handles GET /api/analytics/statuses
func (s *Server) GetPollStatuses(c *fiber.Ctx) error {
	statuses, err := s.analyticsService.PollStatuses(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(statuses)
}

// GetVotesPerPoll handles GET /api/analytics/polls/votes
func (s *Server) GetVotesPerPoll(c *fiber.Ctx) error {
	counts, err := s.analyticsService.VotesPerPoll(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(counts)
}

// GetVotesPerOption handles GET /api/analytics/options/votes
func (s *Server) GetVotesPerOption(c *fiber.Ctx) error {
	counts, err := s.analyticsService.VotesPerOption(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(counts)
}

// GetUserParticipation handles GET /api/analytics/users/:id/participation
func (s *Server) GetUserParticipation(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	polls, err := s.analyticsService.UserParticipation(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(polls)
}

// GetMostActiveUsers handles GET /api/analytics/users/most-active?limit=N
func (s *Server) GetMostActiveUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	users, err := s.analyticsService.MostActiveUsers(c.Context(), limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// GetTrendingPolls handles GET /api/analytics/polls/trending?limit=N
func (s *Server) GetTrendingPolls(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	polls, err := s.analyticsService.TrendingPolls(c.Context(), limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(polls)
}
