package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pollbox/internal/models"
	"pollbox/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestServer(pollRepo *MockPollRepository, voteRepo *MockVoteRepository) *Server {
	s := &Server{}
	if pollRepo != nil {
		s.pollService = service.NewPollService(pollRepo, nil, nil)
		if voteRepo != nil {
			s.voteService = service.NewVoteService(voteRepo, pollRepo, nil, nil)
		}
	}
	return s
}

func withUserID(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

func TestCreatePoll(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockPollRepository)
	s := newTestServer(mockRepo, nil)

	app.Use(withUserID(1))
	app.Post("/polls", s.CreatePoll)

	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name           string
		body           map[string]interface{}
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]interface{}{
				"title":      "Favorite language?",
				"expires_at": future,
				"options":    []string{"Go", "Rust"},
			},
			mockSetup: func() {
				mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
				mockRepo.On("GetByID", mock.Anything, mock.Anything).
					Return(&models.Poll{ID: 1, Title: "Favorite language?"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing Title",
			body: map[string]interface{}{
				"expires_at": future,
				"options":    []string{"Go", "Rust"},
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Single Option",
			body: map[string]interface{}{
				"title":      "One choice",
				"expires_at": future,
				"options":    []string{"Go"},
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Expiration In The Past",
			body: map[string]interface{}{
				"title":      "Too late",
				"expires_at": time.Now().Add(-time.Hour),
				"options":    []string{"Go", "Rust"},
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/polls", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}

	mockRepo.AssertExpectations(t)
}

func TestGetPoll(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockPollRepository)
	s := newTestServer(mockRepo, nil)

	app.Get("/polls/:id", s.GetPoll)

	tests := []struct {
		name           string
		path           string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			path: "/polls/1",
			mockSetup: func() {
				mockRepo.On("GetByID", mock.Anything, uint(1)).
					Return(&models.Poll{ID: 1, Title: "Favorite language?"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Not Found",
			path: "/polls/99",
			mockSetup: func() {
				mockRepo.On("GetByID", mock.Anything, uint(99)).
					Return(nil, models.NewNotFoundError("Poll", uint(99))).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid ID",
			path:           "/polls/abc",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}

	mockRepo.AssertExpectations(t)
}

func TestListPolls(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockPollRepository)
	s := newTestServer(mockRepo, nil)

	app.Get("/polls", s.ListPolls)

	mockRepo.On("List", mock.Anything, 20, 0).
		Return([]models.Poll{{ID: 1}, {ID: 2}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/polls", nil)
	resp, err := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var polls []models.Poll
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&polls))
	assert.Len(t, polls, 2)

	mockRepo.AssertExpectations(t)
}

func TestDeletePoll(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		mockSetup      func(m *MockPollRepository)
		expectedStatus int
	}{
		{
			name:   "Owner Deletes",
			userID: 1,
			mockSetup: func(m *MockPollRepository) {
				m.On("GetByID", mock.Anything, uint(5)).
					Return(&models.Poll{ID: 5, CreatorID: 1}, nil).Once()
				m.On("SoftDelete", mock.Anything, uint(5)).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "Non-Owner Forbidden",
			userID: 2,
			mockSetup: func(m *MockPollRepository) {
				m.On("GetByID", mock.Anything, uint(5)).
					Return(&models.Poll{ID: 5, CreatorID: 1}, nil).Once()
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "Not Found",
			userID: 1,
			mockSetup: func(m *MockPollRepository) {
				m.On("GetByID", mock.Anything, uint(5)).
					Return(nil, models.NewNotFoundError("Poll", uint(5))).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := new(MockPollRepository)
			s := newTestServer(mockRepo, nil)

			app.Use(withUserID(tt.userID))
			app.Delete("/polls/:id", s.DeletePoll)

			tt.mockSetup(mockRepo)

			req := httptest.NewRequest(http.MethodDelete, "/polls/5", nil)
			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			mockRepo.AssertExpectations(t)
		})
	}
}
