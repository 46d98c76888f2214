package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"pulse/internal/config"
	"pulse/internal/models"
	"pulse/internal/service"
	"pulse/internal/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockPostRepository is a mock implementation of repository.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, search string, limit, offset int) ([]*models.Post, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVoteRepository is a mock implementation of repository.VoteRepository
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) Create(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockVoteRepository) Delete(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

const testSecret = "test-secret-for-handler-tests"

// newTestServer wires a Server around mock repositories and returns the Fiber
// app with all routes registered. Handlers under test never touch a database.
func newTestServer(t *testing.T, userRepo *MockUserRepository, postRepo *MockPostRepository, voteRepo *MockVoteRepository) (*Server, *fiber.App) {
	t.Helper()

	tokens, err := token.NewService(testSecret, 45*time.Minute)
	require.NoError(t, err)

	s := &Server{
		config: &config.Config{
			JWTSecret:        testSecret,
			JWTTTLMinutes:    45,
			FeedDefaultLimit: 3,
		},
		tokens:      tokens,
		userRepo:    userRepo,
		postRepo:    postRepo,
		voteRepo:    voteRepo,
		postService: service.NewPostService(postRepo),
		voteService: service.NewVoteService(postRepo, voteRepo),
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// authorize issues a real token for userID and stubs the middleware's user
// lookup so protected routes can be exercised end to end.
func authorize(t *testing.T, s *Server, userRepo *MockUserRepository, userID uint) string {
	t.Helper()

	tok, err := s.tokens.Issue(userID)
	require.NoError(t, err)

	userRepo.On("GetByID", mock.Anything, userID).
		Return(&models.User{ID: userID, Email: "auth@example.com"}, nil)

	return "Bearer " + tok
}

func decodeJSON(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, dest))
}
