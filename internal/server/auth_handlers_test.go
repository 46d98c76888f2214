package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func jsonRequest(method, target string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formLoginRequest(username, password string) *http.Request {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	_, app := newTestServer(t, userRepo, new(MockPostRepository), new(MockVoteRepository))

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		// The stored password must be a hash, never the plaintext.
		return u.Email == "new@example.com" && u.Password != "Password123"
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = 1
	})

	resp, err := app.Test(jsonRequest("POST", "/api/users", map[string]string{
		"email":    "new@example.com",
		"password": "Password123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "new@example.com")
	assert.NotContains(t, string(body), "password", "password field must never be serialized")

	userRepo.AssertExpectations(t)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"missing email", "", "Password123"},
		{"missing password", "new@example.com", ""},
		{"bad email", "not-an-email", "Password123"},
		{"weak password", "new@example.com", "short"},
		{"no digit", "new@example.com", "Passwordonly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, app := newTestServer(t, new(MockUserRepository), new(MockPostRepository), new(MockVoteRepository))

			resp, err := app.Test(jsonRequest("POST", "/api/users", map[string]string{
				"email":    tt.email,
				"password": tt.password,
			}))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	_, app := newTestServer(t, userRepo, new(MockPostRepository), new(MockVoteRepository))

	userRepo.On("Create", mock.Anything, mock.Anything).
		Return(models.NewConflictError("Email already registered"))

	resp, err := app.Test(jsonRequest("POST", "/api/users", map[string]string{
		"email":    "taken@example.com",
		"password": "Password123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	s, app := newTestServer(t, userRepo, new(MockPostRepository), new(MockVoteRepository))

	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").
		Return(&models.User{ID: 7, Email: "alice@example.com", Password: string(hashed)}, nil)

	resp, err := app.Test(formLoginRequest("alice@example.com", "Password123"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "bearer", body.TokenType)

	userID, err := s.tokens.Verify(body.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	userRepo := new(MockUserRepository)
	_, app := newTestServer(t, userRepo, new(MockPostRepository), new(MockVoteRepository))

	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").
		Return(&models.User{ID: 7, Email: "alice@example.com", Password: string(hashed)}, nil)
	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, nil)

	wrongPassword, err := app.Test(formLoginRequest("alice@example.com", "WrongPass123"))
	require.NoError(t, err)
	unknownEmail, err := app.Test(formLoginRequest("ghost@example.com", "Password123"))
	require.NoError(t, err)

	// Both failure modes must return the same status and the same body so the
	// endpoint cannot be used to probe which emails are registered.
	assert.Equal(t, http.StatusForbidden, wrongPassword.StatusCode)
	assert.Equal(t, http.StatusForbidden, unknownEmail.StatusCode)

	bodyA, err := io.ReadAll(wrongPassword.Body)
	require.NoError(t, err)
	bodyB, err := io.ReadAll(unknownEmail.Body)
	require.NoError(t, err)
	assert.Equal(t, string(bodyA), string(bodyB))
	assert.Contains(t, string(bodyA), "Invalid Credentials")
}

func TestGetMyProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	s, app := newTestServer(t, userRepo, new(MockPostRepository), new(MockVoteRepository))
	header := authorize(t, s, userRepo, 7)

	req := httptest.NewRequest("GET", "/api/users/me", nil)
	req.Header.Set("Authorization", header)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	decodeJSON(t, resp, &user)
	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, "auth@example.com", user.Email)
}
