package token

import (
	"testing"
	"time"

	"pulse/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-token-service"

func TestNewService_RequiresSecret(t *testing.T) {
	_, err := NewService("", 45*time.Minute)
	assert.Error(t, err)

	_, err = NewService(testSecret, 0)
	assert.Error(t, err)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc, err := NewService(testSecret, 45*time.Minute)
	require.NoError(t, err)

	tok, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc, err := NewService(testSecret, 30*time.Minute)
	require.NoError(t, err)

	issued := time.Now()
	svc.now = func() time.Time { return issued }
	tok, err := svc.Issue(7)
	require.NoError(t, err)

	// Advance the clock past the TTL.
	svc.now = func() time.Time { return issued.Add(31 * time.Minute) }
	_, err = svc.Verify(tok)
	assertUnauthorized(t, err)
}

func TestVerify_TamperedToken(t *testing.T) {
	svc, err := NewService(testSecret, 45*time.Minute)
	require.NoError(t, err)

	tok, err := svc.Issue(7)
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, err = svc.Verify(tampered)
	assertUnauthorized(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer, err := NewService("some-other-secret-entirely-here", 45*time.Minute)
	require.NoError(t, err)
	verifier, err := NewService(testSecret, 45*time.Minute)
	require.NoError(t, err)

	tok, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assertUnauthorized(t, err)
}

func TestVerify_RejectsUnsignedToken(t *testing.T) {
	svc, err := NewService(testSecret, 45*time.Minute)
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "7"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assertUnauthorized(t, err)
}

func TestVerify_GarbageInput(t *testing.T) {
	svc, err := NewService(testSecret, 45*time.Minute)
	require.NoError(t, err)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(input)
		assertUnauthorized(t, err)
	}
}

// assertUnauthorized checks that every failure mode surfaces the same
// UNAUTHORIZED error with the same message.
func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	assert.Equal(t, "Invalid or expired token", appErr.Message)
}
