package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRevocations map[string]bool

func (f fakeRevocations) IsRevoked(id string) bool { return f[id] }

var testTokens = TokenConfig{
	SigningKey: []byte("test-signing-key-0123456789abcdef"),
	Issuer:     "tourly",
	TTL:        time.Hour,
}

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, "/user/reviews", nil)
}

func TestResolve_NoTokenIsGuest(t *testing.T) {
	r := NewResolver(testTokens, "tourly_session", nil)

	identity := r.Resolve(newRequest(t))
	assert.Equal(t, Guest(), identity)
}

func TestResolve_CookieToken(t *testing.T) {
	now := time.Now()
	subject := uuid.New()
	token, claims, err := testTokens.CreateToken(subject, RoleAdmin, now)
	require.NoError(t, err)

	req := newRequest(t)
	req.AddCookie(&http.Cookie{Name: "tourly_session", Value: token})

	identity := NewResolver(testTokens, "tourly_session", nil).Resolve(req)
	assert.Equal(t, subject, identity.SubjectID)
	assert.Equal(t, RoleAdmin, identity.Role)
	assert.Equal(t, claims.ID, identity.SessionID)
	assert.True(t, identity.IsAdmin())
}

func TestResolve_BearerToken(t *testing.T) {
	subject := uuid.New()
	token, _, err := testTokens.CreateToken(subject, RoleUser, time.Now())
	require.NoError(t, err)

	req := newRequest(t)
	req.Header.Set("Authorization", "bearer "+token)

	identity := NewResolver(testTokens, "tourly_session", nil).Resolve(req)
	assert.Equal(t, subject, identity.SubjectID)
	assert.Equal(t, RoleUser, identity.Role)
}

func TestResolve_ExpiredTokenIsGuest(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	token, _, err := testTokens.CreateToken(uuid.New(), RoleAdmin, issued)
	require.NoError(t, err)

	req := newRequest(t)
	req.Header.Set("Authorization", "Bearer "+token)

	assert.Equal(t, Guest(), NewResolver(testTokens, "", nil).Resolve(req))
}

func TestResolve_InjectedClockControlsExpiry(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	token, _, err := testTokens.CreateToken(uuid.New(), RoleUser, issued)
	require.NoError(t, err)

	req := newRequest(t)
	req.Header.Set("Authorization", "Bearer "+token)

	r := NewResolver(testTokens, "", nil)
	assert.True(t, r.WithClock(func() time.Time { return issued.Add(30 * time.Minute) }).Resolve(req).IsAuthenticated())
	assert.False(t, r.WithClock(func() time.Time { return issued.Add(61 * time.Minute) }).Resolve(req).IsAuthenticated())
}

func TestResolve_TamperedTokenIsGuest(t *testing.T) {
	token, _, err := testTokens.CreateToken(uuid.New(), RoleUser, time.Now())
	require.NoError(t, err)

	other := testTokens
	other.SigningKey = []byte("another-signing-key-0123456789abcd")

	req := newRequest(t)
	req.Header.Set("Authorization", "Bearer "+token)

	assert.Equal(t, Guest(), NewResolver(other, "", nil).Resolve(req))
}

func TestResolve_WrongIssuerIsGuest(t *testing.T) {
	token, _, err := testTokens.CreateToken(uuid.New(), RoleUser, time.Now())
	require.NoError(t, err)

	other := testTokens
	other.Issuer = "someone-else"

	req := newRequest(t)
	req.Header.Set("Authorization", "Bearer "+token)

	assert.Equal(t, Guest(), NewResolver(other, "", nil).Resolve(req))
}

func TestResolve_NoneAlgorithmIsGuest(t *testing.T) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Role: string(RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti",
			Subject:   uuid.NewString(),
			Issuer:    testTokens.Issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := newRequest(t)
	req.Header.Set("Authorization", "Bearer "+signed)

	assert.Equal(t, Guest(), NewResolver(testTokens, "", nil).Resolve(req))
}

func TestResolve_UnknownRoleIsGuest(t *testing.T) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: "superuser",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti",
			Subject:   uuid.NewString(),
			Issuer:    testTokens.Issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(testTokens.SigningKey)
	require.NoError(t, err)

	req := newRequest(t)
	req.Header.Set("Authorization", "Bearer "+signed)

	assert.Equal(t, Guest(), NewResolver(testTokens, "", nil).Resolve(req))
}

func TestResolve_RevokedSessionIsGuest(t *testing.T) {
	token, claims, err := testTokens.CreateToken(uuid.New(), RoleUser, time.Now())
	require.NoError(t, err)

	req := newRequest(t)
	req.Header.Set("Authorization", "Bearer "+token)

	r := NewResolver(testTokens, "", fakeRevocations{claims.ID: true})
	assert.Equal(t, Guest(), r.Resolve(req))
}

func TestResolve_GarbageIsGuest(t *testing.T) {
	req := newRequest(t)
	req.AddCookie(&http.Cookie{Name: "tourly_session", Value: "not-a-jwt"})

	assert.Equal(t, Guest(), NewResolver(testTokens, "tourly_session", nil).Resolve(req))
}

func TestCreateToken_RejectsGuestRole(t *testing.T) {
	_, _, err := testTokens.CreateToken(uuid.New(), RoleGuest, time.Now())
	assert.ErrorIs(t, err, ErrInvalidClaims)
}
