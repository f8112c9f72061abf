package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourly/internal/infra/infratest"
	"tourly/internal/models/request_models"
	"tourly/internal/repositories"
	"tourly/pkg/auth"
	mem "tourly/pkg/memcache"
	"tourly/pkg/utils"
)

var testTokens = auth.TokenConfig{
	SigningKey: []byte("0123456789abcdef0123456789abcdef"),
	Issuer:     "tourly-test",
	TTL:        time.Hour,
}

func newAccountService(t *testing.T) (AccountServiceInterface, *mem.RevokedSessions) {
	revoked := mem.NewRevokedSessions()
	repo := repositories.NewAccountRepository(infratest.NewTestDatabase(t))
	return NewAccountService(repo, testTokens, revoked), revoked
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	account, err := svc.Register(ctx, request_models.SignUpRequest{
		DisplayName: "Ama Mensah",
		Email:       "Ama@Example.com ",
		Password:    "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "ama@example.com", account.Email)
	assert.Equal(t, "user", account.Role)

	_, err = svc.Register(ctx, request_models.SignUpRequest{DisplayName: "Ama", Email: "ama@example.com", Password: "another-pass"})
	assert.True(t, utils.IsKind(err, utils.KindConflict))

	token, claims, loggedIn, err := svc.Login(ctx, request_models.LoginRequest{Email: "AMA@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, account.ID, loggedIn.ID)
	assert.Equal(t, account.ID, claims.Subject)

	parsed, err := testTokens.ParseToken(token, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "user", parsed.Role)

	_, _, _, err = svc.Login(ctx, request_models.LoginRequest{Email: "ama@example.com", Password: "wrong-password"})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.KindUnauthenticated, appErr.Kind)
	assert.Equal(t, utils.MsgBadCredentials, appErr.Message)

	_, _, _, err = svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.MsgBadCredentials, appErr.Message)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, revoked := newAccountService(t)
	ctx := context.Background()

	identity := adminIdentity()
	svc.Logout(ctx, identity)
	assert.True(t, revoked.IsRevoked(identity.SessionID))

	svc.Logout(ctx, auth.Guest())
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedAdmin(ctx, "Admin", "admin@example.com", "admin-password"))
	require.NoError(t, svc.SeedAdmin(ctx, "Admin", "admin@example.com", "admin-password"))
	require.NoError(t, svc.SeedAdmin(ctx, "Admin", "", ""))

	_, claims, account, err := svc.Login(ctx, request_models.LoginRequest{Email: "admin@example.com", Password: "admin-password"})
	require.NoError(t, err)
	assert.Equal(t, "admin", account.Role)
	assert.Equal(t, "admin", claims.Role)
}

func TestMe_DescribesCaller(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	guest, err := svc.Me(ctx, auth.Guest())
	require.NoError(t, err)
	assert.False(t, guest.Authenticated)
	assert.Equal(t, "guest", guest.Role)
	assert.Nil(t, guest.Account)

	registered, err := svc.Register(ctx, request_models.SignUpRequest{DisplayName: "Kwame", Email: "kwame@example.com", Password: "kwame-password"})
	require.NoError(t, err)

	me, err := svc.Me(ctx, userIdentity(mustParseUUID(t, registered.ID)))
	require.NoError(t, err)
	assert.True(t, me.Authenticated)
	assert.Equal(t, registered.ID, me.UserID)
	require.NotNil(t, me.Account)
	assert.Equal(t, "Kwame", me.Account.Name)
	assert.Equal(t, "kwame@example.com", me.Account.Email)

	orphan, err := svc.Me(ctx, userIdentity(uuid.New()))
	require.NoError(t, err)
	assert.False(t, orphan.Authenticated)
	assert.Nil(t, orphan.Account)
}
