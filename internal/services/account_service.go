package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"tourly/internal/models/db_models"
	"tourly/internal/models/request_models"
	"tourly/internal/models/response_models"
	"tourly/internal/repositories"
	"tourly/pkg/auth"
	mem "tourly/pkg/memcache"
	"tourly/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	// Login returns a signed session token and the claims it carries.
	Login(ctx context.Context, request request_models.LoginRequest) (string, *auth.Claims, *response_models.AccountResponse, error)
	Logout(ctx context.Context, identity auth.Identity)
	// Me describes the caller. Guests get an unauthenticated response, not an error.
	Me(ctx context.Context, identity auth.Identity) (*response_models.IdentityResponse, error)
	// SeedAdmin creates the configured admin account when it does not exist yet.
	SeedAdmin(ctx context.Context, name, email, password string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      auth.TokenConfig
	revoked     mem.RevokedSessionStore
	now         func() time.Time
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens auth.TokenConfig, revoked mem.RevokedSessionStore) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		revoked:     revoked,
		now:         time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	account, err := a.createAccount(ctx, request.DisplayName, request.Email, request.Password, auth.RoleUser)
	if err != nil {
		return nil, err
	}
	out := toAccountResponse(account)
	return &out, nil
}

func (a *AccountService) createAccount(ctx context.Context, name, email, password string, role auth.Role) (*db_models.Account, error) {
	name, err := requireName("name", name)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, utils.Storage(err)
	}

	account := &db_models.Account{
		Name:         name,
		Email:        normalizeEmail(email),
		PasswordHash: hashedPassword,
		Role:         string(role),
	}
	if err := a.accountRepo.InsertTx(account, ctx); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, utils.Conflict("email", utils.MsgEmailExists)
		}
		return nil, utils.Storage(err)
	}
	return account, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, *auth.Claims, *response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return "", nil, nil, utils.Storage(err)
	}
	if account == nil {
		return "", nil, nil, &utils.AppError{Kind: utils.KindUnauthenticated, Message: utils.MsgBadCredentials}
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", nil, nil, &utils.AppError{Kind: utils.KindUnauthenticated, Message: utils.MsgBadCredentials}
	}

	role, ok := auth.ParseRole(account.Role)
	if !ok {
		zap.L().Warn("Account has unknown role", zap.String("account_id", account.ID.String()), zap.String("role", account.Role))
		return "", nil, nil, &utils.AppError{Kind: utils.KindUnauthenticated, Message: utils.MsgBadCredentials}
	}

	token, claims, err := a.tokens.CreateToken(account.ID, role, a.now())
	if err != nil {
		return "", nil, nil, utils.Storage(err)
	}

	out := toAccountResponse(account)
	return token, claims, &out, nil
}

// Logout revokes the caller's token until it would have expired. Guests are a no-op.
func (a *AccountService) Logout(_ context.Context, identity auth.Identity) {
	if !identity.IsAuthenticated() || identity.SessionID == "" {
		return
	}
	a.revoked.Revoke(identity.SessionID, identity.ExpiresAt)
}

func (a *AccountService) Me(ctx context.Context, identity auth.Identity) (*response_models.IdentityResponse, error) {
	out := &response_models.IdentityResponse{Role: string(identity.Role)}
	if !identity.IsAuthenticated() {
		return out, nil
	}

	account, err := a.accountRepo.FindById(ctx, identity.SubjectID.String())
	if err != nil {
		return nil, utils.Storage(err)
	}
	if account == nil {
		// The token outlived its account.
		return &response_models.IdentityResponse{Role: string(auth.RoleGuest)}, nil
	}

	out.Authenticated = true
	out.UserID = identity.SubjectID.String()
	resp := toAccountResponse(account)
	out.Account = &resp
	return out, nil
}

func (a *AccountService) SeedAdmin(ctx context.Context, name, email, password string) error {
	if email == "" {
		return nil
	}

	existing, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	if _, err := a.createAccount(ctx, name, email, password, auth.RoleAdmin); err != nil {
		if utils.IsKind(err, utils.KindConflict) {
			return nil
		}
		return err
	}
	zap.L().Info("Seeded admin account", zap.String("email", normalizeEmail(email)))
	return nil
}
