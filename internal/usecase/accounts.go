package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

// DefaultTokenTTL is how long an access token stays valid when no TTL is configured.
const DefaultTokenTTL = 24 * time.Hour

// Accounts registers users and exchanges credentials for bearer tokens.
type Accounts struct {
	users  ports.UserStore
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	ttl    time.Duration
	logger ports.Logger
}

// NewAccounts constructs an Accounts use case.
func NewAccounts(users ports.UserStore, hasher ports.PasswordHasher, tokens ports.TokenIssuer, ttl time.Duration, logger ports.Logger) *Accounts {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Accounts{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		ttl:    ttl,
		logger: logger,
	}
}

// Signup creates an account. Blank fields yield model.ErrInvalidRequest and a taken name model.ErrUserExists.
func (a *Accounts) Signup(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", model.ErrInvalidRequest)
	}

	hashed, err := a.hasher.Hash(password)
	if err != nil {
		return err
	}

	err = a.users.CreateUser(ctx, model.User{
		Username:       username,
		HashedPassword: hashed,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "user registered", "user", username)
	return nil
}

// Login checks the credentials and issues a bearer token.
func (a *Accounts) Login(ctx context.Context, username, password string) (model.Token, error) {
	user, err := a.users.FindUser(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.Token{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.Token{}, fmt.Errorf("find user: %w", err)
	}
	if user.Disabled || !a.hasher.Compare(user.HashedPassword, password) {
		return model.Token{}, model.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user.Username, a.ttl)
	if err != nil {
		return model.Token{}, err
	}
	return model.Token{AccessToken: token, TokenType: "bearer"}, nil
}

// Authenticate resolves a bearer token to an active user or fails with model.ErrUnauthorized.
func (a *Accounts) Authenticate(ctx context.Context, token string) (model.User, error) {
	subject, err := a.tokens.Verify(token)
	if err != nil {
		a.logger.Debug(ctx, "token rejected", "error", err)
		return model.User{}, model.ErrUnauthorized
	}

	user, err := a.users.FindUser(ctx, subject)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.User{}, model.ErrUnauthorized
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user: %w", err)
	}
	if user.Disabled {
		return model.User{}, model.ErrUnauthorized
	}
	return user, nil
}
