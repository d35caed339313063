package account

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gauravbalpande/final-winner/internal/account/repo"
	"github.com/gauravbalpande/final-winner/internal/auth"
)

// InitialBalance is credited to every freshly registered wallet.
const InitialBalance = 1000.0

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Repo is the persistence surface the account service needs.
type Repo interface {
	GetByUsername(ctx context.Context, username string) (*repo.User, error)
	GetByEmail(ctx context.Context, email string) (*repo.User, error)
	CreateWithWallet(ctx context.Context, u *repo.User, initialBalance float64) error
}

// Service handles registration and login.
type Service struct {
	log    *zap.Logger
	repo   Repo
	tokens *auth.Tokens
}

func NewService(log *zap.Logger, r Repo, tokens *auth.Tokens) *Service {
	return &Service{log: log, repo: r, tokens: tokens}
}

// Register creates a user and its wallet. Username and email must both be
// unused.
func (s *Service) Register(ctx context.Context, username, email, password string) (*repo.User, error) {
	if existing, err := s.repo.GetByUsername(ctx, username); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if existing != nil {
		return nil, ErrUsernameTaken
	}

	if existing, err := s.repo.GetByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &repo.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.CreateWithWallet(ctx, u, InitialBalance); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", zap.String("user_id", u.ID), zap.String("username", username))
	return u, nil
}

// dummyHash keeps login timing flat when the username does not exist.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// Login verifies credentials and issues a bearer token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*repo.User, string, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("fetch user: %w", err)
	}
	if u == nil {
		_ = auth.CheckPassword(password, dummyHash)
		return nil, "", ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, u.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("user logged in", zap.String("user_id", u.ID))
	return u, token, nil
}
