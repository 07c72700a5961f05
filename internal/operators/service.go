package operators

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown accounts and wrong
// passwords so callers cannot distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service encapsulates operator account logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Authenticate checks email/password against the stored bcrypt hash and
// returns the operator on success.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Operator, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	op, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return op, nil
}

// CreateOrUpdate hashes the given password and upserts the account by email.
// Used by the seed command and, in SSO deployments, to provision accounts
// from verified OIDC claims (with an empty password).
func (s *Service) CreateOrUpdate(ctx context.Context, email, name, password string) (*Operator, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	op := &Operator{Email: email, Name: name}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		op.PasswordHash = string(hash)
	}
	return s.repo.Upsert(ctx, op)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Operator, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*Operator, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}
