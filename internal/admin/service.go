package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service interface {
	Login(ctx context.Context, username, password string) (*Admin, error)
	Bootstrap(ctx context.Context, username, password string) error
	Dashboard(ctx context.Context) (*Dashboard, error)
	ListOrders(ctx context.Context) ([]OrderReport, error)
	ListCustomers(ctx context.Context) ([]CustomerRecord, error)
}

type service struct {
	repo      Repository
	reporting ReportingRepository
}

func NewService(repo Repository, reporting ReportingRepository) Service {
	return &service{repo: repo, reporting: reporting}
}

func (s *service) Login(ctx context.Context, username, password string) (*Admin, error) {
	a, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service: failed to fetch admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a, nil
}

// Bootstrap creates the configured admin account on first start. An empty
// password disables bootstrapping; an existing account is left untouched.
func (s *service) Bootstrap(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		log.Info().Msg("service: admin bootstrap skipped, no credentials configured")
		return nil
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("service: failed to check for existing admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: failed to hash admin password: %w", err)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("service: failed to generate admin id: %w", err)
	}

	a := &Admin{
		ID:           id,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return fmt.Errorf("service: failed to bootstrap admin: %w", err)
	}

	log.Info().Str("username", username).Msg("service: admin account bootstrapped")
	return nil
}

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	d, err := s.reporting.Dashboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load dashboard: %w", err)
	}
	return d, nil
}

func (s *service) ListOrders(ctx context.Context) ([]OrderReport, error) {
	orders, err := s.reporting.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *service) ListCustomers(ctx context.Context) ([]CustomerRecord, error) {
	customers, err := s.reporting.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list customers: %w", err)
	}
	return customers, nil
}
