package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Dan9191/credit-simulator/internal/config"
	"github.com/Dan9191/credit-simulator/internal/models"
	"github.com/Dan9191/credit-simulator/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// RateSource provides the latest reference rate.
type RateSource interface {
	GetLatestRate(ctx context.Context) (models.ReferenceRate, error)
}

// Mailer delivers simulation summaries.
type Mailer interface {
	SendSimulationSummary(to, name string, summary models.SimulationResponse) error
}

// Service handles business logic
type Service struct {
	rates  repository.RateRepository
	cache  repository.CacheRepository
	source RateSource
	mailer Mailer
	log    *logrus.Logger
	config *config.Config
	now    func() time.Time
}

// NewService initializes a new service. source and mailer may be nil.
func NewService(
	rates repository.RateRepository,
	cache repository.CacheRepository,
	source RateSource,
	mailer Mailer,
	log *logrus.Logger,
	cfg *config.Config,
) *Service {
	return &Service{
		rates:  rates,
		cache:  cache,
		source: source,
		mailer: mailer,
		log:    log,
		config: cfg,
		now:    time.Now,
	}
}

// Categories returns the rate table
func (s *Service) Categories(ctx context.Context) ([]models.RateCategory, error) {
	categories, err := s.rates.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return categories, nil
}

// ratePercent looks up the monthly rate, in percent rounded to two decimals,
// for a category and restriction type. An empty restriction means none.
func (s *Service) ratePercent(ctx context.Context, category string, restriction models.Restriction) (float64, error) {
	c, err := s.rates.FindCategory(ctx, category)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return 0, fmt.Errorf("%w: %w", ErrUnknownCategory, err)
	}
	if err != nil {
		return 0, err
	}

	var percent float64
	switch restriction {
	case models.WithoutRestriction, "":
		percent = c.Unrestricted
	case models.WithRestriction:
		percent = c.Restricted
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRestriction, restriction)
	}
	return math.Round(percent*100) / 100, nil
}

// Login authenticates the operator and returns a JWT token
func (s *Service) Login(email, password string) (models.LoginResponse, error) {
	if s.config.OperatorEmail == "" || s.config.OperatorPasswordHash == "" || email != s.config.OperatorEmail {
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(s.config.OperatorPasswordHash), []byte(password)); err != nil {
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	// Generate JWT
	expiresAt := s.now().Add(24 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("Operator logged in: %s", email)
	return models.LoginResponse{Token: tokenString, ExpiresAt: expiresAt.UTC().Format(time.RFC3339)}, nil
}
