package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dan9191/credit-simulator/internal/models"
	"github.com/Dan9191/credit-simulator/internal/repository"
)

const referenceRateTTL = 24 * time.Hour

// ErrNoRateSource is returned when no reference rate source is configured.
var ErrNoRateSource = errors.New("reference rate source not configured")

func (s *Service) referenceRateKey() string {
	return fmt.Sprintf("reference_rate:%d", s.config.BCBSeries)
}

// ReferenceRate returns the cached reference rate, fetching it on a miss.
func (s *Service) ReferenceRate(ctx context.Context) (models.ReferenceRate, error) {
	raw, err := s.cache.Get(ctx, s.referenceRateKey())
	if err == nil {
		var rate models.ReferenceRate
		if err := json.Unmarshal([]byte(raw), &rate); err == nil {
			return rate, nil
		}
		s.log.Warnf("Discarding unreadable cached reference rate: %q", raw)
	} else if !errors.Is(err, repository.ErrCacheMiss) {
		s.log.WithError(err).Warn("Reference rate cache unavailable")
	}
	return s.RefreshReferenceRate(ctx)
}

// RefreshReferenceRate fetches the reference rate and stores it in the cache.
func (s *Service) RefreshReferenceRate(ctx context.Context) (models.ReferenceRate, error) {
	if s.source == nil {
		return models.ReferenceRate{}, ErrNoRateSource
	}

	rate, err := s.source.GetLatestRate(ctx)
	if err != nil {
		return models.ReferenceRate{}, fmt.Errorf("failed to fetch reference rate: %w", err)
	}

	raw, err := json.Marshal(rate)
	if err != nil {
		return models.ReferenceRate{}, fmt.Errorf("failed to encode reference rate: %w", err)
	}
	if err := s.cache.Set(ctx, s.referenceRateKey(), string(raw), referenceRateTTL); err != nil {
		s.log.WithError(err).Warn("Failed to cache reference rate")
	}
	return rate, nil
}
