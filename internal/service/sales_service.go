package service

import (
	"context"
	"fmt"

	"resto-hub/internal/model"
	"resto-hub/internal/repository"

	"github.com/rs/zerolog"
)

const (
	defaultTopSellersLimit = 5
	maxTopSellersLimit     = 50
)

// salesService implements SalesService.
type salesService struct {
	salesRepo repository.SalesRepository
	logger    zerolog.Logger
}

// NewSalesService creates a new sales service.
func NewSalesService(salesRepo repository.SalesRepository, logger zerolog.Logger) SalesService {
	return &salesService{
		salesRepo: salesRepo,
		logger:    logger.With().Str("service", "sales").Logger(),
	}
}

// TopSellers returns up to limit ranked sellers across non-cancelled
// orders, computed fresh from the order store on every call.
func (s *salesService) TopSellers(ctx context.Context, limit int) ([]model.TopSeller, error) {
	if limit <= 0 {
		limit = defaultTopSellersLimit
	}
	if limit > maxTopSellersLimit {
		limit = maxTopSellersLimit
	}

	sellers, err := s.salesRepo.TopSellers(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Int("limit", limit).Msg("failed to get top sellers")
		return nil, fmt.Errorf("failed to get top sellers: %w", err)
	}

	if sellers == nil {
		sellers = []model.TopSeller{}
	}

	s.logger.Debug().Int("limit", limit).Int("count", len(sellers)).Msg("computed top sellers")

	return sellers, nil
}
