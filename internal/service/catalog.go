package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"livery-points/internal/config"
	"livery-points/internal/model"
	"livery-points/internal/repository"

	"github.com/rs/zerolog"
)

type CatalogServiceImpl struct {
	liveryRepo repository.LiveryRepository
	feedURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewCatalogService(liveryRepo repository.LiveryRepository, cfg config.CatalogConfig, logger zerolog.Logger) CatalogService {
	return &CatalogServiceImpl{
		liveryRepo: liveryRepo,
		feedURL:    cfg.FeedURL,
		httpClient: &http.Client{Timeout: cfg.FeedTimeout},
		logger:     logger,
	}
}

// Refresh upserts every well-formed item in the snapshot and returns the count
// processed. Entries without an id or name are skipped, not fatal. Nothing is
// evicted: an item missing from this snapshot stays cached from the last feed
// that carried it.
func (s *CatalogServiceImpl) Refresh(ctx context.Context, snapshot model.CatalogSnapshot) (int, error) {
	count := 0
	skipped := 0
	for carCode, car := range snapshot {
		carName := car.CarName
		if carName == "" {
			carName = "Unknown"
		}
		for _, entry := range car.Liveries {
			if entry.ID == "" || entry.Name == "" {
				skipped++
				continue
			}
			item := &model.Livery{
				LiveryID:   entry.ID,
				LiveryName: entry.Name,
				CarCode:    carCode,
				CarName:    carName,
			}
			if err := s.liveryRepo.Upsert(ctx, item); err != nil {
				return count, fmt.Errorf("upsert livery %s: %w", entry.ID, err)
			}
			count++
		}
	}

	s.logger.Info().Int("processed", count).Int("skipped", skipped).Msg("catalog refreshed")
	return count, nil
}

// RefreshFromFeed fetches the remote catalog snapshot and ingests it.
func (s *CatalogServiceImpl) RefreshFromFeed(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return 0, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch catalog feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("catalog feed returned HTTP %d", resp.StatusCode)
	}

	var snapshot model.CatalogSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return 0, fmt.Errorf("decode catalog feed: %w", err)
	}

	return s.Refresh(ctx, snapshot)
}

func (s *CatalogServiceImpl) ListGroupedByCar(ctx context.Context) (map[string]*model.CarGroup, error) {
	grouped, err := s.liveryRepo.ListGroupedByCar(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return grouped, nil
}

func (s *CatalogServiceImpl) GetItem(ctx context.Context, liveryID string) (*model.Livery, error) {
	return s.liveryRepo.Get(ctx, liveryID)
}
