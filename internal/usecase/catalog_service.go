package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dexview/backend/internal/domain"
	"github.com/rs/zerolog"
)

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	ListLimit         int
	EnrichConcurrency int
}

// CatalogService loads references, filters and enriches them, and fetches
// single records for the detail view. It keeps no state between calls.
type CatalogService struct {
	client    domain.CatalogClient
	enricher  *Enricher
	observer  BatchObserver
	listLimit int
	logger    zerolog.Logger
}

// SearchResult is one stateless pass of the list view: the full list was
// fetched, filtered by Query and every match enriched.
type SearchResult struct {
	Query    string             `json:"query"`
	Total    int                `json:"total"`
	Filtered []domain.Reference `json:"filtered"`
	Records  []domain.Record    `json:"records"`
}

// NewCatalogService creates a new catalog service with dependencies
func NewCatalogService(
	client domain.CatalogClient,
	observer BatchObserver,
	logger zerolog.Logger,
	config CatalogServiceConfig,
) *CatalogService {
	return &CatalogService{
		client:    client,
		enricher:  NewEnricher(client, config.EnrichConcurrency),
		observer:  observer,
		listLimit: config.ListLimit,
		logger:    logger.With().Str("component", "catalog").Logger(),
	}
}

// ListReferences fetches the reference list from the catalog
func (s *CatalogService) ListReferences(ctx context.Context) ([]domain.Reference, error) {
	refs, err := s.client.ListReferences(ctx, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}
	return refs, nil
}

// Search fetches the reference list, filters it by query and enriches every match.
// Flow: list -> filter -> parallel fetch -> return
func (s *CatalogService) Search(ctx context.Context, query string) (*SearchResult, error) {
	refs, err := s.ListReferences(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterReferences(refs, query)

	start := time.Now()
	records, err := s.enricher.FetchAll(ctx, filtered)
	if s.observer != nil {
		s.observer.ObserveBatch(len(filtered), time.Since(start), batchResult(true, err))
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("query", query).
		Int("total", len(refs)).
		Int("matched", len(filtered)).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")

	return &SearchResult{
		Query:    query,
		Total:    len(refs),
		Filtered: filtered,
		Records:  records,
	}, nil
}

// GetRecord fetches the full record for one identifier
func (s *CatalogService) GetRecord(ctx context.Context, id string) (*domain.Record, error) {
	if id == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.client.GetRecord(ctx, id)
}

// NewBrowser loads the reference list and returns a browsing session over it
func (s *CatalogService) NewBrowser(ctx context.Context) (*Browser, error) {
	refs, err := s.ListReferences(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("references", len(refs)).Msg("browser session loaded")
	return NewBrowser(refs, s.enricher, s.observer), nil
}
