package usecase

import (
	"context"
	"fmt"

	"github.com/dexview/backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Enricher resolves references into full records
type Enricher struct {
	fetcher     domain.RecordFetcher
	concurrency int
}

// NewEnricher creates an enricher. A non-positive concurrency issues every
// fetch of a batch at once.
func NewEnricher(fetcher domain.RecordFetcher, concurrency int) *Enricher {
	return &Enricher{
		fetcher:     fetcher,
		concurrency: concurrency,
	}
}

// FetchAll fetches one record per reference concurrently. The result is
// positioned like refs. The first failure fails the batch; there is no
// retry and identical URLs are fetched once per occurrence.
func (e *Enricher) FetchAll(ctx context.Context, refs []domain.Reference) ([]domain.Record, error) {
	records := make([]domain.Record, len(refs))
	if len(refs) == 0 {
		return records, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if e.concurrency > 0 {
		g.SetLimit(e.concurrency)
	}

	for i, ref := range refs {
		g.Go(func() error {
			record, err := e.fetcher.GetRecordByURL(gctx, ref.URL)
			if err != nil {
				return fmt.Errorf("enrich %q: %w", ref.Name, err)
			}
			records[i] = *record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}
