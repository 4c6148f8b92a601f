package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/dexview/backend/internal/domain"
)

// Batch is one enrichment request: the filtered references produced by a
// query, tagged with the generation that produced them.
type Batch struct {
	Generation uint64
	Query      string
	Refs       []domain.Reference
}

// Batch results reported to a BatchObserver
const (
	BatchApplied = "applied"
	BatchStale   = "stale"
	BatchFailed  = "error"
)

// BatchObserver is notified once per completed enrichment batch with one of
// BatchApplied, BatchStale or BatchFailed
type BatchObserver interface {
	ObserveBatch(size int, elapsed time.Duration, result string)
}

// Browser is the list-and-filter view state for one browsing session.
//
// Every SetQuery bumps a generation counter. ReEnrich only replaces the
// displayed records when its batch still carries the latest generation, so a
// slow batch from a superseded query can never overwrite a newer one.
// Superseded batches are not cancelled; they finish and are discarded.
type Browser struct {
	mu         sync.Mutex
	refs       []domain.Reference
	query      string
	filtered   []domain.Reference
	displayed  []domain.Record
	generation uint64

	enricher *Enricher
	observer BatchObserver
}

// NewBrowser creates a browser over refs with an empty query. The displayed
// set starts empty until the batch from Pending is enriched.
func NewBrowser(refs []domain.Reference, enricher *Enricher, observer BatchObserver) *Browser {
	return &Browser{
		refs:     refs,
		filtered: FilterReferences(refs, ""),
		enricher: enricher,
		observer: observer,
	}
}

// SetQuery stores the query, recomputes the filtered references and returns
// the batch that must be enriched for them
func (b *Browser) SetQuery(query string) Batch {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.query = query
	b.filtered = FilterReferences(b.refs, query)
	b.generation++

	return b.pendingLocked()
}

// Pending returns the batch for the current filter without advancing the generation
func (b *Browser) Pending() Batch {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pendingLocked()
}

func (b *Browser) pendingLocked() Batch {
	refs := make([]domain.Reference, len(b.filtered))
	copy(refs, b.filtered)
	return Batch{
		Generation: b.generation,
		Query:      b.query,
		Refs:       refs,
	}
}

// ReEnrich fetches every record of batch in parallel and, if batch is still
// the latest, replaces the displayed records with the result. It reports
// whether the result was applied. Errors of a superseded batch are dropped.
func (b *Browser) ReEnrich(ctx context.Context, batch Batch) (bool, error) {
	start := time.Now()
	records, err := b.enricher.FetchAll(ctx, batch.Refs)

	b.mu.Lock()
	latest := batch.Generation == b.generation
	if latest && err == nil {
		b.displayed = records
	}
	b.mu.Unlock()

	if b.observer != nil {
		b.observer.ObserveBatch(len(batch.Refs), time.Since(start), batchResult(latest, err))
	}

	if !latest {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func batchResult(latest bool, err error) string {
	switch {
	case !latest:
		return BatchStale
	case err != nil:
		return BatchFailed
	default:
		return BatchApplied
	}
}

// Query returns the current query
func (b *Browser) Query() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.query
}

// Generation returns the generation of the most recent SetQuery
func (b *Browser) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.generation
}

// Total returns the size of the unfiltered reference list
func (b *Browser) Total() int {
	return len(b.refs)
}

// Filtered returns a copy of the current filtered references
func (b *Browser) Filtered() []domain.Reference {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Reference, len(b.filtered))
	copy(out, b.filtered)
	return out
}

// Displayed returns a copy of the records from the last applied batch
func (b *Browser) Displayed() []domain.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Record, len(b.displayed))
	copy(out, b.displayed)
	return out
}
