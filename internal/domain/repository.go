package domain

import "context"

// CatalogClient defines the interface for interacting with the upstream catalog API
type CatalogClient interface {
	ListReferences(ctx context.Context, limit int) ([]Reference, error)
	GetRecord(ctx context.Context, id string) (*Record, error)
	GetRecordByURL(ctx context.Context, url string) (*Record, error)
}

// RecordFetcher fetches the full record behind a reference
type RecordFetcher interface {
	GetRecordByURL(ctx context.Context, url string) (*Record, error)
}
