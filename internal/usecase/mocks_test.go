package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dexview/backend/internal/domain"
)

// MockCatalogClient is a mock implementation of domain.CatalogClient
type MockCatalogClient struct {
	mu        sync.Mutex
	refs      []domain.Reference
	records   map[string]*domain.Record
	listError error
	urlErrors map[string]error
	gates     map[string]chan struct{}
	calls     map[string]int
	inFlight  int
	maxFlight int
}

func NewMockCatalogClient(names ...string) *MockCatalogClient {
	m := &MockCatalogClient{
		records:   make(map[string]*domain.Record),
		urlErrors: make(map[string]error),
		gates:     make(map[string]chan struct{}),
		calls:     make(map[string]int),
	}
	for i, name := range names {
		url := fmt.Sprintf("https://pokeapi.test/pokemon/%d/", i+1)
		m.refs = append(m.refs, domain.Reference{Name: name, URL: url})
		m.records[url] = &domain.Record{ID: i + 1, Name: name, Types: []string{"normal"}}
	}
	return m
}

func (m *MockCatalogClient) ListReferences(ctx context.Context, limit int) ([]domain.Reference, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.refs, nil
}

func (m *MockCatalogClient) GetRecord(ctx context.Context, id string) (*domain.Record, error) {
	return m.GetRecordByURL(ctx, "https://pokeapi.test/pokemon/"+id+"/")
}

func (m *MockCatalogClient) GetRecordByURL(ctx context.Context, url string) (*domain.Record, error) {
	m.mu.Lock()
	m.calls[url]++
	m.inFlight++
	if m.inFlight > m.maxFlight {
		m.maxFlight = m.inFlight
	}
	gate := m.gates[url]
	err := m.urlErrors[url]
	record := m.records[url]
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inFlight--
		m.mu.Unlock()
	}()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	} else {
		// Let sibling fetches overlap so concurrency is observable
		time.Sleep(2 * time.Millisecond)
	}

	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	copied := *record
	return &copied, nil
}

// gate makes fetches of url block until the returned channel is closed
func (m *MockCatalogClient) gate(url string) chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan struct{})
	m.gates[url] = ch
	return ch
}

func (m *MockCatalogClient) callCount(url string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[url]
}

// MockBatchObserver records batch notifications
type MockBatchObserver struct {
	mu      sync.Mutex
	sizes   []int
	results []string
}

func (o *MockBatchObserver) ObserveBatch(size int, elapsed time.Duration, result string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sizes = append(o.sizes, size)
	o.results = append(o.results, result)
}

func names(records []domain.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func refNames(refs []domain.Reference) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}
