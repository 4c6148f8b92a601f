package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/dexview/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnricher_FetchAll_PreservesOrder(t *testing.T) {
	client := NewMockCatalogClient("bulbasaur", "ivysaur", "venusaur", "charmander")
	enricher := NewEnricher(client, 0)

	// Reverse order on input must come back reversed
	refs := []domain.Reference{client.refs[3], client.refs[1], client.refs[0]}

	records, err := enricher.FetchAll(context.Background(), refs)

	require.NoError(t, err)
	assert.Equal(t, []string{"charmander", "ivysaur", "bulbasaur"}, names(records))
}

func TestEnricher_FetchAll_Empty(t *testing.T) {
	enricher := NewEnricher(NewMockCatalogClient(), 0)

	records, err := enricher.FetchAll(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestEnricher_FetchAll_FailsWholeBatch(t *testing.T) {
	client := NewMockCatalogClient("bulbasaur", "ivysaur", "venusaur")
	client.urlErrors[client.refs[1].URL] = domain.ErrUpstreamStatus
	enricher := NewEnricher(client, 0)

	records, err := enricher.FetchAll(context.Background(), client.refs)

	assert.Nil(t, records)
	assert.ErrorIs(t, err, domain.ErrUpstreamStatus)
	assert.Contains(t, err.Error(), "ivysaur")
}

func TestEnricher_FetchAll_NoDeduplication(t *testing.T) {
	client := NewMockCatalogClient("pikachu")
	enricher := NewEnricher(client, 0)
	refs := []domain.Reference{client.refs[0], client.refs[0], client.refs[0]}

	records, err := enricher.FetchAll(context.Background(), refs)

	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 3, client.callCount(client.refs[0].URL))
}

func TestEnricher_FetchAll_ConcurrencyLimit(t *testing.T) {
	client := NewMockCatalogClient("a", "b", "c", "d", "e", "f", "g", "h")
	enricher := NewEnricher(client, 2)

	_, err := enricher.FetchAll(context.Background(), client.refs)

	require.NoError(t, err)
	assert.LessOrEqual(t, client.maxFlight, 2)
}

func TestEnricher_FetchAll_ContextCancelled(t *testing.T) {
	client := NewMockCatalogClient("bulbasaur")
	client.gate(client.refs[0].URL)
	enricher := NewEnricher(client, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := enricher.FetchAll(ctx, client.refs)

	assert.True(t, errors.Is(err, context.Canceled))
}
