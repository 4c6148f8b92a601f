package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexview/backend/internal/infrastructure/metrics"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd("1.2.3")

	assert.Equal(t, "dexview", root.Use)
	assert.Equal(t, "1.2.3", root.Version)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "browse")

	browse, _, err := root.Find([]string{"browse"})
	require.NoError(t, err)
	flag := browse.Flags().Lookup("query")
	require.NotNil(t, flag)
	assert.Equal(t, "q", flag.Shorthand)
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads the file named by --config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dexview.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pokeapi:\n  list_limit: 151\n"), 0o600))

		cfg, err := loadConfig(&globalFlags{configPath: path})
		require.NoError(t, err)
		assert.Equal(t, 151, cfg.PokeAPI.ListLimit)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("log level flag overrides config", func(t *testing.T) {
		cfg, err := loadConfig(&globalFlags{logLevel: "debug"})
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		_, err := loadConfig(&globalFlags{logLevel: "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--log-level")
	})

	t.Run("missing config file fails", func(t *testing.T) {
		_, err := loadConfig(&globalFlags{configPath: filepath.Join(t.TempDir(), "absent.yaml")})
		require.Error(t, err)
	})
}

func TestNewCatalogService_WiresObservers(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/pokemon":
			fmt.Fprintf(w, `{"count":1,"results":[{"name":"pikachu","url":"%s/pokemon/25/"}]}`, "http://"+r.Host)
		case "/pokemon/25/":
			fmt.Fprint(w, `{"id":25,"name":"pikachu","height":4,"weight":60,"types":[{"slot":1,"type":{"name":"electric"}}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer upstream.Close()

	t.Setenv("DEXVIEW_POKEAPI_BASE_URL", upstream.URL)
	cfg, err := loadConfig(&globalFlags{})
	require.NoError(t, err)

	recorder := metrics.NewRecorder()
	service := newCatalogService(cfg, zerolog.Nop(), recorder)

	result, err := service.Search(context.Background(), "PIKA")
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "pikachu", result.Records[0].Name)

	count, err := testutil.GatherAndCount(recorder.Registry(), "dexview_upstream_requests_total", "dexview_enrich_batches_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "list and detail outcomes plus one batch result")
}

func TestNewCatalogService_NilRecorder(t *testing.T) {
	cfg, err := loadConfig(&globalFlags{})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_ = newCatalogService(cfg, zerolog.Nop(), nil)
	})
}

func TestServe_StopsOnCancel(t *testing.T) {
	t.Setenv("DEXVIEW_SERVER_PORT", "0")
	t.Setenv("DEXVIEW_LOGGING_FORMAT", "json")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stderr bytes.Buffer
	root := NewRootCmd("test")
	root.SetErr(&stderr)
	root.SetOut(&stderr)
	root.SetArgs([]string{"serve"})

	require.NoError(t, root.ExecuteContext(ctx))
	assert.Contains(t, stderr.String(), "starting dexview")
	assert.Contains(t, stderr.String(), "shutting down")
}

func TestServe_RejectsArgs(t *testing.T) {
	root := NewRootCmd("test")
	root.SetErr(&bytes.Buffer{})
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"serve", "extra"})

	assert.Error(t, root.Execute())
}
