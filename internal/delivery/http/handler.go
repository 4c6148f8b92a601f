package http

import (
	"context"
	"net/http"

	"github.com/dexview/backend/internal/domain"
	"github.com/dexview/backend/internal/presenter"
	"github.com/dexview/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// CatalogUsecase is the slice of the catalog service the handlers need
type CatalogUsecase interface {
	Search(ctx context.Context, query string) (*usecase.SearchResult, error)
	GetRecord(ctx context.Context, id string) (*domain.Record, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog CatalogUsecase
	version string
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog CatalogUsecase, version string) *Handler {
	return &Handler{
		catalog: catalog,
		version: version,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "dexview",
		"version": h.version,
	})
}

// ListPage renders the filtered, enriched reference list as HTML
func (h *Handler) ListPage(c *gin.Context) {
	page, ok := h.search(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "list.tmpl", page)
}

// DetailPage renders one record as HTML
func (h *Handler) DetailPage(c *gin.Context) {
	detail, ok := h.detail(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "detail.tmpl", detail)
}

// ListRecords returns the list view as JSON
func (h *Handler) ListRecords(c *gin.Context) {
	page, ok := h.search(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetRecord returns the detail view of one record as JSON
func (h *Handler) GetRecord(c *gin.Context) {
	detail, ok := h.detail(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) search(c *gin.Context) (presenter.ListPage, bool) {
	query := c.Query("q")

	result, err := h.catalog.Search(c.Request.Context(), query)
	if err != nil {
		abortWithError(c, err)
		return presenter.ListPage{}, false
	}

	return presenter.NewListPage(query, result.Total, result.Records), true
}

func (h *Handler) detail(c *gin.Context) (presenter.Detail, bool) {
	record, err := h.catalog.GetRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return presenter.Detail{}, false
	}

	return presenter.NewDetail(*record), true
}

// abortWithError hands err to ErrorMiddleware and stops the chain
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
