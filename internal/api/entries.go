package api

import (
	"errors"   // Error classification
	"net/http" // HTTP status codes
	"net/url"  // Query normalization for cache keys
	"sort"     // Deterministic cache keys
	"strings"  // Cache key assembly

	"loyalty_service/internal/domain" // Domain models
	"loyalty_service/internal/query"  // Validator, builder and pager
	"loyalty_service/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// EntriesHandler serves the filtered, sorted, paginated entry listing
type EntriesHandler struct {
	db    *gorm.DB     // Backing store
	cache *utils.Cache // Response cache, nil when disabled
}

// NewEntriesHandler wires the handler; cache may be nil
func NewEntriesHandler(db *gorm.DB, cache *utils.Cache) *EntriesHandler {
	return &EntriesHandler{db: db, cache: cache}
}

// List handles GET /entries. Stages: validate parameters, build the
// query, paginate, serialize; each stage's failure maps to a response
// and nothing from the store leaks to the caller.
func (h *EntriesHandler) List(c *gin.Context) {
	values := c.Request.URL.Query()
	logrus.WithField("params", values.Encode()).Info("incoming request to entries endpoint")

	ctx := c.Request.Context()
	cacheKey := entriesCacheKey(values)
	var cached ListResponse
	if found, err := h.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		c.JSON(http.StatusOK, cached)
		return
	}

	params, err := query.ParseParams(values)
	if err != nil {
		h.fail(c, err)
		return
	}

	q, err := query.Build(h.db, params)
	if err != nil {
		h.fail(c, err)
		return
	}

	var users []domain.AppUser
	info, err := query.Paginate(q, params.Page, params.PageSize, &users)
	if err != nil {
		h.fail(c, err)
		return
	}

	results, err := serializePage(h.db, users)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := ListResponse{
		Page:       info.Page,
		TotalPages: info.TotalPages,
		TotalItems: info.TotalItems,
		Results:    results,
	}
	_ = h.cache.Set(ctx, cacheKey, resp)
	c.JSON(http.StatusOK, resp)
}

// fail maps a stage failure to the HTTP response. Serialization
// faults are internal; everything else is a caller problem.
func (h *EntriesHandler) fail(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, ErrSerialization) {
		status = http.StatusInternalServerError
	}
	logrus.WithError(err).Error("entries request failed")
	c.JSON(status, gin.H{"error": err.Error()})
}

// entriesCacheKey derives a deterministic cache key from the query
// string, insensitive to parameter order
func entriesCacheKey(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+values.Get(k))
	}
	return "entries:" + strings.Join(parts, ":")
}
