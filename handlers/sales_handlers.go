package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"sales-dashboard/models"
	"sales-dashboard/query"
	"sales-dashboard/store"
)

// Handler serves the sales query endpoints against an injected record store.
type Handler struct {
	store *store.Store
}

// New creates a Handler over the given store.
func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

// GetSales handles GET /api/sales: the filtered, sorted, paginated query.
func (h *Handler) GetSales(c *fiber.Ctx) error {
	params := paramsFromCtx(c)
	result := query.Process(h.store.Records(), params)
	log.Printf("[SALES] page=%d pageSize=%d matched=%d of %d records",
		result.Pagination.Page, result.Pagination.PageSize, result.Pagination.TotalItems, h.store.Count())
	return c.JSON(result)
}

// GetFilterOptions handles GET /api/sales/filter-options: the facet values
// still applicable under the currently active filters.
func (h *Handler) GetFilterOptions(c *fiber.Ctx) error {
	params := paramsFromCtx(c)
	return c.JSON(query.Facets(h.store.Records(), params))
}

// Health reports service status and how many records are loaded.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":        "ok",
		"recordsLoaded": h.store.Count(),
	})
}

// paramsFromCtx adapts the HTTP query string into QueryParams. Multi-valued
// keys accept both repeated parameters and comma-joined strings; both forms
// collapse to the same list here, at the boundary.
func paramsFromCtx(c *fiber.Ctx) models.QueryParams {
	return models.QueryParams{
		Search:         c.Query("search"),
		Regions:        queryList(c, "regions"),
		Genders:        queryList(c, "genders"),
		Categories:     queryList(c, "categories"),
		Tags:           queryList(c, "tags"),
		PaymentMethods: queryList(c, "paymentMethods"),
		MinAge:         c.Query("minAge"),
		MaxAge:         c.Query("maxAge"),
		StartDate:      c.Query("startDate"),
		EndDate:        c.Query("endDate"),
		SortBy:         c.Query("sortBy"),
		SortOrder:      c.Query("sortOrder"),
		Page:           c.Query("page"),
		PageSize:       c.Query("pageSize"),
	}
}

func queryList(c *fiber.Ctx, key string) []string {
	raw := c.Context().QueryArgs().PeekMulti(key)
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		values = append(values, string(v))
	}
	return query.NormalizeList(values)
}
