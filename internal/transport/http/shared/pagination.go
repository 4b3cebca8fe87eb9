package shared

import (
	"net/http"
	"strconv"

	"staffhub/internal/transport/http/api"
)

type Page struct {
	Number int
	Limit  int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// ParsePage reads 1-indexed `page` and `limit` query params with sane
// bounds; junk values fall back to the defaults.
func ParsePage(r *http.Request, defaultLimit, maxLimit int) Page {
	page := Page{Number: 1, Limit: defaultLimit}
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page.Number = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page.Limit = v
		}
	}
	if maxLimit > 0 && page.Limit > maxLimit {
		page.Limit = maxLimit
	}
	return page
}

// Meta builds the response pagination block for a total row count.
func (p Page) Meta(total int) api.Pagination {
	pages := 0
	if total > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return api.Pagination{Page: p.Number, Limit: p.Limit, Total: total, Pages: pages}
}
