package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"propflow/internal/shared/constants"
)

// PageRequest holds parsed pagination parameters.
type PageRequest struct {
	Page  int
	Limit int
}

// ParsePagination parses pagination parameters from the query string.
// Page defaults to 1; limit defaults to DefaultPageSize and is capped at
// MaxPageSize.
func ParsePagination(c *gin.Context) PageRequest {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	limit := parseQueryInt(c, "limit", constants.DefaultPageSize)
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	return PageRequest{Page: page, Limit: limit}
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, limit int) int {
	if total == 0 || limit == 0 {
		return 1
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages == 0 {
		return 1
	}
	return pages
}
