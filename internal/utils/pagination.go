package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hometrack/hometrack-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// GetPaginationParams extracts and validates pagination parameters from the
// request. Lists are unpaginated unless the client sends page or limit, so
// ok is false when neither is present.
func GetPaginationParams(c *gin.Context) (PaginationParams, bool) {
	pageValue, hasPage := c.GetQuery("page")
	limitValue, hasLimit := c.GetQuery("limit")
	if !hasPage && !hasLimit {
		return PaginationParams{}, false
	}

	page, _ := strconv.Atoi(pageValue)
	limit, _ := strconv.Atoi(limitValue)

	if page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	offset := (page - 1) * limit

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}, true
}
