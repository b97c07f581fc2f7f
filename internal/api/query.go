package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pagination reads page and limit query parameters, falling back to page 1
// and the endpoint's default page size.
func pagination(c *gin.Context, defaultLimit int) (page, limit int) {
	page = 1
	limit = defaultLimit

	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return page, limit
}
