package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// pageParams reads page/limit from the query string. Out-of-range or
// unparsable values fall back to the defaults instead of erroring.
func pageParams(c *gin.Context, defaultLimit, maxLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}

	return page, limit, (page - 1) * limit
}
