package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestPageParams(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		page, limit, offset := pageParams(queryContext(t, "/vets"), 5, 100)
		assert.Equal(t, 1, page)
		assert.Equal(t, 5, limit)
		assert.Equal(t, 0, offset)
	})

	t.Run("explicit values", func(t *testing.T) {
		page, limit, offset := pageParams(queryContext(t, "/vets?page=3&limit=10"), 5, 100)
		assert.Equal(t, 3, page)
		assert.Equal(t, 10, limit)
		assert.Equal(t, 20, offset)
	})

	t.Run("limit above the cap falls back", func(t *testing.T) {
		_, limit, _ := pageParams(queryContext(t, "/vets?limit=5000"), 5, 100)
		assert.Equal(t, 5, limit)
	})

	t.Run("garbage falls back", func(t *testing.T) {
		page, limit, offset := pageParams(queryContext(t, "/vets?page=x&limit=-2"), 50, 200)
		assert.Equal(t, 1, page)
		assert.Equal(t, 50, limit)
		assert.Equal(t, 0, offset)
	})
}

func TestUintParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	id, ok := uintParam(c, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	for _, bad := range []string{"", "-1", "abc", "1.5"} {
		c.Params = gin.Params{{Key: "id", Value: bad}}
		_, ok := uintParam(c, "id")
		assert.False(t, ok, bad)
	}
}
