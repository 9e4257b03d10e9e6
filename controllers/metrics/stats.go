package metrics

import (
	"net/http"

	"metric-forward/dao/gocache"
	"metric-forward/services/remote/moogsoft"

	"github.com/gin-gonic/gin"
)

// Stats 查询转发统计
func Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": http.StatusText(http.StatusOK),
		"data":    moogsoft.Stats(),
	})
}

// CacheResp ...
type CacheResp struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
	Count int         `json:"count"`
}

// Cache get cache by key
func Cache(c *gin.Context) {
	cache := new(CacheResp)
	cache.Key = c.Query("key")
	var found bool
	cache.Value, found = gocache.Get(cache.Key)
	cache.Count = gocache.Count()
	if !found {
		c.JSON(http.StatusOK, gin.H{
			"code":    http.StatusOK,
			"message": http.StatusText(http.StatusNotFound),
			"data":    cache,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": http.StatusText(http.StatusOK),
		"data":    cache,
	})
}
