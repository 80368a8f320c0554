package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"zipway/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg *config.Limit) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(nil, cfg))
	router.GET("/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func get(router *gin.Engine, path string) int {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

// TestRateLimit_Disabled 未启用时不拦截任何请求
func TestRateLimit_Disabled(t *testing.T) {
	router := newLimitedRouter(&config.Limit{Enabled: false})
	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, get(router, "/abc"))
	}
}

// TestRateLimit_MemoryFallback 未配置 Redis 时使用进程内令牌桶
func TestRateLimit_MemoryFallback(t *testing.T) {
	// 预算极小：突发 2 个请求后立刻触发限流
	router := newLimitedRouter(&config.Limit{Enabled: true, Requests: 1, Burst: 2})

	assert.Equal(t, http.StatusOK, get(router, "/abc"))
	assert.Equal(t, http.StatusOK, get(router, "/abc"))
	assert.Equal(t, http.StatusTooManyRequests, get(router, "/abc"))
}

// TestRateLimit_SkipPaths 跳过路径不消耗预算
func TestRateLimit_SkipPaths(t *testing.T) {
	router := newLimitedRouter(&config.Limit{
		Enabled:   true,
		Requests:  1,
		Burst:     1,
		SkipPaths: []string{"/ping"},
	})

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, get(router, "/ping"))
	}
	assert.Equal(t, http.StatusOK, get(router, "/abc"))
	assert.Equal(t, http.StatusTooManyRequests, get(router, "/abc"))
}
