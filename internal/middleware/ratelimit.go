package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"zipway/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimit 限流中间件
//
// 配置了 Redis 时按「客户端 IP + 路由组」做固定窗口计数，
// 多实例部署共享同一份预算；未配置时降级为进程内的令牌桶。
// 路由组预算对应创建、重定向、管理三类流量
func RateLimit(redisClient *redis.Client, limitConfig *config.Limit) gin.HandlerFunc {
	if !limitConfig.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	// 进程内降级限流器
	fallback := rate.NewLimiter(rate.Limit(float64(limitConfig.Requests)/60.0), int(limitConfig.Burst))
	var mu sync.Mutex

	return func(c *gin.Context) {
		// 跳过特定路径
		for _, path := range limitConfig.SkipPaths {
			if strings.HasPrefix(c.Request.URL.Path, path) {
				c.Next()
				return
			}
		}

		if redisClient != nil {
			group, budget := classify(c.Request.URL.Path, limitConfig)
			window := time.Now().Unix() / 60
			key := fmt.Sprintf("ratelimit:%s:%s:%d", group, c.ClientIP(), window)

			count, err := redisClient.Incr(c.Request.Context(), key).Result()
			if err == nil {
				if count == 1 {
					redisClient.Expire(c.Request.Context(), key, time.Minute)
				}
				if count > budget {
					c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
					c.Abort()
					return
				}
				c.Next()
				return
			}
			// Redis 故障时不拦截请求，退回进程内限流
			zap.S().Warnf("限流计数失败，降级为进程内限流: %v", err)
		}

		mu.Lock()
		allowed := fallback.Allow()
		mu.Unlock()
		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// classify 按路径划分路由组并返回对应预算
func classify(path string, limitConfig *config.Limit) (string, int64) {
	switch {
	case path == "/shorten":
		return "shorten", pick(limitConfig.Shorten, limitConfig.Requests)
	case strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/auth"):
		return "admin", pick(limitConfig.Admin, limitConfig.Requests)
	default:
		// 其余流量基本都是短码重定向
		return "redirect", pick(limitConfig.Redirect, limitConfig.Requests)
	}
}

func pick(budget, general int64) int64 {
	if budget > 0 {
		return budget
	}
	return general
}
