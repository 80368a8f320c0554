package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config Redis 连接配置
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewClient 创建 Redis 客户端
// Redis 在本服务中只承担限流计数，属于可选依赖：
// 未配置 Host 时返回 nil 客户端，调用方降级到进程内限流
func NewClient(cfg *Config) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, nil
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    20,
		DialTimeout: 3 * time.Second,
	})

	// 启动时确认连通性，失败时立刻暴露配置问题
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis连接失败: %v", err)
	}

	return rdb, nil
}
