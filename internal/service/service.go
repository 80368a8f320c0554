// Package service 编排短码生成、校验与存储，实现创建和解析的核心流程
package service

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"zipway/internal/alias"
	"zipway/internal/model"
	"zipway/internal/shortid"
	"zipway/internal/store"

	"go.uber.org/zap"
)

const (
	// DefaultMaxRetries 随机短码的默认重试次数
	DefaultMaxRetries = 5
	// DefaultListLimit / MaxListLimit 列表分页的默认与上限
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Shortener 短链接核心服务
// 不在进程内缓存任何链接状态，唯一性和计数的正确性完全交给存储层约束，
// 多实例部署共享同一数据库时行为不变
type Shortener struct {
	store      store.LinkStore
	generator  *shortid.Generator
	validator  *alias.Validator
	maxRetries int
	logger     *zap.SugaredLogger
}

// NewShortener 创建核心服务实例
func NewShortener(st store.LinkStore, gen *shortid.Generator, val *alias.Validator, maxRetries int, logger *zap.SugaredLogger) *Shortener {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Shortener{
		store:      st,
		generator:  gen,
		validator:  val,
		maxRetries: maxRetries,
		logger:     logger.Named("shortener"),
	}
}

// Create 为目标地址创建短链接
//
// customAlias 非空时走自定义短码路径：校验失败原样返回 ValidationError，
// 短码被占用返回 ErrAliasTaken，绝不偷偷换一个名字重试。
// customAlias 为空时在重试预算内循环生成随机短码，由存储层的原子插入裁决冲突。
// 任何失败路径都不会留下半写入的记录
func (s *Shortener) Create(ctx context.Context, targetURL, customAlias string) (*model.Link, error) {
	if !isValidTargetURL(targetURL) {
		return nil, ErrInvalidURL
	}

	if customAlias != "" {
		id, err := s.validator.Validate(customAlias)
		if err != nil {
			return nil, err
		}
		link, err := s.store.InsertIfAbsent(ctx, id, targetURL)
		if err != nil {
			if errors.Is(err, store.ErrExists) {
				return nil, ErrAliasTaken
			}
			return nil, err
		}
		return link, nil
	}

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		id := s.generator.Code()
		// 随机结果撞上保留字或纯数字时跳过，保证发出的短码同样满足别名规则
		if _, err := s.validator.Validate(id); err != nil {
			continue
		}

		link, err := s.store.InsertIfAbsent(ctx, id, targetURL)
		if err == nil {
			return link, nil
		}
		if errors.Is(err, store.ErrExists) {
			s.logger.Debugw("随机短码冲突，重新生成", "id", id, "attempt", attempt)
			continue
		}
		return nil, err
	}

	// 重试耗尽说明短码空间或生成长度已经不够用，记运维告警
	s.logger.Warnw("随机短码重试耗尽", "retries", s.maxRetries, "length", s.generator.Length())
	return nil, ErrGenerationExhausted
}

// Resolve 解析短码并记一次点击
// 查找与计数是同一次存储操作，不存在先读后写的竞态窗口
func (s *Shortener) Resolve(ctx context.Context, id string) (string, int64, error) {
	target, clicks, err := s.store.GetAndIncrement(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", 0, ErrNotFound
		}
		return "", 0, err
	}
	return target, clicks, nil
}

// List 按创建时间倒序分页返回链接
func (s *Shortener) List(ctx context.Context, limit, offset int) ([]model.Link, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.List(ctx, limit, offset)
}

// Stats 汇总统计结果
type Stats struct {
	TotalLinks  int64        `json:"total_links"`
	TotalClicks int64        `json:"total_clicks"`
	TopURLs     []model.Link `json:"top_urls"`
}

// GetStats 返回总量与最热门的链接
func (s *Shortener) GetStats(ctx context.Context, limit int) (*Stats, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	totalLinks, totalClicks, err := s.store.Totals(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.store.TopByClicks(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &Stats{TotalLinks: totalLinks, TotalClicks: totalClicks, TopURLs: top}, nil
}

// Delete 删除短链接
func (s *Shortener) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// isValidTargetURL 校验目标地址
// 必须是可解析的绝对 URL，scheme 限定 http/https，且带有主机名
func isValidTargetURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}
	return u.Host != ""
}
