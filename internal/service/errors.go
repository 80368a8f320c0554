package service

import (
	"errors"
)

// 错误定义
//
// HTTP 状态码映射（由 handler 层完成）：
//   - ErrInvalidURL          → 400 Bad Request
//   - alias.ValidationError  → 400 Bad Request（携带 reason）
//   - ErrAliasTaken          → 409 Conflict
//   - ErrNotFound            → 404 Not Found
//   - ErrGenerationExhausted → 500 Internal Server Error
//   - store.StorageError     → 503 Service Unavailable（客户端可重试）
var (
	// ErrInvalidURL 当目标 URL 不是合法的 http/https 绝对地址时返回
	ErrInvalidURL = errors.New("invalid target url")

	// ErrAliasTaken 当自定义短码已被占用时返回
	// 自定义短码不做自动重试，调用方指定了名字就不应被偷换
	ErrAliasTaken = errors.New("custom alias already taken")

	// ErrGenerationExhausted 当随机短码重试次数耗尽时返回
	// 出现该错误说明短码空间压力过大，属于系统性问题而非调用方问题
	ErrGenerationExhausted = errors.New("short code generation exhausted")

	// ErrNotFound 当短码不存在时返回
	ErrNotFound = errors.New("short link not found")
)
