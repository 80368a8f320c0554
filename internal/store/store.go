// Package store 定义短链接的持久化契约
package store

import (
	"context"
	"errors"
	"fmt"

	"zipway/internal/model"
)

var (
	// ErrExists 当短码已被占用时由 InsertIfAbsent 返回
	ErrExists = errors.New("short code already exists")
	// ErrNotFound 当短码不存在时返回，属于预期结果而非故障
	ErrNotFound = errors.New("short code not found")
)

// StorageError 表示底层存储故障，调用方可提示客户端稍后重试
// 与校验类错误严格区分，避免把运维问题报告成客户端问题
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// LinkStore 短链接存储接口
//
// 并发契约：
//   - InsertIfAbsent 必须原子，两个并发写入同一短码时只允许一个成功
//   - GetAndIncrement 必须是单次原子的读改写，计数不得丢失，
//     返回的目标地址与计数来自同一次操作
//
// 原子性依赖存储自身的约束（主键 + 单语句自增），不依赖进程内锁，
// 多个服务实例共享同一存储时契约依然成立
type LinkStore interface {
	// InsertIfAbsent 在短码未被占用时写入完整记录，占用时返回 ErrExists
	InsertIfAbsent(ctx context.Context, id, targetURL string) (*model.Link, error)

	// GetAndIncrement 查找短码并使点击数加一，返回目标地址和新的点击数
	// 短码不存在时返回 ErrNotFound
	GetAndIncrement(ctx context.Context, id string) (string, int64, error)

	// Delete 删除短码，短码不存在时返回 ErrNotFound
	Delete(ctx context.Context, id string) error

	// List 按创建时间倒序分页返回链接
	List(ctx context.Context, limit, offset int) ([]model.Link, error)

	// TopByClicks 按点击数倒序返回最热门的链接
	TopByClicks(ctx context.Context, limit int) ([]model.Link, error)

	// Totals 返回链接总数和点击总数
	Totals(ctx context.Context) (totalLinks, totalClicks int64, err error)
}
