package store

import (
	"context"
	"errors"

	"zipway/internal/model"

	"gorm.io/gorm"
)

// GormStore 基于 GORM 的 LinkStore 实现
// 需要用 TranslateError 选项打开数据库连接，否则无法识别主键冲突
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建存储实例，连接生命周期由调用方管理
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// InsertIfAbsent 依赖 urls 表的主键约束实现原子去重
// 并发写入同一短码时数据库只允许一条 INSERT 成功
func (s *GormStore) InsertIfAbsent(ctx context.Context, id, targetURL string) (*model.Link, error) {
	link := &model.Link{ID: id, TargetURL: targetURL}
	if err := s.db.WithContext(ctx).Create(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrExists
		}
		return nil, &StorageError{Op: "insert", Err: err}
	}
	return link, nil
}

// GetAndIncrement 在一个事务内先自增再读取
// UPDATE 语句先拿到行锁，随后的读取与自增属于同一次原子操作，
// 并发解析同一短码时计数不会丢失
func (s *GormStore) GetAndIncrement(ctx context.Context, id string) (string, int64, error) {
	var (
		target string
		clicks int64
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Link{}).
			Where("id = ?", id).
			UpdateColumn("clicks", gorm.Expr("clicks + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		var link model.Link
		if err := tx.Where("id = ?", id).Take(&link).Error; err != nil {
			return err
		}
		target = link.TargetURL
		clicks = link.Clicks
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", 0, ErrNotFound
		}
		return "", 0, &StorageError{Op: "resolve", Err: err}
	}
	return target, clicks, nil
}

// Delete 删除短码对应的记录
func (s *GormStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Link{})
	if result.Error != nil {
		return &StorageError{Op: "delete", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List 按创建时间倒序分页
// 以短码作为次级排序键，创建时间相同的记录也有稳定顺序
func (s *GormStore) List(ctx context.Context, limit, offset int) ([]model.Link, error) {
	var links []model.Link
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&links).Error
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return links, nil
}

// TopByClicks 按点击数倒序返回热门链接
func (s *GormStore) TopByClicks(ctx context.Context, limit int) ([]model.Link, error) {
	var links []model.Link
	err := s.db.WithContext(ctx).
		Order("clicks DESC").
		Order("id").
		Limit(limit).
		Find(&links).Error
	if err != nil {
		return nil, &StorageError{Op: "top_by_clicks", Err: err}
	}
	return links, nil
}

// Totals 返回链接总数与点击总数
func (s *GormStore) Totals(ctx context.Context) (int64, int64, error) {
	var totalLinks, totalClicks int64
	db := s.db.WithContext(ctx)
	if err := db.Model(&model.Link{}).Count(&totalLinks).Error; err != nil {
		return 0, 0, &StorageError{Op: "totals", Err: err}
	}
	if err := db.Model(&model.Link{}).
		Select("COALESCE(SUM(clicks), 0)").
		Scan(&totalClicks).Error; err != nil {
		return 0, 0, &StorageError{Op: "totals", Err: err}
	}
	return totalLinks, totalClicks, nil
}
