package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"zipway/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore 基于内存 sqlite 初始化一个干净的存储
// 限制连接池为单连接，保证共享缓存的内存库在测试期间存活
func newTestStore(t *testing.T) *GormStore {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "无法连接到内存数据库")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Link{}), "数据库迁移失败")
	return NewGormStore(db)
}

// TestInsertIfAbsent 首次插入成功，重复插入返回 ErrExists
func TestInsertIfAbsent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	link, err := s.InsertIfAbsent(ctx, "my-link", "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "my-link", link.ID)
	assert.Equal(t, "https://example.com", link.TargetURL)
	assert.EqualValues(t, 0, link.Clicks)
	assert.False(t, link.CreatedAt.IsZero(), "创建时间应在插入时写入")

	_, err = s.InsertIfAbsent(ctx, "my-link", "https://other.com")
	assert.ErrorIs(t, err, ErrExists)

	// 失败的插入不应覆盖已有记录
	target, clicks, err := s.GetAndIncrement(ctx, "my-link")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", target)
	assert.EqualValues(t, 1, clicks)
}

// TestInsertIfAbsent_Concurrent 并发写入同一短码时只允许一个成功
func TestInsertIfAbsent_Concurrent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	const writers = 10
	var wg sync.WaitGroup
	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.InsertIfAbsent(ctx, "contested", fmt.Sprintf("https://example.com/%d", i))
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrExists):
		default:
			t.Fatalf("意外的错误类型: %v", err)
		}
	}
	assert.Equal(t, 1, created, "只应有一个写入者成功")
}

// TestGetAndIncrement 返回的目标地址与计数来自同一次操作
func TestGetAndIncrement(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.InsertIfAbsent(ctx, "abc1234", "https://example.com")
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		target, clicks, err := s.GetAndIncrement(ctx, "abc1234")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", target)
		assert.EqualValues(t, i, clicks)
	}

	_, _, err = s.GetAndIncrement(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestGetAndIncrement_Concurrent N 次并发解析后计数恰好为 N
func TestGetAndIncrement_Concurrent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.InsertIfAbsent(ctx, "hot", "https://example.com")
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := s.GetAndIncrement(ctx, "hot")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	target, clicks, err := s.GetAndIncrement(ctx, "hot")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", target)
	assert.EqualValues(t, n+1, clicks, "并发自增不应丢失计数")
}

// TestDelete 删除后短码立即不可解析
func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.InsertIfAbsent(ctx, "gone", "https://example.com")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "gone"))
	assert.ErrorIs(t, s.Delete(ctx, "gone"), ErrNotFound)

	_, _, err = s.GetAndIncrement(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)

	// 删除后短码可以被重新占用
	_, err = s.InsertIfAbsent(ctx, "gone", "https://other.com")
	assert.NoError(t, err)
}

// TestList 按创建时间倒序分页
func TestList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.InsertIfAbsent(ctx, fmt.Sprintf("link-%d", i), "https://example.com")
		require.NoError(t, err)
	}

	links, err := s.List(ctx, 3, 0)
	require.NoError(t, err)
	require.Len(t, links, 3)
	for i := 1; i < len(links); i++ {
		assert.False(t, links[i-1].CreatedAt.Before(links[i].CreatedAt), "列表应按创建时间倒序")
	}

	rest, err := s.List(ctx, 3, 3)
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}

// TestTopByClicksAndTotals 统计数据反映真实点击
func TestTopByClicksAndTotals(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.InsertIfAbsent(ctx, "cold", "https://example.com/cold")
	require.NoError(t, err)
	_, err = s.InsertIfAbsent(ctx, "warm", "https://example.com/warm")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, _, err := s.GetAndIncrement(ctx, "warm")
		require.NoError(t, err)
	}

	top, err := s.TopByClicks(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "warm", top[0].ID)
	assert.EqualValues(t, 3, top[0].Clicks)

	totalLinks, totalClicks, err := s.Totals(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, totalLinks)
	assert.EqualValues(t, 3, totalClicks)
}
