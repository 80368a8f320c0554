package model

import (
	"time"
)

// Link 短链接模型，对应 urls 表
// 短码 ID 作为主键，主键约束是并发插入去重的最终保障
type Link struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	TargetURL string    `gorm:"type:text;not null" json:"target_url"`
	Clicks    int64     `gorm:"not null;default:0" json:"clicks"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (Link) TableName() string {
	return "urls"
}
