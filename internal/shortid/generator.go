package shortid

import (
	"crypto/rand"
)

const (
	// Charset 包含用于生成短码的所有字符
	// 只使用小写字母和数字，保证生成结果天然通过别名校验规则
	Charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	// DefaultLength 是生成的短码的默认长度
	DefaultLength = 7
)

// Generator 负责生成随机短码
// 生成结果碰撞概率极低，但唯一性最终由存储层的主键约束保证
type Generator struct {
	length int
}

// NewGenerator 创建一个新的短码生成器实例
// length 小于等于 0 时使用默认长度
func NewGenerator(length int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{length: length}
}

// Length 返回生成短码的长度
func (g *Generator) Length() int {
	return g.length
}

// Code 使用加密安全的随机数生成器生成一个固定长度的短码
func (g *Generator) Code() string {
	b := make([]byte, g.length)
	// Go 1.24 起 crypto/rand.Read 保证不会返回错误
	rand.Read(b)
	for i := range b {
		b[i] = Charset[int(b[i])%len(Charset)]
	}
	return string(b)
}
