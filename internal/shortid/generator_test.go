package shortid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGenerator_Code 验证生成的短码长度和字符集
func TestGenerator_Code(t *testing.T) {
	g := NewGenerator(7)

	for i := 0; i < 100; i++ {
		code := g.Code()
		assert.Len(t, code, 7, "短码长度应为 7")
		for _, c := range code {
			assert.True(t, strings.ContainsRune(Charset, c), "短码只应包含字符集内的字符: %q", code)
		}
	}
}

// TestGenerator_DefaultLength 验证非法长度回退到默认值
func TestGenerator_DefaultLength(t *testing.T) {
	assert.Equal(t, DefaultLength, NewGenerator(0).Length())
	assert.Equal(t, DefaultLength, NewGenerator(-3).Length())
	assert.Len(t, NewGenerator(0).Code(), DefaultLength)
}

// TestGenerator_Dispersion 连续生成不应出现大量重复
func TestGenerator_Dispersion(t *testing.T) {
	g := NewGenerator(8)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[g.Code()] = true
	}
	assert.Equal(t, 1000, len(seen), "1000 次生成不应出现碰撞")
}
