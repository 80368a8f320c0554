package alias

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *Validator {
	return NewValidator(Config{
		MinLength: 1,
		MaxLength: 64,
		Reserved:  []string{"admin", "shorten", "stats", "delete_url", "ping", "docs", "redoc", "openapi.json"},
		Blocklist: []string{"badword"},
	})
}

// TestValidate_Accepts 合法别名应原样通过
func TestValidate_Accepts(t *testing.T) {
	v := newTestValidator()

	got, err := v.Validate("my-link_01")
	require.NoError(t, err)
	assert.Equal(t, "my-link_01", got)
}

// TestValidate_Normalization 验证空白、大小写和重音的归一化
func TestValidate_Normalization(t *testing.T) {
	v := newTestValidator()

	cases := map[string]string{
		"  Hello  ":  "hello",
		"CAFÉ":       "cafe",
		"über-link":  "uber-link",
		"a--b___c":   "a-b-c",
		"--promo--":  "promo",
		"São-Paulo":  "sao-paulo",
	}
	for raw, want := range cases {
		got, err := v.Validate(raw)
		require.NoError(t, err, "输入 %q 不应被拒绝", raw)
		assert.Equal(t, want, got, "输入 %q 的归一化结果", raw)
	}
}

// TestValidate_RejectsWithReason 每种拒绝都应携带机器可读的原因
func TestValidate_RejectsWithReason(t *testing.T) {
	v := newTestValidator()

	cases := []struct {
		raw    string
		reason Reason
	}{
		{"", ReasonEmpty},
		{"   ", ReasonEmpty},
		{"___", ReasonEmpty},
		{strings.Repeat("a", 65), ReasonTooLong},
		{"ab/cd", ReasonInvalidChars},
		{"a\x00b", ReasonInvalidChars},
		{"with space", ReasonInvalidChars},
		{"emoji😀", ReasonInvalidChars},
		{"admin", ReasonReserved},
		{"Admin ", ReasonReserved},
		{"  ADMIN", ReasonReserved},
		{"shorten", ReasonReserved},
		{"openapi.json", ReasonInvalidChars},
		{"12345", ReasonReserved},
		{"badword", ReasonReserved},
	}
	for _, tc := range cases {
		_, err := v.Validate(tc.raw)
		require.Error(t, err, "输入 %q 应被拒绝", tc.raw)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "输入 %q 应返回 ValidationError", tc.raw)
		assert.Equal(t, tc.reason, verr.Reason, "输入 %q 的拒绝原因", tc.raw)
	}
}

// TestValidate_MinLength 最小长度可配置
func TestValidate_MinLength(t *testing.T) {
	v := NewValidator(Config{MinLength: 3, MaxLength: 10})

	_, err := v.Validate("ab")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ReasonTooShort, verr.Reason)

	got, err := v.Validate("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

// TestValidate_AllowNumeric 纯数字策略可配置
func TestValidate_AllowNumeric(t *testing.T) {
	v := NewValidator(Config{AllowNumeric: true})

	got, err := v.Validate("12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", got)
}
