// Package alias 实现自定义短码的归一化与校验
package alias

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Reason 是校验失败的机器可读原因
type Reason string

const (
	ReasonEmpty        Reason = "empty"
	ReasonTooShort     Reason = "too_short"
	ReasonTooLong      Reason = "too_long"
	ReasonInvalidChars Reason = "invalid_chars"
	ReasonReserved     Reason = "reserved"
)

// ValidationError 携带具体的拒绝原因，调用方按 Reason 分支处理
type ValidationError struct {
	Reason Reason
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return "别名为空"
	case ReasonTooShort:
		return "别名过短"
	case ReasonTooLong:
		return "别名过长"
	case ReasonInvalidChars:
		return "别名包含非法字符"
	case ReasonReserved:
		return "别名已被系统保留"
	}
	return "别名无效"
}

// Config 校验器配置
type Config struct {
	// MinLength / MaxLength 归一化后的长度边界
	MinLength int
	MaxLength int
	// Reserved 保留字集合，通常由路由层注入自己的顶级路径名
	Reserved []string
	// Blocklist 额外禁用的词条
	Blocklist []string
	// AllowNumeric 是否允许纯数字别名，默认拒绝以避免与数字 ID 方案冲突
	AllowNumeric bool
}

const (
	DefaultMinLength = 1
	DefaultMaxLength = 64
)

// Validator 对用户提供的自定义短码做归一化和规则校验
// 校验只保证格式和命名空间安全，唯一性由存储层保证
type Validator struct {
	minLength    int
	maxLength    int
	reserved     map[string]bool
	blocklist    map[string]bool
	allowNumeric bool
}

// NewValidator 创建校验器，零值配置回退到默认边界
func NewValidator(cfg Config) *Validator {
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultMinLength
	}
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = DefaultMaxLength
	}
	v := &Validator{
		minLength:    cfg.MinLength,
		maxLength:    cfg.MaxLength,
		reserved:     make(map[string]bool, len(cfg.Reserved)),
		blocklist:    make(map[string]bool, len(cfg.Blocklist)),
		allowNumeric: cfg.AllowNumeric,
	}
	for _, word := range cfg.Reserved {
		v.reserved[strings.ToLower(strings.TrimSpace(word))] = true
	}
	for _, word := range cfg.Blocklist {
		v.blocklist[strings.ToLower(strings.TrimSpace(word))] = true
	}
	return v
}

var (
	// 折叠连续的连字符和下划线，并去掉首尾的分隔符
	separatorRuns  = regexp.MustCompile(`[-_]{2,}`)
	separatorEdges = regexp.MustCompile(`^[-_]+|[-_]+$`)
	numericOnly    = regexp.MustCompile(`^[0-9]+$`)

	// NFD 分解后去掉组合记号，实现重音字符到 ASCII 的转写
	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Validate 归一化并校验别名，返回可作为短码使用的字符串
//
// 处理顺序固定：去首尾空白 → 转小写 → 重音转写 → 字符集检查 →
// 折叠分隔符 → 长度检查 → 保留字检查 → 模式检查
func (v *Validator) Validate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", &ValidationError{Reason: ReasonEmpty}
	}

	s = strings.ToLower(s)
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}

	// 转写之后仍然存在字符集之外的字符时直接拒绝
	// 静默丢弃会让 "ab/cd" 这类输入变成另一个别名，容易误导调用方
	for _, c := range s {
		if !isAllowedChar(c) {
			return "", &ValidationError{Reason: ReasonInvalidChars}
		}
	}

	s = separatorRuns.ReplaceAllString(s, "-")
	s = separatorEdges.ReplaceAllString(s, "")
	if s == "" {
		return "", &ValidationError{Reason: ReasonEmpty}
	}

	if len(s) < v.minLength {
		return "", &ValidationError{Reason: ReasonTooShort}
	}
	if len(s) > v.maxLength {
		return "", &ValidationError{Reason: ReasonTooLong}
	}

	if v.reserved[s] {
		return "", &ValidationError{Reason: ReasonReserved}
	}
	if !v.allowNumeric && numericOnly.MatchString(s) {
		return "", &ValidationError{Reason: ReasonReserved}
	}
	if v.blocklist[s] {
		return "", &ValidationError{Reason: ReasonReserved}
	}

	return s, nil
}

func isAllowedChar(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_'
}
