package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// 主配置结构
type Config struct {
	App       App       `yaml:"app"`
	Server    Server    `yaml:"server"`
	Database  DB        `yaml:"database"`
	Cache     Cache     `yaml:"cache"`
	Auth      Auth      `yaml:"auth"`
	RateLimit Limit     `yaml:"rate_limit"`
	Shortener Shortener `yaml:"shortener"`
}

// 应用配置
type App struct {
	Name    string `yaml:"name"`
	Mode    string `yaml:"mode"`
	Version string `yaml:"version"`
}

// 服务器配置
type Server struct {
	Port         int `yaml:"port"`
	ReadTimeout  int `yaml:"read_timeout"`
	WriteTimeout int `yaml:"write_timeout"`
}

// 数据库配置
type DB struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
}

// 缓存配置（Redis，仅用于限流，可留空）
type Cache struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// 认证配置
// AdminUsername/AdminPassword 用于启动时创建引导管理员账户
type Auth struct {
	Secret          string `yaml:"secret"`
	Issuer          string `yaml:"issuer"`
	ExpirationHours int    `yaml:"expiration_hours"`
	AdminUsername   string `yaml:"admin_username"`
	AdminPassword   string `yaml:"admin_password"`
}

// 限流配置，按路由组区分预算（次/分钟）
type Limit struct {
	Enabled   bool     `yaml:"enabled"`
	Requests  int64    `yaml:"requests_per_minute"`
	Burst     int64    `yaml:"burst"`
	Shorten   int64    `yaml:"shorten_per_minute"`
	Redirect  int64    `yaml:"redirect_per_minute"`
	Admin     int64    `yaml:"admin_per_minute"`
	SkipPaths []string `yaml:"skip_paths"`
}

// 短码配置
type Shortener struct {
	// BaseURL 用于拼接返回的短链接，留空时使用请求的 Host
	BaseURL string `yaml:"base_url"`
	// CodeLength 随机短码长度
	CodeLength int `yaml:"code_length"`
	// MaxRetries 随机短码冲突时的重试预算
	MaxRetries int `yaml:"max_retries"`
	// 自定义别名的长度边界
	AliasMinLength int `yaml:"alias_min_length"`
	AliasMaxLength int `yaml:"alias_max_length"`
	// AllowNumericAlias 是否允许纯数字别名
	AllowNumericAlias bool `yaml:"allow_numeric_alias"`
	// ExtraReserved 在路由保留字之外额外保留的词条
	ExtraReserved []string `yaml:"extra_reserved"`
	// Blocklist 禁用词条
	Blocklist []string `yaml:"blocklist"`
}

// 加载配置
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
