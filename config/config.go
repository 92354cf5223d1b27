package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultConfigYAML 内置默认配置
//
//go:embed config.yaml
var DefaultConfigYAML []byte

// Config 应用配置
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Menu   MenuConfig   `mapstructure:"menu"`
	Admin  AdminConfig  `mapstructure:"admin"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port                   string        `mapstructure:"port"`
	Mode                   string        `mapstructure:"mode"`
	ShutdownTimeoutSeconds int           `mapstructure:"shutdown_timeout_seconds"`
	ShutdownTimeout        time.Duration `mapstructure:"-"`
	TrustedProxies         []string      `mapstructure:"trusted_proxies"` // 为空时不信任任何代理，ClientIP 取连接地址
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// MenuConfig 菜单数据配置
type MenuConfig struct {
	SeedDefaults       bool   `mapstructure:"seed_defaults"`
	StrictCategoryRefs bool   `mapstructure:"strict_category_refs"` // 创建菜品时校验 categoryId 是否存在
	Currency           string `mapstructure:"currency"`             // 导出时的货币符号，价格以最小单位存储
}

// AdminConfig 后台管理配置
type AdminConfig struct {
	RequireAuth        bool          `mapstructure:"require_auth"`
	Password           string        `mapstructure:"password"`
	PasswordHash       string        `mapstructure:"password_hash"` // bcrypt，优先于 password
	JWTSecret          string        `mapstructure:"jwt_secret"`
	ExpireHours        int           `mapstructure:"expire_hours"`
	ExpireTime         time.Duration `mapstructure:"-"`
	LoginMaxAttempts   int           `mapstructure:"login_max_attempts"`
	LoginWindowSeconds int           `mapstructure:"login_window_seconds"`
	LoginWindow        time.Duration `mapstructure:"-"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
)

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			slog.Warn("cannot read config file, using defaults", "path", configPath, "error", err)
		} else {
			slog.Info("merged config file", "path", configPath)
		}
	} else {
		// 尝试查找外部配置文件
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/menuboard")
		externalViper.AddConfigPath("$HOME/.menuboard")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				slog.Warn("merge external config failed", "error", err)
			} else {
				slog.Info("merged config file", "path", externalViper.ConfigFileUsed())
			}
		}
	}

	v.SetEnvPrefix("MENUBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.applyDefaults()

	GlobalConfig = &cfg

	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
	}
	if !strings.HasPrefix(cfg.Server.Port, ":") && !strings.Contains(cfg.Server.Port, ":") {
		cfg.Server.Port = ":" + cfg.Server.Port
	}
	if cfg.Server.ShutdownTimeoutSeconds <= 0 {
		cfg.Server.ShutdownTimeoutSeconds = 10
	}
	cfg.Server.ShutdownTimeout = time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second

	if cfg.Admin.ExpireHours <= 0 {
		cfg.Admin.ExpireHours = 24
	}
	cfg.Admin.ExpireTime = time.Duration(cfg.Admin.ExpireHours) * time.Hour

	if cfg.Admin.LoginMaxAttempts <= 0 {
		cfg.Admin.LoginMaxAttempts = 5
	}
	if cfg.Admin.LoginWindowSeconds <= 0 {
		cfg.Admin.LoginWindowSeconds = 60
	}
	cfg.Admin.LoginWindow = time.Duration(cfg.Admin.LoginWindowSeconds) * time.Second
}

// GetConfig 获取全局配置，未初始化时返回 nil
func GetConfig() *Config {
	return GlobalConfig
}

// SafeErrorMessage release 模式下不向客户端暴露内部错误详情
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}

// PrintConfig 打印当前配置（隐藏敏感信息）
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	slog.Info("server",
		"port", GlobalConfig.Server.Port,
		"mode", GlobalConfig.Server.Mode,
		"trusted_proxies", GlobalConfig.Server.TrustedProxies)
	slog.Info("menu",
		"seed_defaults", GlobalConfig.Menu.SeedDefaults,
		"strict_category_refs", GlobalConfig.Menu.StrictCategoryRefs,
		"currency", GlobalConfig.Menu.Currency)
	slog.Info("admin", "require_auth", GlobalConfig.Admin.RequireAuth)
}
