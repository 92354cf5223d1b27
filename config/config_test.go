package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "operation failed"
	testErr := errors.New("internal store error")

	// nil err 返回 fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release 模式不暴露错误详情
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal store error", SafeErrorMessage(testErr, fallback))

	// 未初始化视为开发环境
	GlobalConfig = nil
	assert.Equal(t, "internal store error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.True(t, cfg.Menu.SeedDefaults)
	assert.False(t, cfg.Menu.StrictCategoryRefs)
	assert.False(t, cfg.Admin.RequireAuth)
	assert.Equal(t, 24*time.Hour, cfg.Admin.ExpireTime)
	assert.Equal(t, time.Minute, cfg.Admin.LoginWindow)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Server.TrustedProxies)
	assert.Same(t, cfg, GetConfig())
}

func TestLoadConfig_ExternalFileOverrides(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  port: \"9090\"\nmenu:\n  strict_category_refs: true\nadmin:\n  expire_hours: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.True(t, cfg.Menu.StrictCategoryRefs)
	assert.True(t, cfg.Menu.SeedDefaults)
	assert.Equal(t, 2*time.Hour, cfg.Admin.ExpireTime)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer func() { GlobalConfig = nil }()
	t.Setenv("MENUBOARD_ADMIN_REQUIRE_AUTH", "true")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Admin.RequireAuth)
}
