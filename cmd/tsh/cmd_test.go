package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsh/internal/config"
)

func TestLoadConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tsh.yml")
	require.NoError(t, os.WriteFile(path, []byte("syntax: posix\n"), 0644))

	cfgPath = path
	t.Cleanup(func() { cfgPath = "" })

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.SyntaxPosix, cfg.Syntax)
}

func TestLoadConfigDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.SyntaxTsh, cfg.Syntax)
}

func TestLoadConfigMissingFlag(t *testing.T) {
	cfgPath = filepath.Join(t.TempDir(), "missing.yml")
	t.Cleanup(func() { cfgPath = "" })

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	var stderr bytes.Buffer
	logger, closeLog, err := newLogger(cfg, true, &stderr)
	require.NoError(t, err)
	defer closeLog()

	logger.Debug("hello")
	assert.Contains(t, stderr.String(), "msg=hello")

	stderr.Reset()
	logger, closeLog2, err := newLogger(cfg, false, &stderr)
	require.NoError(t, err)
	defer closeLog2()
	logger.Info("quiet")
	assert.Empty(t, stderr.String())

	cfg.LogFile = filepath.Join(t.TempDir(), "tsh.log")
	logger, closeLog3, err := newLogger(cfg, false, &stderr)
	require.NoError(t, err)
	logger.Info("to file")
	closeLog3()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `msg="to file"`)
}
