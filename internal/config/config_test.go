package config

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, DefaultPrompt, cfg.PromptString())
	assert.Equal(t, SyntaxTsh, cfg.Syntax)
	assert.Equal(t, DefaultMaxLine, cfg.MaxLine)
	assert.Equal(t, DefaultMaxArgs, cfg.MaxArgs)
	assert.Equal(t, LookupPath, cfg.Lookup)
	assert.Equal(t, OnExitLeave, cfg.OnExit)
	assert.Equal(t, filepath.Join(cfg.HomeDir, historyFileName), cfg.HistoryFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	mfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mfs, "tsh.yml", []byte(`
home_dir: /home/tester
prompt: ""
syntax: posix
lookup: direct
on_exit: hangup
log_level: debug
`), 0644))

	cfg, err := Load(mfs, "tsh.yml")
	require.NoError(t, err)

	assert.Equal(t, "/home/tester", cfg.HomeDir)
	assert.Equal(t, "/home/tester/.tsh_history", cfg.HistoryFile)
	assert.Equal(t, "", cfg.PromptString())
	assert.Equal(t, SyntaxPosix, cfg.Syntax)
	assert.Equal(t, LookupDirect, cfg.Lookup)
	assert.Equal(t, OnExitHangup, cfg.OnExit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultMaxLine, cfg.MaxLine)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "nope.yml")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"bad syntax":    "syntax: zsh\n",
		"bad lookup":    "lookup: hash\n",
		"bad on_exit":   "on_exit: kill\n",
		"tiny max_line": "max_line: 2\n",
		"unknown field": "colour: red\n",
		"bad log level": "log_level: loud\n",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			mfs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(mfs, "tsh.yml", []byte(body), 0644))

			_, err := Load(mfs, "tsh.yml")
			assert.Error(t, err)
		})
	}
}
