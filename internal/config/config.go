package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

const (
	DefaultPrompt  = "tsh> "
	DefaultMaxLine = 1024
	DefaultMaxArgs = 128

	SyntaxTsh   = "tsh"
	SyntaxPosix = "posix"

	LookupPath   = "path"
	LookupDirect = "direct"

	OnExitLeave  = "leave"
	OnExitHangup = "hangup"

	historyFileName = ".tsh_history"
	rcFileName      = ".tshrc.yml"
)

type Config struct {
	HistoryFile string `yaml:"history_file"`
	HomeDir     string `yaml:"home_dir"`

	// Prompt is printed before every read. Nil means DefaultPrompt; an empty
	// string disables the prompt.
	Prompt *string `yaml:"prompt"`

	Syntax  string `yaml:"syntax" validate:"oneof=tsh posix"`
	MaxLine int    `yaml:"max_line" validate:"gte=16"`
	MaxArgs int    `yaml:"max_args" validate:"gte=1"`
	Lookup  string `yaml:"lookup" validate:"oneof=path direct"`
	OnExit  string `yaml:"on_exit" validate:"oneof=leave hangup"`

	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no file is present.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := cfg.fill(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath is the rc file looked up when no --config flag is given.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, rcFileName), nil
}

func Load(fs afero.Fs, file string) (*Config, error) {
	cfg := &Config{}
	data, err := afero.ReadFile(fs, file)
	if err != nil {
		return nil, err
	}

	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	if err := cfg.fill(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return cfg, nil
}

func (c *Config) fill() error {
	var err error
	if c.HomeDir == "" {
		c.HomeDir, err = os.UserHomeDir()
		if err != nil {
			return err
		}
	}

	if c.HistoryFile == "" {
		c.HistoryFile = filepath.Join(c.HomeDir, historyFileName)
	}
	if c.Prompt == nil {
		p := DefaultPrompt
		c.Prompt = &p
	}
	if c.Syntax == "" {
		c.Syntax = SyntaxTsh
	}
	if c.MaxLine == 0 {
		c.MaxLine = DefaultMaxLine
	}
	if c.MaxArgs == 0 {
		c.MaxArgs = DefaultMaxArgs
	}
	if c.Lookup == "" {
		c.Lookup = LookupPath
	}
	if c.OnExit == "" {
		c.OnExit = OnExitLeave
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return nil
}

// Validate the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})

	return validate.Struct(c)
}

// PromptString returns the prompt with the nil case resolved.
func (c *Config) PromptString() string {
	if c.Prompt == nil {
		return DefaultPrompt
	}
	return *c.Prompt
}

// SetPrompt overrides the configured prompt.
func (c *Config) SetPrompt(p string) {
	c.Prompt = &p
}
