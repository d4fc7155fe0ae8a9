package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"tsh/internal/config"
	"tsh/internal/shell"
)

var (
	cfgPath  string
	prompt   string
	noPrompt bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:           "tsh",
	Short:         "A tiny shell with job control",
	Long:          `tsh runs one foreground job at a time, can keep one job suspended, and starts background jobs with a trailing &.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default ~/.tshrc.yml if present)")
	rootCmd.Flags().StringVar(&prompt, "prompt", config.DefaultPrompt, "prompt printed before each line")
	rootCmd.Flags().BoolVarP(&noPrompt, "no-prompt", "p", false, "do not print a prompt")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

// loadConfig reads --config, or the default rc file when it exists.
func loadConfig() (*config.Config, error) {
	fsys := afero.NewOsFs()
	if cfgPath != "" {
		return config.Load(fsys, cfgPath)
	}

	path, err := config.DefaultPath()
	if err != nil {
		return config.Default()
	}
	cfg, err := config.Load(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default()
	}
	return cfg, err
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if cmd.Flags().Changed("prompt") {
		cfg.SetPrompt(prompt)
	}
	if noPrompt {
		cfg.SetPrompt("")
	}

	logger, closeLog, err := newLogger(cfg, verbose, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("error opening log: %w", err)
	}
	defer closeLog()

	s, err := shell.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("error initializing shell: %w", err)
	}
	return s.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
