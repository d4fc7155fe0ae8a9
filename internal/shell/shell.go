package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chzyer/readline"

	"tsh/internal/cmdline"
	"tsh/internal/config"
	"tsh/internal/job"
)

type Shell struct {
	config     *config.Config
	parser     cmdline.Parser
	jobs       *job.Control
	start      func(cmdline.Line) error
	signalChan chan os.Signal
	done       chan struct{}
	reader     lineReader
	out        io.Writer
	errOut     io.Writer
	logger     *slog.Logger
	exit       func(code int)
}

// New returns a shell reading the process's standard input. A terminal gets
// line editing and a history file; anything else is read line by line.
func New(cfg *config.Config, logger *slog.Logger) (*Shell, error) {
	if !readline.IsTerminal(int(os.Stdin.Fd())) {
		return newShell(cfg, logger, os.Stdin, os.Stdout, os.Stderr), nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:              cfg.PromptString(),
		HistoryFile:         cfg.HistoryFile,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing readline: %w", err)
	}

	s := newShell(cfg, logger, nil, rl.Stdout(), rl.Stderr())
	s.reader = rl
	return s, nil
}

func newShell(cfg *config.Config, logger *slog.Logger, in io.Reader, out, errOut io.Writer) *Shell {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	parser := cmdline.Parser{MaxLine: cfg.MaxLine, MaxArgs: cfg.MaxArgs}
	if cfg.Syntax == config.SyntaxPosix {
		parser.Syntax = cmdline.Posix
	}

	jobs := job.New(out, logger.With("component", "job"))
	jobs.Direct = cfg.Lookup == config.LookupDirect

	s := &Shell{
		config:     cfg,
		parser:     parser,
		jobs:       jobs,
		start:      jobs.Run,
		signalChan: make(chan os.Signal, 4),
		out:        out,
		errOut:     errOut,
		logger:     logger,
		exit:       os.Exit,
	}
	if in != nil {
		s.reader = newPlainReader(in, out, cfg.PromptString())
	}
	return s
}

// Run reads and evaluates lines until end of input. It returns an error only
// when the shell cannot continue.
func (s *Shell) Run() error {
	s.setupSignalHandling()
	defer s.stopSignalHandling()
	defer s.reader.Close()

	for {
		line, err := s.reader.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			s.hangup()
			return nil
		} else if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}

		if err := s.Execute(line); err != nil {
			var ferr *job.ForkError
			if errors.As(err, &ferr) {
				return fmt.Errorf("%w -- quitting", err)
			}
			s.printError(err)
		}
	}
}

// Execute evaluates one command line. Blank lines do nothing.
func (s *Shell) Execute(input string) error {
	line, err := s.parser.Parse(input)
	if err != nil {
		return err
	}
	if line.Empty() {
		return nil
	}

	if ok, err := s.executeBuiltin(line.Args); ok {
		return err
	}
	return s.runJob(line)
}
