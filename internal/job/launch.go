package job

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"tsh/internal/cmdline"
)

// SpawnError means the program could not be started. The shell keeps going.
type SpawnError struct {
	Name string
	Err  error
}

func (e *SpawnError) Error() string {
	if errors.Is(e.Err, exec.ErrNotFound) || errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("%s: Command not found", e.Name)
	}
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return fmt.Sprintf("%s: %v", e.Name, errno)
	}
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ForkError means the kernel refused to create a process.
type ForkError struct {
	Err error
}

func (e *ForkError) Error() string {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return fmt.Sprintf("fork error (%v)", errno)
	}
	return fmt.Sprintf("fork error (%v)", e.Err)
}

func (e *ForkError) Unwrap() error {
	return e.Err
}

// startError classifies a failed Start. Only EAGAIN means the process table
// or rlimit is exhausted; ENOMEM also comes back from a failed execve in the
// child and is treated like any other spawn failure.
func startError(name string, err error) error {
	if errors.Is(err, unix.EAGAIN) {
		return &ForkError{Err: err}
	}
	return &SpawnError{Name: name, Err: err}
}

func (c *Control) command(args []string) *exec.Cmd {
	var cmd *exec.Cmd
	if c.Direct {
		cmd = &exec.Cmd{Path: args[0], Args: args}
	} else {
		cmd = exec.Command(args[0], args[1:]...)
	}
	cmd.Env = os.Environ()
	if c.Stdin != nil {
		cmd.Stdin = c.Stdin
	}
	if c.Stdout != nil {
		cmd.Stdout = c.Stdout
	}
	if c.Stderr != nil {
		cmd.Stderr = c.Stderr
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	return cmd
}

// Launch starts line as a new job in its own process group and returns its
// pid. A foreground job is recorded in the foreground slot before the reaper
// can see it; a background job gets its "(pid) line" notice instead. Launch
// never waits.
func (c *Control) Launch(line cmdline.Line) (int, error) {
	if line.Empty() {
		return None, errors.New("job: empty command line")
	}
	cmd := c.command(line.Args)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := cmd.Start(); err != nil {
		return None, startError(line.Args[0], err)
	}
	pid := cmd.Process.Pid

	// Only the reaper waits on jobs.
	_ = cmd.Process.Release()

	if line.Background {
		fmt.Fprintf(c.out, "(%d) %s\n", pid, line.Raw)
	} else {
		c.foreground.Store(int64(pid))
	}

	c.logger.Debug("job started", "pid", pid, "cmd", line.String(), "background", line.Background)
	return pid, nil
}

// Run launches line and, unless it runs in the background, blocks until it
// terminates or stops.
func (c *Control) Run(line cmdline.Line) error {
	if _, err := c.Launch(line); err != nil {
		return err
	}
	if !line.Background {
		c.WaitForeground()
	}
	return nil
}
