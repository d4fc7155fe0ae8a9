// Package job tracks the shell's single foreground job and single suspended
// job, and reconciles them with child state changes reported by the kernel.
//
// Every job runs as the leader of its own process group, so a job's pid is
// also its pgid and signals can be sent to the whole job with kill(-pid).
//
// A Control is shared by the read-eval loop and the goroutine that receives
// SIGCHLD. Its mutex stands in for blocking SIGCHLD: Launch holds it from
// process creation until the new pid is recorded, and Reap holds it for a
// whole drain pass, so the reaper can never observe a child before the
// launcher has written its slot.
package job

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// None is the value of an empty slot.
const None = 0

// Control owns the foreground and suspended slots and launches jobs into them.
type Control struct {
	// Direct makes Launch execute args[0] as a path instead of searching
	// $PATH.
	Direct bool

	// Stdio handed to every job. Nil leaves the stream connected to the null
	// device.
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File

	out    io.Writer
	logger *slog.Logger

	mu      sync.Mutex
	changed *sync.Cond

	foreground atomic.Int64
	suspended  atomic.Int64
	reaped     atomic.Uint64
}

// New returns a Control that writes job notices to out.
func New(out io.Writer, logger *slog.Logger) *Control {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Control{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		out:    out,
		logger: logger,
	}
	c.changed = sync.NewCond(&c.mu)
	return c
}

// Foreground returns the pid of the foreground job, or None.
func (c *Control) Foreground() int {
	return int(c.foreground.Load())
}

// Suspended returns the pid of the suspended job, or None.
func (c *Control) Suspended() int {
	return int(c.suspended.Load())
}

// Reaped returns how many children have been collected after terminating.
func (c *Control) Reaped() uint64 {
	return c.reaped.Load()
}
