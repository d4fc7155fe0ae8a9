package job

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Reap collects every pending child state change without blocking and
// updates the slots. It is called on SIGCHLD; since several changes can
// share one notification it loops until wait4 has nothing more to report.
// It returns the number of state changes handled.
func (c *Control) Reap() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.changed.Broadcast()

	n := 0
	for {
		var status unix.WaitStatus
		pid, err := unix.Wait4(-1, &status, unix.WNOHANG|unix.WUNTRACED, nil)
		switch {
		case err == unix.EINTR:
			continue
		case err == unix.ECHILD:
			return n
		case err != nil:
			c.logger.Error("wait4 failed", "error", err)
			return n
		case pid <= 0:
			return n
		}
		n++
		c.update(pid, status)
	}
}

// update applies one state change. Callers hold c.mu.
func (c *Control) update(pid int, status unix.WaitStatus) {
	id := int64(pid)
	switch {
	case status.Stopped():
		fmt.Fprintf(c.out, "Job (%d) stopped by signal %d\n", pid, status.StopSignal())
		c.foreground.CompareAndSwap(id, None)
		if prev := c.suspended.Swap(id); prev != None && prev != id {
			c.logger.Warn("suspended job replaced", "previous", prev, "pid", pid)
		}
		c.logger.Debug("job stopped", "pid", pid, "signal", status.StopSignal())

	case status.Signaled():
		fmt.Fprintf(c.out, "Job (%d) terminated by signal %d\n", pid, status.Signal())
		c.finish(id)
		c.logger.Debug("job killed", "pid", pid, "signal", status.Signal())

	case status.Exited():
		c.finish(id)
		c.logger.Debug("job exited", "pid", pid, "status", status.ExitStatus())

	default:
		c.logger.Debug("ignoring child state", "pid", pid, "status", uint32(status))
	}
}

func (c *Control) finish(id int64) {
	c.foreground.CompareAndSwap(id, None)
	c.suspended.CompareAndSwap(id, None)
	c.reaped.Add(1)
}
