package job

import (
	"golang.org/x/sys/unix"
)

// WaitForeground blocks until the reaper has emptied the foreground slot,
// i.e. the foreground job terminated or stopped. Wake-ups that leave the slot
// occupied go back to sleep.
func (c *Control) WaitForeground() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.foreground.Load() != None {
		c.changed.Wait()
	}
}

// Continue moves the suspended job into the foreground, sends SIGCONT to its
// process group and waits for it. It reports false, doing nothing, when no
// job is suspended.
func (c *Control) Continue() bool {
	c.mu.Lock()
	pid := c.suspended.Load()
	if pid == None {
		c.mu.Unlock()
		return false
	}
	c.suspended.Store(None)
	c.foreground.Store(pid)

	if err := unix.Kill(-int(pid), unix.SIGCONT); err != nil {
		c.logger.Error("cannot continue job", "pid", pid, "error", err)
		c.foreground.Store(None)
		c.mu.Unlock()
		return true
	}
	c.logger.Debug("job continued", "pid", pid)
	c.mu.Unlock()

	c.WaitForeground()
	return true
}

// Relay forwards sig to the foreground job's process group. With no
// foreground job the signal is dropped and Relay reports false.
func (c *Control) Relay(sig unix.Signal) bool {
	pid := c.foreground.Load()
	if pid == None {
		return false
	}
	if err := unix.Kill(-int(pid), sig); err != nil {
		c.logger.Debug("relay failed", "pid", pid, "signal", sig, "error", err)
	}
	return true
}
