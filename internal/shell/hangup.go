package shell

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sys/unix"

	"tsh/internal/config"
)

// hangup applies the on_exit policy. With "hangup" every remaining child
// job gets SIGHUP, then SIGCONT so stopped jobs see it.
func (s *Shell) hangup() {
	if s.config.OnExit != config.OnExitHangup {
		return
	}

	for _, pid := range s.children() {
		target := pid
		if pgid, err := unix.Getpgid(pid); err == nil && pgid == pid {
			target = -pid
		}
		if err := unix.Kill(target, unix.SIGHUP); err != nil {
			s.logger.Debug("hangup failed", "pid", pid, "error", err)
			continue
		}
		_ = unix.Kill(target, unix.SIGCONT)
		s.logger.Debug("hung up job", "pid", pid)
	}
}

// children lists the shell's direct child processes from /proc.
func (s *Shell) children() []int {
	procs, err := process.Processes()
	if err != nil {
		s.logger.Warn("cannot list processes", "error", err)
		return nil
	}

	self := int32(os.Getpid())
	var pids []int
	for _, p := range procs {
		ppid, err := p.Ppid()
		if err != nil || ppid != self {
			continue
		}
		pids = append(pids, int(p.Pid))
	}
	return pids
}
