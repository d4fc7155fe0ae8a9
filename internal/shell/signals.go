package shell

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

func (s *Shell) setupSignalHandling() {
	signal.Notify(s.signalChan, unix.SIGCHLD, unix.SIGINT, unix.SIGTSTP, unix.SIGQUIT)
	s.done = make(chan struct{})
	go s.handleSignals(s.done)

	// Children may have changed state before Notify took effect.
	s.jobs.Reap()
}

func (s *Shell) stopSignalHandling() {
	signal.Stop(s.signalChan)
	close(s.done)
}

func (s *Shell) handleSignals(done <-chan struct{}) {
	for {
		select {
		case sig := <-s.signalChan:
			s.handleSignal(sig)
		case <-done:
			return
		}
	}
}

func (s *Shell) handleSignal(sig os.Signal) {
	switch sig {
	case unix.SIGCHLD:
		s.jobs.Reap()
	case unix.SIGINT, unix.SIGTSTP:
		if !s.jobs.Relay(sig.(unix.Signal)) {
			s.logger.Debug("no foreground job", "signal", sig)
		}
	case unix.SIGQUIT:
		fmt.Fprintln(s.out, "Terminating after receipt of SIGQUIT signal")
		s.exit(1)
	}
}
