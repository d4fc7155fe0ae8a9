package shell

func (s *Shell) executeBuiltin(args []string) (bool, error) {
	switch args[0] {
	case "quit":
		s.quit()
		return true, nil
	case "fg":
		s.foreground()
		return true, nil
	default:
		return false, nil
	}
}

func (s *Shell) quit() {
	s.hangup()
	s.exit(0)
}

// foreground resumes the suspended job, if any, and waits for it.
func (s *Shell) foreground() {
	if !s.jobs.Continue() {
		s.logger.Debug("fg: no suspended job")
	}
}
