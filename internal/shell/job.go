package shell

import (
	"github.com/fatih/color"

	"tsh/internal/cmdline"
)

var errColor = color.New(color.FgRed)

// runJob launches an external command, waiting for it unless it was started
// with a trailing &.
func (s *Shell) runJob(line cmdline.Line) error {
	s.logger.Debug("eval", "cmd", line.String(), "background", line.Background)
	return s.start(line)
}

func (s *Shell) printError(err error) {
	errColor.Fprintln(s.errOut, err)
}
