package shell

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

type lineReader interface {
	Readline() (string, error)
	Close() error
}

var _ lineReader = (*readline.Instance)(nil)

// plainReader reads newline-terminated lines from a pipe or file, printing
// the prompt before each one.
type plainReader struct {
	r      *bufio.Reader
	out    io.Writer
	prompt string
}

func newPlainReader(in io.Reader, out io.Writer, prompt string) *plainReader {
	return &plainReader{r: bufio.NewReader(in), out: out, prompt: prompt}
}

func (p *plainReader) Readline() (string, error) {
	if p.prompt != "" {
		fmt.Fprint(p.out, p.prompt)
	}
	line, err := p.r.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

func (p *plainReader) Close() error {
	return nil
}

// filterInput drops ctrl-z at the prompt; there is no job to suspend and
// readline would otherwise stop the shell itself.
func filterInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
