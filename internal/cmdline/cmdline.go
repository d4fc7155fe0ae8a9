// Package cmdline turns a raw input line into an argument vector.
package cmdline

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Syntax selects the quoting rules used by a Parser.
type Syntax int

const (
	// Tsh splits on whitespace; a word starting with a single quote runs to
	// the next single quote. There is no escaping.
	Tsh Syntax = iota
	// Posix uses Bourne shell quoting (single, double, backslash).
	Posix
)

const backgroundMarker = "&"

// Line is a parsed command line.
type Line struct {
	Args       []string
	Background bool
	// Raw is the line as typed, without the trailing newline.
	Raw string
}

// Empty reports whether the line produced no arguments.
func (l Line) Empty() bool {
	return len(l.Args) == 0
}

func (l Line) String() string {
	return shellquote.Join(l.Args...)
}

// ParseError describes a line that could not be tokenized.
type ParseError struct {
	Line string
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Msg, e.Err)
	}
	return "parse error: " + e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser tokenizes lines under a fixed syntax and size limits. A zero limit
// disables the check.
type Parser struct {
	Syntax  Syntax
	MaxLine int
	MaxArgs int
}

// Parse tokenizes line with the tsh syntax and no limits.
func Parse(line string) (Line, error) {
	return Parser{}.Parse(line)
}

func (p Parser) Parse(line string) (Line, error) {
	raw := strings.TrimRight(line, "\r\n")
	if p.MaxLine > 0 && len(raw) > p.MaxLine {
		return Line{}, &ParseError{Line: raw, Msg: fmt.Sprintf("line longer than %d bytes", p.MaxLine)}
	}

	var (
		args []string
		err  error
	)
	switch p.Syntax {
	case Posix:
		args, err = shellquote.Split(raw)
		if err != nil {
			return Line{}, &ParseError{Line: raw, Msg: "bad quoting", Err: err}
		}
	default:
		args, err = splitWords(raw)
		if err != nil {
			return Line{}, err
		}
	}

	out := Line{Raw: raw}
	if len(args) == 0 {
		return out, nil
	}

	if args[len(args)-1] == backgroundMarker {
		out.Background = true
		args = args[:len(args)-1]
	}
	if p.MaxArgs > 0 && len(args) > p.MaxArgs {
		return Line{}, &ParseError{Line: raw, Msg: fmt.Sprintf("more than %d arguments", p.MaxArgs)}
	}
	out.Args = args
	return out, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func splitWords(s string) ([]string, error) {
	var args []string
	i := 0
	for {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i == len(s) {
			return args, nil
		}

		if s[i] == '\'' {
			end := strings.IndexByte(s[i+1:], '\'')
			if end < 0 {
				return nil, &ParseError{Line: s, Msg: fmt.Sprintf("unterminated quote at column %d", i+1)}
			}
			args = append(args, s[i+1:i+1+end])
			i += end + 2
			continue
		}

		start := i
		for i < len(s) && !isSpace(s[i]) {
			i++
		}
		args = append(args, s[start:i])
	}
}
