// Package logger writes leveled, colorized diagnostics to an output stream.
package logger

import (
	"io"

	"github.com/fatih/color"

	"github.com/conn-castle/ansible-wrapper/internal/terminal"
)

// Logger prints warnings, errors and optional debug output.
// Stdout is never written to; the wrapped Ansible command owns it.
type Logger struct {
	out   io.Writer
	debug bool
	warn  *color.Color
	err   *color.Color
	dbg   *color.Color
}

// New returns a Logger writing to out. Debug output is dropped unless debug is true.
// A nil out discards everything. Color is only used when out is a terminal.
func New(out io.Writer, debug bool) *Logger {
	if out == nil {
		out = io.Discard
	}
	l := &Logger{
		out:   out,
		debug: debug,
		warn:  color.New(color.FgYellow),
		err:   color.New(color.FgRed),
		dbg:   color.New(color.FgCyan),
	}
	if !terminal.IsTerminal(out) {
		l.warn.DisableColor()
		l.err.DisableColor()
		l.dbg.DisableColor()
	}
	return l
}

// Warnf prints a yellow warning.
func (l *Logger) Warnf(format string, a ...any) {
	_, _ = l.warn.Fprintf(l.out, format, a...)
}

// Errorf prints a red error.
func (l *Logger) Errorf(format string, a ...any) {
	_, _ = l.err.Fprintf(l.out, format, a...)
}

// Debugf prints a cyan debug line when debug output is enabled.
func (l *Logger) Debugf(format string, a ...any) {
	if !l.debug {
		return
	}
	_, _ = l.dbg.Fprintf(l.out, format, a...)
}
