// Package logging prints diagnostics to stderr and, when configured, appends
// them to a rotating log file. Search results never pass through here.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

var (
	logfile io.WriteCloser
	filelog = log.New(io.Discard, "", log.LstdFlags)
	out     io.Writer = os.Stderr
	verbose bool
	colored = true

	isTerminal = func(w io.Writer) bool {
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
)

// Init routes the file log. An empty File keeps it discarded.
func Init(opts Options) error {
	Close()
	if opts.File == "" {
		filelog.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return err
	}
	lj := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	logfile = lj
	filelog.SetOutput(lj)
	return nil
}

func Close() {
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
	filelog.SetOutput(io.Discard)
}

// SetOutput replaces the console stream (stderr by default).
func SetOutput(w io.Writer) { out = w }

// SetVerbose toggles Debug output.
func SetVerbose(v bool) { verbose = v }

// SetColor allows ANSI colors on console output. They are only emitted when
// the console stream is a terminal.
func SetColor(c bool) { colored = c }

func paint(c text.Color, s string) string {
	if !colored || !isTerminal(out) {
		return s
	}
	return c.Sprint(s)
}

func Error(msg string) {
	_, _ = fmt.Fprintln(out, paint(text.FgRed, msg))
	filelog.Println(msg)
}

// Debug prints only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	_, _ = fmt.Fprintln(out, paint(text.FgHiBlack, msg))
	filelog.Println("[DEBUG] " + msg)
}
