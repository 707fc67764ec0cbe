// Package runner turns command-line input into one search over one file and
// writes the report.
package runner

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/gvko/minigrep/internal/config"
	"github.com/gvko/minigrep/internal/logging"
	"github.com/gvko/minigrep/internal/search"
	"github.com/gvko/minigrep/internal/ui/console"
)

type Input struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

func (in Input) Request() search.Request {
	return search.Request{Query: in.Query, CaseSensitive: in.CaseSensitive}
}

// ParseArgs takes the query and filename from args in that order; anything
// after them is ignored. The case policy comes from cfg.
func ParseArgs(args []string, cfg config.Config) (Input, error) {
	if len(args) < 1 {
		return Input{}, &ArgumentError{Msg: "Didn't get a query string"}
	}
	if len(args) < 2 {
		return Input{}, &ArgumentError{Msg: "Didn't get a filename string"}
	}
	return Input{Query: args[0], Filename: args[1], CaseSensitive: cfg.CaseSensitive}, nil
}

type Runner struct {
	out      io.Writer
	readFile func(string) ([]byte, error)
}

func New(out io.Writer) *Runner {
	return &Runner{out: out, readFile: os.ReadFile}
}

// Run prints the header, reads the file, prints every matching line and the
// closing separator. On a read error the header is already written and an
// *IOError is returned.
func (r *Runner) Run(in Input) error {
	if _, err := io.WriteString(r.out, console.RenderHeader(in.Query, in.Filename)); err != nil {
		return err
	}
	contents, err := r.read(in.Filename)
	if err != nil {
		return err
	}
	logging.Debug(fmt.Sprintf("read %d bytes from %s (case_sensitive=%v)", len(contents), in.Filename, in.CaseSensitive))
	matches := in.Request().Run(contents)
	logging.Debug(fmt.Sprintf("%d matching lines", len(matches)))
	if _, err := io.WriteString(r.out, console.RenderMatches(matches)); err != nil {
		return err
	}
	_, err = io.WriteString(r.out, console.RenderFooter())
	return err
}

func (r *Runner) read(path string) (string, error) {
	b, err := r.readFile(path)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}
	if !utf8.Valid(b) {
		return "", &IOError{Path: path, Err: ErrInvalidUTF8}
	}
	return string(b), nil
}
