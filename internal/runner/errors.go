package runner

import (
	"errors"
	"fmt"
)

var (
	// ErrArgument is matched by every *ArgumentError.
	ErrArgument = errors.New("argument error")

	// ErrIO is matched by every *IOError.
	ErrIO = errors.New("i/o error")

	// ErrInvalidUTF8 is the cause of an IOError for a file that is not text.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// ArgumentError reports missing positional arguments. It is raised before
// any file is touched.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

func (e *ArgumentError) Is(target error) bool { return target == ErrArgument }

// IOError reports a failure reading the target file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if errors.Is(e.Err, ErrInvalidUTF8) {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *IOError) Is(target error) bool { return target == ErrIO }

func (e *IOError) Unwrap() error { return e.Err }
