package scaffold

import (
	"errors"
	"fmt"
)

// ErrEmptyName is returned when Generate is called without a project name.
var ErrEmptyName = errors.New("project name must not be empty")

// IOError reports a filesystem failure while locating templates or writing
// project files. Op is one of "locate", "read", "mkdir" or "write".
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
