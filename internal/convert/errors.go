// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"

	"github.com/pdiddy/thruster-csv/internal/profile"
)

// Error kinds reported by Kind.
const (
	KindParse = "parse"
	KindShape = "shape"
	KindWrite = "write"
)

// WriteError reports an output file that could not be produced. Op names
// the failing step: create, write, sync, close, or rename.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error: %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Kind classifies an error returned by Convert. It returns "" for nil and
// for errors outside the parse, shape, and write categories.
func Kind(err error) string {
	var (
		pe *profile.ParseError
		se *profile.ShapeError
		we *WriteError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &pe):
		return KindParse
	case errors.As(err, &se):
		return KindShape
	case errors.As(err, &we):
		return KindWrite
	default:
		return ""
	}
}
