// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import "fmt"

// ParseError reports an input file that is missing, unreadable, or not
// valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError reports well-formed JSON that is not an array of objects with
// numeric acceleration and force fields. Index is the 0-based array index,
// or -1 when the problem is the document itself. Messages number elements
// from 1 so they match the Level column of the output.
type ShapeError struct {
	Path   string
	Index  int
	Field  string
	Reason string
}

func (e *ShapeError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("shape error: %s: %s", e.Path, e.Reason)
	case e.Field == "":
		return fmt.Sprintf("shape error: %s: element %d: %s", e.Path, e.Index+1, e.Reason)
	default:
		return fmt.Sprintf("shape error: %s: element %d: field %q: %s", e.Path, e.Index+1, e.Field, e.Reason)
	}
}
