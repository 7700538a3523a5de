// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile reads thruster profiles: JSON arrays of objects carrying
// numeric acceleration and force fields. Decoding is eager. Every element is
// validated before any record is returned, so callers never see a partial
// profile.
package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/thruster-csv/pkg/types"
)

const (
	fieldAcceleration = "acceleration"
	fieldForce        = "force"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads the profile at path. A read failure or malformed JSON yields a
// *ParseError; valid JSON of the wrong structure yields a *ShapeError.
func Load(path string) ([]types.ThrusterRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return Decode(data, path)
}

// Decode parses and validates a profile held in memory. source names the
// document in error messages.
func Decode(data []byte, source string) ([]types.ThrusterRecord, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, &ParseError{Path: source, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
		}
		return nil, &ParseError{Path: source, Err: err}
	}

	elems, ok := doc.([]any)
	if !ok {
		return nil, &ShapeError{Path: source, Index: -1, Reason: "top-level value is " + kindOf(doc) + ", want array"}
	}

	records := make([]types.ThrusterRecord, len(elems))
	for i, elem := range elems {
		obj, ok := elem.(map[string]any)
		if !ok {
			return nil, &ShapeError{Path: source, Index: i, Reason: "element is " + kindOf(elem) + ", want object"}
		}
		accel, err := numberField(obj, fieldAcceleration, source, i)
		if err != nil {
			return nil, err
		}
		force, err := numberField(obj, fieldForce, source, i)
		if err != nil {
			return nil, err
		}
		records[i] = types.ThrusterRecord{Acceleration: accel, Force: force}
	}
	return records, nil
}

func numberField(obj map[string]any, field, source string, index int) (json.Number, error) {
	v, ok := obj[field]
	if !ok {
		return "", &ShapeError{Path: source, Index: index, Field: field, Reason: "missing"}
	}
	n, ok := v.(json.Number)
	if !ok {
		return "", &ShapeError{Path: source, Index: index, Field: field, Reason: "value is " + kindOf(v) + ", want number"}
	}
	return n, nil
}

// kindOf names the JSON kind of a value decoded with UseNumber.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
