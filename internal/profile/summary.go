// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/thruster-csv/pkg/types"
)

// Range holds min, max, and mean of one numeric column.
type Range struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Mean float64 `json:"mean" yaml:"mean"`
}

// Summary describes a validated profile.
type Summary struct {
	Levels       int   `json:"levels" yaml:"levels"`
	Acceleration Range `json:"acceleration" yaml:"acceleration"`
	Force        Range `json:"force" yaml:"force"`
	// Unrepresentable lists levels holding a value beyond float64 range.
	// Those values are left out of the column statistics.
	Unrepresentable []int `json:"unrepresentable,omitempty" yaml:"unrepresentable,omitempty"`
}

// Summarize computes column statistics. An empty profile yields a zero
// Summary. Values too large for float64 are reported in Unrepresentable
// rather than failing, since the CSV carries them through unchanged.
func Summarize(records []types.ThrusterRecord) (Summary, error) {
	s := Summary{Levels: len(records)}

	var accel, force []float64
	for i, r := range records {
		a, aok, err := floatValue(r.Acceleration)
		if err != nil {
			return Summary{}, fmt.Errorf("level %d acceleration: %w", i+1, err)
		}
		f, fok, err := floatValue(r.Force)
		if err != nil {
			return Summary{}, fmt.Errorf("level %d force: %w", i+1, err)
		}
		if aok {
			accel = append(accel, a)
		}
		if fok {
			force = append(force, f)
		}
		if !aok || !fok {
			s.Unrepresentable = append(s.Unrepresentable, i+1)
		}
	}
	s.Acceleration = rangeOf(accel)
	s.Force = rangeOf(force)
	return s, nil
}

// floatValue parses n. ok is false when n is a valid number outside
// float64 range.
func floatValue(n json.Number) (v float64, ok bool, err error) {
	v, err = n.Float64()
	switch {
	case err == nil:
		return v, true, nil
	case errors.Is(err, strconv.ErrRange):
		return 0, false, nil
	default:
		return 0, false, err
	}
}

func rangeOf(vals []float64) Range {
	if len(vals) == 0 {
		return Range{}
	}
	r := Range{Min: vals[0], Max: vals[0]}
	var sum float64
	for _, v := range vals {
		r.Min = min(r.Min, v)
		r.Max = max(r.Max, v)
		sum += v
	}
	r.Mean = sum / float64(len(vals))
	return r
}

// ExportLevel is one record in an inspect export. A nil value is outside
// float64 range.
type ExportLevel struct {
	Level        int      `json:"level" yaml:"level"`
	Acceleration *float64 `json:"acceleration" yaml:"acceleration"`
	Force        *float64 `json:"force" yaml:"force"`
}

// Export is the document written by ExportYAML and ExportJSON.
type Export struct {
	Source  string        `json:"source" yaml:"source"`
	Summary Summary       `json:"summary" yaml:"summary"`
	Levels  []ExportLevel `json:"levels" yaml:"levels"`
}

// NewExport builds the export document for records read from source.
func NewExport(source string, records []types.ThrusterRecord) (Export, error) {
	summary, err := Summarize(records)
	if err != nil {
		return Export{}, err
	}
	levels := make([]ExportLevel, len(records))
	for i, r := range records {
		levels[i] = ExportLevel{
			Level:        i + 1,
			Acceleration: floatPtr(r.Acceleration),
			Force:        floatPtr(r.Force),
		}
	}
	return Export{Source: source, Summary: summary, Levels: levels}, nil
}

// floatPtr returns nil for values Summarize counted as unrepresentable.
func floatPtr(n json.Number) *float64 {
	v, ok, _ := floatValue(n)
	if !ok {
		return nil
	}
	return &v
}

// ExportYAML writes e to w as YAML.
func ExportYAML(w io.Writer, e Export) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes e to w as indented JSON.
func ExportJSON(w io.Writer, e Export) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}
