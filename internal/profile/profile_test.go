// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/thruster-csv/pkg/types"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []types.ThrusterRecord
	}{
		{
			name:  "two levels",
			input: `[{"acceleration":1.2,"force":500},{"acceleration":2.4,"force":950}]`,
			want: []types.ThrusterRecord{
				{Acceleration: "1.2", Force: "500"},
				{Acceleration: "2.4", Force: "950"},
			},
		},
		{
			name:  "empty array",
			input: `[]`,
			want:  []types.ThrusterRecord{},
		},
		{
			name:  "extra keys ignored",
			input: `[{"force":10,"acceleration":0.5,"stage":"boost","notes":null}]`,
			want:  []types.ThrusterRecord{{Acceleration: "0.5", Force: "10"}},
		},
		{
			name:  "number text preserved",
			input: `[{"acceleration":1.20,"force":-3e2}]`,
			want:  []types.ThrusterRecord{{Acceleration: "1.20", Force: "-3e2"}},
		},
		{
			name:  "leading byte order mark",
			input: "\xEF\xBB\xBF[{\"acceleration\":1,\"force\":2}]",
			want:  []types.ThrusterRecord{{Acceleration: "1", Force: "2"}},
		},
		{
			name:  "surrounding whitespace",
			input: "\n  [ {\"acceleration\": 3, \"force\": 4} ]\n\n",
			want:  []types.ThrusterRecord{{Acceleration: "3", Force: "4"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.input), "test.json")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty document", input: ""},
		{name: "whitespace only", input: "   \n"},
		{name: "truncated array", input: `[{"acceleration":1,"force":2}`},
		{name: "bare word", input: `thrust`},
		{name: "trailing garbage", input: `[] x`},
		{name: "second value", input: `[] []`},
		{name: "single quotes", input: `[{'acceleration':1,'force':2}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), "bad.json")
			require.Error(t, err)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "bad.json", pe.Path)
			assert.True(t, strings.HasPrefix(err.Error(), "parse error: bad.json: "), err.Error())
		})
	}
}

func TestDecodeShapeErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIndex int
		wantField string
		wantMsg   string
	}{
		{
			name:      "object at top level",
			input:     `{"acceleration":1,"force":2}`,
			wantIndex: -1,
			wantMsg:   "top-level value is object, want array",
		},
		{
			name:      "null at top level",
			input:     `null`,
			wantIndex: -1,
			wantMsg:   "top-level value is null, want array",
		},
		{
			name:      "element not object",
			input:     `[{"acceleration":1,"force":2}, 7]`,
			wantIndex: 1,
			wantMsg:   "element 2: element is number, want object",
		},
		{
			name:      "missing force",
			input:     `[{"acceleration":1,"force":2},{"acceleration":3}]`,
			wantIndex: 1,
			wantField: "force",
			wantMsg:   `element 2: field "force": missing`,
		},
		{
			name:      "missing acceleration",
			input:     `[{"force":2}]`,
			wantIndex: 0,
			wantField: "acceleration",
			wantMsg:   `element 1: field "acceleration": missing`,
		},
		{
			name:      "string acceleration",
			input:     `[{"acceleration":"1.2","force":2}]`,
			wantIndex: 0,
			wantField: "acceleration",
			wantMsg:   "value is string, want number",
		},
		{
			name:      "null force",
			input:     `[{"acceleration":1.2,"force":null}]`,
			wantIndex: 0,
			wantField: "force",
			wantMsg:   "value is null, want number",
		},
		{
			name:      "boolean force",
			input:     `[{"acceleration":1.2,"force":true}]`,
			wantIndex: 0,
			wantField: "force",
			wantMsg:   "value is boolean, want number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.input), "shape.json")
			require.Error(t, err)
			assert.Nil(t, got)

			var se *ShapeError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantIndex, se.Index)
			assert.Equal(t, tt.wantField, se.Field)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var pe *ParseError
			assert.False(t, errors.As(err, &pe), "shape errors must not be reported as parse errors")
		})
	}
}

func TestShapeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ShapeError
		want string
	}{
		{
			name: "document",
			err:  &ShapeError{Path: "p.json", Index: -1, Reason: "top-level value is object, want array"},
			want: "shape error: p.json: top-level value is object, want array",
		},
		{
			name: "first element",
			err:  &ShapeError{Path: "p.json", Index: 0, Reason: "element is string, want object"},
			want: "shape error: p.json: element 1: element is string, want object",
		},
		{
			name: "field of third element",
			err:  &ShapeError{Path: "p.json", Index: 2, Field: "force", Reason: "missing"},
			want: `shape error: p.json: element 3: field "force": missing`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thruster_profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"acceleration":9.81,"force":1200}]`), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []types.ThrusterRecord{{Acceleration: "9.81", Force: "1200"}}, got)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := Load(path)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, path, pe.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSummarize(t *testing.T) {
	records := []types.ThrusterRecord{
		{Acceleration: "1", Force: "100"},
		{Acceleration: "3", Force: "300"},
		{Acceleration: "2", Force: "500"},
	}

	got, err := Summarize(records)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Levels)
	assert.Equal(t, Range{Min: 1, Max: 3, Mean: 2}, got.Acceleration)
	assert.Equal(t, Range{Min: 100, Max: 500, Mean: 300}, got.Force)
}

func TestSummarizeEmpty(t *testing.T) {
	got, err := Summarize(nil)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, got)
}

func TestSummarizeOutOfRange(t *testing.T) {
	records := []types.ThrusterRecord{
		{Acceleration: "2", Force: "10"},
		{Acceleration: "1e400", Force: "1"},
		{Acceleration: "4", Force: "-1e999"},
	}

	got, err := Summarize(records)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Levels)
	assert.Equal(t, []int{2, 3}, got.Unrepresentable)
	assert.Equal(t, Range{Min: 2, Max: 4, Mean: 3}, got.Acceleration)
	assert.Equal(t, Range{Min: 1, Max: 10, Mean: 5.5}, got.Force)
}

func TestSummarizeInvalidNumber(t *testing.T) {
	_, err := Summarize([]types.ThrusterRecord{{Acceleration: "1", Force: "ten"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level 1 force")
}

func TestExportOutOfRange(t *testing.T) {
	e, err := NewExport("big.json", []types.ThrusterRecord{{Acceleration: "1e400", Force: "1"}})
	require.NoError(t, err)
	require.Len(t, e.Levels, 1)
	assert.Nil(t, e.Levels[0].Acceleration)
	require.NotNil(t, e.Levels[0].Force)
	assert.Equal(t, 1.0, *e.Levels[0].Force)

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, e))
	assert.Contains(t, buf.String(), `"acceleration": null`)
	assert.Contains(t, buf.String(), `"unrepresentable": [`)
}

func TestExport(t *testing.T) {
	records := []types.ThrusterRecord{
		{Acceleration: "1.2", Force: "500"},
		{Acceleration: "2.4", Force: "950"},
	}
	e, err := NewExport("thruster_profile.json", records)
	require.NoError(t, err)

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ExportYAML(&buf, e))

		var got Export
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, e, got)
		assert.Contains(t, buf.String(), "source: thruster_profile.json")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ExportJSON(&buf, e))

		var got Export
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, e, got)
		assert.Equal(t, 2, got.Levels[1].Level)
	})
}
