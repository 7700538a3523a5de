// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a thruster profile (JSON array of acceleration and
// force records) into a three-column CSV file.
//
// The output is committed atomically: rows go to a temporary file next to
// the destination, which is renamed into place only after every row has
// been written and the file synced. A failed run leaves no output file and
// does not disturb one left by an earlier run.
package convert

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/pdiddy/thruster-csv/internal/profile"
	"github.com/pdiddy/thruster-csv/pkg/types"
)

const outputMode = 0o644

// Result describes a completed conversion.
type Result struct {
	InputPath  string
	OutputPath string
	Rows       int
}

// Message returns the completion line printed after a successful run.
func (r Result) Message() string {
	return fmt.Sprintf("Data has been successfully written to %s", r.OutputPath)
}

// Convert reads cfg.InputPath, validates it, and writes cfg.OutputPath.
// Empty paths fall back to the conventional defaults. Errors are
// *profile.ParseError, *profile.ShapeError, or *WriteError.
func Convert(cfg types.ConversionConfig) (Result, error) {
	cfg = cfg.WithDefaults()
	log := slog.Default().With("input", cfg.InputPath, "output", cfg.OutputPath)

	log.Debug("reading profile")
	records, err := profile.Load(cfg.InputPath)
	if err != nil {
		return Result{}, err
	}
	log.Debug("profile validated", "levels", len(records))

	if err := writeAtomic(cfg.OutputPath, records); err != nil {
		return Result{}, err
	}
	log.Info("wrote csv", "rows", len(records))

	return Result{
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		Rows:       len(records),
	}, nil
}

// WriteCSV writes the header and one row per record to w.
func WriteCSV(w io.Writer, records []types.ThrusterRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.Header()); err != nil {
		return err
	}
	for i, r := range records {
		if err := cw.Write(types.RowFor(i, r).Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeRows fills the pending output file. Tests replace it to fail mid-write.
var writeRows = WriteCSV

func writeAtomic(path string, records []types.ThrusterRecord) error {
	pf, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithStaticPermissions(outputMode))
	if err != nil {
		return &WriteError{Path: path, Op: "create", Err: err}
	}
	// No-op once the file has been committed.
	defer pf.Cleanup()

	if err := writeRows(pf, records); err != nil {
		return &WriteError{Path: path, Op: "write", Err: err}
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return &WriteError{Path: path, Op: commitOp(err), Err: err}
	}
	return nil
}

// commitOp names the commit step that failed: sync, close, or rename.
func commitOp(err error) string {
	var le *os.LinkError
	if errors.As(err, &le) {
		return le.Op
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Op
	}
	return "commit"
}
