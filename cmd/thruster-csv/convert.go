// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/thruster-csv/internal/convert"
	"github.com/pdiddy/thruster-csv/internal/history"
	"github.com/pdiddy/thruster-csv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the JSON profile to CSV (the default action)",
	Long: `Convert validates every record of the input profile, then writes the CSV
output through a temporary file that is renamed into place. On a parse,
shape, or write error no output is produced and any existing output file is
left as it was.

Exit status: 0 success, 2 parse error, 3 shape error, 4 write error.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	started := time.Now()
	res, err := convert.Convert(cfg.Conversion)
	finished := time.Now()

	if cfg.History.Enabled {
		recordRun(cmd.Context(), cfg, started, finished, res, err)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Message())
	return nil
}

// recordRun stores the outcome in the history database. Failures here are
// logged and never change the outcome of the conversion.
func recordRun(ctx context.Context, cfg types.Config, started, finished time.Time, res convert.Result, convErr error) {
	paths := cfg.Conversion.WithDefaults()

	run := history.Run{
		StartedAt:  started,
		FinishedAt: finished,
		InputPath:  paths.InputPath,
		OutputPath: paths.OutputPath,
		Rows:       res.Rows,
		Status:     history.StatusOK,
	}
	if convErr != nil {
		run.Status = history.StatusFailed
		run.ErrorKind = convert.Kind(convErr)
		run.Error = convErr.Error()
	}

	store, err := history.NewStore(cfg.History)
	if err != nil {
		slog.Warn("history unavailable", "db", cfg.History.DBPath, "error", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(ctx, run); err != nil {
		slog.Warn("recording run failed", "db", cfg.History.DBPath, "error", err)
	}
}
