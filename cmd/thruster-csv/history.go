// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/thruster-csv/internal/history"
	"github.com/pdiddy/thruster-csv/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded conversion runs",
	Long: `History lists conversion runs recorded with --history (or
history.enabled in the config file), newest first. Nothing is recorded
unless history is enabled.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg := loadConfig().History
	if cfg.DBPath == "" {
		cfg.DBPath = types.DefaultHistoryDB
	}

	out := cmd.OutOrStdout()

	// Listing must not create the database as a side effect.
	if _, err := os.Stat(cfg.DBPath); errors.Is(err, fs.ErrNotExist) {
		return formatHistoryOutput(out, nil, jsonOutput)
	}

	store, err := history.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	return formatHistoryOutput(out, runs, jsonOutput)
}

func formatHistoryOutput(w io.Writer, runs []history.Run, jsonOutput bool) error {
	if jsonOutput {
		if runs == nil {
			runs = []history.Run{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-5s  %-20s  %-7s  %5s  %-8s  %s\n",
		"ID", "Started", "Status", "Rows", "Took", "Detail")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, r := range runs {
		detail := r.InputPath + " -> " + r.OutputPath
		if r.Error != "" {
			detail = r.Error
		}
		if r := []rune(detail); len(r) > 40 {
			detail = string(r[:37]) + "..."
		}
		fmt.Fprintf(w, "%-5d  %-20s  %-7s  %5d  %-8s  %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Status, r.Rows,
			r.Duration().Round(time.Millisecond), detail)
	}

	fmt.Fprintf(w, "\n%d runs\n", len(runs))
	return nil
}
