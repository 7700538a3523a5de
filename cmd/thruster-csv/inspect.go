// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/thruster-csv/internal/profile"
	"github.com/pdiddy/thruster-csv/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Validate the JSON profile and print its levels and summary",
	Long: `Inspect runs the same parse and shape checks as convert without writing
any file, then prints each level with min, max, and mean acceleration and
force. Values too large for float64 are printed as written and left out of
the statistics. Use --format yaml or json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	input := loadConfig().Conversion.WithDefaults().InputPath

	records, err := profile.Load(input)
	if err != nil {
		return err
	}
	export, err := profile.NewExport(input, records)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "text", "":
		return formatInspectText(out, export, records)
	case "yaml":
		return profile.ExportYAML(out, export)
	case "json":
		return profile.ExportJSON(out, export)
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}

func formatInspectText(w io.Writer, e profile.Export, records []types.ThrusterRecord) error {
	fmt.Fprintf(w, "%s: %d levels\n\n", e.Source, e.Summary.Levels)
	if len(records) == 0 {
		return nil
	}

	fmt.Fprintf(w, "%-6s  %-28s  %s\n", types.ColumnLevel, types.ColumnAcceleration, types.ColumnForce)
	fmt.Fprintln(w, strings.Repeat("-", 56))
	for i, r := range records {
		row := types.RowFor(i, r)
		fmt.Fprintf(w, "%-6d  %-28s  %s\n", row.Level, row.AverageAcceleration, row.ThrusterForce)
	}

	s := e.Summary
	fmt.Fprintf(w, "\n%-14s  %12s  %12s  %12s\n", "", "min", "max", "mean")
	fmt.Fprintf(w, "%-14s  %12g  %12g  %12g\n", "acceleration", s.Acceleration.Min, s.Acceleration.Max, s.Acceleration.Mean)
	fmt.Fprintf(w, "%-14s  %12g  %12g  %12g\n", "force", s.Force.Min, s.Force.Max, s.Force.Mean)

	if len(s.Unrepresentable) > 0 {
		levels := make([]string, len(s.Unrepresentable))
		for i, l := range s.Unrepresentable {
			levels[i] = strconv.Itoa(l)
		}
		fmt.Fprintf(w, "\noutside float64 range, excluded from statistics: levels %s\n", strings.Join(levels, ", "))
	}
	return nil
}
