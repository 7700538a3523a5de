// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the thruster-csv CLI. Run with no
// arguments it converts thruster_profile.json in the working directory to
// thruster_profile.csv.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/thruster-csv/internal/convert"
	"github.com/pdiddy/thruster-csv/internal/logging"
	"github.com/pdiddy/thruster-csv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Exit codes by failure category.
const (
	exitOK      = 0
	exitFailure = 1
	exitParse   = 2
	exitShape   = 3
	exitWrite   = 4
)

// rootCmd is the base command. Invoked bare it performs the conversion.
var rootCmd = &cobra.Command{
	Use:   "thruster-csv",
	Short: "Convert a thruster performance profile from JSON to CSV",
	Long: `thruster-csv reads a JSON array of thruster records, each with numeric
"acceleration" (m/s^2) and "force" (N) fields, and writes a CSV file with the
columns Level, Average Acceleration (m/s^2), and Thruster Force (N). Level is
the 1-based position of the record in the input.

With no arguments it reads thruster_profile.json and writes
thruster_profile.csv in the working directory. The output is replaced only
when the whole profile is valid and fully written.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(loadConfig().Log, os.Stderr)
		return nil
	},
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./thruster-csv.yaml or ~/.config/thruster-csv/config.yaml)")
	pf.StringP("input", "i", types.DefaultInputPath, "JSON profile to read")
	pf.StringP("output", "o", types.DefaultOutputPath, "CSV file to write")
	pf.Bool("history", false, "record the run in the history database")
	pf.String("history-db", types.DefaultHistoryDB, "history database path")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")

	for key, flag := range map[string]string{
		"input":           "input",
		"output":          "output",
		"history.enabled": "history",
		"history.db":      "history-db",
		"log.level":       "log-level",
		"log.format":      "log-format",
	} {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	viper.SetDefault("input", types.DefaultInputPath)
	viper.SetDefault("output", types.DefaultOutputPath)
	viper.SetDefault("history.db", types.DefaultHistoryDB)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("thruster-csv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "thruster-csv"))
		}
	}

	viper.SetEnvPrefix("THRUSTER_CSV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves settings from flags, environment, config file, and
// defaults, in that order of precedence.
func loadConfig() types.Config {
	return types.Config{
		Conversion: types.ConversionConfig{
			InputPath:  viper.GetString("input"),
			OutputPath: viper.GetString("output"),
		},
		History: types.HistoryConfig{
			Enabled: viper.GetBool("history.enabled"),
			DBPath:  viper.GetString("history.db"),
		},
		Log: types.LogConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		},
	}
}

// exitCode maps an error from a command to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	switch convert.Kind(err) {
	case convert.KindParse:
		return exitParse
	case convert.KindShape:
		return exitShape
	case convert.KindWrite:
		return exitWrite
	default:
		return exitFailure
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
