package types

// Default file locations used when no flag, config key, or environment
// variable overrides them.
const (
	DefaultInputPath  = "thruster_profile.json"
	DefaultOutputPath = "thruster_profile.csv"
	DefaultHistoryDB  = ".thruster-csv/history.db"
)

// ConversionConfig holds the file locations for a single conversion.
type ConversionConfig struct {
	// InputPath is the JSON array of thruster records to read.
	InputPath string `json:"input" yaml:"input"`

	// OutputPath is the CSV file to create or replace.
	OutputPath string `json:"output" yaml:"output"`
}

// WithDefaults returns a copy of c with empty paths replaced by the
// conventional defaults.
func (c ConversionConfig) WithDefaults() ConversionConfig {
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	return c
}

// HistoryConfig holds settings for the optional run history ledger.
type HistoryConfig struct {
	// Enabled turns on recording of conversion runs. Off by default so a
	// plain run touches nothing but the input and output files.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// DBPath is the SQLite database file (default .thruster-csv/history.db).
	DBPath string `json:"db" yaml:"db"`
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default warn).
	Level string `json:"level" yaml:"level"`

	// Format is text or json (default text).
	Format string `json:"format" yaml:"format"`
}

// Config groups all settings read from flags, config file, and environment.
type Config struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	History    HistoryConfig    `json:"history" yaml:"history"`
	Log        LogConfig        `json:"log" yaml:"log"`
}
