package configs

// Config holds all configuration for a single analysis run.
// It is built once by LoadConfig and passed explicitly to the components.
type Config struct {
	Input       string    `mapstructure:"input" validate:"required"`
	Visualize   bool      `mapstructure:"visualize"`
	Threshold   float64   `mapstructure:"threshold" validate:"min=0"`
	Descending  bool      `mapstructure:"descending"`
	SortField   string    `mapstructure:"sort_field" validate:"required,oneof=views unique load_sample avg_time avg_load"`
	Search      string    `mapstructure:"search" validate:"pattern"`
	MaxChildren int       `mapstructure:"max_children" validate:"min=0"` // 0 keeps every child
	TreeFormat  string    `mapstructure:"tree_format" validate:"required,oneof=json yaml"`
	OutputDir   string    `mapstructure:"output_dir"`   // empty writes to stdout
	MetricsFile string    `mapstructure:"metrics_file"` // empty disables the textfile export
	Log         LogConfig `mapstructure:"log" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error"`
	File  string `mapstructure:"file"` // empty logs to stderr
}
