package configs

import (
	"fmt"
	"strings"

	"pageview-analytics/internal/shared/validators"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ANALYSE"

// ErrHelp is returned by LoadConfig when -h or --help was requested.
var ErrHelp = pflag.ErrHelp

// flagBindings maps config keys to the flags that set them.
var flagBindings = map[string]string{
	"input":        "file",
	"visualize":    "tree",
	"threshold":    "threshold",
	"descending":   "reverse",
	"sort_field":   "sort",
	"search":       "search",
	"max_children": "children",
	"tree_format":  "tree-format",
	"output_dir":   "output-dir",
	"metrics_file": "metrics-file",
	"log.level":    "log-level",
	"log.file":     "log-file",
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("analyse", pflag.ContinueOnError)
	flags.StringP("file", "f", "", "CSV export to parse")
	flags.BoolP("tree", "t", false, "Write the shaped tree for a viewer instead of printing the report")
	flags.Float64P("threshold", "x", 0, "Minimum value of the sort field to keep a node in the tree")
	flags.BoolP("reverse", "r", false, "Order sort field highest to lowest")
	flags.StringP("sort", "s", "views", "Sort field to use (views, unique, load_sample, avg_time, avg_load)")
	flags.StringP("search", "i", "", "Include only urls that match the given regular expression")
	flags.IntP("children", "c", 0, "Include only the top x children of each node in the tree")
	flags.String("tree-format", "json", "Encoding of the shaped tree (json, yaml)")
	flags.StringP("output-dir", "o", "", "Write output under this directory instead of stdout")
	flags.String("metrics-file", "", "Write run metrics in Prometheus text format to this file")
	flags.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	flags.String("log-file", "", "Write logs to this rotated file instead of stderr")
	flags.String("config", "", "Optional YAML config file; flags take precedence")
	flags.SortFlags = false
	flags.Usage = func() {}
	return flags
}

// Usage returns the flag help text.
func Usage() string {
	return newFlagSet().FlagUsages()
}

// LoadConfig builds the run configuration from command line arguments, an optional
// YAML file and ANALYSE_* environment variables, then validates it.
// The first positional argument is used as the input file when --file is absent.
var LoadConfig = func(args []string) (*Config, error) {
	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flagName := range flagBindings {
		if err := v.BindPFlag(key, flags.Lookup(flagName)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %q: %w", flagName, err)
		}
	}

	configPath, _ := flags.GetString("config")
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	if flags.NArg() > 0 && !flags.Changed("file") {
		v.Set("input", flags.Arg(0))
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "log.level")
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	case validators.TagPattern:
		msg = fmt.Sprintf("%s (invalid pattern)", field)
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
