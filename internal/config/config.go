package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/crimson-sun/castag/internal/model"
)

// Config holds all castag configuration.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Engine EngineConfig `yaml:"engine"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// DataConfig holds dataset file settings.
type DataConfig struct {
	TestFile    string `yaml:"test_file"`    // held-out items evaluated after training
	DatasetName string `yaml:"dataset_name"` // file name used when caching a dataset next to its CSV
}

// EngineConfig holds classifier training settings.
type EngineConfig struct {
	Seed      int64   `yaml:"seed"`
	C         float64 `yaml:"c"`
	Tolerance float64 `yaml:"tolerance"`
	MaxIter   int     `yaml:"max_iter"`
	Parallel  bool    `yaml:"parallel"`
}

// OutputConfig holds prediction output settings.
type OutputConfig struct {
	Format     string   `yaml:"format"`     // "text", "json", "yaml"
	File       string   `yaml:"file"`       // optional NDJSON copy of the report
	Append     bool     `yaml:"append"`     // append to File instead of truncating it
	Scores     bool     `yaml:"scores"`     // include raw decision scores
	Categories []string `yaml:"categories"` // label names, in label order
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data: DataConfig{
			TestFile:    "test-data.csv",
			DatasetName: "data.pkl",
		},
		Engine: EngineConfig{
			Seed:      0,
			C:         1.0,
			Tolerance: 1e-4,
			MaxIter:   1000,
		},
		Output: OutputConfig{
			Format:     "text",
			Categories: []string{"Creativity", "Action", "Service"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load returns the defaults overridden by environment variables.
func Load() Config {
	cfg := Default()
	applyEnv(&cfg)
	return cfg
}

// LoadFile reads a YAML file over the defaults, then applies environment
// overrides. Keys missing from the file keep their default values.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Data.TestFile = getenv("CASTAG_TEST_FILE", cfg.Data.TestFile)
	cfg.Data.DatasetName = getenv("CASTAG_DATASET_NAME", cfg.Data.DatasetName)

	cfg.Engine.Seed = getenvInt64("CASTAG_SEED", cfg.Engine.Seed)
	cfg.Engine.C = getenvFloat("CASTAG_C", cfg.Engine.C)
	cfg.Engine.Tolerance = getenvFloat("CASTAG_TOLERANCE", cfg.Engine.Tolerance)
	cfg.Engine.MaxIter = getenvInt("CASTAG_MAX_ITER", cfg.Engine.MaxIter)
	cfg.Engine.Parallel = getenvBool("CASTAG_PARALLEL", cfg.Engine.Parallel)

	cfg.Output.Format = getenv("CASTAG_FORMAT", cfg.Output.Format)
	cfg.Output.File = getenv("CASTAG_OUTPUT_FILE", cfg.Output.File)
	cfg.Output.Append = getenvBool("CASTAG_OUTPUT_APPEND", cfg.Output.Append)
	cfg.Output.Scores = getenvBool("CASTAG_SCORES", cfg.Output.Scores)
	if v := os.Getenv("CASTAG_CATEGORIES"); v != "" {
		cfg.Output.Categories = splitList(v)
	}

	cfg.Log.Level = getenv("CASTAG_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.JSON = getenvBool("CASTAG_LOG_JSON", cfg.Log.JSON)
}

// Validate checks the configuration for invalid values. All problems are
// reported together.
func (c Config) Validate() error {
	var errs []error

	if c.Data.TestFile == "" {
		errs = append(errs, errors.New("data: test_file must not be empty"))
	}
	if c.Data.DatasetName == "" || !strings.HasSuffix(c.Data.DatasetName, ".pkl") {
		errs = append(errs, fmt.Errorf("data: dataset_name %q must end in .pkl", c.Data.DatasetName))
	}
	if c.Engine.C <= 0 {
		errs = append(errs, fmt.Errorf("engine: c must be positive, got %g", c.Engine.C))
	}
	if c.Engine.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("engine: tolerance must be positive, got %g", c.Engine.Tolerance))
	}
	if c.Engine.MaxIter <= 0 {
		errs = append(errs, fmt.Errorf("engine: max_iter must be positive, got %d", c.Engine.MaxIter))
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("output: format %q must be text, json or yaml", c.Output.Format))
	}
	if len(c.Output.Categories) != model.NumLabels {
		errs = append(errs, fmt.Errorf("output: need exactly %d categories, got %d",
			model.NumLabels, len(c.Output.Categories)))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log: unknown level %q", c.Log.Level))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// splitList parses a comma-separated list, trimming blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
