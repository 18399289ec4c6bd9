// SPDX-License-Identifier: MIT

// Package config loads the cflr configuration.
//
// Priority is env > file > defaults. The file is YAML; unknown keys are
// rejected. The merged result is checked with struct tags before use.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cflr/allpairs"
	"github.com/katalvlaran/cflr/optimized"
	"github.com/katalvlaran/cflr/setting"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level configuration.
type Config struct {
	// Algo is the registered solver name.
	Algo string `yaml:"algo" validate:"required,cflr_algo"`
	// Timeout bounds a whole solve; zero means no limit.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
	// Settings toggles algo settings by their var name.
	Settings map[string]bool `yaml:"settings" validate:"dive,keys,oneof=optimize_empty lazy_add optimize_format explode_indexes,endkeys"`
	Matrix   MatrixConfig    `yaml:"matrix"`
	Cache    CacheConfig     `yaml:"cache"`
	Log      LogConfig       `yaml:"log"`
}

// MatrixConfig holds the optimized matrix thresholds.
type MatrixConfig struct {
	ReformatThreshold     float64 `yaml:"reformat_threshold" validate:"gt=1"`
	SizeFactor            float64 `yaml:"size_factor" validate:"gt=1"`
	MinNVals              int     `yaml:"min_nvals" validate:"gt=0"`
	DiscardBaseOnReformat bool    `yaml:"discard_base_on_reformat"`
}

// CacheConfig locates the answer cache. An empty Dir disables it.
type CacheConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=auto text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	d := optimized.DefaultOptions()

	return Config{
		Algo:     allpairs.Incremental{}.Name(),
		Settings: map[string]bool{},
		Matrix: MatrixConfig{
			ReformatThreshold:     d.ReformatThreshold(),
			SizeFactor:            d.SizeFactor(),
			MinNVals:              d.MinNVals(),
			DiscardBaseOnReformat: d.DiscardBaseOnReformat(),
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load merges defaults, the YAML file at path (skipped when path is
// empty) and CFLR_* environment variables, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// applyEnv overrides cfg from the environment.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("CFLR_ALGO"); ok {
		cfg.Algo = v
	}
	if v, ok := lookup("CFLR_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: CFLR_TIMEOUT=%q: %w", v, ErrInvalid)
		}
		cfg.Timeout = d
	}
	if v, ok := lookup("CFLR_CACHE_DIR"); ok {
		cfg.Cache.Dir = v
	}
	if v, ok := lookup("CFLR_LOG_LEVEL"); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup("CFLR_LOG_FORMAT"); ok {
		cfg.Log.Format = strings.ToLower(v)
	}

	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("cflr_algo", func(fl validator.FieldLevel) bool {
		_, err := allpairs.ByName(fl.Field().String())
		return err == nil
	})

	return v
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Apply sets the enabled state of every setting named in c.Settings and
// marks it as specified.
func (c Config) Apply(list []setting.Setting) {
	for name, enabled := range c.Settings {
		if s, ok := setting.ByVarName(list, name); ok {
			s.SetEnabled(enabled)
			s.MarkSpecified()
		}
	}
}

// MatrixOptions converts the matrix section into optimized options.
func (c Config) MatrixOptions() []optimized.Option {
	return []optimized.Option{
		optimized.WithReformatThreshold(c.Matrix.ReformatThreshold),
		optimized.WithSizeFactor(c.Matrix.SizeFactor),
		optimized.WithMinNVals(c.Matrix.MinNVals),
		optimized.WithDiscardBaseOnReformat(c.Matrix.DiscardBaseOnReformat),
	}
}

// NewLogger builds the slog logger described by c.Log. The "auto" format
// writes text to a terminal and JSON anywhere else.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" || (c.Log.Format == "auto" && !isTerminal(w)) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
