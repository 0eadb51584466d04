// SPDX-License-Identifier: MIT
// Package: cscgen/fixture
//
// config.go - run configuration.
//
// Precedence: defaults < YAML file < command-line flags. The YAML document is
// validated against an embedded JSON schema before it is decoded, so unknown
// keys and out-of-range values fail with one readable message.

package fixture

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cscgen/builder"
	"github.com/katalvlaran/cscgen/matrix"
)

// Defaults (single source of truth for DefaultConfig).
const (
	DefaultSizeExps      = 10
	DefaultScalarExps    = 10
	DefaultSizePolicy    = "exponential"
	DefaultDensityPolicy = "inverse"
	DefaultDensity       = 0.25
	DefaultMaxSize       = 1024
	DefaultValueMin      = 0.0
	DefaultValueMax      = 1.0
	DefaultEngine        = "symmetric"
	DefaultWorkers       = 1
	DefaultOutDir        = "."

	maxScalarExps = 64
	schemaName    = "config.schema.json"
)

//go:embed config.schema.json
var configSchemaJSON []byte

var (
	configSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

// Config drives one generation run.
type Config struct {
	Seed          int64   `yaml:"seed"`
	SizeExps      int     `yaml:"size_exps"`
	ScalarExps    int     `yaml:"scalar_exps"`
	SizePolicy    string  `yaml:"size_policy"`
	DensityPolicy string  `yaml:"density_policy"`
	Density       float64 `yaml:"density"`
	MaxSize       int     `yaml:"max_size"`
	ValueMin      float64 `yaml:"value_min"`
	ValueMax      float64 `yaml:"value_max"`
	Engine        string  `yaml:"engine"`
	Workers       int     `yaml:"workers"`
	PinDraws      bool    `yaml:"pin_draws"`
	OutDir        string  `yaml:"out_dir"`
}

// DefaultConfig returns the 10×10 grid with exponential sizes capped at
// DefaultMaxSize, inverse density and U[0,1) values, solved with the
// symmetric engine and generated sequentially into the working directory.
func DefaultConfig() Config {
	return Config{
		SizeExps:      DefaultSizeExps,
		ScalarExps:    DefaultScalarExps,
		SizePolicy:    DefaultSizePolicy,
		DensityPolicy: DefaultDensityPolicy,
		Density:       DefaultDensity,
		MaxSize:       DefaultMaxSize,
		ValueMin:      DefaultValueMin,
		ValueMax:      DefaultValueMax,
		Engine:        DefaultEngine,
		Workers:       DefaultWorkers,
		OutDir:        DefaultOutDir,
	}
}

// compileSchema compiles the embedded schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(configSchemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err = compiler.AddResource(schemaName, doc); err != nil {
			compileErr = fmt.Errorf("add config schema resource: %w", err)
			return
		}
		if configSchema, err = compiler.Compile(schemaName); err != nil {
			compileErr = fmt.Errorf("compile config schema: %w", err)
		}
	})

	return compileErr
}

// ValidateDocument checks a YAML (or JSON) config document against the schema.
// An empty document is valid.
func ValidateDocument(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: parse: %w", ErrInvalidConfig, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	// Round-trip through JSON so the validator sees JSON-native types.
	js, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(js))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err = configSchema.Validate(inst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ParseConfig validates data and decodes it over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := ValidateDocument(data); err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}

	return cfg, cfg.Validate()
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config file: %w", err)
	}

	return ParseConfig(data)
}

// Validate performs the semantic checks shared by files and flags.
func (c Config) Validate() error {
	if c.SizeExps < 1 || c.SizeExps > builder.MaxSizeExp+1 {
		return fmt.Errorf("%w: size_exps=%d not in [1,%d]", ErrInvalidConfig, c.SizeExps, builder.MaxSizeExp+1)
	}
	if c.ScalarExps < 1 || c.ScalarExps > maxScalarExps {
		return fmt.Errorf("%w: scalar_exps=%d not in [1,%d]", ErrInvalidConfig, c.ScalarExps, maxScalarExps)
	}
	if _, err := builder.ParseSizePolicy(c.SizePolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := builder.ParseDensityPolicy(c.DensityPolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Density < 0 || c.Density > 1 || math.IsNaN(c.Density) {
		return fmt.Errorf("%w: density=%g not in [0,1]", ErrInvalidConfig, c.Density)
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("%w: max_size=%d < 0", ErrInvalidConfig, c.MaxSize)
	}
	if math.IsNaN(c.ValueMin) || math.IsInf(c.ValueMin, 0) || math.IsNaN(c.ValueMax) || math.IsInf(c.ValueMax, 0) {
		return fmt.Errorf("%w: value range [%g,%g) is not finite", ErrInvalidConfig, c.ValueMin, c.ValueMax)
	}
	if c.ValueMax < c.ValueMin {
		return fmt.Errorf("%w: value_max=%g < value_min=%g", ErrInvalidConfig, c.ValueMax, c.ValueMin)
	}
	engine, err := matrix.ParseEngine(c.Engine)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if engine == matrix.EnginePower {
		return fmt.Errorf("%w: engine %q yields no full spectrum", ErrInvalidConfig, c.Engine)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers=%d < 1", ErrInvalidConfig, c.Workers)
	}
	if c.OutDir == "" {
		return fmt.Errorf("%w: out_dir is empty", ErrInvalidConfig)
	}

	return nil
}

// Grid returns the parameter grid the config spans.
func (c Config) Grid() Grid {
	return Grid{SizeExps: c.SizeExps, ScalarExps: c.ScalarExps}
}
