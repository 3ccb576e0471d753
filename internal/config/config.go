package config

import (
	"fmt"
	"os"

	"github.com/san-kum/mandelbench/internal/grid"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLabel   = "GO Benchmark"
	DefaultMaxIter = 1000
	DefaultBound   = 1000.0
	DefaultXMin    = -2.1
	DefaultXMax    = 1.0
	DefaultYMin    = -1.2
	DefaultYMax    = 1.2
	DefaultCols    = 200
	DefaultRows    = 100
	DefaultMode    = "line"
)

type Config struct {
	Label    string         `yaml:"label"`
	MaxIter  int            `yaml:"max_iter"`
	Bound    float64        `yaml:"bound"`
	Viewport ViewportConfig `yaml:"viewport"`
	Grid     GridConfig     `yaml:"grid"`
	Mode     string         `yaml:"mode"`
}

type ViewportConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

func DefaultConfig() *Config {
	return &Config{
		Label:   DefaultLabel,
		MaxIter: DefaultMaxIter,
		Bound:   DefaultBound,
		Viewport: ViewportConfig{
			XMin: DefaultXMin,
			XMax: DefaultXMax,
			YMin: DefaultYMin,
			YMax: DefaultYMax,
		},
		Grid: GridConfig{
			Cols: DefaultCols,
			Rows: DefaultRows,
		},
		Mode: DefaultMode,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults, so omitted fields keep their
// default values.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the config into scanner parameters. Floating point
// fields are rounded to float32 here, once.
func (c *Config) Params() (grid.Params, error) {
	mode, err := grid.ParseMode(c.Mode)
	if err != nil {
		return grid.Params{}, err
	}
	return grid.Params{
		MaxIter: c.MaxIter,
		Bound:   float32(c.Bound),
		Viewport: grid.Viewport{
			XMin: float32(c.Viewport.XMin),
			XMax: float32(c.Viewport.XMax),
			YMin: float32(c.Viewport.YMin),
			YMax: float32(c.Viewport.YMax),
		},
		Cols: c.Grid.Cols,
		Rows: c.Grid.Rows,
		Mode: mode,
	}, nil
}

func (c *Config) Validate() error {
	p, err := c.Params()
	if err != nil {
		return err
	}
	return p.Validate()
}
