/*
Package config reads goconserve settings from a YAML file
*/
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/virus-evolution/goconserve/pkg/conservation"
)

// Config holds every setting that can be given in a config file. Keys that
// are absent from the file keep their default values.
type Config struct {
	GapCutoff  float64 `yaml:"gap_cutoff"`
	WindowSize int     `yaml:"window_size"`
	GapPenalty bool    `yaml:"use_gap_penalty"`
	Lambda     float64 `yaml:"window_lambda"`
	Format     string  `yaml:"format"`
	Threads    int     `yaml:"threads"`
	LogLevel   string  `yaml:"log_level"`
}

// Default returns the settings used when there is no config file
func Default() *Config {
	opts := conservation.DefaultOptions()
	return &Config{
		GapCutoff:  opts.GapCutoff,
		WindowSize: opts.Window,
		GapPenalty: opts.GapPenalty,
		Lambda:     opts.Lambda,
		Format:     "csv",
		Threads:    1,
		LogLevel:   "info",
	}
}

// Read decodes YAML from r on top of the defaults
func Read(r io.Reader) (*Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}

	c := Default()
	if len(bytes.TrimSpace(b)) == 0 {
		return c, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if err := c.Options().Validate(); err != nil {
		return nil, err
	}
	if c.Threads < 1 {
		return nil, errors.Errorf("threads must be at least 1, got %d", c.Threads)
	}
	return c, nil
}

// Load reads the config file at path. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening config file: %s", path)
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	return c, nil
}

// Options returns the scoring options held in c
func (c *Config) Options() conservation.Options {
	return conservation.Options{
		GapCutoff:  c.GapCutoff,
		Window:     c.WindowSize,
		GapPenalty: c.GapPenalty,
		Lambda:     c.Lambda,
	}
}

// Write encodes c as YAML to w
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	return nil
}
