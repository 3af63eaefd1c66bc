// Package cliconfig loads the tinygrep YAML configuration file.
//
// Precedence, highest first: command-line flags, the file named by
// --config, a local .tinygrep.yaml, built-in defaults.
package cliconfig

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/coregx/tinyre/backtrack"
	"github.com/coregx/tinyre/internal/logging"
	"github.com/coregx/tinyre/meta"
)

// LocalConfigFileNames are looked up in the working directory when no
// --config flag is given.
var LocalConfigFileNames = []string{".tinygrep.yaml", ".tinygrep.yml"}

// File is the on-disk configuration. Pointer fields distinguish "unset"
// from a zero value.
type File struct {
	Mode           string `yaml:"mode"`
	MaxSteps       *int   `yaml:"maxSteps"`
	MaxDepth       *int   `yaml:"maxDepth"`
	MaxVisitedBits *int   `yaml:"maxVisitedBits"`
	MaxClassSize   *int   `yaml:"maxClassSize"`
	IgnoreCase     *bool  `yaml:"ignoreCase"`
	Prefilter      *bool  `yaml:"prefilter"`

	Log LogConfig `yaml:"log"`

	// Path is the file the configuration was read from, if any.
	Path string `yaml:"-"`
}

// LogConfig is the log section.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ConfigError reports a malformed configuration file.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Path + ": " + e.Message
}

// FindLocalConfig returns the first local config file that exists, or ""
// when there is none.
func FindLocalConfig() string {
	for _, name := range LocalConfigFileNames {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name
		}
	}
	return ""
}

// Load reads the configuration at path. An empty path falls back to
// FindLocalConfig, and to an empty File when no local file exists.
func Load(path string) (*File, error) {
	if path == "" {
		path = FindLocalConfig()
		if path == "" {
			return &File{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// Parse decodes a configuration document. Unknown keys are errors.
func Parse(path string, data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigError{Path: path, Message: strings.TrimPrefix(err.Error(), "yaml: ")}
	}
	f.Path = path
	return &f, nil
}

// Apply overlays the file's engine settings on cfg and validates the
// result.
func (f *File) Apply(cfg *meta.Config) error {
	if f.Mode != "" {
		mode, err := backtrack.ParseMode(f.Mode)
		if err != nil {
			return &ConfigError{Path: f.Path, Message: err.Error()}
		}
		cfg.Mode = mode
	}
	if f.MaxSteps != nil {
		cfg.MaxSteps = *f.MaxSteps
	}
	if f.MaxDepth != nil {
		cfg.MaxDepth = *f.MaxDepth
	}
	if f.MaxVisitedBits != nil {
		cfg.MaxVisitedBits = *f.MaxVisitedBits
	}
	if f.MaxClassSize != nil {
		cfg.MaxClassSize = *f.MaxClassSize
	}
	if f.IgnoreCase != nil {
		cfg.FoldCase = *f.IgnoreCase
	}
	if f.Prefilter != nil {
		cfg.EnablePrefilter = *f.Prefilter
	}

	if err := cfg.Validate(); err != nil {
		return &ConfigError{Path: f.Path, Message: err.Error()}
	}
	return nil
}

// Logging returns the logging configuration described by the file.
func (f *File) Logging() (logging.Config, error) {
	cfg := logging.DefaultConfig()
	level, err := logging.ParseLevel(f.Log.Level)
	if err != nil {
		return cfg, &ConfigError{Path: f.Path, Message: err.Error()}
	}
	format, err := logging.ParseFormat(f.Log.Format)
	if err != nil {
		return cfg, &ConfigError{Path: f.Path, Message: err.Error()}
	}
	cfg.Level = level
	cfg.Format = format
	return cfg, nil
}
