// Package meta compiles patterns into engines and orchestrates searches.
//
// An Engine owns one compiled chain and picks a search strategy for it at
// compile time:
//   - anchored chains are tried once, at the requested offset;
//   - chains that are a plain literal are answered by the prefilter alone;
//   - chains with a required prefix or first-byte set skip to candidates
//     with a prefilter and run the backtracker only there;
//   - everything else runs the backtracker at every offset.
//
// Mutable search state lives in pooled backtrack.Matcher values, so one
// Engine may be shared between goroutines.
package meta

import (
	"log/slog"

	"github.com/coregx/tinyre/backtrack"
	"github.com/coregx/tinyre/chain"
)

// Config controls compilation and search.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.Mode = backtrack.ShortestFirst
//	engine, err := meta.CompileWithConfig(`\d+`, config)
type Config struct {
	// Mode is the default quantifier resolution mode.
	// Default: backtrack.LongestFirst
	Mode backtrack.Mode

	// MaxSteps caps node visits per search. 0 disables the cap.
	// Default: 10,000,000
	MaxSteps int

	// MaxDepth caps recursion per search and, since recursion grows by one
	// per node, the number of nodes a pattern may compile to.
	// Default: 1000
	MaxDepth int

	// MaxVisitedBits caps the failure memo of a single search. Searches
	// over longer texts run unmemoised. 0 disables memoisation.
	// Default: 2,097,152 (256KB)
	MaxVisitedBits int

	// MaxClassSize caps the entries written into one bracket class.
	// Default: 255
	MaxClassSize int

	// FoldCase makes literal letters match either case.
	// Default: false
	FoldCase bool

	// EnablePrefilter enables literal and first-byte candidate skipping.
	// Default: true
	EnablePrefilter bool

	// Logger receives debug records about compilation and aborted
	// searches. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	bt := backtrack.DefaultConfig()
	return Config{
		Mode:            bt.Mode,
		MaxSteps:        bt.MaxSteps,
		MaxDepth:        bt.MaxDepth,
		MaxVisitedBits:  bt.MaxVisitedBits,
		MaxClassSize:    chain.DefaultMaxClassSize,
		EnablePrefilter: true,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - Mode: ShortestFirst or LongestFirst
//   - MaxSteps: 0 or more
//   - MaxDepth: 1 to 100,000
//   - MaxVisitedBits: 0 to 1<<30
//   - MaxClassSize: 1 to 256
func (c Config) Validate() error {
	if c.Mode != backtrack.ShortestFirst && c.Mode != backtrack.LongestFirst {
		return &ConfigError{Field: "Mode", Message: "must be ShortestFirst or LongestFirst"}
	}
	if c.MaxSteps < 0 {
		return &ConfigError{Field: "MaxSteps", Message: "must not be negative"}
	}
	if c.MaxDepth < 1 || c.MaxDepth > 100_000 {
		return &ConfigError{Field: "MaxDepth", Message: "must be between 1 and 100,000"}
	}
	if c.MaxVisitedBits < 0 || c.MaxVisitedBits > 1<<30 {
		return &ConfigError{Field: "MaxVisitedBits", Message: "must be between 0 and 1073741824"}
	}
	if c.MaxClassSize < 1 || c.MaxClassSize > 256 {
		return &ConfigError{Field: "MaxClassSize", Message: "must be between 1 and 256"}
	}
	return nil
}

// backtrackConfig returns the matcher configuration for c.
func (c Config) backtrackConfig() backtrack.Config {
	return backtrack.Config{
		Mode:           c.Mode,
		MaxSteps:       c.MaxSteps,
		MaxDepth:       c.MaxDepth,
		MaxVisitedBits: c.MaxVisitedBits,
	}
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regexp: invalid config: " + e.Field + ": " + e.Message
}
