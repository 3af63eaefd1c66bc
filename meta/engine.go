package meta

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/coregx/tinyre/backtrack"
	"github.com/coregx/tinyre/chain"
	"github.com/coregx/tinyre/internal/logging"
	"github.com/coregx/tinyre/literal"
	"github.com/coregx/tinyre/prefilter"
)

var (
	// ErrReleased is returned by searches on an Engine after Free.
	ErrReleased = errors.New("regexp: search on a released pattern")

	// ErrPatternTooComplex is returned when a pattern compiles to more
	// nodes than Config.MaxDepth allows.
	ErrPatternTooComplex = errors.New("pattern too complex")
)

// Engine is a compiled pattern together with its search plan.
//
// Search methods are safe for concurrent use. Free must not race with
// searches.
type Engine struct {
	// stats is first for 64-bit alignment of its counters on 32-bit
	// platforms.
	stats engineStats

	chain     *chain.Chain
	nodes     *ownedChain
	config    Config
	strategy  Strategy
	prefilter prefilter.Prefilter
	prefix    literal.Literal

	pool   sync.Pool
	logger atomic.Pointer[slog.Logger]
}

// ownedChain releases a chain exactly once, from Free or from the cleanup
// of an unreachable Engine. It must not point back at the Engine.
type ownedChain struct {
	chain    *chain.Chain
	released atomic.Bool
}

func (o *ownedChain) release() {
	if o.released.Swap(true) {
		return
	}
	o.chain.Free()
}

// Stats is a snapshot of an Engine's counters.
type Stats struct {
	// Searches counts Find, FindAt and IsMatch calls.
	Searches uint64

	// Candidates counts prefilter candidates examined.
	Candidates uint64

	// Aborted counts searches stopped by a step or depth budget.
	Aborted uint64
}

type engineStats struct {
	searches   atomic.Uint64
	candidates atomic.Uint64
	aborted    atomic.Uint64
}

// Compile compiles pattern with the default configuration.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles pattern with config. Nodes are taken from
// the shared chain store and returned to it by Free.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c, err := chain.Compile([]byte(pattern), chain.DefaultStore(), chain.Options{
		MaxClassSize: config.MaxClassSize,
		FoldCase:     config.FoldCase,
	})
	if err != nil {
		return nil, err
	}
	if c.Len() > config.MaxDepth {
		n := c.Len()
		c.Free()
		return nil, fmt.Errorf("%w: %d nodes exceed the depth limit of %d", ErrPatternTooComplex, n, config.MaxDepth)
	}

	e := &Engine{
		chain:  c,
		nodes:  &ownedChain{chain: c},
		config: config,
		prefix: literal.New(literal.DefaultConfig()).ExtractPrefix(c),
	}
	e.strategy, e.prefilter = selectStrategy(c, config)

	btConfig := config.backtrackConfig()
	e.pool.New = func() any {
		return backtrack.NewMatcher(c, btConfig)
	}
	// Engines dropped without Free give their nodes back to the store.
	runtime.AddCleanup(e, (*ownedChain).release, e.nodes)

	e.SetLogger(config.Logger)
	e.log().Debug("compiled pattern",
		slog.String("pattern", pattern),
		slog.Int("nodes", c.Len()),
		slog.String("strategy", e.strategy.String()),
	)
	return e, nil
}

// SetLogger replaces the engine's logger. Nil discards records.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l == nil {
		l = logging.Nop()
	}
	e.logger.Store(logging.Component(l, "meta"))
}

func (e *Engine) log() *slog.Logger {
	return e.logger.Load()
}

// Chain returns the compiled chain. It is nil after Free, and is only
// valid while the Engine is reachable.
func (e *Engine) Chain() *chain.Chain {
	if e.nodes.released.Load() {
		return nil
	}
	return e.chain
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.chain.Pattern()
}

// Strategy returns the search plan chosen at compile time.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// LiteralPrefix returns the bytes every match must begin with. complete
// is true when the prefix is the whole pattern.
func (e *Engine) LiteralPrefix() (prefix string, complete bool) {
	return string(e.prefix.Bytes), e.prefix.Complete
}

// Mode returns the configured default mode.
func (e *Engine) Mode() backtrack.Mode {
	return e.config.Mode
}

// Stats returns a snapshot of the engine's counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:   e.stats.searches.Load(),
		Candidates: e.stats.candidates.Load(),
		Aborted:    e.stats.aborted.Load(),
	}
}

// Free returns the engine's nodes to the store. Later searches fail with
// ErrReleased. Free is idempotent. An Engine that is never freed releases
// its nodes once it becomes unreachable.
func (e *Engine) Free() {
	e.nodes.release()
}

func (e *Engine) getMatcher(mode backtrack.Mode) *backtrack.Matcher {
	m := e.pool.Get().(*backtrack.Matcher)
	m.SetMode(mode)
	return m
}

func (e *Engine) putMatcher(m *backtrack.Matcher) {
	// drop the haystack reference before pooling
	m.Reset(nil)
	e.pool.Put(m)
}
