package meta

import (
	"log/slog"

	"github.com/coregx/tinyre/backtrack"
)

// Find returns the leftmost match in haystack using mode.
func (e *Engine) Find(haystack []byte, mode backtrack.Mode) (backtrack.Result, error) {
	return e.FindAt(haystack, 0, mode)
}

// FindAt returns the leftmost match starting at or after at.
//
// The error is ErrReleased after Free, or a budget error from the
// backtracker. No match is not an error.
func (e *Engine) FindAt(haystack []byte, at int, mode backtrack.Mode) (backtrack.Result, error) {
	if e.nodes.released.Load() {
		return backtrack.Result{}, ErrReleased
	}
	e.stats.searches.Add(1)
	if at < 0 || at > len(haystack) {
		return backtrack.Result{}, nil
	}

	if e.strategy == UseLiteral {
		return e.findLiteral(haystack, at), nil
	}

	m := e.getMatcher(mode)
	defer e.putMatcher(m)

	var (
		res backtrack.Result
		err error
	)
	if e.strategy == UsePrefilter {
		res, err = e.findPrefiltered(m, haystack, at)
	} else {
		res, err = m.FindAt(haystack, at)
	}

	if err != nil {
		e.stats.aborted.Add(1)
		e.log().Debug("search aborted",
			slog.String("pattern", e.chain.Pattern()),
			slog.Int("len", len(haystack)),
			slog.String("mode", mode.String()),
			slog.Int("steps", m.Steps()),
			slog.Any("error", err),
		)
	}
	return res, err
}

// IsMatch reports whether haystack contains a match in the default mode.
// A search aborted by a budget reports false.
func (e *Engine) IsMatch(haystack []byte) bool {
	res, err := e.Find(haystack, e.config.Mode)
	return err == nil && res.Matched
}

func (e *Engine) findLiteral(haystack []byte, at int) backtrack.Result {
	pos := e.prefilter.Find(haystack, at)
	if pos < 0 {
		return backtrack.Result{}
	}
	e.stats.candidates.Add(1)
	return backtrack.Result{Matched: true, Start: pos, End: pos + e.prefilter.LiteralLen()}
}

// findPrefiltered runs the backtracker only at candidate offsets. The
// failure memo is shared by all candidates of one search.
func (e *Engine) findPrefiltered(m *backtrack.Matcher, haystack []byte, at int) (backtrack.Result, error) {
	pos := e.prefilter.Find(haystack, at)
	if pos < 0 {
		return backtrack.Result{}, nil
	}

	m.Reset(haystack)

	for pos >= 0 {
		e.stats.candidates.Add(1)
		if end, ok := m.MatchAt(pos); ok {
			return backtrack.Result{Matched: true, Start: pos, End: end}, nil
		}
		if err := m.Err(); err != nil {
			return backtrack.Result{}, err
		}
		pos = e.prefilter.Find(haystack, pos+1)
	}
	return backtrack.Result{}, nil
}
