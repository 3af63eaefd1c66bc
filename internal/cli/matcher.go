package cli

import (
	"log/slog"

	"github.com/coregx/tinyre"
	"github.com/coregx/tinyre/literal"
	"github.com/coregx/tinyre/prefilter"
)

// span is a match inside one line.
type span struct {
	start, end int
}

// lineMatcher searches a line with several patterns at once. A line
// matches when any pattern does.
type lineMatcher struct {
	res    []*tinyre.Regex
	set    *prefilter.Set
	logger *slog.Logger
}

// newLineMatcher builds a matcher over res. With more than one pattern,
// their literal prefixes feed an Aho-Corasick prefilter that rejects lines
// containing none of them.
func newLineMatcher(res []*tinyre.Regex, logger *slog.Logger) *lineMatcher {
	m := &lineMatcher{res: res, logger: logger}
	if len(res) < 2 {
		return m
	}

	seq := literal.NewSeq()
	for _, re := range res {
		prefix, _ := re.LiteralPrefix()
		seq.Add(literal.Literal{Bytes: []byte(prefix)})
	}
	set, err := prefilter.NewSet(seq)
	if err != nil {
		logger.Warn("prefix prefilter disabled", slog.Any("error", err))
		return m
	}
	if set != nil {
		logger.Debug("prefix prefilter enabled", slog.Int("prefixes", set.Len()))
	}
	m.set = set
	return m
}

// first returns the leftmost match at or after at across all patterns,
// preferring the longer one on ties. Aborted searches count as no match.
func (m *lineMatcher) first(line []byte, at int) (span, bool) {
	best, found := span{}, false
	for _, re := range m.res {
		res, err := re.FindModeAt(line, at, re.Mode())
		if err != nil {
			m.logger.Warn("search aborted",
				slog.String("pattern", re.String()),
				slog.Any("error", err))
			continue
		}
		if !res.Matched {
			continue
		}
		s := span{res.Start, res.End}
		if !found || s.start < best.start || (s.start == best.start && s.end > best.end) {
			best, found = s, true
		}
	}
	return best, found
}

// match reports whether line matches any pattern.
func (m *lineMatcher) match(line []byte) bool {
	if m.set != nil && !m.set.IsCandidate(line) {
		return false
	}
	_, ok := m.first(line, 0)
	return ok
}

// all returns the non-empty, non-overlapping matches in line.
func (m *lineMatcher) all(line []byte) []span {
	if m.set != nil && !m.set.IsCandidate(line) {
		return nil
	}
	var out []span
	for at := 0; at <= len(line); {
		s, ok := m.first(line, at)
		if !ok {
			break
		}
		if s.end == s.start {
			at = s.start + 1
			continue
		}
		out = append(out, s)
		at = s.end
	}
	return out
}
