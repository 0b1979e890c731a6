package anagram

import (
	"context"
	"slices"
	"time"
)

// EndOfResults terminates the sequence returned by Query.
const EndOfResults = "_EOR"

// singleLetterWords are reported whenever their letter is in the query,
// whether or not the graph holds them.
var singleLetterWords = []string{"A", "I"}

// Options tune a Solver.
type Options struct {
	// MaxResults caps the words a single query may collect. Zero means no
	// limit.
	MaxResults int

	// Timeout bounds a single search. Zero means no timeout.
	Timeout time.Duration
}

// Solver answers anagram queries against one graph. It holds no per-query
// state and is safe for concurrent use.
type Solver struct {
	graph Graph
	opts  Options
}

// NewSolver creates a solver for g.
func NewSolver(g Graph, opts Options) *Solver {
	return &Solver{graph: g, opts: opts}
}

// Result is the answer to one query.
type Result struct {
	// Letters is the normalized bank that was searched.
	Letters string `json:"letters"`

	// Words holds the graph matches in the order they were found.
	Words []string `json:"words"`

	// Extra holds the single letter words found in the query.
	Extra []string `json:"extra"`

	// Count is the number of graph matches.
	Count int `json:"count"`
}

// All returns the graph matches followed by the single letter words.
func (r *Result) All() []string {
	all := make([]string, 0, len(r.Words)+len(r.Extra))
	all = append(all, r.Words...)
	return append(all, r.Extra...)
}

// Lines returns All terminated by EndOfResults.
func (r *Result) Lines() []string {
	return append(r.All(), EndOfResults)
}

// Solve normalizes raw and searches the graph with it. Banks shorter than
// two characters are not searched, but still report single letter words.
func (s *Solver) Solve(ctx context.Context, raw string) (*Result, error) {
	bank, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Letters: bank.String(),
		Words:   []string{},
		Extra:   []string{},
	}

	if bank.Searchable() {
		if s.opts.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
			defer cancel()
		}

		out := NewCollector(s.opts.MaxResults)
		count, err := Search(ctx, s.graph, bank, out)
		if err != nil {
			return nil, err
		}
		result.Words = out.Words()
		result.Count = count
	}

	for _, word := range singleLetterWords {
		if bank.Contains(word[0]) && !slices.Contains(result.Words, word) {
			result.Extra = append(result.Extra, word)
		}
	}

	return result, nil
}

// Query returns the matches for raw as a sequence terminated by
// EndOfResults.
func (s *Solver) Query(ctx context.Context, raw string) ([]string, error) {
	result, err := s.Solve(ctx, raw)
	if err != nil {
		return nil, err
	}
	return result.Lines(), nil
}
