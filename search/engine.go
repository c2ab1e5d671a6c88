package search

import (
	"cmp"
	"log/slog"
	"slices"
)

// Default sentinel filter values meaning "do not filter on this field".
const (
	AllCommunities = "All Communities"
	AllTypes       = "All Types"
)

// Record is a collection entry the engine can address by field name.
// ok is false when the record has no such field.
type Record interface {
	Field(name string) (value string, ok bool)
}

// Query describes one pass over a collection.
type Query struct {
	// Filters maps field names to required values. Sentinel and empty values are skipped.
	Filters map[string]string
	// Search is the free-text query. Empty disables the search stage.
	Search string
	// SearchFields are the fields Search is matched against.
	SearchFields []string
	// SortKey is the field to sort on. Empty keeps collection order.
	SortKey    string
	Descending bool
}

type engineConfig struct {
	matcher   *Matcher
	sentinels map[string]struct{}
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*engineConfig) error

// WithMatcher sets the matcher used by the search stage.
func WithMatcher(m *Matcher) Option {
	return func(c *engineConfig) error {
		if m != nil {
			c.matcher = m
		}
		return nil
	}
}

// WithSentinels replaces the set of filter values that disable a filter.
func WithSentinels(values ...string) Option {
	return func(c *engineConfig) error {
		c.sentinels = make(map[string]struct{}, len(values))
		for _, v := range values {
			c.sentinels[v] = struct{}{}
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// Engine runs filter, search and sort over a snapshot of records.
type Engine[R Record] struct {
	engineConfig
}

// NewEngine creates an engine with the default matcher and sentinels.
func NewEngine[R Record](opts ...Option) (*Engine[R], error) {
	matcher, err := NewMatcher()
	if err != nil {
		return nil, err
	}
	e := &Engine[R]{engineConfig{
		matcher: matcher,
		sentinels: map[string]struct{}{
			AllCommunities: {},
			AllTypes:       {},
		},
		logger: slog.Default(),
	}}

	for _, opt := range opts {
		if err := opt(&e.engineConfig); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Run returns the records satisfying q in q's order. records is never modified.
func (e *Engine[R]) Run(records []R, q Query) []R {
	filters := e.activeFilters(q.Filters)

	out := make([]R, 0, len(records))
	for _, rec := range records {
		if matchesFilters(rec, filters) {
			out = append(out, rec)
		}
	}
	filtered := len(out)

	if q.Search != "" {
		out = slices.DeleteFunc(out, func(rec R) bool {
			return !e.matchesSearch(rec, q.Search, q.SearchFields)
		})
	}

	if q.SortKey != "" {
		sortRecords(out, q.SortKey, q.Descending)
	}

	e.logger.Debug("catalog query",
		"records", len(records),
		"filters", len(filters),
		"afterFilter", filtered,
		"search", q.Search,
		"returned", len(out),
		"sortKey", q.SortKey,
		"descending", q.Descending)

	return out
}

// activeFilters drops sentinel and empty filter values.
func (e *Engine[R]) activeFilters(filters map[string]string) map[string]string {
	active := make(map[string]string, len(filters))
	for field, value := range filters {
		if value == "" {
			continue
		}
		if _, ok := e.sentinels[value]; ok {
			continue
		}
		active[field] = value
	}
	return active
}

func matchesFilters[R Record](rec R, filters map[string]string) bool {
	for field, want := range filters {
		got, ok := rec.Field(field)
		if !ok || got != want {
			return false
		}
	}
	return true
}

func (e *Engine[R]) matchesSearch(rec R, query string, fields []string) bool {
	for _, field := range fields {
		value, _ := rec.Field(field)
		if e.matcher.Matches(query, value) {
			return true
		}
	}
	return false
}

func sortRecords[R Record](records []R, key string, descending bool) {
	slices.SortStableFunc(records, func(a, b R) int {
		av, _ := a.Field(key)
		bv, _ := b.Field(key)
		if descending {
			return cmp.Compare(bv, av)
		}
		return cmp.Compare(av, bv)
	})
}
