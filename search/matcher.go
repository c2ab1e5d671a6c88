// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultThreshold is the minimum ratio a candidate needs to match a query.
const DefaultThreshold = 0.6

// Matcher decides whether a candidate string is similar enough to a query.
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	threshold   float64
	wholeString bool
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher) error

// WithThreshold sets the minimum ratio for a match.
// Returns ErrInvalidThreshold unless 0 <= threshold <= 1.
func WithThreshold(threshold float64) MatcherOption {
	return func(m *Matcher) error {
		if threshold < 0 || threshold > 1 {
			return ErrInvalidThreshold
		}
		m.threshold = threshold
		return nil
	}
}

// WithWholeString scores only the complete candidate string.
// By default a candidate also scores each run of consecutive words as long as the query.
func WithWholeString() MatcherOption {
	return func(m *Matcher) error {
		m.wholeString = true
		return nil
	}
}

// NewMatcher creates a matcher with DefaultThreshold unless overridden.
func NewMatcher(opts ...MatcherOption) (*Matcher, error) {
	m := &Matcher{threshold: DefaultThreshold}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Threshold returns the configured minimum ratio.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Score returns the similarity of candidate to query in [0, 1].
func (m *Matcher) Score(query, candidate string) float64 {
	if m.wholeString {
		return Ratio(query, candidate)
	}
	return windowedRatio(query, candidate)
}

// Matches reports whether candidate is similar to query. An empty query matches everything.
func (m *Matcher) Matches(query, candidate string) bool {
	if query == "" {
		return true
	}
	return m.Score(query, candidate) >= m.threshold
}

// Matches reports whether candidate is similar to query at threshold using the
// default windowed scoring. Thresholds outside [0, 1] are clamped.
func Matches(query, candidate string, threshold float64) bool {
	if query == "" {
		return true
	}
	return windowedRatio(query, candidate) >= clamp(threshold)
}

// Ratio returns the case-insensitive sequence-matching ratio 2*M/T of a and b,
// where M is the number of matched runes and T the total rune count of both.
// Two empty strings have ratio 1.
func Ratio(a, b string) float64 {
	sm := difflib.NewMatcher(runes(a), runes(b))
	return sm.Ratio()
}

// windowedRatio returns the best ratio of query against the whole candidate and
// against every window of consecutive candidate words with the query's word count.
func windowedRatio(query, candidate string) float64 {
	best := Ratio(query, candidate)
	if best == 1 {
		return best
	}

	size := len(strings.Fields(query))
	words := strings.Fields(candidate)
	if size == 0 || len(words) <= size {
		return best
	}

	for i := 0; i+size <= len(words); i++ {
		r := Ratio(query, strings.Join(words[i:i+size], " "))
		if r > best {
			best = r
			if best == 1 {
				break
			}
		}
	}
	return best
}

// runes lowercases s and splits it into single-rune strings.
func runes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.ToLower(s), "")
}

func clamp(threshold float64) float64 {
	switch {
	case threshold < 0:
		return 0
	case threshold > 1:
		return 1
	default:
		return threshold
	}
}
