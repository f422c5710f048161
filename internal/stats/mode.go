// Package stats computes descriptive statistics over a trip view. Every
// function is read-only with respect to the view.
package stats

import (
	"cmp"
	"encoding/json"
	"slices"
	"strings"
)

// Popular is the most frequent value of a column. Found is false when the
// column had no values to count.
type Popular[T any] struct {
	Value T
	Count int
	Found bool
}

// MarshalJSON encodes a missing mode as null.
func (p Popular[T]) MarshalJSON() ([]byte, error) {
	if !p.Found {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		Value T   `json:"value"`
		Count int `json:"count"`
	}{p.Value, p.Count})
}

// modeFunc returns the most frequent key among n rows. Ties go to the key
// that sorts first under compare, so the result does not depend on row or
// map order.
func modeFunc[K comparable](n int, key func(i int) (K, bool), compare func(a, b K) int) Popular[K] {
	counts := make(map[K]int)
	for i := range n {
		if k, ok := key(i); ok {
			counts[k]++
		}
	}

	var best Popular[K]
	for k, c := range counts {
		if !best.Found || c > best.Count || (c == best.Count && compare(k, best.Value) < 0) {
			best = Popular[K]{Value: k, Count: c, Found: true}
		}
	}
	return best
}

func mode[K cmp.Ordered](n int, key func(i int) (K, bool)) Popular[K] {
	return modeFunc(n, key, cmp.Compare[K])
}

// Count is the number of rows holding one distinct value.
type Count struct {
	Value string `json:"value"`
	Rows  int    `json:"rows"`
}

// frequencies counts every distinct key, most common first and ties in
// ascending lexical order.
func frequencies(n int, key func(i int) string) []Count {
	counts := make(map[string]int)
	for i := range n {
		counts[key(i)]++
	}

	out := make([]Count, 0, len(counts))
	for v, c := range counts {
		out = append(out, Count{Value: v, Rows: c})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if a.Rows != b.Rows {
			return cmp.Compare(b.Rows, a.Rows)
		}
		return strings.Compare(a.Value, b.Value)
	})
	return out
}

// Total sums the row counts.
func Total(counts []Count) int {
	total := 0
	for _, c := range counts {
		total += c.Rows
	}
	return total
}
