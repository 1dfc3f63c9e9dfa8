// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package usage builds a map of path to size from the tab separated
// output of a depth-limited disk usage query.
package usage

import (
	"cmp"
	"context"
	"strconv"
	"strings"

	"cloudeng.io/cmd/duim/internal"
	"golang.org/x/exp/slices"
)

// Record is the size, in bytes, recorded for a single path.
type Record struct {
	Path  string
	Bytes int64
}

// Map is a map of path to size that remembers the order in which
// paths were first added.
type Map struct {
	index   map[string]int
	records []Record
}

// New returns an empty Map.
func New() *Map {
	return &Map{index: map[string]int{}}
}

// Parse creates a Map from lines of the form <size>\t<path>. Lines that
// do not contain exactly one tab, or whose size is not a non-negative
// integer, are ignored. A path that appears more than once takes the
// last size seen for it.
func Parse(ctx context.Context, lines []string) *Map {
	m := New()
	for _, line := range lines {
		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			internal.Log(ctx, internal.LogQuery, "ignoring malformed line", "line", line)
			continue
		}
		size, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil || size < 0 {
			internal.Log(ctx, internal.LogQuery, "ignoring line with invalid size", "line", line)
			continue
		}
		m.Set(parts[1], size)
	}
	return m
}

// Set records size for path. An existing entry for path keeps its
// original position.
func (m *Map) Set(path string, size int64) {
	if i, ok := m.index[path]; ok {
		m.records[i].Bytes = size
		return
	}
	m.index[path] = len(m.records)
	m.records = append(m.records, Record{Path: path, Bytes: size})
}

// Get returns the size recorded for path.
func (m *Map) Get(path string) (int64, bool) {
	i, ok := m.index[path]
	if !ok {
		return 0, false
	}
	return m.records[i].Bytes, true
}

// Len returns the number of entries in the map.
func (m *Map) Len() int {
	return len(m.records)
}

// Records returns the entries in the order in which they were first added.
func (m *Map) Records() []Record {
	return slices.Clone(m.records)
}

// Total returns the size recorded for target, or if there is no entry
// for target, the sum of all recorded sizes.
func (m *Map) Total(target string) int64 {
	if size, ok := m.Get(target); ok {
		return size
	}
	var total int64
	for _, r := range m.records {
		total += r.Bytes
	}
	return total
}

// Sorted returns the entries ordered by decreasing size. Entries of the
// same size remain in the order in which they were first added.
func (m *Map) Sorted() []Record {
	sorted := m.Records()
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return cmp.Compare(b.Bytes, a.Bytes)
	})
	return sorted
}
