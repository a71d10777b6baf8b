package pset

import (
	"fmt"
	"time"
)

// Stats accumulates operation counts and time spent across all versions
// derived from one Measured set.
type Stats struct {
	Inserts      int64         `json:"inserts"`
	Versions     int64         `json:"versions"`
	Contains     int64         `json:"contains"`
	Clears       int64         `json:"clears"`
	InsertTime   time.Duration `json:"insert_ns"`
	ContainsTime time.Duration `json:"contains_ns"`
	ClearTime    time.Duration `json:"clear_ns"`
}

func (s Stats) String() string {
	return fmt.Sprintf("inserts=%d (%d new versions, %v) contains=%d (%v) clears=%d (%v)",
		s.Inserts, s.Versions, s.InsertTime, s.Contains, s.ContainsTime, s.Clears, s.ClearTime)
}

// Measured wraps a Set and records statistics for it and every version derived from it.
type Measured struct {
	inner Set
	stats *Stats
}

// NewMeasured wraps inner; all derived versions share stats
func NewMeasured(inner Set, stats *Stats) *Measured {
	return &Measured{inner: inner, stats: stats}
}

func (m *Measured) Len() int {
	return m.inner.Len()
}

func (m *Measured) Insert(k uint32) Set {
	start := time.Now()
	next := m.inner.Insert(k)
	m.stats.InsertTime += time.Since(start)
	m.stats.Inserts++
	if next == m.inner {
		return m
	}
	m.stats.Versions++
	return &Measured{inner: next, stats: m.stats}
}

func (m *Measured) Contains(k uint32) bool {
	start := time.Now()
	ok := m.inner.Contains(k)
	m.stats.ContainsTime += time.Since(start)
	m.stats.Contains++
	return ok
}

func (m *Measured) Clear() Set {
	start := time.Now()
	next := m.inner.Clear()
	m.stats.ClearTime += time.Since(start)
	m.stats.Clears++
	return &Measured{inner: next, stats: m.stats}
}
