// Package pset provides persistent sets of packed 32-bit keys.
//
// Every Insert returns a new logical version; earlier versions never observe
// later insertions. The pathfinder keeps one version per search node.
package pset

import "fmt"

// Set is an immutable set of uint32 keys
type Set interface {
	// Insert returns a set containing the receiver's keys plus k.
	Insert(k uint32) Set
	Contains(k uint32) bool
	Len() int
	// Clear returns an empty set of the same backend.
	Clear() Set
}

// Backend selects a Set implementation
type Backend string

// Backends
const (
	Patricia Backend = "patricia"
	Copying  Backend = "copying"
)

// AllBackends returns every backend for iteration
func AllBackends() []Backend {
	return []Backend{Patricia, Copying}
}

// Validate returns an error for unknown backends
func (b Backend) Validate() error {
	switch b {
	case Patricia, Copying:
		return nil
	}
	return fmt.Errorf("unknown set backend %q", string(b))
}

// Empty returns an empty set of the given backend
func Empty(b Backend) Set {
	switch b {
	case Copying:
		return emptyCopying()
	default:
		return emptyTrie
	}
}
