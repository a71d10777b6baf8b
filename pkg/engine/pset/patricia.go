package pset

import "math/bits"

// Big-endian Patricia trie with path copying. Leaves hold a 32-bit bitmap
// covering 32 consecutive keys, so the low five bits of a key never branch.

const leafBits = 5

type node struct {
	prefix uint32
	// mask is the branching bit of a branch node and zero for a leaf.
	mask        uint32
	bitmap      uint32
	left, right *node
}

func (n *node) isLeaf() bool {
	return n.mask == 0
}

type trie struct {
	root *node
	size int
}

var emptyTrie = &trie{}

func (t *trie) Len() int {
	return t.size
}

func (t *trie) Clear() Set {
	return emptyTrie
}

func (t *trie) Contains(k uint32) bool {
	prefix, bit := splitKey(k)
	n := t.root
	for n != nil {
		if n.isLeaf() {
			return n.prefix == prefix && n.bitmap&bit != 0
		}
		if !matchPrefix(prefix, n.prefix, n.mask) {
			return false
		}
		if prefix&n.mask == 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return false
}

func (t *trie) Insert(k uint32) Set {
	prefix, bit := splitKey(k)
	root, added := insert(t.root, prefix, bit)
	if !added {
		return t
	}
	return &trie{root: root, size: t.size + 1}
}

func insert(n *node, prefix, bit uint32) (*node, bool) {
	if n == nil {
		return &node{prefix: prefix, bitmap: bit}, true
	}
	if n.isLeaf() {
		if n.prefix == prefix {
			if n.bitmap&bit != 0 {
				return n, false
			}
			return &node{prefix: prefix, bitmap: n.bitmap | bit}, true
		}
		return join(prefix, &node{prefix: prefix, bitmap: bit}, n.prefix, n), true
	}
	if !matchPrefix(prefix, n.prefix, n.mask) {
		return join(prefix, &node{prefix: prefix, bitmap: bit}, n.prefix, n), true
	}
	if prefix&n.mask == 0 {
		left, added := insert(n.left, prefix, bit)
		if !added {
			return n, false
		}
		return &node{prefix: n.prefix, mask: n.mask, left: left, right: n.right}, true
	}
	right, added := insert(n.right, prefix, bit)
	if !added {
		return n, false
	}
	return &node{prefix: n.prefix, mask: n.mask, left: n.left, right: right}, true
}

// join combines two subtrees with distinct prefixes under a new branch.
func join(p0 uint32, t0 *node, p1 uint32, t1 *node) *node {
	m := branchingBit(p0, p1)
	b := &node{prefix: maskPrefix(p0, m), mask: m}
	if p0&m == 0 {
		b.left, b.right = t0, t1
	} else {
		b.left, b.right = t1, t0
	}
	return b
}

func splitKey(k uint32) (prefix, bit uint32) {
	return k &^ (1<<leafBits - 1), 1 << (k & (1<<leafBits - 1))
}

// branchingBit returns the highest bit where p0 and p1 differ.
func branchingBit(p0, p1 uint32) uint32 {
	return 1 << (31 - bits.LeadingZeros32(p0^p1))
}

// maskPrefix keeps the bits of k above m.
func maskPrefix(k, m uint32) uint32 {
	return k & (^(m - 1) ^ m)
}

func matchPrefix(k, p, m uint32) bool {
	return maskPrefix(k, m) == p
}
