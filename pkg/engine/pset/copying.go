package pset

import (
	g "github.com/zyedidia/generic"
	"github.com/zyedidia/generic/hashset"
)

const copyingCapacity = 16

// copying is the simple backend: every new version copies the whole hash set.
type copying struct {
	set *hashset.Set[uint32]
}

func emptyCopying() *copying {
	return &copying{set: hashset.New[uint32](copyingCapacity, g.Equals[uint32], g.HashUint32)}
}

func (c *copying) Len() int {
	return c.set.Size()
}

func (c *copying) Clear() Set {
	return emptyCopying()
}

func (c *copying) Contains(k uint32) bool {
	return c.set.Has(k)
}

func (c *copying) Insert(k uint32) Set {
	if c.set.Has(k) {
		return c
	}
	next := c.set.Copy()
	next.Put(k)
	return &copying{set: next}
}
