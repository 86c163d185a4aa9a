package text

import (
	"iter"
	"slices"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// CharacterIndex lists the characters a set of faces can display and
// which faces provide each of them, ordered by code point.
//
// A CharacterIndex is read-only once built.
type CharacterIndex struct {
	m *treemap.Map // rune -> []string
}

func newCharacterIndex(faces []*Face) *CharacterIndex {
	m := treemap.NewWith(utils.RuneComparator)
	for _, face := range faces {
		for r := range face.Characters() {
			var names []string
			if v, ok := m.Get(r); ok {
				names = v.([]string)
			}
			m.Put(r, append(names, face.Name()))
		}
	}
	return &CharacterIndex{m: m}
}

// Len returns the number of distinct characters.
func (c *CharacterIndex) Len() int {
	return c.m.Size()
}

// Faces returns the names of the faces providing r, in fallback order.
// The returned slice is a copy.
func (c *CharacterIndex) Faces(r rune) []string {
	v, ok := c.m.Get(r)
	if !ok {
		return nil
	}
	return slices.Clone(v.([]string))
}

// Contains reports whether any face provides r.
func (c *CharacterIndex) Contains(r rune) bool {
	_, ok := c.m.Get(r)
	return ok
}

// All iterates characters in ascending order with the names of the
// faces providing each. The yielded slices are copies.
func (c *CharacterIndex) All() iter.Seq2[rune, []string] {
	return func(yield func(rune, []string) bool) {
		it := c.m.Iterator()
		for it.Next() {
			if !yield(it.Key().(rune), slices.Clone(it.Value().([]string))) {
				return
			}
		}
	}
}

// Range iterates characters in [lo, hi] in ascending order.
func (c *CharacterIndex) Range(lo, hi rune) iter.Seq2[rune, []string] {
	return func(yield func(rune, []string) bool) {
		for r, names := range c.All() {
			if r < lo {
				continue
			}
			if r > hi || !yield(r, names) {
				return
			}
		}
	}
}
