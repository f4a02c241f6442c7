// Package tally counts how often each face of a die came up.
package tally

import (
	"fmt"
	"sync/atomic"

	"github.com/tutils/tkey"
	"github.com/tutils/tkey/counter"
)

var _ counter.Counter = &faceCounter{}

type faceCounter struct {
	value int64
}

// Value implements Counter.
func (c *faceCounter) Value() int64 {
	return atomic.LoadInt64(&c.value)
}

// Add implements Counter.
func (c *faceCounter) Add(n int64) {
	atomic.AddInt64(&c.value, n)
}

// Tally holds one counter per face, faces numbered from 1. Safe for
// concurrent use.
type Tally struct {
	faces []faceCounter
}

func New(faces int) *Tally {
	return &Tally{faces: make([]faceCounter, faces)}
}

// Faces returns the number of faces tracked
func (t *Tally) Faces() int {
	return len(t.faces)
}

// Face returns the counter for face, or nil when face is out of range
func (t *Tally) Face(face int) counter.Counter {
	if face < 1 || face > len(t.faces) {
		return nil
	}
	return &t.faces[face-1]
}

// Add records one roll of face
func (t *Tally) Add(face int) error {
	c := t.Face(face)
	if c == nil {
		return fmt.Errorf("face %d of %d: %w", face, len(t.faces), tkey.ErrInvalidArgument)
	}
	c.Add(1)
	return nil
}

// Count returns the rolls recorded for face
func (t *Tally) Count(face int) int64 {
	if c := t.Face(face); c != nil {
		return c.Value()
	}
	return 0
}

// Counts returns the per-face counts, index 0 holding face 1
func (t *Tally) Counts() []int64 {
	counts := make([]int64, len(t.faces))
	for i := range t.faces {
		counts[i] = t.faces[i].Value()
	}
	return counts
}

// Total returns the number of rolls recorded
func (t *Tally) Total() int64 {
	var total int64
	for i := range t.faces {
		total += t.faces[i].Value()
	}
	return total
}
