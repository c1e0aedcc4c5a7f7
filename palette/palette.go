package palette

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyID     = errors.New("thread has an empty id")
	ErrDuplicateID = errors.New("duplicate thread id")
)

// Thread is a labeled reference color with its Lab value precomputed.
type Thread struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	RGB  RGB    `json:"rgb"`
	Lab  Lab    `json:"lab"`
}

// NewThread builds a Thread, computing its Lab value from rgb.
func NewThread(id, name string, rgb RGB) Thread {
	return Thread{ID: id, Name: name, RGB: rgb, Lab: RGB2Lab(rgb)}
}

// Palette is an ordered set of threads. Order matters: when two threads are
// equally close to a color, the earlier one wins.
//
// Matching assumes thread IDs are unique; use New or Validate to check.
type Palette []Thread

// New returns a Palette holding threads in the given order.
func New(threads ...Thread) (Palette, error) {
	p := Palette(threads)
	if e := p.Validate(); e != nil {
		return nil, e
	}
	return p, nil
}

// Validate reports an error if any thread ID is empty or repeated.
func (p Palette) Validate() error {
	seen := make(map[string]int, len(p))
	for i, t := range p {
		if t.ID == "" {
			return fmt.Errorf("thread %d: %w", i, ErrEmptyID)
		}
		if j, ok := seen[t.ID]; ok {
			return fmt.Errorf("%w %q at %d and %d", ErrDuplicateID, t.ID, j, i)
		}
		seen[t.ID] = i
	}
	return nil
}

// Lookup returns the thread with the given ID.
func (p Palette) Lookup(id string) (Thread, bool) {
	for _, t := range p {
		if t.ID == id {
			return t, true
		}
	}
	return Thread{}, false
}
