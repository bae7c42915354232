// Package recency models the bounded short-term memory a person carries while
// working through a manual arithmetic procedure. A Window remembers the last
// few elementary sub-steps; re-encountering one inside the window means the
// intermediate result is still "warm" and costs less to produce again.
package recency

// Key canonically identifies one elementary sub-step (operation kind plus the
// digit values and carry/borrow state), so that two occurrences of the same
// step are recognized as repeats.
type Key string

// Window is a bounded FIFO of the most recent step keys, most-recent last.
// Observe is its sole mutator. A Window belongs to a single top-level
// estimator call and is never shared across calls.
type Window struct {
	size int
	keys []Key
}

// NewWindow creates a window remembering at most size keys. Size 0 disables
// the memory entirely: nothing is retained and nothing repeats.
func NewWindow(size int) *Window {
	if size < 0 {
		size = 0
	}
	return &Window{size: size, keys: make([]Key, 0, size)}
}

// Size returns the configured capacity.
func (w *Window) Size() int { return w.size }

// Len returns the number of keys currently remembered.
func (w *Window) Len() int { return len(w.keys) }

// Observe records one occurrence of key and reports whether it was already in
// the window. A present key is reinserted as most recent; an absent key is
// appended, evicting the oldest entry when the window is full.
func (w *Window) Observe(key Key) bool {
	if w.size == 0 {
		return false
	}
	for i, k := range w.keys {
		if k == key {
			w.keys = append(append(w.keys[:i], w.keys[i+1:]...), key)
			return true
		}
	}
	w.keys = append(w.keys, key)
	if len(w.keys) > w.size {
		w.keys = w.keys[1:]
	}
	return false
}
