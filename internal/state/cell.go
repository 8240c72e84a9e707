package state

// Cell holds a single value and notifies observers when it changes.
type Cell[T comparable] struct {
	value     T
	observers Observers[T]
}

// NewCell returns a Cell holding v.
func NewCell[T comparable](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set stores v and reports whether it differed from the previous value.
// Observers only run when the value changed.
func (c *Cell[T]) Set(v T) bool {
	if c.value == v {
		return false
	}
	c.value = v
	c.observers.Notify(v)
	return true
}

// Update applies fn to the current value and stores the result.
func (c *Cell[T]) Update(fn func(T) T) bool {
	return c.Set(fn(c.value))
}

// Observe registers fn to run with the new value after every change.
func (c *Cell[T]) Observe(fn func(T)) (cancel func()) {
	return c.observers.Add(fn)
}
