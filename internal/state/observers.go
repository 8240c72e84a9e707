// Package state provides observable value holders for single-threaded
// reactive models. Nothing here is safe for concurrent use; owners
// serialize access.
package state

// Observers is an ordered list of callbacks notified with a value.
type Observers[T any] struct {
	next  int
	items []observer[T]
}

type observer[T any] struct {
	id int
	fn func(T)
}

// Add registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (o *Observers[T]) Add(fn func(T)) (cancel func()) {
	id := o.next
	o.next++
	o.items = append(o.items, observer[T]{id: id, fn: fn})
	return func() {
		for i, it := range o.items {
			if it.id == id {
				o.items = append(o.items[:i:i], o.items[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every registered callback in registration order.
// Callbacks added or removed during Notify take effect on the next call.
func (o *Observers[T]) Notify(v T) {
	snapshot := o.items
	for _, it := range snapshot {
		it.fn(v)
	}
}

// Len reports the number of registered callbacks.
func (o *Observers[T]) Len() int {
	return len(o.items)
}
