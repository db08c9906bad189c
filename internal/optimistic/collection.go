// Package optimistic applies mutations to an in-memory collection before the
// remote store confirms them, then either reconciles the canonical record or
// restores the previous state.
package optimistic

// Entity is a record that can live in a Collection. Clone must return a deep
// copy so snapshots never share mutable state.
type Entity[T any] interface {
	Key() string
	Clone() T
}

// Collection is an immutable, versioned list of entities. Every change returns
// a new Collection; the receiver is never modified.
type Collection[T Entity[T]] struct {
	items   []T
	version uint64
}

func NewCollection[T Entity[T]](items []T) Collection[T] {
	cloned := make([]T, len(items))
	for i, it := range items {
		cloned[i] = it.Clone()
	}
	return Collection[T]{items: cloned}
}

func (c Collection[T]) Version() uint64 { return c.version }

func (c Collection[T]) Len() int { return len(c.items) }

// Items returns copies of the entities in display order.
func (c Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	for i, it := range c.items {
		out[i] = it.Clone()
	}
	return out
}

func (c Collection[T]) Find(key string) (T, bool) {
	if i := c.index(key); i >= 0 {
		return c.items[i].Clone(), true
	}
	var zero T
	return zero, false
}

func (c Collection[T]) index(key string) int {
	for i, it := range c.items {
		if it.Key() == key {
			return i
		}
	}
	return -1
}

func (c Collection[T]) withItems(items []T) Collection[T] {
	return Collection[T]{items: items, version: c.version + 1}
}

func (c Collection[T]) insertAt(pos int, item T) Collection[T] {
	if pos < 0 {
		pos = 0
	}
	if pos > len(c.items) {
		pos = len(c.items)
	}
	items := make([]T, 0, len(c.items)+1)
	items = append(items, c.items[:pos]...)
	items = append(items, item.Clone())
	items = append(items, c.items[pos:]...)
	return c.withItems(items)
}

func (c Collection[T]) replaceAt(pos int, item T) Collection[T] {
	items := make([]T, len(c.items))
	copy(items, c.items)
	items[pos] = item.Clone()
	return c.withItems(items)
}

func (c Collection[T]) removeAt(pos int) Collection[T] {
	items := make([]T, 0, len(c.items)-1)
	items = append(items, c.items[:pos]...)
	items = append(items, c.items[pos+1:]...)
	return c.withItems(items)
}

// mapItems returns a collection with fn applied to every entity. The version
// is kept because fn only recomputes derived fields.
func (c Collection[T]) mapItems(fn func(T) T) Collection[T] {
	items := make([]T, len(c.items))
	for i, it := range c.items {
		items[i] = fn(it)
	}
	return Collection[T]{items: items, version: c.version}
}
