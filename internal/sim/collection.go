package sim

type identified interface {
	EntityID() EntityID
}

// Collection is an ordered entity store with deferred removal.
// Remove only marks an entity; Sweep applies all pending removals at once, so
// scans never skip or revisit entries while entities are being removed.
type Collection[T identified] struct {
	items   []T
	pending map[EntityID]struct{}
}

// Add appends an entity.
func (c *Collection[T]) Add(item T) {
	c.items = append(c.items, item)
}

// Len returns the number of stored entities, including ones pending removal.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// At returns a pointer to the entity at index i.
func (c *Collection[T]) At(i int) *T {
	return &c.items[i]
}

// Remove marks an entity for removal at the next Sweep.
func (c *Collection[T]) Remove(id EntityID) {
	if c.pending == nil {
		c.pending = make(map[EntityID]struct{})
	}
	c.pending[id] = struct{}{}
}

// Removed reports whether the entity is pending removal.
func (c *Collection[T]) Removed(id EntityID) bool {
	_, ok := c.pending[id]
	return ok
}

// Each calls fn for every entity not pending removal, in insertion order.
// Entities removed by fn are skipped for the rest of the scan.
func (c *Collection[T]) Each(fn func(*T)) {
	for i := range c.items {
		item := &c.items[i]
		if c.Removed((*item).EntityID()) {
			continue
		}
		fn(item)
	}
}

// Sweep drops every pending entity, keeping the order of the rest.
// It returns how many entities were dropped.
func (c *Collection[T]) Sweep() int {
	if len(c.pending) == 0 {
		return 0
	}
	kept := c.items[:0]
	for _, item := range c.items {
		if !c.Removed(item.EntityID()) {
			kept = append(kept, item)
		}
	}
	dropped := len(c.items) - len(kept)
	clear(c.items[len(kept):])
	c.items = kept
	clear(c.pending)
	return dropped
}

// Snapshot returns a copy of the live entities.
func (c *Collection[T]) Snapshot() []T {
	out := make([]T, 0, len(c.items))
	c.Each(func(item *T) {
		out = append(out, *item)
	})
	return out
}

// Reset discards everything.
func (c *Collection[T]) Reset() {
	c.items = c.items[:0]
	clear(c.pending)
}
