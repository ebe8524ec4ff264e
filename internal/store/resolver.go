package store

// Resolver memoizes lookups by id so that enriching a batch of records
// resolves each distinct foreign key at most once. Misses are cached too: an
// absent reference yields nil without failing the batch, and the store is not
// asked again for the same id.
//
// A Resolver is scoped to one batch and is not safe for concurrent use.
type Resolver[T any] struct {
	fetch func(int64) (T, bool)
	seen  map[int64]*T
}

func NewResolver[T any](fetch func(int64) (T, bool)) *Resolver[T] {
	return &Resolver[T]{
		fetch: fetch,
		seen:  make(map[int64]*T),
	}
}

// Resolve returns a pointer to the record for id, or nil if it does not
// exist.
func (r *Resolver[T]) Resolve(id int64) *T {
	if v, ok := r.seen[id]; ok {
		return v
	}

	var out *T
	if v, ok := r.fetch(id); ok {
		out = &v
	}
	r.seen[id] = out
	return out
}
