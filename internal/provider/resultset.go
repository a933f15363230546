package provider

// ResultSet is an insertion-ordered mapping of result IDs to items. It
// represents the entire candidate universe known to a session: one Search
// fetch creates it wholesale and the next one replaces it wholesale, so a set
// is never mutated once installed.
type ResultSet[T any] struct {
	ids   []string
	items map[string]T
}

// NewResultSet creates an empty result set.
func NewResultSet[T any]() *ResultSet[T] {
	return &ResultSet[T]{items: make(map[string]T)}
}

// Insert adds an item under id. Inserting an existing id replaces the item
// but keeps its original position.
func (rs *ResultSet[T]) Insert(id string, item T) {
	if _, ok := rs.items[id]; !ok {
		rs.ids = append(rs.ids, id)
	}
	rs.items[id] = item
}

// Get returns the item stored under id. Safe on a nil set.
func (rs *ResultSet[T]) Get(id string) (T, bool) {
	if rs == nil {
		var zero T
		return zero, false
	}
	item, ok := rs.items[id]
	return item, ok
}

// Len returns the number of items. Safe on a nil set.
func (rs *ResultSet[T]) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.ids)
}

// Each calls fn for every entry in insertion order. Safe on a nil set.
func (rs *ResultSet[T]) Each(fn func(id string, item T)) {
	if rs == nil {
		return
	}
	for _, id := range rs.ids {
		fn(id, rs.items[id])
	}
}
