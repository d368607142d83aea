package table

import "sync"

// Table is a generic in-memory keyed table. Every inserted row is assigned the
// next sequential uint64 id, starting at 1; ids are never reused, not even
// after a Delete. It is safe for concurrent use.
//
// Individual operations are atomic, but nothing spans multiple calls: any
// invariant covering several rows (or a read-modify-write of one row) must be
// enforced by the caller under its own lock.
type Table[Row any] struct {
	mu     sync.RWMutex
	rows   map[uint64]Row
	order  []uint64 // ids in insertion order; deleted ids are skipped on read
	nextID uint64
}

// New returns an empty table whose first Insert will be assigned id 1.
func New[Row any]() *Table[Row] {
	return &Table[Row]{
		rows:   make(map[uint64]Row),
		nextID: 1,
	}
}

// Insert stores the row under the next sequential id and returns that id.
func (t *Table[Row]) Insert(row Row) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	t.rows[id] = row
	t.order = append(t.order, id)
	return id
}

// Lookup returns the row stored under id, or false if there is none. The
// existence check and the fetch are a single atomic step, so callers never
// race between checking and reading.
func (t *Table[Row]) Lookup(id uint64) (Row, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// Contains reports whether a row is stored under id.
func (t *Table[Row]) Contains(id uint64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.rows[id]
	return ok
}

// Delete removes the row stored under id. Deleting an absent id is a no-op.
// The id is not reusable afterwards.
func (t *Table[Row]) Delete(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.rows, id)
}

// All returns a snapshot of the live rows in insertion order. The caller may
// keep the slice; later table mutations do not affect it.
func (t *Table[Row]) All() []Row {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]Row, 0, len(t.rows))
	for _, id := range t.order {
		if row, ok := t.rows[id]; ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// Len returns the number of live rows.
func (t *Table[Row]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.rows)
}
