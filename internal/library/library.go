// Package library implements the persisted game collections: an ordered,
// title-sorted sequence of entries per category (PC or console) with a
// JSON round-trip to disk.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrIndexOutOfRange is returned for record access outside [0, Len()).
	ErrIndexOutOfRange = errors.New("record index out of range")

	// ErrEmpty is returned when an operation requires at least one record.
	ErrEmpty = errors.New("library is empty")
)

// Record is any entry a Library can hold.
type Record interface {
	GameTitle() string
}

// Library is an ordered collection of game entries of one category. It
// owns its records; callers mutate them only through indices handed out
// by the library.
type Library[T Record] struct {
	records []T
}

// New returns an empty library.
func New[T Record]() *Library[T] {
	return &Library[T]{}
}

// Add appends a record. Sorting is not automatic: the add-game flow
// calls Sort afterward, while in-place edits that do not touch the title
// skip the resort.
func (l *Library[T]) Add(r T) {
	l.records = append(l.records, r)
}

// Sort orders records by title, ascending, case-sensitive byte-wise
// comparison. The sort is stable so equal titles keep insertion order.
func (l *Library[T]) Sort() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].GameTitle() < l.records[j].GameTitle()
	})
}

// Len returns the number of records.
func (l *Library[T]) Len() int { return len(l.records) }

// Records returns the records in order for listing. The slice is shared;
// callers must not grow or shrink it.
func (l *Library[T]) Records() []T { return l.records }

// At returns the record at index i.
func (l *Library[T]) At(i int) (T, error) {
	if i < 0 || i >= len(l.records) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return l.records[i], nil
}

// DeleteAt removes the record at index i. On an out-of-range index the
// library is left unchanged. Callers holding a selection into the
// library must reset it afterward.
func (l *Library[T]) DeleteAt(i int) error {
	if i < 0 || i >= len(l.records) {
		return ErrIndexOutOfRange
	}
	l.records = append(l.records[:i], l.records[i+1:]...)
	return nil
}

// IndexOf returns the current index of the given record, or -1 if it is
// not in the library. Used to re-locate a record after a title edit
// forces a resort.
func (l *Library[T]) IndexOf(r Record) int {
	for i := range l.records {
		if Record(l.records[i]) == r {
			return i
		}
	}
	return -1
}

// Serialize encodes the library as an ordered JSON array capturing every
// field of every record, including the full alternate-configuration
// lists.
func (l *Library[T]) Serialize() ([]byte, error) {
	records := l.records
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal library: %w", err)
	}
	return data, nil
}

// Deserialize reconstructs a library from bytes produced by Serialize.
func Deserialize[T Record](data []byte) (*Library[T], error) {
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &Library[T]{records: records}, nil
}
