// Package collection implements the ordered-collection operations shared by
// every content domain: append, replace-by-id, delete-by-id, and the editor
// draft lifecycle that gates commits. Collections are value slices; every
// operation returns a fresh slice and never mutates its input, so cached
// copies handed to readers stay stable.
package collection

import (
	"errors"
	"fmt"
)

// Item is satisfied by every bucket-resident record type.
type Item interface {
	ItemID() string
}

// ErrNotFound is returned when an id-addressed operation misses.
var ErrNotFound = errors.New("item not found")

// FindIndex returns the position of id in items, or -1.
func FindIndex[T Item](items []T, id string) int {
	for i, item := range items {
		if item.ItemID() == id {
			return i
		}
	}
	return -1
}

// Find returns the item with the given id.
func Find[T Item](items []T, id string) (T, bool) {
	if i := FindIndex(items, id); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// IDs returns the item ids in collection order.
func IDs[T Item](items []T) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ItemID()
	}
	return ids
}

// Append returns a copy of items with item added at the end.
func Append[T Item](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, item)
	return out
}

// ReplaceByID returns a copy of items with the element matching item's id
// fully overwritten in place. The relative order of all other items is
// unchanged. Returns ErrNotFound if no element carries that id.
func ReplaceByID[T Item](items []T, item T) ([]T, error) {
	i := FindIndex(items, item.ItemID())
	if i < 0 {
		return nil, fmt.Errorf("replace %s: %w", item.ItemID(), ErrNotFound)
	}

	out := make([]T, len(items))
	copy(out, items)
	out[i] = item
	return out, nil
}

// DeleteByID returns a copy of items with exactly the element carrying id
// removed; all other items keep their relative order. Returns ErrNotFound
// if no element carries that id.
func DeleteByID[T Item](items []T, id string) ([]T, error) {
	i := FindIndex(items, id)
	if i < 0 {
		return nil, fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}

	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	return out, nil
}

// ValidateIDs checks the collection invariant: every item has a non-empty,
// unique id.
func ValidateIDs[T Item](items []T) error {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		id := item.ItemID()
		if id == "" {
			return errors.New("item with empty id")
		}
		if seen[id] {
			return fmt.Errorf("duplicate item id %s", id)
		}
		seen[id] = true
	}
	return nil
}
