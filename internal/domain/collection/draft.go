package collection

import (
	"errors"
	"fmt"
)

// EditorState tracks the draft lifecycle: closed until an add or edit
// begins, then back to closed on cancel or successful commit.
type EditorState string

const (
	StateClosed   EditorState = "closed"
	StateCreating EditorState = "creating"
	StateEditing  EditorState = "editing"
)

// ErrNoDraft is returned when commit or cancel is called with no open draft.
var ErrNoDraft = errors.New("no open draft")

// ValidationError marks a commit blocked by domain validation; it never
// reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validator checks a draft item before commit.
type Validator[T Item] func(T) error

// Editor holds the transient draft for one add/edit interaction. The draft
// is never persisted until Commit; Cancel and a fresh Begin both discard it.
type Editor[T Item] struct {
	state    EditorState
	draft    T
	validate Validator[T]
}

// NewEditor creates a closed editor with the domain's validator.
func NewEditor[T Item](validate Validator[T]) *Editor[T] {
	return &Editor[T]{state: StateClosed, validate: validate}
}

// State returns the current lifecycle state.
func (e *Editor[T]) State() EditorState { return e.state }

// Draft returns the current draft item. Only meaningful while creating or
// editing.
func (e *Editor[T]) Draft() T { return e.draft }

// BeginCreate opens a creating draft. The caller supplies the fresh item
// with its generated id and domain defaults already applied. Any prior
// draft is discarded.
func (e *Editor[T]) BeginCreate(fresh T) {
	e.state = StateCreating
	e.draft = fresh
}

// BeginEdit opens an editing draft as a copy of an existing item. Any prior
// draft is discarded.
func (e *Editor[T]) BeginEdit(existing T) {
	e.state = StateEditing
	e.draft = existing
}

// Update replaces the draft contents while keeping the lifecycle state.
func (e *Editor[T]) Update(draft T) error {
	if e.state == StateClosed {
		return ErrNoDraft
	}
	e.draft = draft
	return nil
}

// Cancel discards the draft with no state change to any collection.
func (e *Editor[T]) Cancel() {
	var zero T
	e.state = StateClosed
	e.draft = zero
}

// Commit validates the draft and merges it into items: a creating draft
// appends, an editing draft fully replaces the element with the matching
// id. On success the editor closes and the merged collection is returned;
// on failure the draft stays open and items is returned unchanged.
func (e *Editor[T]) Commit(items []T) ([]T, error) {
	if e.state == StateClosed {
		return items, ErrNoDraft
	}

	if e.draft.ItemID() == "" {
		return items, &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if e.validate != nil {
		if err := e.validate(e.draft); err != nil {
			return items, err
		}
	}

	var (
		merged []T
		err    error
	)
	switch e.state {
	case StateCreating:
		if _, exists := Find(items, e.draft.ItemID()); exists {
			return items, fmt.Errorf("create %s: id already in collection", e.draft.ItemID())
		}
		merged = Append(items, e.draft)
	case StateEditing:
		merged, err = ReplaceByID(items, e.draft)
		if err != nil {
			return items, err
		}
	}

	e.Cancel()
	return merged, nil
}
