package collection

import (
	"errors"
	"testing"
)

func noteValidator(n note) error {
	if n.Body == "" {
		return &ValidationError{Field: "body", Reason: "is required"}
	}
	return nil
}

func TestEditorStartsClosed(t *testing.T) {
	e := NewEditor(noteValidator)
	if e.State() != StateClosed {
		t.Fatalf("state = %s, want closed", e.State())
	}
	if _, err := e.Commit(sample()); !errors.Is(err, ErrNoDraft) {
		t.Errorf("commit with no draft: got %v, want ErrNoDraft", err)
	}
	if err := e.Update(note{}); !errors.Is(err, ErrNoDraft) {
		t.Errorf("update with no draft: got %v, want ErrNoDraft", err)
	}
}

func TestCreatingDraftCommitAppends(t *testing.T) {
	e := NewEditor(noteValidator)
	e.BeginCreate(note{ID: "d", Body: "draft"})

	if e.State() != StateCreating {
		t.Fatalf("state = %s, want creating", e.State())
	}

	items := sample()
	merged, err := e.Commit(items)
	if err != nil {
		t.Fatal(err)
	}

	if len(merged) != 4 || merged[3].ID != "d" {
		t.Fatalf("commit did not append: %+v", merged)
	}
	if e.State() != StateClosed {
		t.Errorf("editor still open after commit: %s", e.State())
	}
	if len(items) != 3 {
		t.Error("input collection mutated")
	}
}

func TestEditingDraftPreservesID(t *testing.T) {
	e := NewEditor(noteValidator)
	existing := sample()[1]
	e.BeginEdit(existing)

	if err := e.Update(note{ID: existing.ID, Body: "edited"}); err != nil {
		t.Fatal(err)
	}

	merged, err := e.Commit(sample())
	if err != nil {
		t.Fatal(err)
	}

	if merged[1].ID != "b" {
		t.Errorf("id changed on edit: %+v", merged[1])
	}
	if merged[1].Body != "edited" {
		t.Errorf("fields not replaced: %+v", merged[1])
	}
	if len(merged) != 3 {
		t.Errorf("edit changed collection size: %d", len(merged))
	}
}

func TestFailedCommitKeepsDraftOpen(t *testing.T) {
	e := NewEditor(noteValidator)
	e.BeginCreate(note{ID: "d"}) // empty body fails validation

	items := sample()
	merged, err := e.Commit(items)
	if err == nil {
		t.Fatal("invalid draft committed")
	}
	if !IsValidationError(err) {
		t.Fatalf("got %T, want ValidationError", err)
	}

	if len(merged) != 3 {
		t.Error("failed commit changed the collection")
	}
	if e.State() != StateCreating {
		t.Errorf("draft discarded on failed commit: %s", e.State())
	}

	// Fix the draft and commit again.
	if err := e.Update(note{ID: "d", Body: "fixed"}); err != nil {
		t.Fatal(err)
	}
	merged, err = e.Commit(items)
	if err != nil {
		t.Fatal(err)
	}
	if len(merged) != 4 {
		t.Errorf("retried commit did not append: %d", len(merged))
	}
}

func TestCancelDiscardsDraft(t *testing.T) {
	e := NewEditor(noteValidator)
	e.BeginEdit(sample()[0])
	e.Cancel()

	if e.State() != StateClosed {
		t.Fatalf("state = %s, want closed", e.State())
	}
	if _, err := e.Commit(sample()); !errors.Is(err, ErrNoDraft) {
		t.Errorf("commit after cancel: got %v, want ErrNoDraft", err)
	}
}

func TestCreateDuplicateIDRejected(t *testing.T) {
	e := NewEditor(noteValidator)
	e.BeginCreate(note{ID: "a", Body: "clone"})

	merged, err := e.Commit(sample())
	if err == nil {
		t.Fatal("duplicate id accepted")
	}
	if len(merged) != 3 {
		t.Error("failed commit changed the collection")
	}
}

func TestBeginDiscardsPriorDraft(t *testing.T) {
	e := NewEditor(noteValidator)
	e.BeginCreate(note{ID: "x", Body: "first draft"})
	e.BeginCreate(note{ID: "y", Body: "second draft"})

	merged, err := e.Commit(sample())
	if err != nil {
		t.Fatal(err)
	}
	if merged[len(merged)-1].ID != "y" {
		t.Errorf("stale draft committed: %+v", merged[len(merged)-1])
	}
}
