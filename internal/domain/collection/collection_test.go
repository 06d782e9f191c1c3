package collection

import (
	"errors"
	"testing"
)

type note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

func (n note) ItemID() string { return n.ID }

func sample() []note {
	return []note{
		{ID: "a", Body: "first"},
		{ID: "b", Body: "second"},
		{ID: "c", Body: "third"},
	}
}

func TestFind(t *testing.T) {
	items := sample()

	got, found := Find(items, "b")
	if !found {
		t.Fatal("expected to find b")
	}
	if got.Body != "second" {
		t.Errorf("got %q, want second", got.Body)
	}

	if _, found := Find(items, "missing"); found {
		t.Error("found an item that does not exist")
	}
	if _, found := Find([]note{}, "a"); found {
		t.Error("found an item in an empty collection")
	}
}

func TestAppendDoesNotMutateOriginal(t *testing.T) {
	items := sample()
	merged := Append(items, note{ID: "d", Body: "fourth"})

	if len(items) != 3 {
		t.Fatalf("original mutated, len = %d", len(items))
	}
	if len(merged) != 4 || merged[3].ID != "d" {
		t.Fatalf("append result wrong: %+v", merged)
	}
}

func TestReplaceByIDPreservesOrder(t *testing.T) {
	items := sample()

	merged, err := ReplaceByID(items, note{ID: "b", Body: "rewritten"})
	if err != nil {
		t.Fatal(err)
	}

	if merged[1].ID != "b" || merged[1].Body != "rewritten" {
		t.Errorf("replaced item wrong: %+v", merged[1])
	}
	if merged[0].ID != "a" || merged[2].ID != "c" {
		t.Errorf("order changed: %+v", merged)
	}
	if items[1].Body != "second" {
		t.Error("original collection mutated")
	}
}

func TestReplaceByIDMissing(t *testing.T) {
	_, err := ReplaceByID(sample(), note{ID: "zz"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestDeleteByIDIsolation(t *testing.T) {
	items := sample()

	remaining, err := DeleteByID(items, "b")
	if err != nil {
		t.Fatal(err)
	}

	if len(remaining) != 2 {
		t.Fatalf("len = %d, want 2", len(remaining))
	}
	if remaining[0].ID != "a" || remaining[1].ID != "c" {
		t.Errorf("survivors wrong: %+v", remaining)
	}
	if len(items) != 3 {
		t.Error("original collection mutated")
	}

	if _, err := DeleteByID(items, "zz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestValidateIDs(t *testing.T) {
	if err := ValidateIDs(sample()); err != nil {
		t.Fatalf("valid collection rejected: %v", err)
	}

	if err := ValidateIDs([]note{{ID: "a"}, {ID: ""}}); err == nil {
		t.Error("empty id accepted")
	}
	if err := ValidateIDs([]note{{ID: "a"}, {ID: "a"}}); err == nil {
		t.Error("duplicate id accepted")
	}
}
