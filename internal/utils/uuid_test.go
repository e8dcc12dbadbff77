package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesVersion7(t *testing.T) {
	g := NewUUIDGenerator()

	first, second := g.Generate(), g.Generate()
	if first == second {
		t.Fatal("expected distinct identifiers")
	}

	id, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("expected a valid UUID, got %q: %v", first, err)
	}
	if id.Version() != 7 {
		t.Errorf("expected version 7, got %d", id.Version())
	}
}
