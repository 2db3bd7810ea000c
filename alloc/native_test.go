package alloc

import (
	"errors"
	"testing"
)

// Test_Native_Allocate tests basic allocation and zeroing.
func Test_Native_Allocate(t *testing.T) {
	var a Native[int]

	b, err := a.Allocate(8)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if len(b) != 8 {
		t.Fatalf("Expected 8 slots, got %d", len(b))
	}
	for i, v := range b {
		if v != 0 {
			t.Fatalf("Slot %d not zeroed: %d", i, v)
		}
	}
}

// Test_Native_AllocateZero tests that a zero-slot request succeeds.
func Test_Native_AllocateZero(t *testing.T) {
	var a Native[string]

	b, err := a.Allocate(0)
	if err != nil {
		t.Fatalf("Allocate(0) failed: %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("Expected empty buffer, got %d slots", len(b))
	}
}

// Test_Native_BadCount tests rejection of invalid slot counts.
func Test_Native_BadCount(t *testing.T) {
	var a Native[int]

	if _, err := a.Allocate(-1); !errors.Is(err, ErrBadCount) {
		t.Fatalf("Expected ErrBadCount for negative count, got %v", err)
	}
}

// Test_Native_ConstructDestroy tests the slot lifecycle primitives.
func Test_Native_ConstructDestroy(t *testing.T) {
	var a Native[string]

	b, err := a.Allocate(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Construct(&b[0], "hello"); err != nil {
		t.Fatalf("Construct failed: %v", err)
	}
	if b[0] != "hello" {
		t.Fatalf("Expected hello, got %q", b[0])
	}

	a.Destroy(&b[0])
	if b[0] != "" {
		t.Fatalf("Destroyed slot should read as zero value, got %q", b[0])
	}
}

// Test_Native_RawCopySafe tests the fast-path capability flag.
func Test_Native_RawCopySafe(t *testing.T) {
	if !RawCopySafe[int](Native[int]{}) {
		t.Fatal("Native must report raw copies safe")
	}
	if RawCopySafe[int](NewCounting[int](nil)) {
		t.Fatal("Counting must not report raw copies safe")
	}
}
