package alloc

import (
	"errors"
	"testing"
)

// Test_Counting_Balanced tests that matched lifecycle calls leave the
// counters balanced.
func Test_Counting_Balanced(t *testing.T) {
	c := NewCounting[int](nil)

	b, err := c.Allocate(4)
	if err != nil {
		t.Fatal(err)
	}
	for i := range b {
		if err := c.Construct(&b[i], i); err != nil {
			t.Fatal(err)
		}
	}
	if c.Live() != 4 {
		t.Fatalf("Expected 4 live, got %d", c.Live())
	}
	for i := range b {
		c.Destroy(&b[i])
	}
	c.Deallocate(b)

	st := c.Stats()
	if !st.Balanced() {
		t.Fatalf("Counters not balanced: %+v", st)
	}
	if st.Allocates != 1 || st.Deallocates != 1 || st.Constructs != 4 || st.Destroys != 4 {
		t.Fatalf("Unexpected counts: %+v", st)
	}
}

// Test_Counting_Leak tests that an unreturned buffer is visible in SlotsOut.
func Test_Counting_Leak(t *testing.T) {
	c := NewCounting[byte](nil)

	if _, err := c.Allocate(16); err != nil {
		t.Fatal(err)
	}
	st := c.Stats()
	if st.SlotsOut != 16 {
		t.Fatalf("Expected 16 outstanding slots, got %d", st.SlotsOut)
	}
	if st.Balanced() {
		t.Fatal("Leaked buffer should not report balanced")
	}
}

// Test_Limited_Budget tests budget enforcement and replenishment.
func Test_Limited_Budget(t *testing.T) {
	l := NewLimited[int](nil, 10)

	b, err := l.Allocate(8)
	if err != nil {
		t.Fatal(err)
	}
	if l.Remaining() != 2 {
		t.Fatalf("Expected 2 remaining, got %d", l.Remaining())
	}

	if _, err := l.Allocate(3); !errors.Is(err, ErrNoSpace) {
		t.Fatalf("Expected ErrNoSpace, got %v", err)
	}

	l.Deallocate(b)
	if l.Remaining() != 10 {
		t.Fatalf("Expected full budget back, got %d", l.Remaining())
	}
	if _, err := l.Allocate(10); err != nil {
		t.Fatalf("Full-budget allocation should succeed: %v", err)
	}
}
