package todo

import (
	"math/rand"
	"testing"
)

// TestCursorMovesOnEmptySequence verifies every move on an empty sequence selects nothing
func TestCursorMovesOnEmptySequence(t *testing.T) {
	moves := map[string]func(Cursor) Cursor{
		"first": func(c Cursor) Cursor { return c.First(0) },
		"last":  func(c Cursor) Cursor { return c.Last(0) },
		"next":  func(c Cursor) Cursor { return c.Next(0) },
		"prev":  func(c Cursor) Cursor { return c.Prev(0) },
	}

	for name, move := range moves {
		for _, start := range []Cursor{None(), At(0), At(3)} {
			if got := move(start); !got.IsNone() {
				t.Errorf("%s from %+v on empty sequence = %+v, want none", name, start, got)
			}
		}
	}
}

// TestCursorSaturates verifies next and prev clamp at the ends without wrapping
func TestCursorSaturates(t *testing.T) {
	tests := []struct {
		name  string
		start Cursor
		move  func(Cursor, int) Cursor
		n     int
		want  Cursor
	}{
		{"next from none", None(), Cursor.Next, 3, At(0)},
		{"prev from none", None(), Cursor.Prev, 3, At(2)},
		{"next in middle", At(0), Cursor.Next, 3, At(1)},
		{"next at end", At(2), Cursor.Next, 3, At(2)},
		{"prev at start", At(0), Cursor.Prev, 3, At(0)},
		{"prev in middle", At(2), Cursor.Prev, 3, At(1)},
		{"next past stale end", At(7), Cursor.Next, 3, At(2)},
		{"prev past stale end", At(7), Cursor.Prev, 3, At(2)},
		{"first", At(2), Cursor.First, 3, At(0)},
		{"last", At(0), Cursor.Last, 3, At(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move(tt.start, tt.n); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestCursorValid covers the bounds predicate
func TestCursorValid(t *testing.T) {
	if None().Valid(5) {
		t.Error("unset cursor should never be valid")
	}
	if !At(4).Valid(5) {
		t.Error("index 4 should be valid for length 5")
	}
	if At(5).Valid(5) {
		t.Error("index 5 should be invalid for length 5")
	}
	if At(-1).Valid(5) {
		t.Error("negative index should be invalid")
	}
}

// TestCursorRandomWalkStaysInBounds drives random moves and checks the bound after each
func TestCursorRandomWalkStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 6; n++ {
		c := None()
		for step := 0; step < 200; step++ {
			switch rng.Intn(4) {
			case 0:
				c = c.Next(n)
			case 1:
				c = c.Prev(n)
			case 2:
				c = c.First(n)
			case 3:
				c = c.Last(n)
			}
			if n == 0 && !c.IsNone() {
				t.Fatalf("n=0 step %d: cursor %+v should be none", step, c)
			}
			if i, ok := c.Index(); ok && i >= n {
				t.Fatalf("n=%d step %d: cursor %d out of bounds", n, step, i)
			}
		}
	}
}

// TestCursorClamp verifies stale cursors are pulled back in range
func TestCursorClamp(t *testing.T) {
	if got := At(4).Clamp(2); got != At(1) {
		t.Errorf("At(4).Clamp(2) = %+v, want At(1)", got)
	}
	if got := At(0).Clamp(0); !got.IsNone() {
		t.Errorf("At(0).Clamp(0) = %+v, want none", got)
	}
	if got := None().Clamp(3); !got.IsNone() {
		t.Errorf("None().Clamp(3) = %+v, want none", got)
	}
	if got := At(1).Clamp(3); got != At(1) {
		t.Errorf("At(1).Clamp(3) = %+v, want At(1)", got)
	}
}
