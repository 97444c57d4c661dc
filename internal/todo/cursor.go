package todo

// Cursor is an optional index into a sequence. The zero value selects nothing.
//
// A Cursor never refers to an element directly; it is re-validated against the
// live sequence length on every use, so deleting elements cannot leave it
// dangling.
type Cursor struct {
	index int
	set   bool
}

// None returns a cursor that selects nothing.
func None() Cursor {
	return Cursor{}
}

// At returns a cursor selecting index i. Negative indices select nothing.
func At(i int) Cursor {
	if i < 0 {
		return Cursor{}
	}
	return Cursor{index: i, set: true}
}

// Index returns the selected index and whether one is selected.
func (c Cursor) Index() (int, bool) {
	return c.index, c.set
}

// IsNone reports whether the cursor selects nothing.
func (c Cursor) IsNone() bool {
	return !c.set
}

// Valid reports whether the cursor selects an element of a sequence of length n.
// Every read or write through a cursor goes through this check.
func (c Cursor) Valid(n int) bool {
	return c.set && c.index >= 0 && c.index < n
}

// First selects the first element, or nothing if the sequence is empty.
func (c Cursor) First(n int) Cursor {
	if n <= 0 {
		return None()
	}
	return At(0)
}

// Last selects the last element, or nothing if the sequence is empty.
func (c Cursor) Last(n int) Cursor {
	if n <= 0 {
		return None()
	}
	return At(n - 1)
}

// Next moves one element forward, stopping at the last element.
// An unset cursor moves to the first element.
func (c Cursor) Next(n int) Cursor {
	if n <= 0 {
		return None()
	}
	if !c.set {
		return c.First(n)
	}
	if c.index+1 >= n {
		return c.Last(n)
	}
	return At(c.index + 1)
}

// Prev moves one element back, stopping at the first element.
// An unset cursor moves to the last element.
func (c Cursor) Prev(n int) Cursor {
	if n <= 0 {
		return None()
	}
	if !c.set {
		return c.Last(n)
	}
	if c.index-1 < 0 {
		return c.First(n)
	}
	if c.index-1 >= n {
		return c.Last(n)
	}
	return At(c.index - 1)
}

// Clamp pulls a stale cursor back inside a sequence of length n.
// An unset cursor stays unset.
func (c Cursor) Clamp(n int) Cursor {
	if !c.set {
		return c
	}
	if n <= 0 {
		return None()
	}
	if c.index >= n {
		return At(n - 1)
	}
	return c
}
