package app

import "unicode"

// KeyKind distinguishes presses from releases. Releases are always ignored.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRelease
)

// KeyCode identifies a key independently of any terminal library.
type KeyCode int

const (
	// KeyOther is any key the state machine has no binding for.
	KeyOther KeyCode = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Key is a single discrete input event.
type Key struct {
	Kind KeyKind
	Code KeyCode
	Rune rune
}

// Press returns a press event for a non-character key.
func Press(code KeyCode) Key {
	return Key{Kind: KeyPress, Code: code}
}

// Char returns a press event for a character key.
func Char(r rune) Key {
	return Key{Kind: KeyPress, Code: KeyRune, Rune: r}
}

// Release returns a release event for the given key.
func Release(k Key) Key {
	k.Kind = KeyRelease
	return k
}

// IsChar reports whether k is a press of the character r.
func (k Key) IsChar(r rune) bool {
	return k.Code == KeyRune && k.Rune == r
}

// Printable reports whether k carries a character that can be typed into text.
func (k Key) Printable() bool {
	return k.Code == KeyRune && unicode.IsPrint(k.Rune)
}
