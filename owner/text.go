package owner

import "fmt"

// Text owns a string payload. Strings are immutable, so stability holds
// with no handoff contract at all.
type Text struct {
	s string
}

// NewText wraps s.
func NewText(s string) Text {
	return Text{s: s}
}

// Deref returns the owned string.
func (t Text) Deref() string {
	return t.s
}

// Len returns the payload length in bytes.
func (t Text) Len() int {
	return len(t.s)
}

// StableDeref declares the stability capability.
func (t Text) StableDeref() {}

func (t Text) String() string {
	return fmt.Sprintf("Text(%q)", t.s)
}
