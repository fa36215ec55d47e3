package ui

import "unsafe"

// TextBuffer is a caller-owned, fixed-capacity text field backing a
// textbox. Its address identifies the textbox across frames, so keep it
// in a long-lived variable.
type TextBuffer struct {
	buf []byte
	n   int
}

// NewTextBuffer returns an empty buffer holding at most capacity bytes.
func NewTextBuffer(capacity int) *TextBuffer {
	return &TextBuffer{buf: make([]byte, capacity)}
}

// String copies the contents out.
func (b *TextBuffer) String() string { return string(b.buf[:b.n]) }

// view aliases the contents; valid until the buffer is modified.
func (b *TextBuffer) view() string {
	if b.n == 0 {
		return ""
	}
	return unsafe.String(&b.buf[0], b.n)
}

func (b *TextBuffer) Bytes() []byte { return b.buf[:b.n] }
func (b *TextBuffer) Len() int      { return b.n }
func (b *TextBuffer) Cap() int      { return len(b.buf) }
func (b *TextBuffer) Reset()        { b.n = 0 }

// Set replaces the contents, truncating s to the buffer capacity.
func (b *TextBuffer) Set(s string) {
	b.n = copy(b.buf, s)
}

// Append adds as much of s as fits and returns the number of bytes taken.
func (b *TextBuffer) Append(s string) int {
	n := copy(b.buf[b.n:], s)
	b.n += n
	return n
}

// Backspace removes the last UTF-8 sequence. It reports whether anything
// was removed.
func (b *TextBuffer) Backspace() bool {
	if b.n == 0 {
		return false
	}
	b.n--
	for b.n > 0 && b.buf[b.n]&0xc0 == 0x80 {
		b.n--
	}
	return true
}

func (b *TextBuffer) appendBytes(p []byte) int {
	n := copy(b.buf[b.n:], p)
	b.n += n
	return n
}
