// Package editor implements an interactive single-line editor: a
// cursor-split edit buffer, key dispatch and an incremental renderer
// driven by decoded keystrokes.
package editor

// Buffer holds a line being edited as the text before and after the
// cursor. The cursor is always exactly the boundary between pre and
// post; there is no separate position to keep in sync.
type Buffer struct {
	pre    []rune
	post   []rune
	maxlen int // maximum combined length; negative means unbounded
}

// NewBuffer returns a buffer editing pre followed by post, cursor
// between them. maxlen caps the combined length; pass a negative
// value for no cap. The cap binds insertions only, never the initial
// text.
func NewBuffer(pre, post string, maxlen int) *Buffer {
	return &Buffer{pre: []rune(pre), post: []rune(post), maxlen: maxlen}
}

// String returns the whole line.
func (b *Buffer) String() string {
	return string(b.pre) + string(b.post)
}

// Pre returns the text before the cursor.
func (b *Buffer) Pre() string {
	return string(b.pre)
}

// Post returns the text at and after the cursor.
func (b *Buffer) Post() string {
	return string(b.post)
}

// Len returns the number of characters in the line.
func (b *Buffer) Len() int {
	return len(b.pre) + len(b.post)
}

// PostLen returns the number of characters after the cursor.
func (b *Buffer) PostLen() int {
	return len(b.post)
}

// Insert adds r before the cursor. Inserting into a full buffer is a
// silent no-op.
func (b *Buffer) Insert(r rune) {
	if b.maxlen >= 0 && b.Len() >= b.maxlen {
		return
	}
	b.pre = append(b.pre, r)
}

// Left moves the cursor one character left.
func (b *Buffer) Left() {
	if len(b.pre) == 0 {
		return
	}
	last := b.pre[len(b.pre)-1]
	b.pre = b.pre[:len(b.pre)-1]
	b.post = append([]rune{last}, b.post...)
}

// Right moves the cursor one character right.
func (b *Buffer) Right() {
	if len(b.post) == 0 {
		return
	}
	b.pre = append(b.pre, b.post[0])
	b.post = b.post[1:]
}

// Home moves the cursor to the start of the line.
func (b *Buffer) Home() {
	b.post = append(b.pre, b.post...)
	b.pre = nil
}

// End moves the cursor to the end of the line.
func (b *Buffer) End() {
	b.pre = append(b.pre, b.post...)
	b.post = nil
}

// DeleteForward removes the character at the cursor, reporting the
// number of display cells vacated.
func (b *Buffer) DeleteForward() int {
	if len(b.post) == 0 {
		return 0
	}
	b.post = b.post[1:]
	return 1
}

// Backspace removes the character before the cursor, reporting the
// number of display cells vacated.
func (b *Buffer) Backspace() int {
	if len(b.pre) == 0 {
		return 0
	}
	b.pre = b.pre[:len(b.pre)-1]
	return 1
}

// KillToEnd deletes from the cursor to the end of the line, reporting
// the number of display cells vacated.
func (b *Buffer) KillToEnd() int {
	n := len(b.post)
	b.post = nil
	return n
}

// KillToStart deletes from the start of the line to the cursor,
// reporting the number of display cells vacated.
func (b *Buffer) KillToStart() int {
	n := len(b.pre)
	b.pre = nil
	return n
}

// Transpose swaps the characters on either side of the cursor and
// advances the cursor, or swaps the last two characters when the
// cursor is at the end of the line.
func (b *Buffer) Transpose() {
	if len(b.pre) == 0 || b.Len() < 2 {
		return
	}
	if len(b.post) == 0 {
		n := len(b.pre)
		b.pre[n-2], b.pre[n-1] = b.pre[n-1], b.pre[n-2]
		return
	}
	b.pre[len(b.pre)-1], b.post[0] = b.post[0], b.pre[len(b.pre)-1]
	b.Right()
}

// DeleteWordBack removes the last word before the cursor, reporting
// the number of display cells vacated. No-op when the text before the
// cursor has fewer than two word boundaries.
func (b *Buffer) DeleteWordBack() int {
	bounds := boundaries(b.pre)
	if len(bounds) < 2 {
		return 0
	}
	cut := bounds[len(bounds)-2]
	n := len(b.pre) - cut
	b.pre = b.pre[:cut]
	return n
}

// WordLeft moves the cursor to the second-to-last word boundary of the
// text before it. No-op when fewer than two boundaries exist.
func (b *Buffer) WordLeft() {
	bounds := boundaries(b.pre)
	if len(bounds) < 2 {
		return
	}
	cut := bounds[len(bounds)-2]
	moved := append([]rune(nil), b.pre[cut:]...)
	b.post = append(moved, b.post...)
	b.pre = b.pre[:cut]
}

// WordRight moves the cursor to the second word boundary of the text
// after it. No-op when fewer than two boundaries exist.
func (b *Buffer) WordRight() {
	bounds := boundaries(b.post)
	if len(bounds) < 2 {
		return
	}
	cut := bounds[1]
	b.pre = append(b.pre, b.post[:cut]...)
	b.post = b.post[cut:]
}
