package editor

import (
	"fmt"
	"io"
	"strings"
)

// Escape sequences used for in-place repainting. These three are the
// only sequences the editor ever emits.
const (
	escSaveCursor    = "\x1b[s"
	escRestoreCursor = "\x1b[u"
)

// renderer repaints the edited line in place. The cursor position at
// the start of the session is saved as an anchor; each repaint jumps
// back to it instead of clearing and redrawing the whole line.
type renderer struct {
	w io.Writer
}

// saveAnchor records the current cursor position as the start of the
// edited line. Called once per session, before the first paint.
func (r renderer) saveAnchor() error {
	_, err := io.WriteString(r.w, escSaveCursor)
	return err
}

// paint redraws the line from the anchor and parks the cursor at the
// pre/post boundary. erase is the number of trailing cells vacated by
// the last edit; that many spaces are written to blank stale
// characters before the cursor moves back.
func (r renderer) paint(b *Buffer, erase int) error {
	var out strings.Builder
	out.WriteString(escRestoreCursor)
	out.WriteString(b.Pre())
	out.WriteString(b.Post())
	for i := 0; i < erase; i++ {
		out.WriteByte(' ')
	}
	if back := b.PostLen() + erase; back > 0 {
		fmt.Fprintf(&out, "\x1b[%dD", back)
	}
	_, err := io.WriteString(r.w, out.String())
	return err
}
