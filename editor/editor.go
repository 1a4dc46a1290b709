package editor

import (
	"io"
	"log"

	"ledit/key"
)

// Editor runs interactive edit sessions. Keys read from the input
// stream are dispatched against the buffer and the line is repainted
// after every edit. Sessions are synchronous and must not share a
// descriptor.
type Editor struct {
	in     *key.Reader
	out    io.Writer
	maxlen int
	logger *log.Logger
}

// New returns an editor reading keystrokes from in and painting to
// out. The caller is responsible for having put the input terminal in
// raw mode (see the term package).
func New(in io.Reader, out io.Writer) *Editor {
	return &Editor{in: key.NewReader(in), out: out, maxlen: -1}
}

// SetMaxLen caps the combined line length. Negative means unbounded,
// the default.
func (e *Editor) SetMaxLen(n int) {
	e.maxlen = n
}

// SetLogger directs reports about keys with no binding to l. By
// default they are not reported anywhere.
func (e *Editor) SetLogger(l *log.Logger) {
	e.logger = l
}

func (e *Editor) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}

// Edit runs one session over pre and post with the cursor between
// them and returns the finished line once Enter is pressed. Decode
// errors and write errors abort the session.
func (e *Editor) Edit(pre, post string) (string, error) {
	buf := NewBuffer(pre, post, e.maxlen)
	r := renderer{w: e.out}
	if err := r.saveAnchor(); err != nil {
		return "", err
	}
	if err := r.paint(buf, 0); err != nil {
		return "", err
	}
	for {
		k, err := e.in.ReadKey()
		if err != nil {
			return "", err
		}
		switch o := resolve(k); o {
		case opDone:
			return buf.String(), nil
		case opIgnore:
			continue
		case opUnsupported:
			e.logf("editor: key %v not supported", k)
			continue
		default:
			erase := e.apply(buf, o, k)
			if err := r.paint(buf, erase); err != nil {
				return "", err
			}
		}
	}
}

// apply performs one edit operation, returning the number of display
// cells it vacated at the end of the line.
func (e *Editor) apply(buf *Buffer, o op, k key.Key) int {
	switch o {
	case opInsert:
		buf.Insert(k.Rune)
	case opLeft:
		buf.Left()
	case opRight:
		buf.Right()
	case opHome:
		buf.Home()
	case opEnd:
		buf.End()
	case opDeleteForward:
		return buf.DeleteForward()
	case opBackspace:
		return buf.Backspace()
	case opKillToEnd:
		return buf.KillToEnd()
	case opKillToStart:
		return buf.KillToStart()
	case opDeleteWordBack:
		return buf.DeleteWordBack()
	case opTranspose:
		buf.Transpose()
	case opWordLeft:
		buf.WordLeft()
	case opWordRight:
		buf.WordRight()
	}
	return 0
}
