package editor

import "ledit/key"

// op identifies an edit operation a key can be bound to.
type op int

const (
	opIgnore op = iota // key has no effect and no repaint
	opDone             // finish the session
	opInsert
	opLeft
	opRight
	opHome
	opEnd
	opDeleteForward
	opBackspace
	opKillToEnd
	opKillToStart
	opDeleteWordBack
	opTranspose
	opWordLeft
	opWordRight
	opUnsupported // recognized key with no behavior yet; reported, not dropped
)

// literalOps binds literal characters to operations. Printable runes
// not listed here insert themselves; control runes not listed here
// are ignored.
var literalOps = map[rune]op{
	'\n': opDone,
	'\r': opDone,
	'\t': opUnsupported,    // reserved for completion
	0x7f: opBackspace,      // delete
	0x08: opBackspace,      // ctrl-H
	0x0b: opKillToEnd,      // ctrl-K
	0x15: opKillToStart,    // ctrl-U
	0x14: opTranspose,      // ctrl-T
	0x17: opDeleteWordBack, // ctrl-W
}

// codeOps binds symbolic keys to operations. Codes not listed here
// (Up, Down, PageUp, PageDown, Insert, Unknown) are deliberate
// extension points with no behavior yet; resolve reports them as
// unsupported so they surface in the session log instead of vanishing.
var codeOps = map[key.Code]op{
	key.Left:      opLeft,
	key.Right:     opRight,
	key.Home:      opHome,
	key.End:       opEnd,
	key.Delete:    opDeleteForward,
	key.CtrlLeft:  opWordLeft,
	key.CtrlRight: opWordRight,
}

// resolve maps a decoded keystroke to the operation it is bound to.
func resolve(k key.Key) op {
	if k.Literal() {
		if o, ok := literalOps[k.Rune]; ok {
			return o
		}
		if k.Rune >= 32 {
			return opInsert
		}
		return opIgnore
	}
	if k.Code == key.Unknown {
		// Well-formed sequence with no binding; nothing to report.
		return opIgnore
	}
	if o, ok := codeOps[k.Code]; ok {
		return o
	}
	return opUnsupported
}
