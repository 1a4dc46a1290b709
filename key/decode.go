package key

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

const esc = 0x1b

// ErrMalformed reports an escape sequence that is structurally broken:
// a missing CSI introducer or a byte outside the sequence grammar.
// This is distinct from a well-formed sequence the decoder does not
// recognize, which decodes to Unknown without error.
var ErrMalformed = errors.New("malformed escape sequence")

// seqTable maps a complete CSI sequence body (parameters,
// intermediates and final byte, the ESC-[ prefix excluded) to its
// code. Sequences missing from the table are well formed but unknown.
var seqTable = map[string]Code{
	"A":    Up,
	"B":    Down,
	"C":    Right,
	"D":    Left,
	"H":    Home,
	"F":    End,
	"2~":   Insert,
	"3~":   Delete,
	"5~":   PageUp,
	"6~":   PageDown,
	"1;5C": CtrlRight,
	"1;5D": CtrlLeft,
}

// Byte classes of the CSI grammar (ECMA-48 5.4).
func isParameter(b byte) bool    { return b >= 0x30 && b <= 0x3f } // 0-9 : ; < = > ?
func isIntermediate(b byte) bool { return b >= 0x22 && b <= 0x2f } // " through /
func isFinal(b byte) bool        { return b >= 0x40 && b <= 0x7e } // @ through ~

// Reader decodes keystrokes from a byte stream. It consumes one byte
// at a time and never reads past the end of the current keystroke, so
// it is safe to hand the underlying stream to another reader between
// keys.
type Reader struct {
	src io.Reader
	buf [1]byte
}

// NewReader returns a Reader decoding keystrokes from src, normally a
// terminal in raw mode.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

func (r *Reader) readByte() (byte, error) {
	for {
		n, err := r.src.Read(r.buf[:])
		if n == 1 {
			return r.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// ReadKey decodes exactly one keystroke. A byte other than ESC yields
// a literal Key; ESC starts an escape sequence which either resolves
// to a symbolic code (Unknown when well formed but unrecognized) or
// fails with ErrMalformed.
func (r *Reader) ReadKey() (Key, error) {
	b, err := r.readByte()
	if err != nil {
		return Key{}, err
	}
	if b != esc {
		ru, err := r.readRune(b)
		if err != nil {
			return Key{}, err
		}
		return Key{Rune: ru}, nil
	}
	body, err := r.readSequence()
	if err != nil {
		return Key{}, err
	}
	code, ok := seqTable[body]
	if !ok {
		code = Unknown
	}
	return Key{Code: code}, nil
}

// readRune completes the UTF-8 encoding started by first. A literal
// keystroke is always a whole Unicode scalar even when the terminal
// delivers it byte by byte.
func (r *Reader) readRune(first byte) (rune, error) {
	if first < utf8.RuneSelf {
		return rune(first), nil
	}
	buf := make([]byte, 1, utf8.UTFMax)
	buf[0] = first
	for !utf8.FullRune(buf) && len(buf) < utf8.UTFMax {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		buf = append(buf, b)
	}
	ru, _ := utf8.DecodeRune(buf)
	return ru, nil
}

// Decoder states after the ESC byte.
type seqState int

const (
	seqIntroducer   seqState = iota // expecting the [ of the CSI prefix
	seqParameter                    // in the parameter run
	seqIntermediate                 // in the intermediate run
)

// readSequence consumes the rest of an escape sequence after the ESC
// byte and returns its body with the CSI prefix stripped.
func (r *Reader) readSequence() (string, error) {
	var body []byte
	state := seqIntroducer
	for {
		b, err := r.readByte()
		if err != nil {
			return "", err
		}
		switch state {
		case seqIntroducer:
			if b != '[' {
				return "", fmt.Errorf("%w: %#x in place of CSI introducer", ErrMalformed, b)
			}
			state = seqParameter
		case seqParameter:
			switch {
			case isParameter(b):
				body = append(body, b)
			case isIntermediate(b):
				body = append(body, b)
				state = seqIntermediate
			case isFinal(b):
				return string(append(body, b)), nil
			default:
				return "", fmt.Errorf("%w: %#x after %q", ErrMalformed, b, body)
			}
		case seqIntermediate:
			switch {
			case isIntermediate(b):
				body = append(body, b)
			case isFinal(b):
				return string(append(body, b)), nil
			default:
				return "", fmt.Errorf("%w: %#x after %q", ErrMalformed, b, body)
			}
		}
	}
}
