package key

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadLiteral(t *testing.T) {
	r := NewReader(strings.NewReader("a"))
	k, err := r.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if !k.Literal() || k.Rune != 'a' {
		t.Errorf("expected literal 'a', got %v", k)
	}
}

func TestReadLiteralUTF8(t *testing.T) {
	r := NewReader(strings.NewReader("é"))
	k, err := r.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if !k.Literal() || k.Rune != 'é' {
		t.Errorf("expected literal 'é', got %v", k)
	}
}

func TestReadSequences(t *testing.T) {
	tests := []struct {
		input string
		want  Key
	}{
		{"\x1b[A", Key{Code: Up}},
		{"\x1b[D", Key{Code: Left}},
		{"\x1b[H", Key{Code: Home}},
		{"\x1b[3~", Key{Code: Delete}},
		{"\x1b[5~", Key{Code: PageUp}},
		{"\x1b[1;5C", Key{Code: CtrlRight}},
		// Well formed but absent from the table.
		{"\x1b[99~", Key{Code: Unknown}},
		// Intermediate bytes are part of the grammar too.
		{"\x1b[1$p", Key{Code: Unknown}},
	}
	for _, tt := range tests {
		k, err := NewReader(strings.NewReader(tt.input)).ReadKey()
		if err != nil {
			t.Errorf("ReadKey(%q): %v", tt.input, err)
			continue
		}
		if diff := cmp.Diff(tt.want, k); diff != "" {
			t.Errorf("ReadKey(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestReadMalformed(t *testing.T) {
	for _, input := range []string{
		"\x1bX",     // no CSI introducer
		"\x1b[\x07", // control byte where a parameter should be
		"\x1b[1\x07",
		"\x1b[1$\x07", // control byte after an intermediate
	} {
		_, err := NewReader(strings.NewReader(input)).ReadKey()
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("ReadKey(%q): expected ErrMalformed, got %v", input, err)
		}
	}
}

func TestReadSequential(t *testing.T) {
	r := NewReader(strings.NewReader("a\x1b[Ab"))
	want := []Key{{Rune: 'a'}, {Code: Up}, {Rune: 'b'}}
	for i, w := range want {
		k, err := r.ReadKey()
		if err != nil {
			t.Fatalf("ReadKey #%d: %v", i, err)
		}
		if k != w {
			t.Errorf("ReadKey #%d: expected %v, got %v", i, w, k)
		}
	}
	if _, err := r.ReadKey(); err != io.EOF {
		t.Errorf("expected io.EOF at end of stream, got %v", err)
	}
}

func TestReadEOFMidSequence(t *testing.T) {
	_, err := NewReader(strings.NewReader("\x1b[")).ReadKey()
	if err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}
