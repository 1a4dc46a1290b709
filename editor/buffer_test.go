package editor

import "testing"

func checkSplit(t *testing.T, b *Buffer, pre, post string) {
	t.Helper()
	if b.Pre() != pre || b.Post() != post {
		t.Errorf("expected (%q, %q), got (%q, %q)", pre, post, b.Pre(), b.Post())
	}
}

func TestInsert(t *testing.T) {
	b := NewBuffer("", "", -1)
	b.Insert('h')
	b.Insert('i')
	checkSplit(t, b, "hi", "")
	if b.Len() != 2 {
		t.Errorf("expected length 2, got %d", b.Len())
	}
}

func TestInsertMaxLen(t *testing.T) {
	b := NewBuffer("a", "b", 2)
	b.Insert('c')
	checkSplit(t, b, "a", "b")

	b = NewBuffer("", "", 1)
	b.Insert('x')
	b.Insert('y')
	checkSplit(t, b, "x", "")
}

func TestLeftRightRoundTrip(t *testing.T) {
	b := NewBuffer("abc", "d", -1)
	b.Left()
	checkSplit(t, b, "ab", "cd")
	b.Right()
	checkSplit(t, b, "abc", "d")
}

func TestMoveBounds(t *testing.T) {
	b := NewBuffer("", "x", -1)
	b.Left()
	checkSplit(t, b, "", "x")

	b = NewBuffer("x", "", -1)
	b.Right()
	checkSplit(t, b, "x", "")
}

func TestHomeEnd(t *testing.T) {
	b := NewBuffer("ab", "cd", -1)
	b.Home()
	checkSplit(t, b, "", "abcd")
	b.End()
	checkSplit(t, b, "abcd", "")
}

func TestDeleteForward(t *testing.T) {
	b := NewBuffer("a", "bc", -1)
	if n := b.DeleteForward(); n != 1 {
		t.Errorf("expected 1 vacated cell, got %d", n)
	}
	checkSplit(t, b, "a", "c")

	b.End()
	if n := b.DeleteForward(); n != 0 {
		t.Errorf("expected no-op at end of line, got %d", n)
	}
}

func TestBackspace(t *testing.T) {
	b := NewBuffer("ab", "c", -1)
	if n := b.Backspace(); n != 1 {
		t.Errorf("expected 1 vacated cell, got %d", n)
	}
	checkSplit(t, b, "a", "c")

	b.Home()
	if n := b.Backspace(); n != 0 {
		t.Errorf("expected no-op at start of line, got %d", n)
	}
}

func TestKillToEnd(t *testing.T) {
	b := NewBuffer("ab", "cde", -1)
	if n := b.KillToEnd(); n != 3 {
		t.Errorf("expected 3 vacated cells, got %d", n)
	}
	checkSplit(t, b, "ab", "")
}

func TestKillToStart(t *testing.T) {
	b := NewBuffer("ab", "cd", -1)
	if n := b.KillToStart(); n != 2 {
		t.Errorf("expected 2 vacated cells, got %d", n)
	}
	checkSplit(t, b, "", "cd")
}

func TestDeleteWordBack(t *testing.T) {
	b := NewBuffer("ab cd", "", -1)
	if n := b.DeleteWordBack(); n != 2 {
		t.Errorf("expected 2 vacated cells, got %d", n)
	}
	checkSplit(t, b, "ab ", "")

	// A single word spans boundary to boundary, so it goes entirely.
	b = NewBuffer("hello", "x", -1)
	if n := b.DeleteWordBack(); n != 5 {
		t.Errorf("expected 5 vacated cells, got %d", n)
	}
	checkSplit(t, b, "", "x")
}

func TestDeleteWordBackNoBoundaries(t *testing.T) {
	for _, pre := range []string{"", "   "} {
		b := NewBuffer(pre, "x", -1)
		if n := b.DeleteWordBack(); n != 0 {
			t.Errorf("DeleteWordBack(%q): expected no-op, got %d", pre, n)
		}
		checkSplit(t, b, pre, "x")
	}
}

func TestWordLeft(t *testing.T) {
	b := NewBuffer("ab cd", "", -1)
	b.WordLeft()
	checkSplit(t, b, "ab ", "cd")
	b.WordLeft()
	checkSplit(t, b, "", "ab cd")
	b.WordLeft()
	checkSplit(t, b, "", "ab cd")
}

func TestWordRight(t *testing.T) {
	b := NewBuffer("", "ab cd", -1)
	b.WordRight()
	checkSplit(t, b, "ab", " cd")
	b.WordRight()
	checkSplit(t, b, "ab cd", "")
	b.WordRight()
	checkSplit(t, b, "ab cd", "")
}

func TestTranspose(t *testing.T) {
	b := NewBuffer("ab", "", -1)
	b.Transpose()
	checkSplit(t, b, "ba", "")

	b = NewBuffer("ab", "c", -1)
	b.Transpose()
	checkSplit(t, b, "acb", "")

	b = NewBuffer("", "ab", -1)
	b.Transpose()
	checkSplit(t, b, "", "ab")
}
