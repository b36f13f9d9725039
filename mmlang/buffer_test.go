package mmlang

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBufferCursor(t *testing.T) {
	buffer := NewBuffer("test.mm", "ab")

	// Peek is idempotent and non-consuming
	c1, err := buffer.Peek()
	if err != nil {
		t.Fatal(err)
	}
	c2, err := buffer.Peek()
	if err != nil {
		t.Fatal(err)
	}
	if c1 != 'a' || c2 != 'a' {
		t.Fatalf("got %c %c", c1, c2)
	}
	if buffer.Position() != 0 {
		t.Fatalf("got %d", buffer.Position())
	}

	c, err := buffer.Advance()
	if err != nil {
		t.Fatal(err)
	}
	if c != 'a' {
		t.Fatalf("got %c", c)
	}
	if buffer.Position() != 1 {
		t.Fatalf("got %d", buffer.Position())
	}

	c, err = buffer.Advance()
	if err != nil {
		t.Fatal(err)
	}
	if c != 'b' {
		t.Fatalf("got %c", c)
	}

	// at end of input
	if _, err := buffer.Peek(); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("got %v", err)
	}
	if _, err := buffer.Advance(); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("got %v", err)
	}
	if buffer.Position() != buffer.Len() {
		t.Fatalf("got %d", buffer.Position())
	}
}

func TestBufferPositionInvariant(t *testing.T) {
	buffer := NewBuffer("test.mm", "foo bar\nbaz")
	last := -1
	for {
		if buffer.Position() < 0 || buffer.Position() > buffer.Len() {
			t.Fatalf("position %d out of range", buffer.Position())
		}
		if buffer.Position() < last {
			t.Fatal("position went backwards")
		}
		last = buffer.Position()
		if _, err := buffer.Advance(); err != nil {
			break
		}
	}
}

func TestBufferNonASCII(t *testing.T) {
	buffer := NewBuffer("test.mm", "ab\xC8d")
	for range 2 {
		if _, err := buffer.Advance(); err != nil {
			t.Fatal(err)
		}
	}

	_, err := buffer.Peek()
	var nonASCII NonASCIIError
	if !errors.As(err, &nonASCII) {
		t.Fatalf("got %v", err)
	}
	if nonASCII.Byte != 0xC8 {
		t.Fatalf("got 0x%02X", nonASCII.Byte)
	}
	var posErr PosError
	if !errors.As(err, &posErr) {
		t.Fatalf("got %v", err)
	}
	if posErr.Pos.Offset != 2 {
		t.Fatalf("got offset %d", posErr.Pos.Offset)
	}

	// cursor does not move past the bad byte
	if buffer.Position() != 2 {
		t.Fatalf("got %d", buffer.Position())
	}
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.mm")
	if err := os.WriteFile(path, []byte("$c foo $.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	buffer, err := OpenFile(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if buffer.Len() != 10 {
		t.Fatalf("got %d", buffer.Len())
	}
	if buffer.Position() != 0 {
		t.Fatalf("got %d", buffer.Position())
	}
	if buffer.Source().Name != path {
		t.Fatalf("got %q", buffer.Source().Name)
	}

	if _, err := OpenFile(filepath.Join(dir, "missing.mm"), 0); err == nil {
		t.Fatal("should error")
	}

	if _, err := OpenFile(path, 4); !errors.Is(err, ErrBufferOverflow) {
		t.Fatalf("got %v", err)
	}

	// content exactly at capacity is fine
	buffer, err = OpenFile(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if buffer.Len() != 10 {
		t.Fatalf("got %d", buffer.Len())
	}
}
