package mmlang

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultCapacity bounds how much source a Buffer will hold. Metamath
// databases are loaded whole; set.mm is well under this.
const DefaultCapacity = 100_000_000

// Buffer owns the bytes of one source file and a monotonic read cursor
// over them. Content is immutable after load.
type Buffer struct {
	source   *Source
	content  []byte
	position int
	line     int
	column   int
}

func NewBuffer(name string, content string) *Buffer {
	return &Buffer{
		source:  NewSource(name, content),
		content: []byte(content),
		line:    1,
		column:  1,
	}
}

// OpenFile reads the whole file at path into a buffer of the given
// capacity in one bulk read. A non-positive capacity selects
// DefaultCapacity. Input larger than the capacity is an error, never a
// truncation.
func OpenFile(path string, capacity int) (*Buffer, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	region := make([]byte, capacity)
	n, err := io.ReadFull(f, region)
	if err == nil {
		// the region is full, anything left in the file does not fit
		var probe [1]byte
		if m, _ := f.Read(probe[:]); m > 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrBufferOverflow)
		}
	} else if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read source: %w", err)
	}

	content := region[:n]
	return &Buffer{
		source:  NewSource(path, string(content)),
		content: content,
		line:    1,
		column:  1,
	}, nil
}

func (b *Buffer) Source() *Source {
	return b.source
}

// Len is the number of bytes loaded.
func (b *Buffer) Len() int {
	return len(b.content)
}

// Position is the offset of the next unread byte; never decreases.
func (b *Buffer) Position() int {
	return b.position
}

func (b *Buffer) Pos() Pos {
	return Pos{
		Source: b.source,
		Offset: b.position,
		Line:   b.line,
		Column: b.column,
	}
}

// Peek returns the byte at the cursor without consuming it.
// ErrEndOfInput past the end; bytes above 127 are rejected, the format
// is 7-bit ASCII.
func (b *Buffer) Peek() (byte, error) {
	if b.position >= len(b.content) {
		return 0, ErrEndOfInput
	}
	c := b.content[b.position]
	if c > 127 {
		return 0, WithPos(NonASCIIError{Byte: c}, b.Pos())
	}
	return c, nil
}

// Advance consumes and returns the byte at the cursor.
func (b *Buffer) Advance() (byte, error) {
	c, err := b.Peek()
	if err != nil {
		if errors.Is(err, ErrEndOfInput) {
			return 0, WithPos(ErrEndOfInput, b.Pos())
		}
		return 0, err
	}
	b.position++
	if c == '\n' {
		b.line++
		b.column = 1
	} else {
		b.column++
	}
	return c, nil
}
