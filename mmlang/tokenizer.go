package mmlang

import "errors"

// isWhitespace reports whether c separates tokens: the space character
// or any non-graphic ASCII byte. There is no finer separator notion.
func isWhitespace(c byte) bool {
	return c <= ' ' || c == 0x7F
}

// Tokenizer produces the lazy token sequence over a Buffer: maximal
// runs of non-whitespace bytes. Forward-only; Current without Consume
// is the single token of lookahead.
type Tokenizer struct {
	buffer   *Buffer
	current  *Token
	interned map[string]string
}

func NewTokenizer(buffer *Buffer) *Tokenizer {
	return &Tokenizer{
		buffer:   buffer,
		interned: make(map[string]string),
	}
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.next()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

func (t *Tokenizer) next() (*Token, error) {
	if err := t.skipWhitespace(); err != nil {
		return nil, err
	}

	startPos := t.buffer.Pos()

	if _, err := t.buffer.Peek(); err != nil {
		if errors.Is(err, ErrEndOfInput) {
			return &Token{Kind: TokenEOF, Pos: startPos}, nil
		}
		return nil, err
	}

	for {
		c, err := t.buffer.Peek()
		if errors.Is(err, ErrEndOfInput) {
			break
		}
		if err != nil {
			return nil, err
		}
		if isWhitespace(c) {
			break
		}
		if _, err := t.buffer.Advance(); err != nil {
			return nil, err
		}
	}

	text := t.intern(string(t.buffer.content[startPos.Offset:t.buffer.position]))
	return &Token{
		Kind: KindOf(text),
		Text: text,
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) skipWhitespace() error {
	for {
		c, err := t.buffer.Peek()
		if errors.Is(err, ErrEndOfInput) {
			return nil
		}
		if err != nil {
			return err
		}
		if !isWhitespace(c) {
			return nil
		}
		if _, err := t.buffer.Advance(); err != nil {
			return err
		}
	}
}

// intern dedupes token texts so the many repetitions of the same math
// symbol share one string.
func (t *Tokenizer) intern(text string) string {
	if s, ok := t.interned[text]; ok {
		return s
	}
	t.interned[text] = text
	return text
}
