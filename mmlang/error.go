package mmlang

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEndOfInput            = errors.New("unexpected end of input")
	ErrBufferOverflow        = errors.New("source exceeds buffer capacity")
	ErrEmptyDeclaration      = errors.New("empty declaration list")
	ErrUnterminatedStatement = errors.New("statement not terminated by $.")
	ErrUnterminatedComment   = errors.New("comment not terminated by $)")
)

type NonASCIIError struct {
	Byte byte
}

func (e NonASCIIError) Error() string {
	return fmt.Sprintf("non-ASCII byte 0x%02X", e.Byte)
}

type UnknownKeywordError struct {
	Token *Token
}

func (e UnknownKeywordError) Error() string {
	return fmt.Sprintf("cannot start a statement with %q", e.Token.Text)
}

// PosError renders an error with the source location and a caret under
// the offending column.
type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d\n", p.Err.Error(), p.Pos.Source.Name, p.Pos.Line, p.Pos.Column)

	lines := p.Pos.Source.Lines
	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// source is 7-bit ASCII, every byte is one column wide except tabs
		col := p.Pos.Column - 1
		for i := 0; i < col && i < len(line); i++ {
			if line[i] == '\t' {
				sb.WriteByte('\t')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
