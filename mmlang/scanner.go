package mmlang

import (
	"fmt"
	"iter"
)

// Statement is one top-level statement: the optional label, the keyword
// that introduced it, and the body tokens up to but excluding the $.
// terminator, comments removed. Semantic interpretation of the body is
// a later layer's job.
type Statement struct {
	Label   string
	Keyword TokenKind
	Body    []*Token
	Pos     Pos
}

// Scanner drives one forward pass over the token stream, recognizing
// top-level statements. Any error aborts the scan.
type Scanner struct {
	tokenizer *Tokenizer
}

func NewScanner(tokenizer *Tokenizer) *Scanner {
	return &Scanner{
		tokenizer: tokenizer,
	}
}

func (s *Scanner) ScanAll() ([]*Statement, error) {
	var statements []*Statement
	for statement, err := range s.Statements() {
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}
	return statements, nil
}

func (s *Scanner) Statements() iter.Seq2[*Statement, error] {
	return func(yield func(*Statement, error) bool) {
		for {
			token, err := s.tokenizer.Current()
			if err != nil {
				yield(nil, err)
				return
			}
			s.tokenizer.Consume()

			switch token.Kind {

			case TokenEOF:
				return

			case TokenCommentOpen:
				if err := s.skipComment(token); err != nil {
					yield(nil, err)
					return
				}

			case TokenConstant:
				body, err := s.readBody(token)
				if err != nil {
					yield(nil, err)
					return
				}
				if len(body) == 0 {
					yield(nil, WithPos(ErrEmptyDeclaration, token.Pos))
					return
				}
				if !yield(&Statement{Keyword: token.Kind, Body: body, Pos: token.Pos}, nil) {
					return
				}

			case TokenVariable, TokenDisjoint:
				body, err := s.readBody(token)
				if err != nil {
					yield(nil, err)
					return
				}
				if !yield(&Statement{Keyword: token.Kind, Body: body, Pos: token.Pos}, nil) {
					return
				}

			case TokenBlockOpen, TokenBlockClose:
				// accepted, no scope stack here

			case TokenSymbol:
				label := token
				keyword, err := s.tokenizer.Current()
				if err != nil {
					yield(nil, err)
					return
				}
				s.tokenizer.Consume()

				switch keyword.Kind {

				case TokenEOF:
					yield(nil, WithPos(
						fmt.Errorf("after label %q: %w", label.Text, ErrEndOfInput),
						keyword.Pos,
					))
					return

				case TokenFloating, TokenEssential, TokenAxiom, TokenProvable:
					body, err := s.readBody(keyword)
					if err != nil {
						yield(nil, err)
						return
					}
					if !yield(&Statement{
						Label:   label.Text,
						Keyword: keyword.Kind,
						Body:    body,
						Pos:     label.Pos,
					}, nil) {
						return
					}

				default:
					yield(nil, WithPos(
						fmt.Errorf("after label %q: %w", label.Text, UnknownKeywordError{Token: keyword}),
						keyword.Pos,
					))
					return
				}

			default:
				yield(nil, WithPos(UnknownKeywordError{Token: token}, token.Pos))
				return
			}
		}
	}
}

// skipComment consumes everything up to the closing $) token. Inner $(
// tokens are plain comment text, comments do not nest.
func (s *Scanner) skipComment(open *Token) error {
	for {
		token, err := s.tokenizer.Current()
		if err != nil {
			return err
		}
		s.tokenizer.Consume()

		switch token.Kind {
		case TokenEOF:
			return WithPos(ErrUnterminatedComment, open.Pos)
		case TokenCommentClose:
			return nil
		}
	}
}

// readBody collects tokens up to the $. terminator, skipping embedded
// comments.
func (s *Scanner) readBody(start *Token) ([]*Token, error) {
	var body []*Token
	for {
		token, err := s.tokenizer.Current()
		if err != nil {
			return nil, err
		}
		s.tokenizer.Consume()

		switch token.Kind {
		case TokenEOF:
			return nil, WithPos(
				fmt.Errorf("in %s statement: %w", start.Kind, ErrUnterminatedStatement),
				start.Pos,
			)
		case TokenTerminator:
			return body, nil
		case TokenCommentOpen:
			if err := s.skipComment(token); err != nil {
				return nil, err
			}
		default:
			body = append(body, token)
		}
	}
}
