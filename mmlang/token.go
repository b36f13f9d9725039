package mmlang

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota

	// ordinary token: math symbol or statement label
	TokenSymbol

	// reserved keywords
	TokenConstant     // $c
	TokenVariable     // $v
	TokenDisjoint     // $d
	TokenFloating     // $f
	TokenEssential    // $e
	TokenAxiom        // $a
	TokenProvable     // $p
	TokenCommentOpen  // $(
	TokenCommentClose // $)
	TokenBlockOpen    // ${
	TokenBlockClose   // $}
	TokenTerminator   // $.

	TokenEOF
)

var keywordKinds = map[string]TokenKind{
	"$c": TokenConstant,
	"$v": TokenVariable,
	"$d": TokenDisjoint,
	"$f": TokenFloating,
	"$e": TokenEssential,
	"$a": TokenAxiom,
	"$p": TokenProvable,
	"$(": TokenCommentOpen,
	"$)": TokenCommentClose,
	"${": TokenBlockOpen,
	"$}": TokenBlockClose,
	"$.": TokenTerminator,
}

// KindOf classifies a token text. Keywords are recognized by literal
// spelling only.
func KindOf(text string) TokenKind {
	if kind, ok := keywordKinds[text]; ok {
		return kind
	}
	return TokenSymbol
}

func (k TokenKind) IsKeyword() bool {
	return k >= TokenConstant && k <= TokenTerminator
}

func (k TokenKind) String() string {
	switch k {
	case TokenSymbol:
		return "symbol"
	case TokenConstant:
		return "$c"
	case TokenVariable:
		return "$v"
	case TokenDisjoint:
		return "$d"
	case TokenFloating:
		return "$f"
	case TokenEssential:
		return "$e"
	case TokenAxiom:
		return "$a"
	case TokenProvable:
		return "$p"
	case TokenCommentOpen:
		return "$("
	case TokenCommentClose:
		return "$)"
	case TokenBlockOpen:
		return "${"
	case TokenBlockClose:
		return "$}"
	case TokenTerminator:
		return "$."
	case TokenEOF:
		return "end of input"
	}
	return "invalid"
}
