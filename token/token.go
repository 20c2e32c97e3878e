// Package token turns CSS text into the classified token stream the
// selector parser consumes.
package token

import "strconv"

// Kind classifies a token.
type Kind uint8

const (
	EOF Kind = iota
	Ident
	Function
	AtKeyword
	Hash
	String
	BadString
	URL
	BadURL
	Delim
	Number
	Percentage
	Dimension
	UnicodeRange
	IncludeMatch   // ~=
	DashMatch      // |=
	PrefixMatch    // ^=
	SuffixMatch    // $=
	SubstringMatch // *=
	Column         // ||
	Whitespace
	CDO
	CDC
	Colon
	Semicolon
	Comma
	LeftBracket
	RightBracket
	LeftParen
	RightParen
	LeftBrace
	RightBrace
)

var kindNames = [...]string{
	EOF:            "EOF",
	Ident:          "Ident",
	Function:       "Function",
	AtKeyword:      "AtKeyword",
	Hash:           "Hash",
	String:         "String",
	BadString:      "BadString",
	URL:            "URL",
	BadURL:         "BadURL",
	Delim:          "Delim",
	Number:         "Number",
	Percentage:     "Percentage",
	Dimension:      "Dimension",
	UnicodeRange:   "UnicodeRange",
	IncludeMatch:   "IncludeMatch",
	DashMatch:      "DashMatch",
	PrefixMatch:    "PrefixMatch",
	SuffixMatch:    "SuffixMatch",
	SubstringMatch: "SubstringMatch",
	Column:         "Column",
	Whitespace:     "Whitespace",
	CDO:            "CDO",
	CDC:            "CDC",
	Colon:          "Colon",
	Semicolon:      "Semicolon",
	Comma:          "Comma",
	LeftBracket:    "LeftBracket",
	RightBracket:   "RightBracket",
	LeftParen:      "LeftParen",
	RightParen:     "RightParen",
	LeftBrace:      "LeftBrace",
	RightBrace:     "RightBrace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is one lexical token.
//
// Value holds the unescaped payload: the identifier for Ident, the name
// without "(" for Function, the name without "#" for Hash, the contents of a
// String, the unit of a Dimension. Raw is the source text of the token.
type Token struct {
	Kind   Kind
	Value  string
	Raw    string
	Offset int

	Delim rune // Delim only

	// HashID reports whether a Hash token's name is a valid identifier
	// ("id" type flag as opposed to "unrestricted").
	HashID bool

	// Numeric tokens.
	Number  float64
	Integer bool
	Sign    rune // '+', '-' or 0 when no sign was written
}

// IsDelim reports whether t is the delimiter c.
func (t Token) IsDelim(c rune) bool {
	return t.Kind == Delim && t.Delim == c
}

// opensBlock reports whether t starts a block and returns the closing kind.
func (t Token) opensBlock() (Kind, bool) {
	switch t.Kind {
	case Function, LeftParen:
		return RightParen, true
	case LeftBracket:
		return RightBracket, true
	case LeftBrace:
		return RightBrace, true
	}
	return EOF, false
}

// Error represents a tokenization error.
type Error struct {
	Message string
	Offset  int
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	return e.Message + " at offset " + strconv.Itoa(e.Offset)
}
