package token

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Tokenize breaks CSS text into tokens. Comments are dropped; whitespace is
// kept because it is significant to selectors (descendant combinator).
func Tokenize(text string) ([]Token, error) {
	l := css.NewLexer(parse.NewInputString(text))
	var toks []Token
	offset := 0
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, &Error{Message: err.Error(), Offset: offset}
			}
			return toks, nil
		}
		raw := string(data)
		t, keep := convert(tt, raw)
		t.Raw = raw
		t.Offset = offset
		offset += len(raw)
		if keep {
			toks = append(toks, t)
		}
	}
}

// NewRangeFromText tokenizes text and returns a range over the tokens.
func NewRangeFromText(text string) (*Range, error) {
	toks, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return NewRange(toks), nil
}

func convert(tt css.TokenType, raw string) (Token, bool) {
	switch tt {
	case css.IdentToken, css.CustomPropertyNameToken:
		return Token{Kind: Ident, Value: unescape(raw)}, true
	case css.FunctionToken:
		return Token{Kind: Function, Value: unescape(strings.TrimSuffix(raw, "("))}, true
	case css.AtKeywordToken:
		return Token{Kind: AtKeyword, Value: unescape(strings.TrimPrefix(raw, "@"))}, true
	case css.HashToken:
		name := strings.TrimPrefix(raw, "#")
		return Token{Kind: Hash, Value: unescape(name), HashID: startsIdentifier(name)}, true
	case css.StringToken:
		return Token{Kind: String, Value: unquote(raw)}, true
	case css.BadStringToken:
		return Token{Kind: BadString}, true
	case css.URLToken:
		return Token{Kind: URL, Value: raw}, true
	case css.BadURLToken:
		return Token{Kind: BadURL}, true
	case css.DelimToken:
		r, _ := utf8.DecodeRuneInString(raw)
		return Token{Kind: Delim, Delim: r, Value: raw}, true
	case css.NumberToken:
		return numeric(Number, raw, ""), true
	case css.PercentageToken:
		num, _ := splitNumber(raw)
		return numeric(Percentage, num, "%"), true
	case css.DimensionToken:
		num, unit := splitNumber(raw)
		return numeric(Dimension, num, unescape(unit)), true
	case css.UnicodeRangeToken:
		return Token{Kind: UnicodeRange, Value: raw}, true
	case css.IncludeMatchToken:
		return Token{Kind: IncludeMatch}, true
	case css.DashMatchToken:
		return Token{Kind: DashMatch}, true
	case css.PrefixMatchToken:
		return Token{Kind: PrefixMatch}, true
	case css.SuffixMatchToken:
		return Token{Kind: SuffixMatch}, true
	case css.SubstringMatchToken:
		return Token{Kind: SubstringMatch}, true
	case css.ColumnToken:
		return Token{Kind: Column}, true
	case css.WhitespaceToken:
		return Token{Kind: Whitespace}, true
	case css.CDOToken:
		return Token{Kind: CDO}, true
	case css.CDCToken:
		return Token{Kind: CDC}, true
	case css.ColonToken:
		return Token{Kind: Colon}, true
	case css.SemicolonToken:
		return Token{Kind: Semicolon}, true
	case css.CommaToken:
		return Token{Kind: Comma}, true
	case css.LeftBracketToken:
		return Token{Kind: LeftBracket}, true
	case css.RightBracketToken:
		return Token{Kind: RightBracket}, true
	case css.LeftParenthesisToken:
		return Token{Kind: LeftParen}, true
	case css.RightParenthesisToken:
		return Token{Kind: RightParen}, true
	case css.LeftBraceToken:
		return Token{Kind: LeftBrace}, true
	case css.RightBraceToken:
		return Token{Kind: RightBrace}, true
	}
	// comments and empty tokens
	return Token{}, false
}

func numeric(kind Kind, num, unit string) Token {
	t := Token{Kind: kind, Value: unit}
	if num != "" && (num[0] == '+' || num[0] == '-') {
		t.Sign = rune(num[0])
	}
	t.Integer = !strings.ContainsAny(num, ".eE")
	t.Number, _ = strconv.ParseFloat(num, 64)
	return t
}
