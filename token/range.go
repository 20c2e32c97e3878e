package token

import "strings"

// Range is a peekable window over a token slice. Sub-ranges returned by
// ConsumeBlock and ConsumeUntilComma share the backing slice.
type Range struct {
	toks []Token
	pos  int
}

// NewRange returns a range over toks.
func NewRange(toks []Token) *Range {
	return &Range{toks: toks}
}

var eofToken = Token{Kind: EOF}

// AtEnd reports whether every token has been consumed.
func (r *Range) AtEnd() bool {
	return r.pos >= len(r.toks)
}

// Peek returns the next token without consuming it, or an EOF token.
func (r *Range) Peek() Token {
	return r.PeekAt(0)
}

// PeekAt returns the token n positions ahead of the cursor.
func (r *Range) PeekAt(n int) Token {
	if i := r.pos + n; i < len(r.toks) {
		return r.toks[i]
	}
	return eofToken
}

// Consume consumes and returns the next token.
func (r *Range) Consume() Token {
	t := r.Peek()
	if !r.AtEnd() {
		r.pos++
	}
	return t
}

// ConsumeIncludingWhitespace consumes the next token and any whitespace
// following it.
func (r *Range) ConsumeIncludingWhitespace() Token {
	t := r.Consume()
	r.ConsumeWhitespace()
	return t
}

// ConsumeWhitespace skips whitespace tokens. It reports whether any were
// skipped.
func (r *Range) ConsumeWhitespace() bool {
	start := r.pos
	for r.Peek().Kind == Whitespace {
		r.pos++
	}
	return r.pos > start
}

// ConsumeBlock consumes a whole balanced block starting at a block-opening
// token and returns its contents. An unterminated block extends to the end
// of the range. If the next token does not open a block, one token is
// consumed and an empty range is returned.
func (r *Range) ConsumeBlock() Range {
	closer, ok := r.Peek().opensBlock()
	r.Consume()
	if !ok {
		return Range{}
	}
	start := r.pos
	stack := []Kind{closer}
	for !r.AtEnd() {
		t := r.Peek()
		if c, ok := t.opensBlock(); ok {
			stack = append(stack, c)
		} else if t.Kind == stack[len(stack)-1] {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				inner := Range{toks: r.toks[start:r.pos]}
				r.pos++
				return inner
			}
		}
		r.pos++
	}
	return Range{toks: r.toks[start:r.pos]}
}

// ConsumeComponentValue consumes one token, or a whole block if the next
// token opens one.
func (r *Range) ConsumeComponentValue() {
	if _, ok := r.Peek().opensBlock(); ok {
		r.ConsumeBlock()
		return
	}
	r.Consume()
}

// ConsumeUntilComma consumes component values up to, but not including, the
// next comma outside any nested block, and returns them as a range.
func (r *Range) ConsumeUntilComma() Range {
	start := r.pos
	for !r.AtEnd() && r.Peek().Kind != Comma {
		r.ConsumeComponentValue()
	}
	return Range{toks: r.toks[start:r.pos]}
}

// Save returns the cursor position for a later Restore.
func (r *Range) Save() int {
	return r.pos
}

// Restore resets the cursor to a position returned by Save.
func (r *Range) Restore(pos int) {
	r.pos = pos
}

// Remaining returns the unconsumed tokens.
func (r *Range) Remaining() []Token {
	return r.toks[r.pos:]
}

// Offset returns the source offset of the next token, or of the end of the
// last token when the range is exhausted.
func (r *Range) Offset() int {
	if !r.AtEnd() {
		return r.toks[r.pos].Offset
	}
	if n := len(r.toks); n > 0 {
		last := r.toks[n-1]
		return last.Offset + len(last.Raw)
	}
	return 0
}

// Text returns the source text of the unconsumed tokens.
func (r *Range) Text() string {
	var b strings.Builder
	for _, t := range r.Remaining() {
		b.WriteString(t.Raw)
	}
	return b.String()
}
