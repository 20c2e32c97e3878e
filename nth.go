package selectors

import (
	"math"
	"strconv"
	"strings"

	"github.com/cssparse/selectors/token"
)

// ParseNth parses the An+B micro-syntax, e.g. "odd", "-n+3" or "2n + 1".
// Leading whitespace is not accepted.
func ParseNth(text string) (a, b int, err error) {
	r, err := token.NewRangeFromText(text)
	if err != nil {
		return 0, 0, err
	}
	a, b, ok := consumeANPlusB(r)
	if ok {
		r.ConsumeWhitespace()
		ok = r.AtEnd()
	}
	if !ok {
		return 0, 0, &Error{Kind: SyntaxError, Offset: r.Offset(), Msg: "invalid An+B expression " + strconv.Quote(text)}
	}
	return a, b, nil
}

func clampInt32(f float64) int {
	switch {
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// consumeANPlusB consumes an An+B expression. The "n" ends up inside an
// identifier or a dimension unit, so nstr collects text of the form "n",
// "n-" or "n-123".
func consumeANPlusB(r *token.Range) (a, b int, ok bool) {
	if r.AtEnd() {
		return 0, 0, false
	}
	t := r.Consume()
	switch {
	case t.Kind == token.Number && t.Integer:
		return 0, clampInt32(t.Number), true
	case t.Kind == token.Ident && strings.EqualFold(t.Value, "odd"):
		return 2, 1, true
	case t.Kind == token.Ident && strings.EqualFold(t.Value, "even"):
		return 2, 0, true
	}

	var nstr string
	switch {
	case t.IsDelim('+') && r.Peek().Kind == token.Ident:
		a = 1
		nstr = r.Consume().Value
	case t.Kind == token.Dimension && t.Integer:
		a = clampInt32(t.Number)
		nstr = t.Value
	case t.Kind == token.Ident:
		if strings.HasPrefix(t.Value, "-") {
			a = -1
			nstr = t.Value[1:]
		} else {
			a = 1
			nstr = t.Value
		}
	}
	r.ConsumeWhitespace()

	if nstr == "" || (nstr[0] != 'n' && nstr[0] != 'N') {
		return 0, 0, false
	}
	if len(nstr) > 1 && nstr[1] != '-' {
		return 0, 0, false
	}
	if len(nstr) > 2 {
		v, err := strconv.ParseInt(nstr[1:], 10, 32)
		if err != nil {
			return 0, 0, false
		}
		return a, int(v), true
	}

	var sign rune
	if len(nstr) == 2 {
		sign = '-'
	}
	if sign == 0 && r.Peek().Kind == token.Delim {
		switch r.ConsumeIncludingWhitespace().Delim {
		case '+':
			sign = '+'
		case '-':
			sign = '-'
		default:
			return 0, 0, false
		}
	}
	if sign == 0 && r.Peek().Kind != token.Number {
		return a, 0, true
	}

	bt := r.Consume()
	if bt.Kind != token.Number || !bt.Integer {
		return 0, 0, false
	}
	// a sign must be written exactly once
	if (bt.Sign == 0) == (sign == 0) {
		return 0, 0, false
	}
	b = clampInt32(bt.Number)
	if sign == '-' {
		if b == math.MinInt32 {
			b = math.MaxInt32
		} else {
			b = -b
		}
	}
	return a, b, true
}

// consumeNthArgument parses the argument of the :nth-* pseudo-classes,
// including the "of S" suffix of :nth-child() and :nth-last-child().
func (p *parser) consumeNthArgument(s *Selector, block *token.Range) bool {
	a, b, ok := consumeANPlusB(block)
	if !ok {
		return false
	}
	ext := s.extended()
	ext.a, ext.b, ext.hasNth = a, b, true
	block.ConsumeWhitespace()
	if block.AtEnd() {
		return true
	}
	if s.pseudo != PseudoNthChild && s.pseudo != PseudoNthLastChild {
		return false
	}
	of := block.Consume()
	if of.Kind != token.Ident || !strings.EqualFold(of.Value, "of") {
		return false
	}
	if !block.ConsumeWhitespace() {
		return false
	}
	p.disallowPseudoElements = true
	list, ok := p.nestedList(func() bool {
		return p.consumeComplexSelectorList(block, NestingNone)
	})
	if !ok {
		return false
	}
	ext.list = list
	return true
}

// serializeNth writes a and b in their canonical form: "2n+1", "-n+3",
// "n", "5".
func serializeNth(a, b int) string {
	var sb strings.Builder
	switch a {
	case 0:
		return strconv.Itoa(b)
	case 1:
		sb.WriteString("n")
	case -1:
		sb.WriteString("-n")
	default:
		sb.WriteString(strconv.Itoa(a))
		sb.WriteString("n")
	}
	if b > 0 {
		sb.WriteString("+")
		sb.WriteString(strconv.Itoa(b))
	} else if b < 0 {
		sb.WriteString(strconv.Itoa(b))
	}
	return sb.String()
}
