package selectors

import (
	"strings"

	"github.com/cssparse/selectors/token"
)

// ParsePageSelector parses the selector of an @page rule: an optional page
// name followed by any of :first, :left, :right and :blank. An empty text
// selects every page.
func ParsePageSelector(text string) (*SelectorList, error) {
	r, err := token.NewRangeFromText(text)
	if err != nil {
		return nil, err
	}
	r.ConsumeWhitespace()

	name := Selector{
		match: MatchTag,
		value: "*",
		name:  QualifiedName{Local: "*", Namespace: AnyNamespace},
		flags: flagImplicit | flagForPage,
	}
	if t := r.Peek(); t.Kind == token.Ident {
		r.Consume()
		name.value = t.Value
		name.name.Local = t.Value
		name.flags &^= flagImplicit
	}
	sels := []Selector{name}
	for r.Peek().Kind == token.Colon {
		offset := r.Offset()
		r.Consume()
		t := r.Consume()
		if t.Kind != token.Ident {
			return nil, &Error{Kind: SyntaxError, Offset: offset, Msg: "expected page pseudo-class"}
		}
		lower := strings.ToLower(t.Value)
		entry, ok := searchPseudo(pagePseudoClasses, lower)
		if !ok {
			return nil, &Error{Kind: SyntaxError, Offset: offset, Msg: "unknown page pseudo-class :" + lower}
		}
		sels = append(sels, Selector{
			match:  MatchPagePseudoClass,
			pseudo: entry.pseudo,
			value:  lower,
			flags:  flagForPage,
		})
	}
	r.ConsumeWhitespace()
	if !r.AtEnd() {
		return nil, &Error{Kind: SyntaxError, Offset: r.Offset(), Msg: "unexpected " + r.Peek().Kind.String() + " in page selector"}
	}
	sels[len(sels)-1].flags |= flagLastInComplex
	tracer().Debugf("page selector %q: %d records", text, len(sels))
	return adopt(sels), nil
}
