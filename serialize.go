package selectors

import (
	"fmt"
	"strings"
)

// implements the reverse operation SelectorList -> string

// String returns the canonical serialization of the list, complex
// selectors joined by ", ".
func (l *SelectorList) String() string {
	var chunks []string
	for _, c := range l.ComplexSelectors() {
		chunks = append(chunks, c.String())
	}
	return strings.Join(chunks, ", ")
}

// String returns the canonical serialization of c. Implicit selectors are
// left out; an implicit anchor on the left leaves its combinator behind
// ("> .a" for a relative or nested selector).
func (c ComplexSelector) String() string {
	compounds := c.Compounds()
	explicitLeft := make([]bool, len(compounds)+1)
	for i := len(compounds) - 1; i >= 0; i-- {
		explicitLeft[i] = explicitLeft[i+1] || !isImplicitCompound(compounds[i])
	}

	var out string
	for i, comp := range compounds {
		text := compoundString(comp)
		if i == 0 {
			out = text
			continue
		}
		rel := compounds[i-1][len(compounds[i-1])-1].relation
		if explicitLeft[i] {
			out = text + combinatorString(rel) + out
		} else {
			out = anchorPrefix(rel) + out
		}
	}
	return out
}

func isImplicitCompound(comp []Selector) bool {
	for i := range comp {
		if !comp[i].IsImplicit() {
			return false
		}
	}
	return true
}

// combinatorString is the text between two written compounds.
func combinatorString(rel Relation) string {
	switch rel {
	case Descendant, RelativeDescendant:
		return " "
	case Child, RelativeChild:
		return " > "
	case DirectAdjacent, RelativeDirectAdjacent:
		return " + "
	case IndirectAdjacent, RelativeIndirectAdjacent:
		return " ~ "
	}
	return ""
}

// anchorPrefix is what remains of the combinator to an implicit anchor.
func anchorPrefix(rel Relation) string {
	switch rel {
	case Child, RelativeChild:
		return "> "
	case DirectAdjacent, RelativeDirectAdjacent:
		return "+ "
	case IndirectAdjacent, RelativeIndirectAdjacent:
		return "~ "
	}
	return ""
}

func compoundString(comp []Selector) string {
	var b strings.Builder
	for i := range comp {
		if !comp[i].IsImplicit() {
			b.WriteString(comp[i].String())
		}
	}
	return b.String()
}

// String returns the serialization of the simple selector s alone.
func (s *Selector) String() string {
	switch s.match {
	case MatchTag:
		return qualifiedNameString(s.name, true)
	case MatchID:
		return "#" + serializeIdentifier(s.value)
	case MatchClass:
		return "." + serializeIdentifier(s.value)
	case MatchPagePseudoClass:
		return ":" + s.value
	case MatchPseudoClass, MatchPseudoElement:
		return s.pseudoString()
	}
	if s.match.IsAttribute() {
		return s.attributeString()
	}
	return ""
}

func qualifiedNameString(q QualifiedName, isTag bool) string {
	local := q.Local
	if local != "*" {
		local = serializeIdentifier(local)
	}
	switch {
	case q.Prefix != "":
		prefix := q.Prefix
		if prefix != AnyNamespace {
			prefix = serializeIdentifier(prefix)
		}
		return prefix + "|" + local
	case isTag && q.Namespace == "":
		return "|" + local
	}
	return local
}

var attributeOperatorStrings = map[Match]string{
	MatchAttributeExact:   "=",
	MatchAttributeList:    "~=",
	MatchAttributeHyphen:  "|=",
	MatchAttributeBegin:   "^=",
	MatchAttributeEnd:     "$=",
	MatchAttributeContain: "*=",
}

func (s *Selector) attributeString() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(qualifiedNameString(s.name, false))
	if s.match != MatchAttributeSet {
		b.WriteString(attributeOperatorStrings[s.match])
		b.WriteString(serializeString(s.value))
		switch s.attrCase {
		case CaseInsensitive:
			b.WriteString(" i")
		case CaseSensitiveAlways:
			b.WriteString(" s")
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (s *Selector) pseudoString() string {
	switch s.pseudo {
	case PseudoParent:
		return "&"
	case PseudoUnparsed:
		return s.Argument()
	}
	prefix := ":"
	if s.match == MatchPseudoElement {
		prefix = "::"
	}
	name := prefix + serializeIdentifier(s.value)
	if s.ext == nil {
		return name
	}
	switch s.pseudo {
	case PseudoNthChild, PseudoNthLastChild, PseudoNthOfType, PseudoNthLastOfType:
		arg := serializeNth(s.ext.a, s.ext.b)
		if s.ext.list != nil {
			arg += " of " + s.ext.list.String()
		}
		return name + "(" + arg + ")"
	case PseudoLang:
		args := make([]string, len(s.ext.idents))
		for i, id := range s.ext.idents {
			if isIdentifier(id) {
				args[i] = serializeIdentifier(id)
			} else {
				args[i] = serializeString(id)
			}
		}
		return name + "(" + strings.Join(args, ", ") + ")"
	case PseudoPart:
		args := make([]string, len(s.ext.idents))
		for i, id := range s.ext.idents {
			args[i] = serializeIdentifier(id)
		}
		return name + "(" + strings.Join(args, " ") + ")"
	case PseudoDir, PseudoState, PseudoHighlight:
		return name + "(" + serializeIdentifier(s.ext.argument) + ")"
	case PseudoViewTransitionGroup, PseudoViewTransitionImagePair, PseudoViewTransitionNew, PseudoViewTransitionOld:
		arg := s.ext.argument
		if arg != "*" {
			arg = serializeIdentifier(arg)
		}
		for _, class := range s.ext.idents {
			arg += "." + serializeIdentifier(class)
		}
		return name + "(" + arg + ")"
	}
	if s.ext.list != nil {
		return name + "(" + s.ext.list.String() + ")"
	}
	return name
}

// isIdentifier reports whether s serializes to itself as an identifier.
func isIdentifier(s string) bool {
	return s != "" && serializeIdentifier(s) == s
}

// serializeIdentifier escapes s as a CSS identifier, following
// https://drafts.csswg.org/cssom/#serialize-an-identifier
func serializeIdentifier(s string) string {
	var b strings.Builder
	for i, c := range s {
		switch {
		case c == 0:
			b.WriteRune('�')
		case c >= 0x1 && c <= 0x1f, c == 0x7f:
			fmt.Fprintf(&b, "\\%x ", c)
		case i == 0 && c >= '0' && c <= '9':
			fmt.Fprintf(&b, "\\%x ", c)
		case i == 1 && c >= '0' && c <= '9' && s[0] == '-':
			fmt.Fprintf(&b, "\\%x ", c)
		case i == 0 && c == '-' && len(s) == 1:
			b.WriteString("\\-")
		case c >= 0x80, c == '-', c == '_',
			c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			b.WriteRune(c)
		default:
			b.WriteByte('\\')
			b.WriteRune(c)
		}
	}
	return b.String()
}

// serializeString quotes s as a CSS string, following
// https://drafts.csswg.org/cssom/#serialize-a-string
func serializeString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, c := range s {
		switch {
		case c == 0:
			b.WriteRune('�')
		case c >= 0x1 && c <= 0x1f, c == 0x7f:
			fmt.Fprintf(&b, "\\%x ", c)
		case c == '"', c == '\\':
			b.WriteByte('\\')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
