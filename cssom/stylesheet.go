/*
Package cssom compiles the selectors of a style sheet.

Style sheets are parsed with douceur; the prelude of every qualified rule
is then compiled with the selector parser. A rule whose selector list is
invalid is dropped as a whole, the way browsers do. Members of :is() and
:where() that are invalid are dropped from their argument only and leave
the rule intact.

douceur does not parse nested style rules, so nesting is modelled
explicitly: StyleRule.Nest compiles the prelude of a rule nested in
another one and binds its "&" selectors to the enclosing rule.
*/
package cssom

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/cssparse/selectors"
	"github.com/cssparse/selectors/token"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'css.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("css.cssom")
}

// StyleSheet holds the compiled rules of one style sheet.
type StyleSheet struct {
	Rules     []*StyleRule
	PageRules []*PageRule
	// Namespaces are the prefixes declared with @namespace.
	Namespaces map[string]string
	// DefaultNamespace is declared by @namespace without prefix.
	DefaultNamespace string
	// Dropped counts the rules dropped for an invalid selector.
	Dropped int
}

// StyleRule is a style rule with its compiled selector list. It is the
// ParentRule of nested rules.
type StyleRule struct {
	Prelude      string
	Selectors    *selectors.SelectorList
	Declarations []*css.Declaration
	// Conditions are the preludes of the enclosing @media and @supports
	// rules, outermost first.
	Conditions []string

	parent *StyleRule
	mode   selectors.Mode
	sheet  *StyleSheet
}

// SelectorList returns the compiled selectors of r.
func (r *StyleRule) SelectorList() *selectors.SelectorList {
	return r.Selectors
}

// Parent returns the rule r is nested in, or nil.
func (r *StyleRule) Parent() *StyleRule {
	return r.parent
}

var _ selectors.ParentRule = (*StyleRule)(nil)

// PageRule is an @page rule.
type PageRule struct {
	Selectors    *selectors.SelectorList
	Declarations []*css.Declaration
}

// Parse parses a style sheet and compiles its selectors in mode.
func Parse(text string, mode selectors.Mode) (*StyleSheet, error) {
	cs, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	sheet := &StyleSheet{Namespaces: map[string]string{}}
	sheet.addRules(cs.Rules, mode, nil)
	return sheet, nil
}

func (sheet *StyleSheet) context(mode selectors.Mode) *selectors.Context {
	return &selectors.Context{
		Mode:             mode,
		DefaultNamespace: sheet.DefaultNamespace,
		Namespaces:       sheet.Namespaces,
	}
}

func (sheet *StyleSheet) addRules(rules []*css.Rule, mode selectors.Mode, conditions []string) {
	for _, r := range rules {
		if r.Kind == css.QualifiedRule {
			sheet.addStyleRule(r, mode, conditions)
			continue
		}
		switch strings.ToLower(r.Name) {
		case "@namespace":
			sheet.declareNamespace(r.Prelude)
		case "@page":
			sel, err := selectors.ParsePageSelector(r.Prelude)
			if err != nil {
				tracer().Debugf("dropping @page %q: %v", r.Prelude, err)
				sheet.Dropped++
				continue
			}
			sheet.PageRules = append(sheet.PageRules, &PageRule{Selectors: sel, Declarations: r.Declarations})
		case "@supports":
			if !sheet.supports(r.Prelude, mode) {
				tracer().Debugf("skipping unsupported block @supports %s", r.Prelude)
				continue
			}
			sheet.addRules(r.Rules, mode, append(conditions[:len(conditions):len(conditions)], "@supports "+r.Prelude))
		case "@media":
			sheet.addRules(r.Rules, mode, append(conditions[:len(conditions):len(conditions)], "@media "+r.Prelude))
		}
	}
}

func (sheet *StyleSheet) addStyleRule(r *css.Rule, mode selectors.Mode, conditions []string) {
	sel, err := selectors.ParseWithContext(r.Prelude, sheet.context(mode))
	if err != nil {
		tracer().Debugf("dropping rule %q: %v", r.Prelude, err)
		sheet.Dropped++
		return
	}
	sheet.Rules = append(sheet.Rules, &StyleRule{
		Prelude:      r.Prelude,
		Selectors:    sel,
		Declarations: r.Declarations,
		Conditions:   conditions,
		mode:         mode,
		sheet:        sheet,
	})
}

// declareNamespace registers "@namespace prefix? (url(...)|string)".
func (sheet *StyleSheet) declareNamespace(prelude string) {
	toks, err := token.Tokenize(prelude)
	if err != nil {
		return
	}
	var prefix, uri string
	found := false
	for _, t := range toks {
		switch {
		case t.Kind == token.Ident && !found && prefix == "":
			prefix = t.Value
		case t.Kind == token.String:
			// also the argument of url("...")
			uri, found = t.Value, true
		case t.Kind == token.URL:
			uri, found = urlValue(t.Raw), true
		}
	}
	if !found {
		tracer().Debugf("ignoring malformed @namespace %q", prelude)
		return
	}
	if prefix == "" {
		sheet.DefaultNamespace = uri
		return
	}
	sheet.Namespaces[prefix] = uri
}

func urlValue(raw string) string {
	v := raw
	if i := strings.IndexByte(v, '('); i >= 0 {
		v = v[i+1:]
	}
	v = strings.TrimSuffix(v, ")")
	v = strings.TrimSpace(v)
	return strings.Trim(v, `"'`)
}

// supports evaluates an @supports prelude as far as selector() conditions
// go. Other conditions are assumed true.
func (sheet *StyleSheet) supports(prelude string, mode selectors.Mode) bool {
	r, err := token.NewRangeFromText(prelude)
	if err != nil {
		return false
	}
	for !r.AtEnd() {
		t := r.Peek()
		if t.Kind != token.Function || !strings.EqualFold(t.Value, "selector") {
			r.ConsumeComponentValue()
			continue
		}
		block := r.ConsumeBlock()
		if !selectors.SupportsSelector(block.Text(), sheet.context(mode)) {
			return false
		}
	}
	return true
}

// Nest compiles the prelude of a style rule nested in r. Its "&"
// selectors, explicit or implicit, refer to r.
func (r *StyleRule) Nest(prelude string, declarations []*css.Declaration) (*StyleRule, error) {
	ctx := r.sheet.context(r.mode)
	ctx.Nesting = selectors.NestingNesting
	ctx.Parent = r
	sel, err := selectors.ParseWithContext(prelude, ctx)
	if err != nil {
		return nil, err
	}
	return &StyleRule{
		Prelude:      prelude,
		Selectors:    sel,
		Declarations: declarations,
		Conditions:   r.Conditions,
		parent:       r,
		mode:         r.mode,
		sheet:        r.sheet,
	}, nil
}

// Reparent moves r below parent, rebinding every "&" of its selectors.
func (r *StyleRule) Reparent(parent *StyleRule) {
	r.parent = parent
	if parent == nil {
		r.Selectors = r.Selectors.Reparent(nil)
		return
	}
	r.Selectors = r.Selectors.Reparent(parent)
}

// Scope compiles the boundaries of "@scope (start) to (end)" within the
// sheet. Invalid boundary members are dropped.
func (sheet *StyleSheet) Scope(start, end string, mode selectors.Mode) (from, to *selectors.SelectorList, err error) {
	ctx := sheet.context(mode)
	if from, err = selectors.ParseScopeBoundary(start, ctx); err != nil {
		return nil, nil, err
	}
	if end == "" {
		return from, nil, nil
	}
	ctx.Nesting = selectors.NestingScope
	if to, err = selectors.ParseScopeBoundary(end, ctx); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
