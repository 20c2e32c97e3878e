package cssom

import (
	"strings"
	"testing"

	"github.com/cssparse/selectors"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheetText = `
@namespace svg url(http://www.w3.org/2000/svg);
div.a > p { color: red; }
p::before#bad { color: blue; }
:is(.ok, :bogus) span { margin: 0 !important; }
svg|rect { fill: none; }
@media screen {
  .m { display: none; }
}
@supports selector(:has(a)) {
  .s { display: block; }
}
@supports selector(:is(.a, :bogus)) {
  .never { display: block; }
}
@page :first { margin: 1in; }
`

func TestParseStyleSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cssom")
	defer teardown()
	//
	sheet, err := Parse(sheetText, selectors.HTMLStandardMode)
	require.NoError(t, err)
	assert.Equal(t, 1, sheet.Dropped, "p::before#bad must be dropped")
	assert.Equal(t, "http://www.w3.org/2000/svg", sheet.Namespaces["svg"])

	var got []string
	for _, r := range sheet.Rules {
		got = append(got, r.Selectors.String())
	}
	assert.Equal(t, []string{
		"div.a > p",
		":is(.ok) span",
		"svg|rect",
		".m",
		".s",
	}, got)

	require.Len(t, sheet.PageRules, 1)
	assert.Equal(t, ":first", sheet.PageRules[0].Selectors.String())

	m := sheet.Rules[3]
	assert.Equal(t, []string{"@media screen"}, m.Conditions)
	require.Len(t, sheet.Rules[1].Declarations, 1)
	assert.True(t, sheet.Rules[1].Declarations[0].Important)
}

func TestDefaultNamespace(t *testing.T) {
	sheet, err := Parse(`@namespace "http://www.w3.org/1999/xhtml"; .a { color: red; }`, selectors.HTMLStandardMode)
	require.NoError(t, err)
	assert.Equal(t, "http://www.w3.org/1999/xhtml", sheet.DefaultNamespace)
	require.Len(t, sheet.Rules, 1)
	sels := sheet.Rules[0].Selectors.Selectors()
	require.Len(t, sels, 2, "default namespace needs an implicit universal selector")
	assert.Equal(t, "http://www.w3.org/1999/xhtml", sels[0].Name().Namespace)
	assert.Equal(t, ".a", sheet.Rules[0].Selectors.String())
}

func TestNestedRules(t *testing.T) {
	sheet, err := Parse("#card { color: red; }", selectors.HTMLStandardMode)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	card := sheet.Rules[0]

	title, err := card.Nest(".title", nil)
	require.NoError(t, err)
	assert.Equal(t, ".title", title.Selectors.String())
	assert.Equal(t, selectors.Specificity{1, 1, 0}, title.Selectors.MaximumSpecificity())
	assert.Same(t, card, title.Parent())

	hover, err := title.Nest("&:hover", nil)
	require.NoError(t, err)
	assert.Equal(t, selectors.Specificity{1, 2, 0}, hover.Selectors.MaximumSpecificity())

	_, err = card.Nest("::before .x", nil)
	assert.Error(t, err)

	other, err := Parse(".other { color: blue; }", selectors.HTMLStandardMode)
	require.NoError(t, err)
	title.Reparent(other.Rules[0])
	assert.Equal(t, selectors.Specificity{0, 2, 0}, title.Selectors.MaximumSpecificity())
	title.Reparent(nil)
	assert.Nil(t, title.Parent())
	assert.Equal(t, selectors.Specificity{0, 1, 0}, title.Selectors.MaximumSpecificity())
}

func TestScopeBoundaries(t *testing.T) {
	sheet := &StyleSheet{Namespaces: map[string]string{}}
	from, to, err := sheet.Scope(".card, :bogus", ".content", selectors.HTMLStandardMode)
	require.NoError(t, err)
	assert.Equal(t, ".card", from.String())
	assert.Equal(t, ".content", to.String())
	assert.True(t, to.IsScopeContaining())

	from, to, err = sheet.Scope(".card", "", selectors.HTMLStandardMode)
	require.NoError(t, err)
	assert.Equal(t, ".card", from.String())
	assert.Nil(t, to)
}

func TestParseHTML(t *testing.T) {
	doc := `<!DOCTYPE html>
<html><head><style>p.a { color: red; } p:unknown { color: blue; }</style></head>
<body><style>#x > li { margin: 0; }</style><p class="a">hi</p></body></html>`
	sheets, err := ParseHTML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	require.Len(t, sheets[0].Rules, 1)
	assert.Equal(t, "p.a", sheets[0].Rules[0].Selectors.String())
	assert.Equal(t, 1, sheets[0].Dropped)
	assert.Equal(t, "#x > li", sheets[1].Rules[0].Selectors.String())
}
