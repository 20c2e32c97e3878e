package selectors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var specificityTests = []struct {
	selector    string
	specificity Specificity
}{
	{"*", Specificity{0, 0, 0}},
	{"div", Specificity{0, 0, 1}},
	{".a", Specificity{0, 1, 0}},
	{"#a", Specificity{1, 0, 0}},
	{"[a]", Specificity{0, 1, 0}},
	{"a:hover", Specificity{0, 1, 1}},
	{"div.a > span.b", Specificity{0, 2, 2}},
	{"#a .b c", Specificity{1, 1, 1}},
	{":is(#a, .b)", Specificity{1, 0, 0}},
	{":where(#a)", Specificity{0, 0, 0}},
	{":is()", Specificity{0, 0, 0}},
	{":not(.a, #b)", Specificity{1, 0, 0}},
	{":has(> #a)", Specificity{1, 0, 0}},
	{":nth-child(2n of #a)", Specificity{1, 1, 0}},
	{":nth-of-type(2n)", Specificity{0, 1, 0}},
	{"::before", Specificity{0, 0, 1}},
	{"*::before", Specificity{0, 0, 1}},
	{"::slotted(span)", Specificity{0, 0, 2}},
	{":host", Specificity{0, 1, 0}},
	{":host(.a)", Specificity{0, 2, 0}},
	{":-webkit-any(#a)", Specificity{0, 1, 0}},
	{"::part(x):hover", Specificity{0, 1, 1}},
	{"&", Specificity{0, 0, 0}},
}

func TestSpecificity(t *testing.T) {
	for _, test := range specificityTests {
		l, err := Parse(test.selector)
		if err != nil {
			t.Errorf("error parsing %q: %s", test.selector, err)
			continue
		}
		if got := l.MaximumSpecificity(); got != test.specificity {
			t.Errorf("%q: wanted specificity %s, got %s", test.selector, test.specificity, got)
		}
	}
}

func TestMaximumSpecificity(t *testing.T) {
	l := MustParse("#a, .b.c.d, div")
	cs := l.ComplexSelectors()
	require.Len(t, cs, 3)
	assert.True(t, cs[1].Specificity().Less(cs[0].Specificity()))
	assert.True(t, cs[2].Specificity().Less(cs[1].Specificity()))
	assert.Equal(t, Specificity{1, 0, 0}, l.MaximumSpecificity())
}

func TestSpecificitySaturates(t *testing.T) {
	l := MustParse(strings.Repeat(".a", 300))
	assert.Equal(t, Specificity{0, 255, 0}, l.MaximumSpecificity())
	assert.Equal(t, Specificity{255, 1, 0}, Specificity{200, 1, 0}.Add(Specificity{100, 0, 0}))
}

func TestSpecificityValue(t *testing.T) {
	assert.Equal(t, uint32(0x010203), Specificity{1, 2, 3}.Value())
	assert.Equal(t, "(1,2,3)", Specificity{1, 2, 3}.String())
	assert.False(t, Specificity{1, 0, 0}.Less(Specificity{1, 0, 0}))
	assert.True(t, Specificity{0, 9, 9}.Less(Specificity{1, 0, 0}))
}
