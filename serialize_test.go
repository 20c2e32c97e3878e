package selectors

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type goldenSelector struct {
	Selector    string `yaml:"selector"`
	Serialized  string `yaml:"serialized"`
	Specificity string `yaml:"specificity"`
}

func loadGolden(t *testing.T) []goldenSelector {
	t.Helper()
	data, err := os.ReadFile("testdata/selectors.yaml")
	require.NoError(t, err)
	var corpus []goldenSelector
	require.NoError(t, yaml.Unmarshal(data, &corpus))
	require.NotEmpty(t, corpus)
	return corpus
}

var selectorComparer = cmp.AllowUnexported(Selector{}, extendedData{}, SelectorList{})

func TestSerializeGolden(t *testing.T) {
	for _, test := range loadGolden(t) {
		l, err := Parse(test.Selector)
		if err != nil {
			t.Errorf("error parsing %q: %s", test.Selector, err)
			continue
		}
		want := test.Serialized
		if want == "" {
			want = test.Selector
		}
		assert.Equal(t, want, l.String(), test.Selector)
		assert.Equal(t, test.Specificity, l.MaximumSpecificity().String(), test.Selector)
	}
}

// Parsing the serialization of a selector gives back the same records.
func TestSerializeRoundTrip(t *testing.T) {
	var corpus []string
	for _, test := range parserTests {
		corpus = append(corpus, test.selector)
	}
	for _, test := range loadGolden(t) {
		corpus = append(corpus, test.Selector)
	}

	for _, text := range corpus {
		l, err := Parse(text)
		if err != nil {
			t.Fatalf("error parsing %q: %s", text, err)
		}
		serialized := l.String()
		l2, err := Parse(serialized)
		if err != nil {
			t.Fatalf("error parsing %q: %s (original: %s)", serialized, err, text)
		}
		if diff := cmp.Diff(l.Selectors(), l2.Selectors(), selectorComparer); diff != "" {
			t.Errorf("%q does not round-trip through %q (-want +got):\n%s", text, serialized, diff)
		}
		assert.Equal(t, serialized, l2.String(), "serialization is not idempotent")
	}
}

func TestSerializeIdentifier(t *testing.T) {
	assert.Equal(t, "abc", serializeIdentifier("abc"))
	assert.Equal(t, `\31 23`, serializeIdentifier("123"))
	assert.Equal(t, `-\31 `, serializeIdentifier("-1"))
	assert.Equal(t, `\-`, serializeIdentifier("-"))
	assert.Equal(t, `a\.b`, serializeIdentifier("a.b"))
	assert.Equal(t, `a\ b`, serializeIdentifier("a b"))
	assert.Equal(t, "ünï", serializeIdentifier("ünï"))
	assert.Equal(t, `"a\"b\\c"`, serializeString(`a"b\c`))
	assert.Equal(t, `"\a "`, serializeString("\n"))
}

func TestSerializeWithNamespaces(t *testing.T) {
	ctx := &Context{Namespaces: map[string]string{"svg": "http://www.w3.org/2000/svg"}}
	l, err := ParseWithContext("svg|rect[svg|href], svg|*", ctx)
	require.NoError(t, err)
	assert.Equal(t, "svg|rect[svg|href], svg|*", l.String())
	sels := l.Selectors()
	assert.Equal(t, "http://www.w3.org/2000/svg", sels[0].Name().Namespace)
	assert.Equal(t, "http://www.w3.org/2000/svg", sels[1].Name().Namespace)
	assert.Equal(t, "href", sels[1].Name().Local)
}
