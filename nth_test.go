package selectors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var nthTests = []struct {
	text string
	a, b int
}{
	{"odd", 2, 1},
	{"even", 2, 0},
	{"EVEN", 2, 0},
	{"5", 0, 5},
	{"-3", 0, -3},
	{"n", 1, 0},
	{"-n", -1, 0},
	{"+n", 1, 0},
	{"2n", 2, 0},
	{"2n+1", 2, 1},
	{"2n-1", 2, -1},
	{"-n+3", -1, 3},
	{"n-1", 1, -1},
	{"+n-1", 1, -1},
	{"2n + 1", 2, 1},
	{"2n - 1", 2, -1},
	{"2n- 1", 2, -1},
	{"-2n+ 3", -2, 3},
	{"3091970736n + 1", math.MaxInt32, 1},
	{"n - 3091970736", 1, -math.MaxInt32},
}

func TestParseNth(t *testing.T) {
	for _, test := range nthTests {
		a, b, err := ParseNth(test.text)
		if err != nil {
			t.Errorf("error parsing %q: %s", test.text, err)
			continue
		}
		if a != test.a || b != test.b {
			t.Errorf("%q: wanted (%d, %d), got (%d, %d)", test.text, test.a, test.b, a, b)
		}
	}
}

func TestParseNthInvalid(t *testing.T) {
	for _, text := range []string{
		"",
		" odd",
		"+ n",
		"12n--34",
		"n +- 1",
		"2n + +1",
		"2n 1",
		"3.5",
		"n+1.5",
		"m",
		"odd 1",
		"- n",
	} {
		_, _, err := ParseNth(text)
		assert.Error(t, err, "ParseNth(%q)", text)
	}
}

func TestSerializeNth(t *testing.T) {
	assert.Equal(t, "2n+1", serializeNth(2, 1))
	assert.Equal(t, "-n+3", serializeNth(-1, 3))
	assert.Equal(t, "n", serializeNth(1, 0))
	assert.Equal(t, "3n-2", serializeNth(3, -2))
	assert.Equal(t, "0", serializeNth(0, 0))
	assert.Equal(t, "-4", serializeNth(0, -4))
}
