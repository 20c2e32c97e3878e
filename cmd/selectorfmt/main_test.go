package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	status := runWithArgs(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), status
}

func TestFormatArguments(t *testing.T) {
	out, errOut, status := run(t, "", "div.a>p", ":is(.x, :bogus)")
	assert.Equal(t, 0, status, errOut)
	assert.Equal(t, "div.a > p\t(0,1,2)\n:is(.x)\t(0,1,0)\n", out)
}

func TestFormatStdin(t *testing.T) {
	out, _, status := run(t, "a+b\n\n  #id  \n")
	assert.Equal(t, 0, status)
	assert.Equal(t, "a + b\t(0,0,2)\n#id\t(1,0,0)\n", out)
}

func TestFormatErrors(t *testing.T) {
	out, errOut, status := run(t, "", "div >", ".ok")
	assert.Equal(t, 1, status)
	assert.Equal(t, ".ok\t(0,1,0)\n", out)
	assert.Contains(t, errOut, `"div >": syntax error`)
}

func TestFormatModes(t *testing.T) {
	out, _, status := run(t, "", "-nesting", "nest", "> .a")
	assert.Equal(t, 0, status)
	assert.Equal(t, "> .a\t(0,1,0)\n", out)

	out, _, status = run(t, "", "-relative", "+ .caption")
	assert.Equal(t, 0, status)
	assert.Equal(t, "+ .caption\t(0,1,0)\n", out)

	out, _, status = run(t, "", "-page", "named:first")
	assert.Equal(t, 0, status)
	assert.Equal(t, "named:first\t(1,1,0)\n", out)

	_, _, status = run(t, "", "-nesting", "bogus", ".a")
	assert.Equal(t, 2, status)
}

func TestFormatDump(t *testing.T) {
	out, _, status := run(t, "", "-dump", "div")
	assert.Equal(t, 0, status)
	assert.Contains(t, out, `selector list "div"`)
	assert.Contains(t, out, "Tag div")
}
