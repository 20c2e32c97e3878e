// Command selectorfmt prints the canonical serialization and the
// specificity of CSS selectors, one selector list per argument or per
// line of standard input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cssparse/selectors"
)

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("selectorfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dump := fs.Bool("dump", false, "print the storage tree of each selector list")
	nesting := fs.String("nesting", "", "parse relative to an anchor: \"nest\" (&) or \"scope\" (:scope)")
	relative := fs.Bool("relative", false, "parse relative selectors, the argument of :has()")
	page := fs.Bool("page", false, "parse @page selectors")
	ua := fs.Bool("ua", false, "parse in user-agent style sheet mode")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: selectorfmt [options] [selector ...]\n\n")
		fmt.Fprintln(stderr, "Reads selectors from the arguments, or one per line from stdin.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ctx := &selectors.Context{}
	if *ua {
		ctx.Mode = selectors.UASheetMode
	}
	switch *nesting {
	case "":
	case "nest":
		ctx.Nesting = selectors.NestingNesting
	case "scope":
		ctx.Nesting = selectors.NestingScope
	default:
		fmt.Fprintf(stderr, "error: unknown nesting %q\n", *nesting)
		fs.Usage()
		return 2
	}

	parse := func(text string) (*selectors.SelectorList, error) {
		switch {
		case *page:
			return selectors.ParsePageSelector(text)
		case *relative:
			return selectors.ParseRelative(text, ctx)
		}
		return selectors.ParseWithContext(text, ctx)
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := sc.Err(); err != nil {
			fmt.Fprintf(stderr, "error reading input: %v\n", err)
			return 1
		}
	}

	status := 0
	for _, text := range inputs {
		l, err := parse(text)
		if err != nil {
			fmt.Fprintf(stderr, "%q: %v\n", text, err)
			status = 1
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\n", l, l.MaximumSpecificity())
		if *dump {
			fmt.Fprint(stdout, l.Dump())
		}
	}
	return status
}
