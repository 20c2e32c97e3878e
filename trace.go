package selectors

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'css.selectors'.
func tracer() tracing.Trace {
	return tracing.Select("css.selectors")
}
