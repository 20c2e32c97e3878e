package token

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

func hexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// nameStart returns whether c can be the first character of an identifier
// (not counting an initial hyphen, or an escape sequence).
func nameStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c > 127
}

func digit(c byte) bool {
	return '0' <= c && c <= '9'
}

// startsIdentifier reports whether s begins with a valid identifier.
func startsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	switch c := s[0]; {
	case nameStart(c):
		return true
	case c == '\\':
		return len(s) > 1 && s[1] != '\n'
	case c == '-':
		if len(s) < 2 {
			return false
		}
		return nameStart(s[1]) || s[1] == '-' || (s[1] == '\\' && len(s) > 2 && s[2] != '\n')
	}
	return false
}

// unescape resolves backslash escapes in an identifier-like name.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(s) {
			b.WriteRune(utf8.RuneError)
			break
		}
		if !hexDigit(s[i]) {
			r, size := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += size
			continue
		}
		start := i
		for i < len(s) && i-start < 6 && hexDigit(s[i]) {
			i++
		}
		v, _ := strconv.ParseUint(s[start:i], 16, 32)
		if v == 0 || v > utf8.MaxRune || (v >= 0xD800 && v <= 0xDFFF) {
			v = utf8.RuneError
		}
		b.WriteRune(rune(v))
		if i < len(s) {
			switch s[i] {
			case '\r':
				i++
				if i < len(s) && s[i] == '\n' {
					i++
				}
			case ' ', '\t', '\n', '\f':
				i++
			}
		}
	}
	return b.String()
}

// unquote strips the quotes of a string token and resolves its escapes.
// Escaped newlines are line continuations and vanish.
func unquote(raw string) string {
	if raw == "" {
		return ""
	}
	quote := raw[0]
	s := raw[1:]
	if n := len(s); n > 0 && s[n-1] == quote && !escapedAt(s, n-1) {
		s = s[:n-1]
	}
	s = strings.NewReplacer("\\\r\n", "", "\\\n", "", "\\\r", "", "\\\f", "").Replace(s)
	return unescape(s)
}

// escapedAt reports whether s[i] is preceded by an odd number of backslashes.
func escapedAt(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// splitNumber splits the raw text of a numeric token into its number and
// the remainder (the unit of a dimension, or "%").
func splitNumber(raw string) (num, rest string) {
	i := 0
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		i++
	}
	for i < len(raw) && digit(raw[i]) {
		i++
	}
	if i+1 < len(raw) && raw[i] == '.' && digit(raw[i+1]) {
		i++
		for i < len(raw) && digit(raw[i]) {
			i++
		}
	}
	if i < len(raw) && (raw[i] == 'e' || raw[i] == 'E') {
		j := i + 1
		if j < len(raw) && (raw[j] == '+' || raw[j] == '-') {
			j++
		}
		if j < len(raw) && digit(raw[j]) {
			for j < len(raw) && digit(raw[j]) {
				j++
			}
			i = j
		}
	}
	return raw[:i], raw[i:]
}
