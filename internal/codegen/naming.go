package codegen

import (
	"strings"
	"unicode"
)

// Symbol derives a Go identifier suffix from a code: "entered-in-error"
// becomes "EnteredInError". It reports false for codes without letters or
// digits, such as "<=".
func Symbol(code string) (string, bool) {
	parts := strings.FieldsFunc(code, func(r rune) bool {
		return r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})
	if len(parts) == 0 {
		return "", false
	}
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String(), true
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// unexport lowers the leading word of an exported name, keeping initialisms
// together: "HTTPVerb" becomes "httpVerb".
func unexport(name string) string {
	n := 0
	for n < len(name) && isUpper(name[n]) {
		n++
	}
	switch {
	case n == 0:
		return name
	case n == len(name):
		return strings.ToLower(name)
	case n > 1:
		n--
	}
	return strings.ToLower(name[:n]) + name[n:]
}

// snake converts an exported name to a file stem: "HTTPVerb" becomes
// "http_verb".
func snake(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if i > 0 && isUpper(c) {
			prev := name[i-1]
			nextLower := i+1 < len(name) && isLower(name[i+1])
			if isLower(prev) || isDigit(prev) || (isUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteByte(byte(unicode.ToLower(rune(c))))
	}
	return b.String()
}

// oneLine collapses runs of whitespace so text fits in a Go string literal
// or comment on a single line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
