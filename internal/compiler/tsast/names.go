package tsast

import (
	"unicode"
	"unicode/utf8"
)

// reserved words that may not be used as binding names
var reserved = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "implements": true, "interface": true, "let": true,
	"package": true, "private": true, "protected": true, "public": true,
	"static": true, "yield": true, "await": true,
	// valid bindings in sloppy code but confusing in generated parameters
	"arguments": true, "eval": true, "undefined": true,
}

// IsIdentifierName reports whether s can be written as a bare property name
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentifierStart(r) {
				return false
			}
			continue
		}
		if !isIdentifierPart(r) {
			return false
		}
	}
	return true
}

// IsReserved reports whether name cannot be used as a parameter name
func IsReserved(name string) bool {
	return reserved[name]
}

// SafeBinding returns name if it is usable as a parameter name, otherwise
// name with invalid characters dropped and a leading underscore
func SafeBinding(name string) string {
	if IsIdentifierName(name) && !IsReserved(name) {
		return name
	}

	out := make([]rune, 0, utf8.RuneCountInString(name)+1)
	out = append(out, '_')
	for _, r := range name {
		if isIdentifierPart(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

func isIdentifierStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) ||
		unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc) ||
		r == '\u200c' || r == '\u200d'
}
