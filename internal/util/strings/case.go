package strings

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style is an identifier casing convention
type Style string

const (
	CamelCase  Style = "camelCase"
	LowerSnake Style = "lowerSnake"
	UpperSnake Style = "upperSnake"
	PascalCase Style = "pascalCase"
)

// Styles returns the canonical names of every supported style
func Styles() []string {
	return []string{string(CamelCase), string(LowerSnake), string(UpperSnake), string(PascalCase)}
}

var styleAliases = map[string]Style{
	"camel":  CamelCase,
	"snake":  LowerSnake,
	"pascal": PascalCase,
}

// ParseStyle resolves a style name. The short names accepted by earlier
// releases (camel, snake, pascal) are still understood.
func ParseStyle(name string) (Style, error) {
	for _, s := range Styles() {
		if name == s {
			return Style(s), nil
		}
	}
	if s, ok := styleAliases[name]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unsupported case style %q", name)
}

// Convert rewrites s in the given style. Anything that is not a letter or a
// digit acts as a word separator and is dropped; repeated separators
// collapse. Unknown styles fall back to camelCase.
func Convert(s string, style Style) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)

	switch style {
	case LowerSnake:
		for i, w := range words {
			words[i] = lower.String(w)
		}
		return strings.Join(words, "_")
	case UpperSnake:
		for i, w := range words {
			words[i] = upper.String(w)
		}
		return strings.Join(words, "_")
	case PascalCase:
		for i, w := range words {
			words[i] = upperFirst(w)
		}
		return strings.Join(words, "")
	default:
		words[0] = lower.String(words[0])
		for i := 1; i < len(words); i++ {
			words[i] = upperFirst(words[i])
		}
		return strings.Join(words, "")
	}
}

// Words splits s on separators and on case boundaries.
// Acronyms stay together (HTTPServer -> HTTP, Server) and digits belong to
// the word they follow (page2Section -> page2, Section).
func Words(s string) []string {
	var words []string
	var current []rune
	runes := []rune(s)

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(current) > 0 {
			prev := current[len(current)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			switch {
			case unicode.IsLower(prev):
				flush()
			case unicode.IsUpper(prev) && nextLower:
				flush()
			case unicode.IsDigit(prev) && nextLower:
				flush()
			}
		}
		current = append(current, r)
	}
	flush()

	return words
}

// ToSnakeCase converts CamelCase to snake_case
// Handles acronyms properly (HTTPRequest -> http_request)
func ToSnakeCase(s string) string {
	return Convert(s, LowerSnake)
}

// ToCamelCase converts any supported spelling to camelCase
func ToCamelCase(s string) string {
	return Convert(s, CamelCase)
}

func upperFirst(w string) string {
	for i := range w {
		if i == 0 {
			continue
		}
		return cases.Upper(language.Und).String(w[:i]) + w[i:]
	}
	return cases.Upper(language.Und).String(w)
}
