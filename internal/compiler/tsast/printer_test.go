package tsast

import (
	"strings"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
)

func source(s string) string {
	return strings.TrimLeft(dedent.Dedent(s), "\n")
}

func TestPrintExpr(t *testing.T) {
	slug := Name("slug")
	base := Plus(Str(""), Str("/blog"))

	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"identifier", Name("p"), "p"},
		{"string", Str("/blog"), `"/blog"`},
		{"left assoc", Plus(Plus(Str(""), Str("/a")), Str("/b")), `"" + "/a" + "/b"`},
		{"right binary wrapped", Plus(base, Plus(Str("/"), slug)), `"" + "/blog" + ("/" + slug)`},
		{
			"conditional",
			Cond(slug, Plus(base, Plus(Str("/"), slug)), base),
			`slug ? "" + "/blog" + ("/" + slug) : "" + "/blog"`,
		},
		{
			"conditional left operand wrapped",
			Plus(Cond(slug, Str("/a"), Str("")), Plus(Str("/"), Name("id"))),
			`(slug ? "/a" : "") + ("/" + id)`,
		},
		{"call", CallOf(Name("make"), Str("")), `make("")`},
		{"new", NewOf(Name("URL"), CallOf(Name("url"), Name("p"))), "new URL(url(p))"},
		{
			"element access",
			&Element{Object: &Property{Object: Name("process"), Name: "env"}, Index: Str("KEY")},
			`process.env["KEY"]`,
		},
		{
			"arrow",
			&Arrow{Params: []Param{{Name: "p", Type: "string"}}, Body: Plus(Name("a"), Name("p"))},
			"(p: string) => a + p",
		},
		{
			"arrow optional param",
			&Arrow{Params: []Param{{Name: "slug", Optional: true, Type: "string"}}, Body: Name("slug")},
			"(slug?: string) => slug",
		},
		{"arrow without params", &Arrow{Body: Name("x")}, "() => x"},
		{"object body wrapped", &Arrow{Body: Obj()}, "() => ({})"},
		{"callee wrapped", CallOf(&Arrow{Body: Name("x")}), "(() => x)()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrintExpr(tt.expr))
		})
	}
}

func TestPrintObject(t *testing.T) {
	obj := Obj(
		&Spread{Expr: CallOf(Name("make"), Str(""))},
		&Assign{Key: "login", Value: Obj(&Spread{Expr: CallOf(Name("make"), Str("/login"))})},
		&Assign{Key: "user-settings", Value: CallOf(Name("make"), Str("/user-settings"))},
		&Assign{Key: "404", Value: Obj()},
	)

	want := source(`
		{
		    ...make(""),
		    login: {
		        ...make("/login")
		    },
		    "user-settings": make("/user-settings"),
		    "404": {}
		}`)

	assert.Equal(t, want, PrintExpr(obj))
}

func TestPrintFile(t *testing.T) {
	p := Name("p")
	file := &File{Statements: []Stmt{
		&Const{
			Name: "url",
			Value: &Arrow{
				Params: []Param{{Name: "p", Type: "string"}},
				Body: Plus(&Element{
					Object: &Property{Object: Name("process"), Name: "env"},
					Index:  Str("NEXT_PUBLIC_APP_BASE_URL"),
				}, p),
			},
		},
		&Const{
			Name: "make",
			Value: &Arrow{
				Params: []Param{{Name: "p", Type: "string"}},
				Body: Obj(
					&Assign{Key: "path", Value: p},
					&Assign{Key: "url", Value: CallOf(Name("url"), p)},
					&Assign{Key: "URL", Value: &Arrow{Body: NewOf(Name("URL"), CallOf(Name("url"), p))}},
				),
			},
		},
		&Const{Name: "paths", Exported: true, Value: Obj(&Spread{Expr: CallOf(Name("make"), Str(""))})},
	}}

	want := source(`
		const url = (p: string) => process.env["NEXT_PUBLIC_APP_BASE_URL"] + p;
		const make = (p: string) => ({
		    path: p,
		    url: url(p),
		    URL: () => new URL(url(p))
		});
		export const paths = {
		    ...make("")
		};
		`)

	assert.Equal(t, want, Print(file))
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`a\b`, `"a\\b"`},
		{"line\nbreak\ttab", `"line\nbreak\ttab"`},
		{"\x00\x1f", `"\u0000\u001F"`},
		{"café", `"caf\u00E9"`},
		{"😀", `"\uD83D\uDE00"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.in))
		})
	}
}

func TestNames(t *testing.T) {
	assert.True(t, IsIdentifierName("blogComponentId"))
	assert.True(t, IsIdentifierName("$ref"))
	assert.True(t, IsIdentifierName("_id9"))
	assert.True(t, IsIdentifierName("default"), "reserved words are valid property names")
	assert.False(t, IsIdentifierName(""))
	assert.False(t, IsIdentifierName("9lives"))
	assert.False(t, IsIdentifierName("user-settings"))

	assert.Equal(t, "slug", SafeBinding("slug"))
	assert.Equal(t, "_default", SafeBinding("default"))
	assert.Equal(t, "_404", SafeBinding("404"))
	assert.Equal(t, "_fooBar", SafeBinding("foo-Bar"))
	assert.Equal(t, "_", SafeBinding(""))
}
