package codegen

import (
	"github.com/conduit-lang/pathgen/internal/compiler/tsast"
)

// Route is one {path, url, URL} record reachable from the generated object
type Route struct {
	// Expression is how the record is reached, e.g. paths.blog.slug(slug).POST
	Expression string `json:"expression"`
	Pattern    string `json:"pattern"`
	// Kind is "page", "record" or a verb name
	Kind string `json:"kind"`
}

// Routes lists every record of a plan in emission order
func Routes(plan *Accessor) []Route {
	var out []Route
	collect(plan, exportName, &out)
	return out
}

func collect(a *Accessor, expr string, out *[]Route) {
	if a.Kind == KindLeaf || (a.Kind == KindDynamic && a.Empty()) {
		*out = append(*out, Route{Expression: expr, Pattern: a.Pattern, Kind: "record"})
		return
	}

	if a.Page {
		*out = append(*out, Route{Expression: expr, Pattern: a.Pattern, Kind: "page"})
	}
	for _, m := range a.Methods {
		*out = append(*out, Route{Expression: expr + "." + m.String(), Pattern: a.Pattern, Kind: m.String()})
	}
	for _, child := range a.Children {
		collect(child, access(expr, child), out)
	}
}

func access(parent string, a *Accessor) string {
	expr := parent
	if tsast.IsIdentifierName(a.Key) {
		expr += "." + a.Key
	} else {
		expr += "[" + tsast.Quote(a.Key) + "]"
	}
	if a.Kind == KindDynamic {
		expr += "(" + a.Param + ")"
	}
	return expr
}
