// Package codegen turns a merged route tree into the TypeScript expression
// tree of the generated paths module.
//
// Compilation has two steps. Plan classifies every segment into one of three
// accessor shapes and decides which entries each shape carries; Compile
// lowers the plan to tsast nodes, threading the accumulated path expression
// through the recursion.
package codegen

import (
	"github.com/conduit-lang/pathgen/internal/compiler/errors"
	"github.com/conduit-lang/pathgen/internal/compiler/route"
	"github.com/conduit-lang/pathgen/internal/compiler/tsast"
	utilstrings "github.com/conduit-lang/pathgen/internal/util/strings"
)

// Kind is the shape of a generated accessor
type Kind int

const (
	// KindObject is a plain object holding the page trio, verbs and children
	KindObject Kind = iota
	// KindDynamic is a function of one string argument returning the object
	KindDynamic
	// KindLeaf is a bare {path, url, URL} record
	KindLeaf
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindDynamic:
		return "dynamic"
	case KindLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// trioNames are the properties spread into an object by a page
var trioNames = []string{"path", "url", "URL"}

// Accessor is one planned property of the generated paths tree
type Accessor struct {
	Kind Kind
	Key  string
	// Pattern is the URL pattern from the root, e.g. /blog/[[...slug]]
	Pattern string
	// Literal is the URL slice of a static accessor
	Literal string

	// Param is the argument name of a dynamic accessor
	Param    string
	Optional bool

	Page     bool
	Methods  []route.Method
	Children []*Accessor
}

// Empty reports whether the accessor carries no page, verbs or children
func (a *Accessor) Empty() bool {
	return !a.Page && len(a.Methods) == 0 && len(a.Children) == 0
}

// Plan classifies the merged tree. The root is always an object with the
// page trio. Route warnings found while planning are returned alongside.
func Plan(root *route.Segment) (*Accessor, errors.ErrorList) {
	p := &planner{}
	plan := &Accessor{
		Kind:    KindObject,
		Pattern: "/",
		Page:    true,
		Methods: emitted(root.Methods, true),
	}
	plan.Children = p.children(plan, root.Children, "", nil)
	return plan, p.warnings
}

type planner struct {
	warnings errors.ErrorList
}

func (p *planner) children(parent *Accessor, list []*route.Segment, prefix string, params []string) []*Accessor {
	out := make([]*Accessor, 0, len(list))
	for _, seg := range list {
		out = append(out, p.segment(parent, seg, prefix, params))
	}
	return out
}

func (p *planner) segment(parent *Accessor, seg *route.Segment, prefix string, params []string) *Accessor {
	a := &Accessor{
		Key:     seg.Key,
		Pattern: prefix + "/" + seg.Pattern(),
		Literal: seg.PathLiteral,
		Page:    seg.HasPage,
		Methods: emitted(seg.Methods, seg.HasPage),
	}
	p.checkShadowing(parent, a)

	if seg.Dynamic != nil {
		a.Kind = KindDynamic
		a.Param = argumentName(seg.Dynamic.Param)
		a.Optional = seg.Dynamic.Optional
		for _, outer := range params {
			if outer == a.Param {
				p.warnings = append(p.warnings, errors.NewDuplicateParam(a.Pattern, a.Param))
				break
			}
		}
		params = append(append([]string(nil), params...), a.Param)
	}

	a.Children = p.children(a, seg.Children, a.Pattern, params)

	if a.Kind != KindDynamic && a.Empty() {
		a.Kind = KindLeaf
	}
	return a
}

// checkShadowing warns when a child key replaces an entry of its parent
func (p *planner) checkShadowing(parent, child *Accessor) {
	hidden := false
	if parent.Page {
		for _, name := range trioNames {
			if child.Key == name {
				hidden = true
			}
		}
	}
	for _, m := range parent.Methods {
		if child.Key == m.String() {
			hidden = true
		}
	}
	if hidden {
		p.warnings = append(p.warnings, errors.NewShadowedAccessor(child.Pattern, child.Key))
	}
}

// emitted returns the verbs that get their own property. GET is already
// exposed by the page trio when a page exists.
func emitted(methods route.MethodSet, hasPage bool) []route.Method {
	if hasPage {
		methods = methods.Remove(route.GET)
	}
	return methods.List()
}

// argumentName is the camelCase parameter name, independent of the key
// style, made safe as a binding. It never equals a module helper name.
func argumentName(param string) string {
	name := tsast.SafeBinding(utilstrings.Convert(param, utilstrings.CamelCase))
	if name == makeHelper || name == urlHelper {
		return "_" + name
	}
	return name
}
