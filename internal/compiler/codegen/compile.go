package codegen

import (
	"github.com/conduit-lang/pathgen/internal/compiler/errors"
	"github.com/conduit-lang/pathgen/internal/compiler/route"
	"github.com/conduit-lang/pathgen/internal/compiler/tsast"
)

const (
	urlHelper  = "url"
	makeHelper = "make"
	exportName = "paths"
	pathParam  = "p"
)

// Output is a compiled paths module
type Output struct {
	File     *tsast.File
	Plan     *Accessor
	Warnings errors.ErrorList
}

// Source prints the module
func (o *Output) Source() string {
	return tsast.Print(o.File)
}

// Compile builds the paths module for a merged tree. envKey names the
// environment variable holding the base URL; it is read at runtime by the
// generated code.
func Compile(root *route.Segment, envKey string) *Output {
	plan, warnings := Plan(root)
	return &Output{
		File:     Lower(plan, envKey),
		Plan:     plan,
		Warnings: warnings,
	}
}

// Lower converts a plan to the module syntax tree
func Lower(plan *Accessor, envKey string) *tsast.File {
	return &tsast.File{Statements: []tsast.Stmt{
		urlDecl(envKey),
		makeDecl(),
		&tsast.Const{
			Name:     exportName,
			Exported: true,
			Value:    body(plan, tsast.Str("")),
		},
	}}
}

// const url = (p: string) => process.env[envKey] + p;
func urlDecl(envKey string) tsast.Stmt {
	env := &tsast.Element{
		Object: &tsast.Property{Object: tsast.Name("process"), Name: "env"},
		Index:  tsast.Str(envKey),
	}
	return &tsast.Const{
		Name: urlHelper,
		Value: &tsast.Arrow{
			Params: []tsast.Param{{Name: pathParam, Type: "string"}},
			Body:   tsast.Plus(env, tsast.Name(pathParam)),
		},
	}
}

// const make = (p: string) => ({ path: p, url: url(p), URL: () => new URL(url(p)) });
func makeDecl() tsast.Stmt {
	p := tsast.Name(pathParam)
	urlOf := func() tsast.Expr { return tsast.CallOf(tsast.Name(urlHelper), p) }
	return &tsast.Const{
		Name: makeHelper,
		Value: &tsast.Arrow{
			Params: []tsast.Param{{Name: pathParam, Type: "string"}},
			Body: tsast.Obj(
				&tsast.Assign{Key: "path", Value: p},
				&tsast.Assign{Key: "url", Value: urlOf()},
				&tsast.Assign{Key: "URL", Value: &tsast.Arrow{
					Body: tsast.NewOf(tsast.Name("URL"), urlOf()),
				}},
			),
		},
	}
}

func record(path tsast.Expr) tsast.Expr {
	return tsast.CallOf(tsast.Name(makeHelper), path)
}

// value lowers a child accessor given the path of its parent
func value(a *Accessor, parent tsast.Expr) tsast.Expr {
	switch a.Kind {
	case KindDynamic:
		arg := tsast.Name(a.Param)
		appended := tsast.Plus(parent, tsast.Plus(tsast.Str("/"), arg))
		var path tsast.Expr = appended
		if a.Optional {
			path = tsast.Cond(arg, appended, parent)
		}

		var result tsast.Expr
		if a.Empty() {
			result = record(path)
		} else {
			result = body(a, path)
		}
		return &tsast.Arrow{
			Params: []tsast.Param{{Name: a.Param, Optional: a.Optional, Type: "string"}},
			Body:   result,
		}

	case KindLeaf:
		return record(staticPath(a, parent))

	default:
		return body(a, staticPath(a, parent))
	}
}

func staticPath(a *Accessor, parent tsast.Expr) tsast.Expr {
	return tsast.Plus(parent, tsast.Str("/"+a.Literal))
}

// body is the object of an accessor whose own path is path
func body(a *Accessor, path tsast.Expr) *tsast.Object {
	obj := &tsast.Object{}
	if a.Page {
		obj.Members = append(obj.Members, &tsast.Spread{Expr: record(path)})
	}
	for _, m := range a.Methods {
		obj.Members = append(obj.Members, &tsast.Assign{Key: m.String(), Value: record(path)})
	}
	for _, child := range a.Children {
		obj.Members = append(obj.Members, &tsast.Assign{Key: child.Key, Value: value(child, path)})
	}
	return obj
}
