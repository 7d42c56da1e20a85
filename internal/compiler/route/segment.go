package route

import "strings"

// Method is an HTTP verb a route handler file can export
type Method uint8

const (
	GET Method = 1 << iota
	POST
	PUT
	PATCH
	DELETE
	HEAD
	OPTIONS
)

// Methods lists every supported verb in emission order
var Methods = []Method{GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS}

var methodNames = map[Method]string{
	GET:     "GET",
	POST:    "POST",
	PUT:     "PUT",
	PATCH:   "PATCH",
	DELETE:  "DELETE",
	HEAD:    "HEAD",
	OPTIONS: "OPTIONS",
}

// String returns the verb name
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// MethodSet is a set of verbs. The zero value is empty.
type MethodSet uint8

// NewMethodSet builds a set from the given verbs
func NewMethodSet(methods ...Method) MethodSet {
	var s MethodSet
	for _, m := range methods {
		s = s.Add(m)
	}
	return s
}

// Add returns s with m included
func (s MethodSet) Add(m Method) MethodSet { return s | MethodSet(m) }

// Remove returns s without m
func (s MethodSet) Remove(m Method) MethodSet { return s &^ MethodSet(m) }

// Has reports whether m is in s
func (s MethodSet) Has(m Method) bool { return s&MethodSet(m) != 0 }

// Union returns every verb in s or o
func (s MethodSet) Union(o MethodSet) MethodSet { return s | o }

// Empty reports whether s has no verbs
func (s MethodSet) Empty() bool { return s == 0 }

// List returns the verbs in emission order
func (s MethodSet) List() []Method {
	var out []Method
	for _, m := range Methods {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

// String joins the verb names with commas
func (s MethodSet) String() string {
	names := make([]string, 0, len(Methods))
	for _, m := range s.List() {
		names = append(names, m.String())
	}
	return strings.Join(names, ",")
}

// Dynamic describes a segment whose value is supplied at call time
type Dynamic struct {
	Param    string
	Optional bool
	CatchAll bool
}

// Segment is one directory level of the route tree
type Segment struct {
	// Key is the generated property name, unique among merged siblings
	Key string
	// PathLiteral is the URL slice for static segments, empty when dynamic
	PathLiteral string
	// Dynamic is set for bracketed directory names
	Dynamic *Dynamic
	// HasPage is true when a page file exists at this level
	HasPage bool
	// Methods are the verbs exported by the route handler file
	Methods  MethodSet
	Children []*Segment
}

// IsDynamic reports whether the segment value is supplied at call time
func (s *Segment) IsDynamic() bool {
	return s.Dynamic != nil
}

// Pattern returns the directory-style spelling of the segment, e.g.
// "blog" or "[[...slug]]"
func (s *Segment) Pattern() string {
	if s.Dynamic == nil {
		return s.PathLiteral
	}
	inner := s.Dynamic.Param
	if s.Dynamic.CatchAll {
		inner = "..." + inner
	}
	if s.Dynamic.Optional {
		return "[[" + inner + "]]"
	}
	return "[" + inner + "]"
}

// Clone returns a deep copy of s
func (s *Segment) Clone() *Segment {
	if s == nil {
		return nil
	}
	c := *s
	if s.Dynamic != nil {
		d := *s.Dynamic
		c.Dynamic = &d
	}
	c.Children = CloneAll(s.Children)
	return &c
}

// CloneAll deep-copies a sibling list
func CloneAll(list []*Segment) []*Segment {
	if list == nil {
		return nil
	}
	out := make([]*Segment, len(list))
	for i, s := range list {
		out[i] = s.Clone()
	}
	return out
}

// Walk visits s and its descendants depth-first. parents holds the chain
// from the root's first child down to the parent of the visited segment.
func Walk(list []*Segment, fn func(parents []*Segment, s *Segment)) {
	walk(nil, list, fn)
}

func walk(parents []*Segment, list []*Segment, fn func(parents []*Segment, s *Segment)) {
	for _, s := range list {
		fn(parents, s)
		walk(append(parents[:len(parents):len(parents)], s), s.Children, fn)
	}
}
