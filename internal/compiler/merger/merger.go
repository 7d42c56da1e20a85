// Package merger folds raw route segments that share a key into one
// segment per tree level.
//
// The first segment seen under a key is the base; later ones are folded in
// with these precedence rules:
//
//  1. a page already at the key removes GET from the incoming verbs
//  2. a route with GET and no page already at the key drops the incoming page
//  3. page flags are OR-ed, verb sets united, children merged recursively
//
// Because "first" means scan order, which is lexicographic by raw directory
// name, the outcome is deterministic for a given tree.
package merger

import (
	"sort"

	"github.com/conduit-lang/pathgen/internal/compiler/route"
)

// Merge returns a new sibling list with unique keys, sorted by key.
// The input is not modified.
func Merge(list []*route.Segment) []*route.Segment {
	index := make(map[string]*route.Segment, len(list))
	var order []*route.Segment

	for _, seg := range list {
		existing, ok := index[seg.Key]
		if !ok {
			fresh := shallowCopy(seg)
			fresh.Children = Merge(seg.Children)
			index[seg.Key] = fresh
			order = append(order, fresh)
			continue
		}
		fold(existing, seg)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Key < order[j].Key
	})
	return order
}

// MergeTree merges the children of a root segment
func MergeTree(root *route.Segment) *route.Segment {
	merged := shallowCopy(root)
	merged.Children = Merge(root.Children)
	return merged
}

func fold(existing, incoming *route.Segment) {
	methods := incoming.Methods
	hasPage := incoming.HasPage

	if existing.HasPage && methods.Has(route.GET) {
		methods = methods.Remove(route.GET)
	}
	if !existing.HasPage && existing.Methods.Has(route.GET) && hasPage {
		hasPage = false
	}

	existing.HasPage = existing.HasPage || hasPage
	existing.Methods = existing.Methods.Union(methods)
	if existing.Dynamic == nil && incoming.Dynamic != nil {
		d := *incoming.Dynamic
		existing.Dynamic = &d
		existing.PathLiteral = ""
	}

	combined := make([]*route.Segment, 0, len(existing.Children)+len(incoming.Children))
	combined = append(combined, existing.Children...)
	combined = append(combined, incoming.Children...)
	existing.Children = Merge(combined)
}

// shallowCopy copies every field but the children
func shallowCopy(seg *route.Segment) *route.Segment {
	c := *seg
	if seg.Dynamic != nil {
		d := *seg.Dynamic
		c.Dynamic = &d
	}
	c.Children = nil
	return &c
}
