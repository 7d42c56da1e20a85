package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/ddddddO/gtree"

	"github.com/conduit-lang/pathgen/internal/compiler/route"
)

// RouteTreeOptions configures RenderRouteTree
type RouteTreeOptions struct {
	// Patterns shows the directory pattern next to keys that differ from it
	Patterns bool
}

// RenderRouteTree draws a merged route tree
//
// Example output:
//
//	paths [page]
//	├── blog {GET, POST, PUT}
//	│   └── slug ([[...slug]]) [page] {POST, PUT}
//	└── login [page]
func RenderRouteTree(w io.Writer, root *route.Segment, opts RouteTreeOptions) error {
	top := gtree.NewRoot(label("paths", root, opts.Patterns))
	addSegments(top, root.Children, opts.Patterns)
	if err := gtree.OutputProgrammably(w, top); err != nil {
		return fmt.Errorf("failed to render route tree: %w", err)
	}
	return nil
}

func addSegments(parent *gtree.Node, list []*route.Segment, patterns bool) {
	for _, seg := range list {
		node := parent.Add(label(seg.Key, seg, patterns))
		addSegments(node, seg.Children, patterns)
	}
}

func label(key string, seg *route.Segment, patterns bool) string {
	var b strings.Builder
	b.WriteString(key)
	if patterns && seg.Key != "" && seg.Pattern() != seg.Key {
		fmt.Fprintf(&b, " (%s)", seg.Pattern())
	}
	if seg.HasPage {
		b.WriteString(" [page]")
	}
	methods := seg.Methods
	if seg.HasPage {
		methods = methods.Remove(route.GET)
	}
	if !methods.Empty() {
		fmt.Fprintf(&b, " {%s}", strings.ReplaceAll(methods.String(), ",", ", "))
	}
	return b.String()
}
