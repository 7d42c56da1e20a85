// Package route models the compiled route tree and the directory naming
// convention it is built from.
//
// A directory name is classified as one of:
//
//	login          static segment, contributes "/login"
//	[id]           dynamic segment
//	[[id]]         optional dynamic segment
//	[...slug]      catch-all (required, like [id])
//	[[...slug]]    optional catch-all
//	(marketing)    route group, URL-invisible
//	@analytics     parallel slot, URL-invisible
package route

import (
	"regexp"
	"strings"
)

// Kind classifies a single directory name
type Kind int

const (
	KindStatic Kind = iota
	KindDynamic
	KindOptionalDynamic
	KindCatchAll
	KindOptionalCatchAll
	KindGroup
	KindSlot
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindDynamic:
		return "dynamic"
	case KindOptionalDynamic:
		return "optional-dynamic"
	case KindCatchAll:
		return "catch-all"
	case KindOptionalCatchAll:
		return "optional-catch-all"
	case KindGroup:
		return "group"
	case KindSlot:
		return "slot"
	default:
		return "unknown"
	}
}

// ExcludedName is never routed when it appears at the top level of the
// scanned tree. API-only subtrees are not part of the generated helpers.
const ExcludedName = "api"

// Classification is the result of parsing a directory name
type Classification struct {
	Kind Kind
	// Name is the literal directory name
	Name string
	// Param is the routing parameter for dynamic kinds, without brackets or dots
	Param string
}

// Invisible reports whether the directory contributes no URL segment and
// must be spliced into its parent
func (c Classification) Invisible() bool {
	return c.Kind == KindGroup || c.Kind == KindSlot
}

// IsDynamic reports whether the segment value is supplied at call time
func (c Classification) IsDynamic() bool {
	switch c.Kind {
	case KindDynamic, KindOptionalDynamic, KindCatchAll, KindOptionalCatchAll:
		return true
	}
	return false
}

// Optional reports whether the dynamic value may be omitted
func (c Classification) Optional() bool {
	return c.Kind == KindOptionalDynamic || c.Kind == KindOptionalCatchAll
}

// Most specific first.
var (
	groupRe            = regexp.MustCompile(`^\(.*\)$`)
	optionalCatchAllRe = regexp.MustCompile(`^\[\[\.\.\.([^\[\]]+)\]\]$`)
	catchAllRe         = regexp.MustCompile(`^\[\.\.\.([^\[\]]+)\]$`)
	optionalDynamicRe  = regexp.MustCompile(`^\[\[([^\[\]]+)\]\]$`)
	dynamicRe          = regexp.MustCompile(`^\[([^\[\]]+)\]$`)
)

// Classify parses a directory name
func Classify(name string) Classification {
	c := Classification{Kind: KindStatic, Name: name}

	switch {
	case groupRe.MatchString(name):
		c.Kind = KindGroup
	case strings.HasPrefix(name, "@"):
		c.Kind = KindSlot
	case optionalCatchAllRe.MatchString(name):
		c.Kind = KindOptionalCatchAll
		c.Param = optionalCatchAllRe.FindStringSubmatch(name)[1]
	case catchAllRe.MatchString(name):
		c.Kind = KindCatchAll
		c.Param = catchAllRe.FindStringSubmatch(name)[1]
	case optionalDynamicRe.MatchString(name):
		c.Kind = KindOptionalDynamic
		c.Param = optionalDynamicRe.FindStringSubmatch(name)[1]
	case dynamicRe.MatchString(name):
		c.Kind = KindDynamic
		c.Param = dynamicRe.FindStringSubmatch(name)[1]
	}

	if c.IsDynamic() {
		c.Param = strings.TrimLeft(c.Param, ".")
	}
	return c
}

// Excluded reports whether a directory at the given depth is skipped
// entirely. Depth 0 is the top level of the scanned tree; directories
// spliced in from top-level groups and slots are still at depth 0.
func Excluded(name string, depth int) bool {
	return depth == 0 && name == ExcludedName
}
