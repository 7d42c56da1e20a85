package scanner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/conduit-lang/pathgen/internal/compiler/route"
)

// Handler detection is textual, not a parse: an export mentioned inside a
// comment or a string literal is reported as well. Route handler files are
// small and follow the framework convention closely enough for this.
type methodPatterns struct {
	method route.Method
	// export async function GET, export const GET, ...
	source *regexp.Regexp
	// exports.GET = ..., module.exports.GET = ...
	compiled *regexp.Regexp
}

var patterns = buildPatterns()

// export { handler as GET, POST }
var exportListRe = regexp.MustCompile(`export\s*\{([^}]*)\}`)

func buildPatterns() []methodPatterns {
	out := make([]methodPatterns, 0, len(route.Methods))
	for _, m := range route.Methods {
		out = append(out, methodPatterns{
			method:   m,
			source:   regexp.MustCompile(fmt.Sprintf(`export\s+(?:async\s+)?(?:function|const|let|var)\s+%s\b`, m)),
			compiled: regexp.MustCompile(fmt.Sprintf(`(?:exports|module\.exports)\.%s\s*=`, m)),
		})
	}
	return out
}

// ExtractMethods returns the HTTP verbs exported by a route handler source
func ExtractMethods(src []byte) route.MethodSet {
	var set route.MethodSet

	for _, p := range patterns {
		if p.source.Match(src) || p.compiled.Match(src) {
			set = set.Add(p.method)
		}
	}

	for _, m := range exportListRe.FindAllSubmatch(src, -1) {
		for _, item := range strings.Split(string(m[1]), ",") {
			fields := strings.Fields(item)
			if len(fields) == 0 {
				continue
			}
			exported := fields[len(fields)-1]
			for _, method := range route.Methods {
				if exported == method.String() {
					set = set.Add(method)
				}
			}
		}
	}

	return set
}
