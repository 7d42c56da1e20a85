package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/pathgen/internal/compiler/codegen"
)

func TestRoutesCommand(t *testing.T) {
	inProject(t)

	_, out, _, err := execute(t, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "ACCESSOR")
	assert.Contains(t, out, "paths.blog.GET")
	assert.Contains(t, out, "paths.blog.slug(slug).POST")
	assert.Contains(t, out, "/blog/[[...slug]]")
	assert.Contains(t, out, "paths.blog.slug(slug).blogComponentId(blogComponentId)")
}

func TestRoutesCommand_JSON(t *testing.T) {
	inProject(t)

	_, out, _, err := execute(t, "routes", "--json")
	require.NoError(t, err)

	var routes []codegen.Route
	require.NoError(t, json.Unmarshal([]byte(out), &routes))
	assert.Contains(t, routes, codegen.Route{Expression: "paths.login", Pattern: "/login", Kind: "page"})
	assert.Contains(t, routes, codegen.Route{Expression: "paths.blog.PUT", Pattern: "/blog", Kind: "PUT"})
}
