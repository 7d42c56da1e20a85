package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/pathgen/internal/compiler/route"
)

func page(key string, children ...*route.Segment) *route.Segment {
	return &route.Segment{Key: key, PathLiteral: key, HasPage: true, Children: children}
}

func handler(key string, methods ...route.Method) *route.Segment {
	return &route.Segment{Key: key, PathLiteral: key, Methods: route.NewMethodSet(methods...)}
}

func TestMerge_UniqueKeysSorted(t *testing.T) {
	merged := Merge([]*route.Segment{page("login"), page("blog"), page("about"), page("blog")})

	require.Len(t, merged, 3)
	assert.Equal(t, "about", merged[0].Key)
	assert.Equal(t, "blog", merged[1].Key)
	assert.Equal(t, "login", merged[2].Key)
}

func TestMerge_PageThenRouteDropsGET(t *testing.T) {
	merged := Merge([]*route.Segment{
		page("blog"),
		handler("blog", route.GET, route.POST),
	})

	require.Len(t, merged, 1)
	assert.True(t, merged[0].HasPage)
	assert.Equal(t, route.NewMethodSet(route.POST), merged[0].Methods)
}

func TestMerge_RouteWithGETThenPageDropsPage(t *testing.T) {
	merged := Merge([]*route.Segment{
		handler("blog", route.GET, route.PUT),
		page("blog"),
	})

	require.Len(t, merged, 1)
	assert.False(t, merged[0].HasPage)
	assert.Equal(t, route.NewMethodSet(route.GET, route.PUT), merged[0].Methods)
}

func TestMerge_RouteWithoutGETThenPageKeepsPage(t *testing.T) {
	merged := Merge([]*route.Segment{
		handler("blog", route.POST),
		page("blog"),
	})

	require.Len(t, merged, 1)
	assert.True(t, merged[0].HasPage)
	assert.Equal(t, route.NewMethodSet(route.POST), merged[0].Methods)
}

func TestMerge_SameDirectoryPageAndRouteIsNotRewritten(t *testing.T) {
	seg := &route.Segment{Key: "slug", HasPage: true, Methods: route.NewMethodSet(route.GET, route.POST)}

	merged := Merge([]*route.Segment{seg})

	require.Len(t, merged, 1)
	assert.Equal(t, route.NewMethodSet(route.GET, route.POST), merged[0].Methods,
		"GET is hidden at emission time, not dropped by the merge")
}

func TestMerge_ChildrenMergedRecursively(t *testing.T) {
	merged := Merge([]*route.Segment{
		page("blog", page("posts", page("drafts"))),
		handler("blog", route.POST),
		&route.Segment{Key: "blog", PathLiteral: "blog", Children: []*route.Segment{
			handler("posts", route.GET),
			page("authors"),
		}},
	})

	require.Len(t, merged, 1)
	blog := merged[0]
	require.Len(t, blog.Children, 2)
	assert.Equal(t, "authors", blog.Children[0].Key)

	posts := blog.Children[1]
	assert.Equal(t, "posts", posts.Key)
	assert.True(t, posts.HasPage)
	assert.True(t, posts.Methods.Empty(), "page came first so GET is dropped")
	require.Len(t, posts.Children, 1)
	assert.Equal(t, "drafts", posts.Children[0].Key)
}

func TestMerge_DynamicPersists(t *testing.T) {
	merged := Merge([]*route.Segment{
		page("id"),
		{Key: "id", Dynamic: &route.Dynamic{Param: "id"}},
	})

	require.Len(t, merged, 1)
	require.NotNil(t, merged[0].Dynamic)
	assert.Equal(t, "id", merged[0].Dynamic.Param)
	assert.Equal(t, "", merged[0].PathLiteral)
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	first := page("blog", page("a"))
	second := handler("blog", route.GET)
	second.Children = []*route.Segment{handler("a", route.GET)}
	snapshotFirst := first.Clone()
	snapshotSecond := second.Clone()

	merged := Merge([]*route.Segment{first, second})
	merged[0].Children[0].HasPage = false

	assert.Equal(t, snapshotFirst, first)
	assert.Equal(t, snapshotSecond, second)
}

func TestMerge_Idempotent(t *testing.T) {
	raw := []*route.Segment{
		handler("blog", route.GET, route.POST, route.PUT),
		page("blog", &route.Segment{
			Key:      "slug",
			Dynamic:  &route.Dynamic{Param: "slug", Optional: true, CatchAll: true},
			HasPage:  true,
			Methods:  route.NewMethodSet(route.GET, route.POST),
			Children: []*route.Segment{page("comments")},
		}),
		page("login"),
		page("userSettings"),
	}

	once := Merge(raw)
	twice := Merge(once)
	assert.Equal(t, once, twice)

	// merging the tree with itself key for key is a fixed point as well
	doubled := Merge(append(route.CloneAll(once), route.CloneAll(once)...))
	assert.Equal(t, once, doubled)
}

func TestMergeTree(t *testing.T) {
	root := &route.Segment{
		HasPage:  true,
		Methods:  route.NewMethodSet(route.POST),
		Children: []*route.Segment{page("b"), page("a"), page("b")},
	}

	merged := MergeTree(root)

	assert.True(t, merged.HasPage)
	assert.Equal(t, route.NewMethodSet(route.POST), merged.Methods)
	require.Len(t, merged.Children, 2)
	assert.Equal(t, "a", merged.Children[0].Key)
	assert.Len(t, root.Children, 3)
}
