package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		param string
	}{
		{"login", KindStatic, ""},
		{"user-settings", KindStatic, ""},
		{"[id]", KindDynamic, "id"},
		{"[[id]]", KindOptionalDynamic, "id"},
		{"[...slug]", KindCatchAll, "slug"},
		{"[[...slug]]", KindOptionalCatchAll, "slug"},
		{"[blogComponentId]", KindDynamic, "blogComponentId"},
		{"(marketing)", KindGroup, ""},
		{"(.)photo", KindStatic, ""},
		{"@analytics", KindSlot, ""},
		{"[[id]", KindStatic, ""},
		{"[a[b]", KindStatic, ""},
		{"[...a[b]]", KindStatic, ""},
		{"[[...a]b]]", KindStatic, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.name)
			assert.Equal(t, tt.kind, c.Kind)
			assert.Equal(t, tt.param, c.Param)
			assert.Equal(t, tt.name, c.Name)
		})
	}
}

func TestClassificationPredicates(t *testing.T) {
	assert.True(t, Classify("(group)").Invisible())
	assert.True(t, Classify("@slot").Invisible())
	assert.False(t, Classify("blog").Invisible())

	assert.True(t, Classify("[id]").IsDynamic())
	assert.True(t, Classify("[...all]").IsDynamic())
	assert.False(t, Classify("blog").IsDynamic())

	assert.True(t, Classify("[[id]]").Optional())
	assert.True(t, Classify("[[...slug]]").Optional())
	assert.False(t, Classify("[...slug]").Optional())
	assert.False(t, Classify("[id]").Optional())
}

func TestExcluded(t *testing.T) {
	assert.True(t, Excluded("api", 0))
	assert.False(t, Excluded("api", 1))
	assert.False(t, Excluded("apis", 0))
}

func TestMethodSet(t *testing.T) {
	s := NewMethodSet(PUT, GET, POST)
	assert.Equal(t, []Method{GET, POST, PUT}, s.List())
	assert.Equal(t, "GET,POST,PUT", s.String())
	assert.True(t, s.Has(GET))
	assert.False(t, s.Has(DELETE))

	s = s.Remove(GET)
	assert.False(t, s.Has(GET))
	assert.Equal(t, NewMethodSet(POST, PUT, OPTIONS), s.Union(NewMethodSet(OPTIONS, PUT)))

	var empty MethodSet
	assert.True(t, empty.Empty())
	assert.Nil(t, empty.List())
}

func TestSegmentPattern(t *testing.T) {
	assert.Equal(t, "blog", (&Segment{PathLiteral: "blog"}).Pattern())
	assert.Equal(t, "[id]", (&Segment{Dynamic: &Dynamic{Param: "id"}}).Pattern())
	assert.Equal(t, "[[id]]", (&Segment{Dynamic: &Dynamic{Param: "id", Optional: true}}).Pattern())
	assert.Equal(t, "[...all]", (&Segment{Dynamic: &Dynamic{Param: "all", CatchAll: true}}).Pattern())
	assert.Equal(t, "[[...slug]]", (&Segment{Dynamic: &Dynamic{Param: "slug", Optional: true, CatchAll: true}}).Pattern())
}

func TestCloneIsDeep(t *testing.T) {
	orig := &Segment{
		Key:     "blog",
		Dynamic: &Dynamic{Param: "slug"},
		Children: []*Segment{
			{Key: "comments", HasPage: true},
		},
	}

	clone := orig.Clone()
	require.Equal(t, orig, clone)

	clone.Children[0].HasPage = false
	clone.Dynamic.Param = "changed"
	assert.True(t, orig.Children[0].HasPage)
	assert.Equal(t, "slug", orig.Dynamic.Param)
}

func TestWalk(t *testing.T) {
	tree := []*Segment{
		{Key: "a", Children: []*Segment{{Key: "b"}, {Key: "c", Children: []*Segment{{Key: "d"}}}}},
		{Key: "e"},
	}

	var visited []string
	var depthOfD int
	Walk(tree, func(parents []*Segment, s *Segment) {
		visited = append(visited, s.Key)
		if s.Key == "d" {
			depthOfD = len(parents)
		}
	})

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, visited)
	assert.Equal(t, 2, depthOfD)
}
