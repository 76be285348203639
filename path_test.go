package hbswitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		word string
		want pathExpr
	}{
		{"name", pathExpr{parts: []string{"name"}}},
		{"user.name", pathExpr{parts: []string{"user", "name"}}},
		{"../title", pathExpr{depth: 1, parts: []string{"title"}}},
		{"../../a.b", pathExpr{depth: 2, parts: []string{"a", "b"}}},
		{"@match", pathExpr{data: true, parts: []string{"match"}}},
		{"this", pathExpr{scoped: true}},
		{".", pathExpr{scoped: true}},
		{"./name", pathExpr{scoped: true, parts: []string{"name"}}},
		{"this.name", pathExpr{scoped: true, parts: []string{"name"}}},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := parsePath(tt.word)
			assert.Equal(t, tt.word, got.original)
			assert.Equal(t, tt.want.depth, got.depth)
			assert.Equal(t, tt.want.parts, got.parts)
			assert.Equal(t, tt.want.data, got.data)
			assert.Equal(t, tt.want.scoped, got.scoped)
		})
	}
}

func TestResolveContextStack(t *testing.T) {
	rc := newRenderContext(nil, map[string]interface{}{
		"title": "root",
		"user":  map[string]interface{}{"name": "alice"},
	})

	assert.Equal(t, "alice", parsePath("user.name").resolve(rc))
	assert.Nil(t, parsePath("user.missing").resolve(rc))
	assert.Nil(t, parsePath("missing.deeper").resolve(rc))

	rc.pushContext(map[string]interface{}{"title": "inner"})
	assert.Equal(t, "inner", parsePath("title").resolve(rc))
	assert.Equal(t, "root", parsePath("../title").resolve(rc))
	assert.Nil(t, parsePath("../../../title").resolve(rc))

	rc.popContext()
	assert.Equal(t, "root", parsePath("title").resolve(rc))
}

func TestResolveLocalVars(t *testing.T) {
	rc := newRenderContext(nil, map[string]interface{}{"match": "data"})

	// @paths read block-local variables, never the data context.
	assert.Nil(t, parsePath("@match").resolve(rc))

	outer := NewBlockContext()
	outer.SetLocal("match", false)
	rc.pushBlock(outer)
	assert.Equal(t, false, parsePath("@match").resolve(rc))

	inner := NewBlockContext()
	inner.SetLocal("match", true)
	rc.pushBlock(inner)
	assert.Equal(t, true, parsePath("@match").resolve(rc))

	rc.popBlock()
	assert.Equal(t, false, parsePath("@match").resolve(rc))
}

func TestFieldOf(t *testing.T) {
	type account struct {
		Role   string
		hidden string
	}

	assert.Equal(t, "x", fieldOf(map[string]interface{}{"a": "x"}, "a"))
	assert.Equal(t, "y", fieldOf(map[string]string{"b": "y"}, "b"))
	assert.Nil(t, fieldOf(map[string]string{}, "b"))

	acc := account{Role: "admin", hidden: "no"}
	assert.Equal(t, "admin", fieldOf(acc, "Role"))
	assert.Nil(t, fieldOf(acc, "hidden"))
	assert.Equal(t, "admin", fieldOf(&acc, "Role"))

	var nilAcc *account
	assert.Nil(t, fieldOf(nilAcc, "Role"))

	assert.Equal(t, "two", fieldOf([]string{"one", "two"}, "1"))
	assert.Nil(t, fieldOf([]string{"one"}, "5"))
	assert.Nil(t, fieldOf([]string{"one"}, "x"))

	assert.Equal(t, 3, fieldOf(map[string]int{"n": 3}, "n"))
	assert.Nil(t, fieldOf(42, "anything"))
}

func TestResolveStructChain(t *testing.T) {
	type user struct {
		Name string
	}
	type page struct {
		Owner *user
	}

	rc := newRenderContext(nil, page{Owner: &user{Name: "bob"}})
	assert.Equal(t, "bob", parsePath("Owner.Name").resolve(rc))

	rc = newRenderContext(nil, page{})
	require.Nil(t, parsePath("Owner.Name").resolve(rc))
}
