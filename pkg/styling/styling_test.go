package styling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyle_ScopesClassNames(t *testing.T) {
	sheet := Style(`.menu { color: red; } .item { padding: 4px; }`)

	assert.True(t, sheet.Has("menu"))
	assert.True(t, sheet.Has("item"))

	scoped := sheet.Class("menu")
	assert.NotEqual(t, "menu", scoped)
	assert.True(t, strings.HasPrefix(scoped, sheet.Hash))
	assert.True(t, strings.HasSuffix(scoped, "_menu"))
}

func TestStyle_UnknownClassFallsBack(t *testing.T) {
	sheet := Style(`.menu { color: red; }`)
	assert.Equal(t, "missing", sheet.Class("missing"))
}

func TestStyle_NilSheet(t *testing.T) {
	var sheet *Sheet
	assert.Equal(t, "menu", sheet.Class("menu"))
	assert.False(t, sheet.Has("menu"))
}

func TestStyle_CompoundAndPseudoSelectors(t *testing.T) {
	sheet := Style(`.card.active { border: 1px; } .btn:hover { color: blue; }`)

	assert.True(t, sheet.Has("card.active"))
	assert.True(t, sheet.Has("btn:hover"))
}

func TestStyle_IgnoresComments(t *testing.T) {
	sheet := Style(`/* .ghost { } */ .real { margin: 0; }`)

	assert.False(t, sheet.Has("ghost"))
	assert.True(t, sheet.Has("real"))
}

func TestStyle_SameCSSSameHash(t *testing.T) {
	a := Style(`.x { top: 0; }`)
	b := Style(`.x { top: 0; }`)
	assert.Equal(t, a.Hash, b.Hash)

	c := Style(`.x { top: 1px; }`)
	assert.NotEqual(t, a.Hash, c.Hash)
}

func TestStyle_Classes(t *testing.T) {
	sheet := Style(`.a { } .b { }`)
	joined := sheet.Classes("a", "b")

	parts := strings.Split(joined, " ")
	assert.Len(t, parts, 2)
	assert.Equal(t, sheet.Class("a"), parts[0])
	assert.Equal(t, sheet.Class("b"), parts[1])
}

func TestRegistry_CollectsSheets(t *testing.T) {
	Reset()
	defer Reset()

	StyleAndRegister(`.one { top: 0; }`)
	StyleAndRegister(`.two { top: 1px; }`)

	css := AllCSS()
	assert.Contains(t, css, ".one")
	assert.Contains(t, css, ".two")
}

func TestRegistry_DeduplicatesByHash(t *testing.T) {
	Reset()
	defer Reset()

	StyleAndRegister(`.dup { top: 0; }`)
	StyleAndRegister(`.dup { top: 0; }`)

	assert.Equal(t, 1, strings.Count(AllCSS(), ".dup"))
}
