package svgo_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NestorMonroy/svgo"
)

const miniSchema = `
attrGroups:
  core: [id]
attrGroupDefaults: {}
elements:
  box:
    attrGroups: [core]
    attrs: [size]
    defaults:
      size: 'm'
    content: [item]
  item:
    attrGroups: [core]
`

func TestDefaultSchemaIsShared(t *testing.T) {
	first := svgo.DefaultSchema()
	second := svgo.DefaultSchema()
	assert.Same(t, first, second)
	assert.Contains(t, first.Elements(), "svg")
	assert.Contains(t, first.Elements(), "foreignObject")
}

func TestSchemaElement(t *testing.T) {
	s := svgo.DefaultSchema()

	rect, ok := s.Element("rect")
	require.True(t, ok)
	assert.Equal(t, "rect", rect.Name)
	assert.Contains(t, rect.Attributes, "fill")
	assert.True(t, rect.HasContentModel)
	assert.Contains(t, rect.Content, "title")
	assert.Equal(t, "0", rect.Defaults["x"])

	rect.Defaults["x"] = "changed"
	again, _ := s.Element("rect")
	assert.Equal(t, "0", again.Defaults["x"], "Element must return copies")

	_, ok = s.Element("blink")
	assert.False(t, ok)

	var nilSchema *svgo.Schema
	_, ok = nilSchema.Element("rect")
	assert.False(t, ok)
	assert.Nil(t, nilSchema.Elements())
}

func TestParseSchema(t *testing.T) {
	s, err := svgo.ParseSchema(strings.NewReader(miniSchema))
	require.NoError(t, err)
	assert.Equal(t, []string{"box", "item"}, s.Elements())

	box, ok := s.Element("box")
	require.True(t, ok)
	assert.Equal(t, []string{"size", "id"}, box.Attributes)
	assert.Equal(t, []string{"item"}, box.Content)
	assert.Equal(t, map[string]string{"size": "m"}, box.Defaults)

	item, _ := s.Element("item")
	assert.False(t, item.HasContentModel)
}

func TestParseSchemaErrors(t *testing.T) {
	_, err := svgo.ParseSchema(strings.NewReader("elements:\n  a:\n    attrGroups: [missing]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `attribute group "missing" not found`)

	_, err = svgo.ParseSchema(strings.NewReader("elements: [\n"))
	require.Error(t, err)
}

func TestLoadSchema(t *testing.T) {
	fsys := fstest.MapFS{
		"schema/mini.yaml": &fstest.MapFile{Data: []byte(miniSchema)},
	}

	s, err := svgo.LoadSchema(fsys, "schema/mini.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"box", "item"}, s.Elements())

	_, err = svgo.LoadSchema(fsys, "schema/missing.yaml")
	require.ErrorContains(t, err, "load schema schema/missing.yaml")

	_, err = svgo.LoadSchema(nil, "x.yaml")
	require.ErrorContains(t, err, "nil fs")
}

func TestLoadSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini.yaml")
	require.NoError(t, os.WriteFile(path, []byte(miniSchema), 0o600))

	s, err := svgo.LoadSchemaFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"box", "item"}, s.Elements())
}
