package pkgjson

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/protokit-labs/protokit/internal/definitions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtin(t *testing.T, typ string) *definitions.Definition {
	t.Helper()
	set, err := definitions.Load(context.Background(), nil, definitions.Builtin())
	require.NoError(t, err)
	def, err := set.ByType(typ)
	require.NoError(t, err, typ)
	return def
}

func TestBuildBasic(t *testing.T) {
	def := builtin(t, "basic")

	m, err := Build(def, Options{Name: "my-site", Description: "Marketing site", Author: "Ada"})
	require.NoError(t, err)

	assert.Equal(t, "0.0.1", m.Version)
	assert.Equal(t, "module", m.Type)
	assert.Equal(t, []string{"./src/index.html"}, m.Source)
	assert.NotContains(t, m.Scripts, "test", "test script included without test features")
	assert.NotContains(t, m.DevDependencies, "jest", "jest included without unit tests")
	assert.Equal(t, "^15.14.0", m.DevDependencies["globals"])
}

func TestBuildWithTests(t *testing.T) {
	def := builtin(t, "next")

	m, err := Build(def, Options{Name: "shop", IncludeUnitTests: true})
	require.NoError(t, err)

	assert.Equal(t, "./app/page.jsx", m.Source[0])
	assert.Equal(t, "latest", m.DevDependencies["jest"])
	assert.NotContains(t, m.DevDependencies, "cypress", "cypress included without e2e tests")
	// Any test feature brings in every test script.
	assert.Equal(t, "cypress open", m.Scripts["test:e2e"])
}

func TestBuildDefaults(t *testing.T) {
	def := builtin(t, "nuxt-typescript")

	m, err := Build(def, Options{Name: "docs"})
	require.NoError(t, err)
	assert.Equal(t, "./src/index.html", m.Source[0])

	m, err = Build(def, Options{Name: "docs", SrcFolder: "www"})
	require.NoError(t, err)
	assert.Equal(t, "./www/index.html", m.Source[0])
}

func TestBuildRejectsBadInput(t *testing.T) {
	def := builtin(t, "basic")

	for _, name := range []string{"", "My Site", "my_site", "café"} {
		_, err := Build(def, Options{Name: name})
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}

	_, err := Build(def, Options{Name: "ok", SrcFolder: "lib"})
	assert.Error(t, err, "unknown source folder")
}

func TestManifestJSON(t *testing.T) {
	m, err := Build(builtin(t, "basic"), Options{Name: "my-site"})
	require.NoError(t, err)
	data, err := m.JSON()
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1], "missing trailing newline")

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.NotContains(t, got, "author", "empty author should be omitted")
	assert.Equal(t, "my-site", got["name"])
}

func TestEveryBuiltinBuildsAValidManifest(t *testing.T) {
	set, err := definitions.Load(context.Background(), nil, definitions.Builtin())
	require.NoError(t, err)

	for _, key := range set.Keys() {
		t.Run(key, func(t *testing.T) {
			def, err := set.Definition(key)
			require.NoError(t, err)
			m, err := Build(def, Options{Name: "sample", IncludeUnitTests: true, IncludeE2ETests: true})
			require.NoError(t, err)
			res, err := m.Check()
			require.NoError(t, err)
			assert.True(t, res.Valid, "%+v", res.Issues)
		})
	}
}
