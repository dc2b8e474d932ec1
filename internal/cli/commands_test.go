package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListJSON(t *testing.T) {
	out, _, err := run(t, "list", "--json")
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries), out)
	require.Len(t, entries, 7)
	assert.Equal(t, "BASIC", entries[0].Key)
	assert.Equal(t, "basic", entries[0].Type)
	assert.Equal(t, "builtin", entries[0].Source)
}

func TestListTable(t *testing.T) {
	out, _, err := run(t, "list", "--dir", testDefsDir())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10, "header plus 9 rows:\n%s", out)
	assert.True(t, strings.HasPrefix(lines[0], "KEY"), lines[0])
	assert.Contains(t, out, "landing-page")
}

func TestShow(t *testing.T) {
	out, _, err := run(t, "show", "basic")
	require.NoError(t, err)

	for _, want := range []string{
		"Web Basic (basic)",
		"Entry:       src/index.html",
		"  globals ^15.14.0 (>=15.14.0, <16.0.0)\n",
		"  eslint latest\n",
		"E2E test dependencies:\n  cypress latest\n",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Question", "basic has no questions")
}

func TestShowQuestions(t *testing.T) {
	out, _, err := run(t, "show", "next-prototype-builder")
	require.NoError(t, err)

	assert.Contains(t, out, "Question prototypeType (select)")
	assert.Contains(t, out, "  - Wizard of Oz\n")
	assert.Contains(t, out, "Template files:\n  app/layout.jsx\n  app/page.jsx\n")
}

func TestShowUnparsedVersion(t *testing.T) {
	out, _, err := run(t, "show", "broken-site", "--dir", testDefsDir())
	require.NoError(t, err)

	assert.Contains(t, out, "Broken Site (broken-site)")
	assert.Contains(t, out, "Dependencies:\n  parcel 2\n")
	assert.Contains(t, out, "Scripts:\n")
}

func TestManifest(t *testing.T) {
	out, _, err := run(t, "manifest", "basic", "--name", "my-site", "--unit")
	require.NoError(t, err)

	var pkg struct {
		Name            string            `json:"name"`
		Version         string            `json:"version"`
		Source          []string          `json:"source"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &pkg), out)
	assert.Equal(t, "my-site", pkg.Name)
	assert.Equal(t, "0.0.1", pkg.Version)
	assert.Equal(t, "latest", pkg.DevDependencies["jest"], "jest missing with --unit")
	assert.NotContains(t, pkg.DevDependencies, "cypress", "cypress present without --e2e")
}

func TestManifestRequiresName(t *testing.T) {
	_, _, err := run(t, "manifest", "basic")
	assert.Error(t, err)
}

func TestManifestRejectsInvalidDefinition(t *testing.T) {
	_, stderr, err := run(t, "manifest", "broken-site", "--name", "x", "--dir", testDefsDir())
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, stderr, "Missing required field: scripts.base.start")
}

func TestVersion(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-01"

	out, _, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	out, _, err = run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "protokit version 1.2.3 (commit: abc123, built: 2026-01-01)\n", out)
}

func TestConfigSetGet(t *testing.T) {
	t.Setenv("PROTOKIT_HOME", t.TempDir())

	out, _, err := run(t, "config", "set", "log_level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "Set log_level = debug\n", out)

	out, _, err = run(t, "config", "get", "log_level")
	require.NoError(t, err)
	assert.Equal(t, "debug\n", out)
}
