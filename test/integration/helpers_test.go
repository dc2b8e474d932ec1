//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir        string // PROTOKIT_HOME, holds config.yaml
	DefinitionsDir string // user project definitions
	ProjectDir     string // a project being generated
}

// setupTestEnv creates isolated temp directories and points PROTOKIT_HOME at
// one of them. Viper state is reset before and after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:        t.TempDir(),
		DefinitionsDir: t.TempDir(),
		ProjectDir:     t.TempDir(),
	}
	t.Setenv("PROTOKIT_HOME", env.HomeDir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return env
}

// writeDefinition writes <root>/<dir>/project-definition.yaml.
func writeDefinition(t *testing.T, root, dir, content string) {
	t.Helper()
	writeFile(t, filepath.Join(root, dir, "project-definition.yaml"), content)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

const landingPage = `type: landing-page
name: Landing Page
description: Single page marketing site
templates:
  html: index.html
  css: styles.css
dependencies:
  base:
    parcel: latest
    globals: "^15.14.0"
  test:
    unit:
      jest: latest
    e2e:
      cypress: latest
scripts:
  base:
    lint: eslint .
    start: parcel src/index.html
  test:
    test: jest
    "test:watch": jest --watch
    "test:e2e": cypress open
    "test:e2e:headless": cypress run
srcFolder: www
source: index.html
`

// basicOverride replaces the built-in basic definition and carries a field
// the schema does not know.
const basicOverride = `type: basic
name: Company Basic
description: Basic site with company defaults
dependencies:
  base:
    eslint: "^9.1.0"
  test:
    unit: {}
    e2e: {}
scripts:
  base:
    lint: eslint .
    start: parcel
  test:
    test: jest
    "test:watch": jest --watch
    "test:e2e": cypress open
    "test:e2e:headless": cypress run
owner: web-team
`

const brokenSite = `type: Broken_Site
name: Broken Site
dependencies:
  base:
    parcel: "2"
  test:
    unit: {}
scripts:
  base:
    lint: eslint .
  test:
    test: jest
    "test:watch": jest --watch
    "test:e2e": cypress open
    "test:e2e:headless": cypress run
`
