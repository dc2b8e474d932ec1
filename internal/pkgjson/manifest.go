package pkgjson

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/protokit-labs/protokit/internal/definitions"
	"github.com/protokit-labs/protokit/internal/schema"
)

const (
	initialVersion    = "0.0.1"
	defaultModuleType = "module"
	defaultSrcFolder  = "src"
	defaultSource     = "index.html"
)

// ErrInvalidName is returned when a project name is not lowercase
// letters, digits and hyphens.
var ErrInvalidName = errors.New("invalid project name")

var namePattern = schema.MustCompilePattern(`^[a-z0-9-]+$`)

// Options are the per-project answers that shape the manifest.
type Options struct {
	Name             string
	Description      string
	Author           string
	SrcFolder        string // overrides the definition's srcFolder when set
	IncludeUnitTests bool
	IncludeE2ETests  bool
}

// Manifest is the package.json written into a new project.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description,omitempty"`
	Author          string            `json:"author,omitempty"`
	Type            string            `json:"type"`
	Scripts         map[string]string `json:"scripts"`
	Source          []string          `json:"source"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Build assembles the manifest for def.
func Build(def *definitions.Definition, opts Options) (*Manifest, error) {
	if !namePattern.MatchString(opts.Name) {
		return nil, fmt.Errorf("%w %q: use lowercase letters, digits and hyphens", ErrInvalidName, opts.Name)
	}

	srcFolder := firstNonEmpty(opts.SrcFolder, def.SrcFolder, defaultSrcFolder)
	if !schema.SrcFolderPattern.MatchString(srcFolder) {
		return nil, fmt.Errorf("source folder %q does not match %s", srcFolder, schema.SrcFolderPattern)
	}

	features := definitions.Features{
		UnitTests: opts.IncludeUnitTests,
		E2ETests:  opts.IncludeE2ETests,
	}
	return &Manifest{
		Name:            opts.Name,
		Version:         initialVersion,
		Description:     opts.Description,
		Author:          opts.Author,
		Type:            firstNonEmpty(def.ModuleType, defaultModuleType),
		Scripts:         def.ScriptsFor(features),
		Source:          []string{"./" + srcFolder + "/" + firstNonEmpty(def.Source, defaultSource)},
		DevDependencies: def.DependenciesFor(features),
	}, nil
}

// JSON renders the manifest the way npm writes package.json.
func (m *Manifest) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding package.json: %w", err)
	}
	return append(data, '\n'), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
