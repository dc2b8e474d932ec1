package definitions

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Definition is the typed form of a project definition. Fields that the
// schema allows but which are absent decode to their zero values.
type Definition struct {
	Key    string `mapstructure:"-"`
	Origin string `mapstructure:"-"`

	ID             string       `mapstructure:"id"`
	Type           string       `mapstructure:"type"`
	Name           string       `mapstructure:"name"`
	Description    string       `mapstructure:"description"`
	Templates      Templates    `mapstructure:"templates"`
	Configs        []string     `mapstructure:"configs"`
	Ignores        []string     `mapstructure:"ignores"`
	Dependencies   Dependencies `mapstructure:"dependencies"`
	Scripts        Scripts      `mapstructure:"scripts"`
	VSCodeSettings bool         `mapstructure:"vscodeSettings"`
	Source         string       `mapstructure:"source"`
	SrcFolder      string       `mapstructure:"srcFolder"`
	ModuleType     string       `mapstructure:"moduleType"`
	Questions      []Question   `mapstructure:"questions"`
}

// Templates lists the template files a project type copies. Single file
// names decode into one-element lists.
type Templates struct {
	HTML            []string `mapstructure:"html"`
	CSS             []string `mapstructure:"css"`
	React           []string `mapstructure:"react"`
	Other           []string `mapstructure:"other"`
	AdditionalFiles []string `mapstructure:"additionalFiles"`
}

// Dependencies maps package names to version specs.
type Dependencies struct {
	Base map[string]string `mapstructure:"base"`
	Test struct {
		Unit map[string]string `mapstructure:"unit"`
		E2E  map[string]string `mapstructure:"e2e"`
	} `mapstructure:"test"`
}

// Scripts maps npm script names to commands.
type Scripts struct {
	Base map[string]string `mapstructure:"base"`
	Test map[string]string `mapstructure:"test"`
}

// Question is an extra prompt asked when the project type is chosen.
type Question struct {
	Name    string   `mapstructure:"name"`
	Type    string   `mapstructure:"type"`
	Message string   `mapstructure:"message"`
	Default any      `mapstructure:"default"`
	Choices []Choice `mapstructure:"choices"`
}

// Choice is one option of a select question.
type Choice struct {
	Name        string `mapstructure:"name"`
	Value       any    `mapstructure:"value"`
	Description string `mapstructure:"description"`
}

// Features selects the optional test tooling of a generated project.
type Features struct {
	UnitTests bool
	E2ETests  bool
}

// Decode converts a raw definition, as produced by a YAML or JSON decoder,
// into a Definition. It does not validate; run the schema validator first.
func Decode(raw any) (*Definition, error) {
	var def Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, err
	}
	return &def, nil
}

// DependenciesFor returns the base dependencies merged with the unit and e2e
// maps selected by f. Later maps override earlier ones.
func (d *Definition) DependenciesFor(f Features) map[string]string {
	out := make(map[string]string, len(d.Dependencies.Base))
	merge(out, d.Dependencies.Base)
	if f.UnitTests {
		merge(out, d.Dependencies.Test.Unit)
	}
	if f.E2ETests {
		merge(out, d.Dependencies.Test.E2E)
	}
	return out
}

// ScriptsFor returns the base scripts, plus every test script when any test
// feature is selected.
func (d *Definition) ScriptsFor(f Features) map[string]string {
	out := make(map[string]string, len(d.Scripts.Base))
	merge(out, d.Scripts.Base)
	if f.UnitTests || f.E2ETests {
		merge(out, d.Scripts.Test)
	}
	return out
}

// RequiredFiles returns the template files the project type copies, in
// html, css, react, other order with additionalFiles last.
func (d *Definition) RequiredFiles() []string {
	var files []string
	for _, group := range [][]string{
		d.Templates.HTML,
		d.Templates.CSS,
		d.Templates.React,
		d.Templates.Other,
		d.Templates.AdditionalFiles,
	} {
		files = append(files, group...)
	}
	return files
}

func merge(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
