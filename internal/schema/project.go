package schema

// Patterns shared by the project definition schema and its callers.
var (
	// NamePattern matches kebab-case names: lowercase letters in
	// hyphen-separated groups, no leading, trailing, or doubled hyphens.
	NamePattern = MustCompilePattern(`^(?!-)(?!.*--)[a-z]+(-[a-z]+)*(?<!-)$`)

	// SourcePattern matches an entry file name such as "index.html" or
	// "contact-page.jsx". The empty string is accepted.
	SourcePattern = MustCompilePattern(`^(?:(?!-)[a-z]+(?:-[a-z]+)*\.(jsx|html|[a-z]+))?$`)

	// SrcFolderPattern matches the common source folder names.
	SrcFolderPattern = MustCompilePattern(`^(src|app|source|frontend|client|public|assets|www|dist|ui)$`)

	// ModuleTypePattern matches a package.json module type.
	ModuleTypePattern = MustCompilePattern(`^(module|commonjs)$`)

	// VersionPattern matches a dependency version: "latest" or an exact or
	// caret semver triple.
	VersionPattern = MustCompilePattern(`^(latest|\^?[0-9]+\.[0-9]+\.[0-9]+)$`)
)

// versionMap is a dependency-name → version map.
func versionMap(required bool, description string) *Node {
	return &Node{
		Type:        Of(KindObject),
		Required:    required,
		Description: description,
		DynamicProperties: &Node{
			Type:    Of(KindString),
			Pattern: VersionPattern,
		},
	}
}

func requiredString() *Node {
	return &Node{Type: Of(KindString), Required: true}
}

// fileList accepts one file name or a list of them.
func fileList(description string) *Node {
	return &Node{
		Type:        Of(KindString, KindArray),
		Description: description,
	}
}

// ProjectDefinition is the schema of a project-type definition.
var ProjectDefinition = &Node{
	Type: Of(KindObject),
	Properties: map[string]*Node{
		"id": {
			Type:        Of(KindString),
			Description: "Legacy identifier kept by older definitions",
		},
		"type": {
			Type:        Of(KindString),
			Required:    true,
			Pattern:     NamePattern,
			Description: "Unique identifier for the project type",
		},
		"name": {
			Type:        Of(KindString),
			Required:    true,
			Description: "User-friendly display name",
		},
		"description": {
			Type:        Of(KindString),
			Required:    true,
			Description: "Project type description shown in selection",
		},
		"templates": {
			Type: Of(KindObject),
			Properties: map[string]*Node{
				"html":  fileList("HTML template file(s)"),
				"css":   fileList("CSS template file(s)"),
				"react": fileList("React component file(s)"),
				"other": {
					Type:        Of(KindArray),
					Items:       &Node{Type: Of(KindString)},
					Description: "Additional template files",
				},
				"additionalFiles": {
					Type:        Of(KindArray),
					Items:       &Node{Type: Of(KindString)},
					Description: "Files copied after the typed templates",
				},
			},
		},
		"configs": fileList("Project-specific config files copied to the project root"),
		"ignores": {
			Type:        Of(KindArray),
			Items:       &Node{Type: Of(KindString)},
			Description: "Base configs to skip (e.g., eslint)",
		},
		"dependencies": {
			Type:     Of(KindObject),
			Required: true,
			Properties: map[string]*Node{
				"base": versionMap(true, "Core project dependencies"),
				"test": {
					Type:     Of(KindObject),
					Required: true,
					Properties: map[string]*Node{
						"unit": versionMap(true, "Unit testing dependencies"),
						"e2e":  versionMap(true, "E2E testing dependencies"),
					},
				},
			},
		},
		"scripts": {
			Type:     Of(KindObject),
			Required: true,
			Properties: map[string]*Node{
				"base": {
					Type:        Of(KindObject),
					Required:    true,
					Description: "Core project scripts",
					Properties: map[string]*Node{
						"lint":  requiredString(),
						"start": requiredString(),
						// Optional framework scripts.
						"dev":      {Type: Of(KindString)},
						"build":    {Type: Of(KindString)},
						"static":   {Type: Of(KindString)},
						"prettier": {Type: Of(KindString)},
					},
				},
				"test": {
					Type:     Of(KindObject),
					Required: true,
					Properties: map[string]*Node{
						"test":              requiredString(),
						"test:watch":        requiredString(),
						"test:e2e":          requiredString(),
						"test:e2e:headless": requiredString(),
					},
				},
			},
		},
		"vscodeSettings": {
			Type:        Of(KindBoolean),
			Description: "Whether project needs custom VS Code settings",
		},
		"source": {
			Type:        Of(KindString),
			Pattern:     SourcePattern,
			Description: "Entry file name inside the source folder",
		},
		"srcFolder": {
			Type:        Of(KindString),
			Pattern:     SrcFolderPattern,
			Description: "Source folder name",
		},
		"moduleType": {
			Type:        Of(KindString),
			Pattern:     ModuleTypePattern,
			Description: "package.json module type",
		},
		"questions": {
			Type:        Of(KindArray),
			Description: "Extra prompts asked when this project type is chosen",
			Items: &Node{
				Type: Of(KindObject),
				Properties: map[string]*Node{
					"name":    requiredString(),
					"type":    requiredString(),
					"message": requiredString(),
					"default": {Type: Of(KindString, KindBoolean)},
					"choices": {
						Type: Of(KindArray),
						Items: &Node{
							Type:         Of(KindObject),
							RequireOneOf: []string{"name", "value"},
							Properties: map[string]*Node{
								"name":        {Type: Of(KindString)},
								"value":       {Type: Of(KindString, KindBoolean, KindNumber)},
								"description": {Type: Of(KindString)},
							},
						},
					},
				},
			},
		},
	},
}

var projectValidator = NewValidator(ProjectDefinition)

// ValidateProjectConfig validates one project definition against
// ProjectDefinition.
func ValidateProjectConfig(config any) Result {
	return projectValidator.Validate(config)
}

// ValidateAllProjectConfigs validates every entry of configs independently.
// No checks span entries; duplicate type names are not detected here.
func ValidateAllProjectConfigs(configs map[string]any) map[string]Result {
	results := make(map[string]Result, len(configs))
	for name, config := range configs {
		results[name] = ValidateProjectConfig(config)
	}
	return results
}
