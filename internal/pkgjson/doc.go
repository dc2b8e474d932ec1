// Package pkgjson builds the package.json of a new project from a project
// definition and checks package.json documents against an embedded JSON
// Schema.
package pkgjson
