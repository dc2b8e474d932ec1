// Package definitions loads project-type definitions. Definitions are YAML
// documents named project-definition.yaml, one per directory, read from an
// ordered list of sources: the definitions embedded in the binary and any
// user directories. Loaded definitions are kept as raw decoded maps so they
// can be checked with the schema package, and decoded into typed Definition
// values on demand.
package definitions
