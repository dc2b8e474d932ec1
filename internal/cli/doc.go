// Package cli defines the Cobra command tree for the protokit CLI. Each file
// in this package registers one top-level command (validate, list, show,
// manifest, config, version) with the root command. Commands delegate to the
// definitions, schema and pkgjson packages and only handle flags and output.
package cli
