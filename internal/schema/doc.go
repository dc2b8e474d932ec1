// Package schema validates loosely-typed configuration trees against a
// declarative description of their shape.
//
// A schema is a tree of *Node values. Each node names the kinds a value may
// take (a single kind or a union such as string|array), whether the key is
// required in its parent object, an optional pattern for string values, and
// the nested structure: fixed Properties, DynamicProperties for maps whose
// keys are not known in advance, Items for array elements, and RequireOneOf
// for "at least one of these keys" constraints.
//
// A Validator walks an input value (typically the output of yaml.Unmarshal
// into any) against its root node and returns a Result listing every error
// found, plus warnings for keys the schema does not declare. Warnings never
// make a result invalid.
//
// ProjectDefinition is the schema for project-type definitions; use
// ValidateProjectConfig and ValidateAllProjectConfigs to check them.
package schema
