package schema

import "strings"

// Kind is one of the value kinds a Node can accept.
type Kind string

// Supported kinds.
const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
)

// Types is an ordered set of kinds. A single entry is a plain type; more
// than one entry is a union and a value is accepted if it matches any of them.
type Types []Kind

// Of builds a Types value from the given kinds.
func Of(kinds ...Kind) Types { return Types(kinds) }

// Is reports whether t is exactly the single kind k. Unions never match.
func (t Types) Is(k Kind) bool {
	return len(t) == 1 && t[0] == k
}

// String joins the kinds with "|" (e.g., "string|array").
func (t Types) String() string {
	parts := make([]string, len(t))
	for i, k := range t {
		parts[i] = string(k)
	}
	return strings.Join(parts, "|")
}

// Node describes the constraints for one field. Nodes are built once as
// package-level values and are never modified by validation.
type Node struct {
	Type     Types
	Required bool

	// Pattern constrains the value only when it is a string.
	Pattern *Pattern

	// Properties are the fixed children of an object node.
	Properties map[string]*Node

	// DynamicProperties, when set, validates every key of the object against
	// one sub-schema and replaces the Properties walk.
	DynamicProperties *Node

	// Items validates each element of an array node.
	Items *Node

	// RequireOneOf lists keys of which at least one must be present.
	RequireOneOf []string

	Description string
}
