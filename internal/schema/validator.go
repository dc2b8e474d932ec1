package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Result is the outcome of one validation pass.
type Result struct {
	Valid    bool     `json:"isValid" yaml:"isValid"`
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// Validator checks arbitrary values against a root Node. It keeps no state
// between calls and is safe for concurrent use.
type Validator struct {
	root *Node
}

// NewValidator returns a Validator for root. A nil root is a programming
// error and panics.
func NewValidator(root *Node) *Validator {
	if root == nil {
		panic("schema: NewValidator called with nil root node")
	}
	return &Validator{root: root}
}

// Validate walks config against the root schema and reports every violation
// found. Malformed input never panics; it only produces errors.
func (v *Validator) Validate(config any) Result {
	r := &report{
		errors:   []string{},
		warnings: []string{},
	}
	r.object(config, v.root, "")
	return Result{
		Valid:    len(r.errors) == 0,
		Errors:   r.errors,
		Warnings: r.warnings,
	}
}

// report accumulates the messages of a single Validate call.
type report struct {
	errors   []string
	warnings []string
}

func (r *report) errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *report) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// object validates value as an object described by node.
func (r *report) object(value any, node *Node, path string) {
	obj, ok := asObject(value)
	if !ok {
		r.errorf("Expected object at %s, got %s", path, typeName(value))
		return
	}

	for _, key := range sortedKeys(node.Properties) {
		if !node.Properties[key].Required {
			continue
		}
		if _, present := obj[key]; !present {
			r.errorf("Missing required field: %s", joinPath(path, key))
		}
	}

	if node.DynamicProperties != nil {
		for _, key := range sortedKeys(obj) {
			r.field(obj[key], node.DynamicProperties, joinPath(path, key))
		}
	} else {
		for _, key := range sortedKeys(obj) {
			fieldPath := joinPath(path, key)
			child, known := node.Properties[key]
			if !known {
				r.warnf("Unknown field: %s", fieldPath)
				continue
			}
			r.field(obj[key], child, fieldPath)
		}
	}

	if len(node.RequireOneOf) > 0 && !hasAny(obj, node.RequireOneOf) {
		r.errorf("At least one of [%s] is required at %s", strings.Join(node.RequireOneOf, ", "), path)
	}
}

// field validates a single value against node.
func (r *report) field(value any, node *Node, path string) {
	matched := false
	for _, k := range node.Type {
		if checkKind(value, k) {
			matched = true
			break
		}
	}
	if !matched {
		r.errorf("Invalid type for %s: expected %s, got %s", path, node.Type, typeName(value))
		return
	}

	if s, isString := value.(string); isString && node.Pattern != nil {
		if !node.Pattern.MatchString(s) {
			r.errorf("Invalid format for %s: value '%s' doesn't match pattern %s", path, s, node.Pattern)
		}
	}

	if node.Type.Is(KindObject) {
		r.object(value, node, path)
	}

	if node.Type.Is(KindArray) && node.Items != nil {
		items, _ := asArray(value)
		for i, item := range items {
			r.field(item, node.Items, fmt.Sprintf("%s[%d]", path, i))
		}
	}
}

// joinPath appends key to a dotted path. The root path is empty.
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func hasAny(obj map[string]any, keys []string) bool {
	for _, k := range keys {
		if _, ok := obj[k]; ok {
			return true
		}
	}
	return false
}

// sortedKeys gives map walks a stable order so reports are reproducible.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
