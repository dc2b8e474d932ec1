package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Input values are whatever yaml.Unmarshal or json.Unmarshal produce when
// decoding into any, plus hand-built Go maps and slices.

// checkKind reports whether value matches kind k.
func checkKind(value any, k Kind) bool {
	switch k {
	case KindString:
		_, ok := value.(string)
		return ok
	case KindNumber:
		return isNumber(value)
	case KindBoolean:
		_, ok := value.(bool)
		return ok
	case KindObject:
		_, ok := asObject(value)
		return ok
	case KindArray:
		_, ok := asArray(value)
		return ok
	default:
		return false
	}
}

func isNumber(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	default:
		return false
	}
}

// asObject returns value as a string-keyed map. nil maps are not objects.
func asObject(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case nil:
		return nil, false
	case map[string]any:
		if m == nil {
			return nil, false
		}
		return m, true
	case map[any]any:
		if m == nil {
			return nil, false
		}
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// asArray returns value as a slice of elements.
func asArray(value any) ([]any, bool) {
	switch a := value.(type) {
	case nil:
		return nil, false
	case []any:
		return a, true
	case []string:
		out := make([]any, len(a))
		for i, s := range a {
			out[i] = s
		}
		return out, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// typeName describes the runtime type of value for error messages.
func typeName(value any) string {
	switch {
	case value == nil:
		return "null"
	case checkKind(value, KindString):
		return "string"
	case checkKind(value, KindNumber):
		return "number"
	case checkKind(value, KindBoolean):
		return "boolean"
	case checkKind(value, KindArray):
		return "array"
	case checkKind(value, KindObject):
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
