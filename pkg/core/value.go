package core

import "encoding/json"

// Value is a sealed interface over the property value kinds the metadata
// layer can hold. Only NullValue, NumberValue, StringValue, and StructValue
// implement it. Anything else upstream (e.g. arrays) is coerced to
// NullValue at the decoding boundary and treated as absent.
type Value interface {
	value() // Sealed - only these types implement it

	// Plain returns the decoded Go representation: nil, float64, string,
	// or map[string]any. It is total and never fails.
	Plain() any
}

// NullValue represents an absent or unrepresentable property value.
type NullValue struct{}

func (NullValue) value() {}

// Plain implements Value.
func (NullValue) Plain() any { return nil }

// MarshalJSON keeps null properties null on the wire instead of the default
// empty-object encoding of a struct.
func (NullValue) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// NumberValue represents a numeric property value.
type NumberValue float64

func (NumberValue) value() {}

// Plain implements Value.
func (v NumberValue) Plain() any { return float64(v) }

// StringValue represents a string property value.
type StringValue string

func (StringValue) value() {}

// Plain implements Value.
func (v StringValue) Plain() any { return string(v) }

// StructValue represents a structured (JSON object) property value.
type StructValue map[string]any

func (StructValue) value() {}

// Plain implements Value.
func (v StructValue) Plain() any {
	if v == nil {
		return nil
	}
	return map[string]any(v)
}

// IsNull reports whether v decodes to a null plain value.
func IsNull(v Value) bool {
	return v == nil || v.Plain() == nil
}

// JSONString returns the JSON serialization of v's plain value, which is
// the cell representation users see in comparison tables (strings keep
// their JSON quoting, null values serialize to "null").
func JSONString(v Value) string {
	var plain any
	if v != nil {
		plain = v.Plain()
	}
	b, err := json.Marshal(plain)
	if err != nil {
		return ""
	}
	return string(b)
}

// ValueOf coerces an arbitrary decoded value (from JSON or YAML) into the
// closed Value variant. Integers are widened to NumberValue; unsupported
// kinds become NullValue.
func ValueOf(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return NullValue{}
	case float64:
		return NumberValue(v)
	case float32:
		return NumberValue(v)
	case int:
		return NumberValue(v)
	case int64:
		return NumberValue(v)
	case string:
		return StringValue(v)
	case map[string]any:
		return StructValue(v)
	default:
		return NullValue{}
	}
}

// PropertiesToJSON serializes a custom property map to a JSON object for
// persistence. A nil map serializes to "{}".
func PropertiesToJSON(props map[string]Value) ([]byte, error) {
	plain := make(map[string]any, len(props))
	for name, v := range props {
		if v == nil {
			plain[name] = nil
			continue
		}
		plain[name] = v.Plain()
	}
	return json.Marshal(plain)
}

// PropertiesFromJSON decodes a persisted JSON object back into a custom
// property map. Malformed input yields an empty map rather than an error;
// absent or unreadable properties are treated as "not present", never as
// failures.
func PropertiesFromJSON(data []byte) map[string]Value {
	if len(data) == 0 {
		return map[string]Value{}
	}
	var plain map[string]any
	if err := json.Unmarshal(data, &plain); err != nil {
		return map[string]Value{}
	}
	props := make(map[string]Value, len(plain))
	for name, raw := range plain {
		props[name] = ValueOf(raw)
	}
	return props
}
