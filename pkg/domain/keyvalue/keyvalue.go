// Package keyvalue provides a labelled scalar pair used for rendering
// ad-hoc attributes such as "Odometer: 1200".
package keyvalue

import (
	"strconv"

	dErrors "contracts/pkg/domain-errors"
)

// KeyValue is an immutable key with a scalar value.
//
// Invariants:
//   - value is one of int, int64, float64, string, bool or nil
type KeyValue struct {
	key   string
	value any
}

// New builds a KeyValue. Non-scalar values fail with CodeInvalidInput.
func New(key string, value any) (KeyValue, error) {
	switch value.(type) {
	case nil, int, int64, float64, string, bool:
		return KeyValue{key: key, value: value}, nil
	default:
		return KeyValue{}, dErrors.Newf(dErrors.CodeInvalidInput, "Value for key %s must be a scalar, got %T", key, value)
	}
}

// MustNew is like New but panics on error. Use only with literal values.
func MustNew(key string, value any) KeyValue {
	kv, err := New(key, value)
	if err != nil {
		panic(err)
	}
	return kv
}

func (kv KeyValue) Key() string { return kv.key }
func (kv KeyValue) Value() any  { return kv.value }

// String renders "key: value". Booleans render as true/false and nil as null.
func (kv KeyValue) String() string {
	return kv.key + ": " + formatScalar(kv.value)
}

func formatScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
