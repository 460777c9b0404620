package enum

import (
	"fmt"
	"reflect"
)

// registry maps an enum type to its registered string values. Enum types
// must have string as their underlying type.
var registry = map[reflect.Type]map[string]any{}

func New[T comparable](value T) T {
	t := reflect.TypeOf(value)
	values, ok := registry[t]
	if !ok {
		values = map[string]any{}
		registry[t] = values
	}

	values[reflect.ValueOf(value).String()] = value
	return value
}

func ToEnum[T comparable](s string) (T, error) {
	var zero T
	values, ok := registry[reflect.TypeOf(zero)]
	if !ok {
		return zero, fmt.Errorf("not found enum type %T", zero)
	}

	value, ok := values[s]
	if !ok {
		return zero, fmt.Errorf("not found value %s in enum %T", s, zero)
	}

	return value.(T), nil
}
