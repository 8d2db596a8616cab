package structs

import (
	"fmt"
	"reflect"
)

// Get retrieves the value at path from origin. Struct fields must be exported.
func Get(origin any, path string) (any, error) {
	if origin == nil {
		return nil, fmt.Errorf("%w: cannot get field %s from nil origin", ErrInvalidPath, path)
	}
	tokens, err := split(path)
	if err != nil {
		return nil, err
	}

	last, err := walk(reflect.ValueOf(origin), path, tokens)
	if err != nil {
		return nil, err
	}
	value, err := last.value()
	if err != nil {
		return nil, err
	}
	if !value.CanInterface() {
		return nil, last.errorf(ErrInvalidPath, "field is not exported")
	}
	return value.Interface(), nil
}
