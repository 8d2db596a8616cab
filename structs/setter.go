package structs

import (
	"fmt"
	"reflect"

	"github.com/a-peyrard/reflective/reflectutils"
)

// Set replaces the value at path in origin. Struct fields must be exported and can only be written
// when reached through a pointer, map entries are always writable.
func Set(origin any, path string, value any) error {
	if origin == nil {
		return fmt.Errorf("%w: cannot set field %s on nil origin", ErrInvalidPath, path)
	}
	tokens, err := split(path)
	if err != nil {
		return err
	}

	last, err := walk(reflect.ValueOf(origin), path, tokens)
	if err != nil {
		return err
	}

	switch last.container.Kind() {
	case reflect.Map:
		key, err := last.key()
		if err != nil {
			return err
		}
		newValue, err := assignable(value, last.container.Type().Elem())
		if err != nil {
			return last.errorf(err, "cannot set key")
		}
		last.container.SetMapIndex(key, newValue)
		return nil

	case reflect.Struct:
		field, err := last.value()
		if err != nil {
			return err
		}
		if !field.CanSet() {
			return last.errorf(reflectutils.ErrNotAddressable, "field is not settable")
		}
		newValue, err := assignable(value, field.Type())
		if err != nil {
			return last.errorf(err, "cannot set field")
		}
		field.Set(newValue)
		return nil

	default:
		_, err = last.value()
		return err
	}
}

func assignable(value any, typ reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(typ), nil
	}
	val := reflect.ValueOf(value)
	if !val.Type().AssignableTo(typ) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s", reflectutils.ErrTypeMismatch, val.Type(), typ)
	}
	return val, nil
}
