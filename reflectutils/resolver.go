package reflectutils

import (
	"fmt"
	"reflect"
)

// CapabilityResolver reads and replaces values held by interface-typed struct fields.
//
// It only accepts fields declared with an interface type, as those are the only ones a proxy can
// stand in for.
type CapabilityResolver struct{}

func (CapabilityResolver) Read(target any, field string) (any, error) {
	val, _, err := capabilityField(target, field)
	if err != nil {
		return nil, err
	}
	if val.IsNil() {
		return nil, nil
	}
	return val.Interface(), nil
}

func (CapabilityResolver) Write(target any, field string, value any) error {
	val, structField, err := capabilityField(target, field)
	if err != nil {
		return err
	}
	if value == nil {
		val.Set(reflect.Zero(structField.Type))
		return nil
	}
	if !MatchType(structField.Type, reflect.TypeOf(value)) {
		return fmt.Errorf("%w: %T does not implement %s, type of field %q", ErrTypeMismatch, value, structField.Type, field)
	}
	val.Set(reflect.ValueOf(value))
	return nil
}

func capabilityField(target any, field string) (reflect.Value, reflect.StructField, error) {
	val, structField, err := FieldOf(target, field)
	if err != nil {
		return reflect.Value{}, reflect.StructField{}, err
	}
	if structField.Type.Kind() != reflect.Interface {
		return reflect.Value{}, reflect.StructField{}, fmt.Errorf("%w: field %q is of type %s, an interface is required", ErrTypeMismatch, field, structField.Type)
	}
	return val, structField, nil
}
