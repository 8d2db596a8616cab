package reflective

import (
	"fmt"
	"reflect"

	"github.com/a-peyrard/reflective/decorator"
	"github.com/a-peyrard/reflective/option"
	"github.com/a-peyrard/reflective/reflectutils"
)

type (
	FieldName[T any] struct {
		name string
	}

	// FieldInvoker reads, writes and decorates a field of a target struct.
	FieldInvoker[T any] struct {
		name   string
		target any
	}
)

// Field starts the access to the field named name, of type T.
func Field[T any](name string) *FieldName[T] {
	return &FieldName[T]{name: name}
}

// In binds the field to target, which must be a pointer to a struct.
func (f *FieldName[T]) In(target any) *FieldInvoker[T] {
	return &FieldInvoker[T]{
		name:   f.name,
		target: target,
	}
}

// Info returns the description of the field.
func (f *FieldInvoker[T]) Info() (reflect.StructField, error) {
	_, structField, err := reflectutils.FieldOf(f.target, f.name)
	return structField, err
}

// Get returns the value of the field. Unexported fields are readable too.
func (f *FieldInvoker[T]) Get() (T, error) {
	var zero T
	val, structField, err := reflectutils.FieldOf(f.target, f.name)
	if err != nil {
		return zero, fmt.Errorf("failed to get field %s:\n\t%w", f, err)
	}
	if !structField.Type.AssignableTo(TypeOf[T]()) {
		return zero, fmt.Errorf("%w: field %s is of type %s, not assignable to %s", ErrTypeMismatch, f, structField.Type, TypeOf[T]())
	}
	value, ok := val.Interface().(T)
	if !ok {
		// nil interface
		return zero, nil
	}
	return value, nil
}

// Set replaces the value of the field. Unexported fields are writable too.
func (f *FieldInvoker[T]) Set(value T) error {
	val, structField, err := reflectutils.FieldOf(f.target, f.name)
	if err != nil {
		return fmt.Errorf("failed to set field %s:\n\t%w", f, err)
	}
	if !TypeOf[T]().AssignableTo(structField.Type) {
		return fmt.Errorf("%w: cannot assign %s to field %s of type %s", ErrTypeMismatch, TypeOf[T](), f, structField.Type)
	}
	newValue := reflect.ValueOf(&value).Elem()
	val.Set(newValue)
	return nil
}

// MustGet is like Get but panics on error.
func (f *FieldInvoker[T]) MustGet() T {
	value, err := f.Get()
	if err != nil {
		panic(err.Error())
	}
	return value
}

// AttachBefore decorates the field, the decorator running before the current value on every call.
// The field must be declared with the interface type T.
func (f *FieldInvoker[T]) AttachBefore(d T, opts ...option.Option[decorator.Options]) *decorator.Controller[T] {
	return decorator.AttachBefore(f.capability(), d, opts...)
}

// AttachAfter decorates the field, the decorator running after the current value on every call.
// The field must be declared with the interface type T.
func (f *FieldInvoker[T]) AttachAfter(d T, opts ...option.Option[decorator.Options]) *decorator.Controller[T] {
	return decorator.AttachAfter(f.capability(), d, opts...)
}

func (f *FieldInvoker[T]) capability() decorator.Accessor[T] {
	return decorator.Bind[T](reflectutils.CapabilityResolver{}, f.target, f.name)
}

func (f *FieldInvoker[T]) String() string {
	return fmt.Sprintf("%T.%s", f.target, f.name)
}
