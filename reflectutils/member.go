package reflectutils

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrNotAddressable = errors.New("target is not addressable")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrArguments      = errors.New("invalid arguments")

	ErrorType = TypeOf[error]()
)

// TypeOf returns the reflect.Type of T, interfaces included.
func TypeOf[T any]() reflect.Type {
	var t T
	typ := reflect.TypeOf(t)
	if typ == nil {
		typ = reflect.TypeOf((*T)(nil)).Elem()
	}
	return typ
}

// MatchType tells if a value of type provided can be used where wanted is expected.
func MatchType(wanted, provided reflect.Type) bool {
	if wanted == provided {
		return true
	}
	if wanted.Kind() == reflect.Interface && provided.Implements(wanted) {
		return true
	}
	return false
}

// FieldOf locates the field named name on the struct pointed by target. Promoted fields of embedded
// structs are found too. The returned value is settable even if the field is not exported.
func FieldOf(target any, name string) (reflect.Value, reflect.StructField, error) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, reflect.StructField{}, fmt.Errorf("%w: expected a non nil pointer to a struct, got %T", ErrNotAddressable, target)
	}
	s := Deref(v)
	if s.Kind() != reflect.Struct {
		return reflect.Value{}, reflect.StructField{}, fmt.Errorf("%w: expected a pointer to a struct, got %T", ErrMemberNotFound, target)
	}

	structField, found := s.Type().FieldByName(name)
	if !found {
		return reflect.Value{}, reflect.StructField{}, fmt.Errorf("%w: no field %q in %s", ErrMemberNotFound, name, s.Type())
	}
	field, err := s.FieldByIndexErr(structField.Index)
	if err != nil {
		return reflect.Value{}, reflect.StructField{}, fmt.Errorf("%w: field %q of %s is behind a nil embedded pointer", ErrNotAddressable, name, s.Type())
	}
	if !field.CanSet() {
		field = reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem()
	}
	return field, structField, nil
}

// MethodOf finds the method named name on target, looking at the pointer method set when target is
// passed by value.
func MethodOf(target any, name string) (reflect.Value, error) {
	v := reflect.ValueOf(target)
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: cannot look up method %q on nil", ErrMemberNotFound, name)
	}
	if m := v.MethodByName(name); m.IsValid() {
		return m, nil
	}
	if v.Kind() != reflect.Pointer {
		ptr := reflect.New(v.Type())
		ptr.Elem().Set(v)
		if m := ptr.MethodByName(name); m.IsValid() {
			return m, nil
		}
	}
	return reflect.Value{}, fmt.Errorf("%w: no method %q on %s", ErrMemberNotFound, name, v.Type())
}

// CallArgs converts args to the values expected by a function of type fnType.
//
// For variadic functions, args can either list the variadic elements one by one, or carry the
// variadic slice as the last argument, in which case spread is true and the function must be
// called with CallSlice.
func CallArgs(fnType reflect.Type, args []any) (values []reflect.Value, spread bool, err error) {
	numIn := fnType.NumIn()
	if fnType.IsVariadic() {
		fixed := numIn - 1
		if len(args) < fixed {
			return nil, false, fmt.Errorf("%w: expected at least %d arguments, got %d", ErrArguments, fixed, len(args))
		}
		if len(args) == numIn && acceptsAsSlice(fnType.In(fixed), args[fixed]) {
			values, err = convertArgs(fnType.In, args)
			return values, true, err
		}
		values, err = convertArgs(func(i int) reflect.Type {
			if i < fixed {
				return fnType.In(i)
			}
			return fnType.In(fixed).Elem()
		}, args)
		return values, false, err
	}

	if len(args) != numIn {
		return nil, false, fmt.Errorf("%w: expected %d arguments, got %d", ErrArguments, numIn, len(args))
	}
	values, err = convertArgs(fnType.In, args)
	return values, false, err
}

func acceptsAsSlice(sliceType reflect.Type, arg any) bool {
	if arg == nil {
		return true
	}
	return reflect.TypeOf(arg).AssignableTo(sliceType)
}

func convertArgs(paramType func(int) reflect.Type, args []any) ([]reflect.Value, error) {
	values := make([]reflect.Value, len(args))
	for i, arg := range args {
		typ := paramType(i)
		if arg == nil {
			values[i] = reflect.Zero(typ)
			continue
		}
		val := reflect.ValueOf(arg)
		if !val.Type().AssignableTo(typ) {
			if !val.Type().ConvertibleTo(typ) || val.Kind() != typ.Kind() {
				return nil, fmt.Errorf("%w: argument %d of type %s is not assignable to %s", ErrArguments, i, val.Type(), typ)
			}
			val = val.Convert(typ)
		}
		values[i] = val
	}
	return values, nil
}

// ReturnsError tells if the last result of the function type is an error.
func ReturnsError(fnType reflect.Type) bool {
	return fnType.NumOut() > 0 && fnType.Out(fnType.NumOut()-1) == ErrorType
}
