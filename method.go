package reflective

import (
	"fmt"
	"reflect"

	"github.com/a-peyrard/reflective/reflectutils"
)

type (
	MethodName[R any] struct {
		name       string
		paramTypes []reflect.Type
		checked    bool
	}

	// MethodInvoker invokes a method of a target, returning its value result as R.
	MethodInvoker[R any] struct {
		method MethodName[R]
		target any
	}
)

// Method starts the invocation of the method named name, returning a value of type R. Use Void for
// methods without a value result.
func Method[R any](name string) *MethodName[R] {
	return &MethodName[R]{name: name}
}

// WithParameterTypes pins the exact parameter types of the method.
func (m *MethodName[R]) WithParameterTypes(types ...reflect.Type) *MethodName[R] {
	c := *m
	c.paramTypes = types
	c.checked = true
	return &c
}

// In binds the method to target. Methods declared on the pointer receiver are found even if target
// is passed by value.
func (m *MethodName[R]) In(target any) *MethodInvoker[R] {
	return &MethodInvoker[R]{
		method: *m,
		target: target,
	}
}

// Invoke calls the method with args. A trailing error returned by the method is returned as is, a
// panic is converted to an error wrapping ErrInvocation.
func (m *MethodInvoker[R]) Invoke(args ...any) (R, error) {
	var zero R
	method, err := reflectutils.MethodOf(m.target, m.method.name)
	if err != nil {
		return zero, fmt.Errorf("failed to invoke %s:\n\t%w", m, err)
	}
	if err = m.checkSignature(method.Type()); err != nil {
		return zero, fmt.Errorf("failed to invoke %s:\n\t%w", m, err)
	}
	in, spread, err := reflectutils.CallArgs(method.Type(), args)
	if err != nil {
		return zero, fmt.Errorf("failed to invoke %s:\n\t%w", m, err)
	}

	// panic recovery, as `Call` panics if the method panics
	var (
		results []reflect.Value
		callErr error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				callErr = fmt.Errorf("%w: panic calling %s: %v", ErrInvocation, m, r)
			}
		}()
		if spread {
			results = method.CallSlice(in)
		} else {
			results = method.Call(in)
		}
	}()
	if callErr != nil {
		return zero, callErr
	}

	if reflectutils.ReturnsError(method.Type()) {
		last := results[len(results)-1]
		results = results[:len(results)-1]
		if !last.IsNil() {
			return zero, last.Interface().(error)
		}
	}
	if len(results) == 0 {
		return zero, nil
	}
	value, ok := results[0].Interface().(R)
	if !ok {
		return zero, nil
	}
	return value, nil
}

func (m *MethodInvoker[R]) checkSignature(typ reflect.Type) error {
	if m.method.checked {
		if typ.NumIn() != len(m.method.paramTypes) {
			return fmt.Errorf("%w: expected %d parameters, method has %d", ErrTypeMismatch, len(m.method.paramTypes), typ.NumIn())
		}
		for i, paramType := range m.method.paramTypes {
			if typ.In(i) != paramType {
				return fmt.Errorf("%w: parameter %d is of type %s, expected %s", ErrTypeMismatch, i, typ.In(i), paramType)
			}
		}
	}

	numOut := typ.NumOut()
	if reflectutils.ReturnsError(typ) {
		numOut--
	}
	resultType := TypeOf[R]()
	if resultType == voidType {
		if numOut != 0 {
			return fmt.Errorf("%w: method returns %d values, none expected", ErrTypeMismatch, numOut)
		}
		return nil
	}
	if numOut != 1 {
		return fmt.Errorf("%w: method must return exactly one value, optionally followed by an error, got %d values", ErrTypeMismatch, numOut)
	}
	if !typ.Out(0).AssignableTo(resultType) {
		return fmt.Errorf("%w: method returns %s, not assignable to %s", ErrTypeMismatch, typ.Out(0), resultType)
	}
	return nil
}

func (m *MethodInvoker[R]) String() string {
	return fmt.Sprintf("%T.%s", m.target, m.method.name)
}
