package reflective

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"

	"github.com/a-peyrard/reflective/reflectutils"
)

type (
	ConstructorName[T any] struct {
		paramTypes []reflect.Type
		checked    bool
	}

	// ConstructorInvoker builds instances of T with a factory function.
	ConstructorInvoker[T any] struct {
		factory reflect.Value
		err     error
	}
)

// Constructor starts the creation of an instance of T.
func Constructor[T any]() *ConstructorName[T] {
	return &ConstructorName[T]{}
}

// WithParameterTypes pins the exact parameter types of the factory.
func (c *ConstructorName[T]) WithParameterTypes(types ...reflect.Type) *ConstructorName[T] {
	n := *c
	n.paramTypes = types
	n.checked = true
	return &n
}

// NewInstance allocates a zero instance of T. For a pointer to a struct, the struct is allocated.
func (c *ConstructorName[T]) NewInstance() T {
	typ := TypeOf[T]()
	if typ.Kind() == reflect.Pointer {
		return reflect.New(typ.Elem()).Interface().(T)
	}
	var zero T
	return zero
}

// In uses factory to build instances. The factory must return T, optionally followed by an error.
func (c *ConstructorName[T]) In(factory any) *ConstructorInvoker[T] {
	return &ConstructorInvoker[T]{
		factory: reflect.ValueOf(factory),
		err:     c.checkFactory(factory),
	}
}

func (c *ConstructorName[T]) checkFactory(factory any) error {
	t := reflect.TypeOf(factory)
	if t == nil || t.Kind() != reflect.Func {
		return fmt.Errorf("%w: factory must be a function, got %T", ErrTypeMismatch, factory)
	}
	if t.NumOut() != 1 && t.NumOut() != 2 {
		return errors.New("factory must either return the instance and an error, or just the instance")
	}
	if t.NumOut() == 2 && t.Out(1) != reflectutils.ErrorType {
		return errors.New("if factory returns two elements, it must return an error as the second element")
	}
	if !reflectutils.MatchType(TypeOf[T](), t.Out(0)) {
		return fmt.Errorf("%w: factory returns %s, expected %s", ErrTypeMismatch, t.Out(0), TypeOf[T]())
	}
	if c.checked {
		if t.NumIn() != len(c.paramTypes) {
			return fmt.Errorf("%w: expected %d parameters, factory has %d", ErrTypeMismatch, len(c.paramTypes), t.NumIn())
		}
		for i, paramType := range c.paramTypes {
			if t.In(i) != paramType {
				return fmt.Errorf("%w: parameter %d is of type %s, expected %s", ErrTypeMismatch, i, t.In(i), paramType)
			}
		}
	}
	return nil
}

// NewInstance calls the factory with args.
func (c *ConstructorInvoker[T]) NewInstance(args ...any) (T, error) {
	var zero T
	if c.err != nil {
		return zero, fmt.Errorf("invalid factory %s:\n\t%w", c, c.err)
	}
	in, spread, err := reflectutils.CallArgs(c.factory.Type(), args)
	if err != nil {
		return zero, fmt.Errorf("failed to call factory %s:\n\t%w", c, err)
	}

	// panic recovery, as `Call` panics if the factory panics
	var (
		results []reflect.Value
		callErr error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				callErr = fmt.Errorf("%w: panic calling factory %s: %v", ErrInvocation, c, r)
			}
		}()
		if spread {
			results = c.factory.CallSlice(in)
		} else {
			results = c.factory.Call(in)
		}
	}()
	if callErr != nil {
		return zero, callErr
	}

	if len(results) == 2 && !results[1].IsNil() {
		return zero, results[1].Interface().(error)
	}
	value, ok := results[0].Interface().(T)
	if !ok {
		return zero, nil
	}
	return value, nil
}

func (c *ConstructorInvoker[T]) String() string {
	if !c.factory.IsValid() || c.factory.Kind() != reflect.Func {
		return fmt.Sprintf("Constructor[%s]", TypeOf[T]())
	}
	return fmt.Sprintf("Constructor[%s](%s)", TypeOf[T](), runtime.FuncForPC(c.factory.Pointer()).Name())
}
