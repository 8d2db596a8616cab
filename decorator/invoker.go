package decorator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/a-peyrard/reflective/reflectutils"
)

type (
	// Invoker dispatches a call by method name. Results are returned in declaration order.
	// A call failing by panic makes Invoke panic with the same value.
	Invoker interface {
		Invoke(method string, args ...any) []any
	}

	// Kind identifies a failure: the dynamic type of the panic value or of the returned error.
	Kind = reflect.Type

	// Failure is a call that panicked, or that returned a non-nil error as its last result.
	Failure struct {
		Value    any
		Panicked bool
	}

	outcome struct {
		results []any
		failure *Failure
	}

	// dispatcher is the internal face of everything a handler can call: plain values, shields and
	// other handlers.
	dispatcher interface {
		dispatch(method string, args []any) outcome
		signature(method string) (reflect.Type, error)
	}

	valueDispatcher struct {
		value reflect.Value
	}
)

var ErrUnknownMethod = errors.New("unknown method")

// PlainError is the kind of errors built by errors.New, and by fmt.Errorf without any %w verb.
// Errors wrapping another error are of a different kind.
var PlainError Kind = reflect.TypeOf(errors.New(""))

// KindOf returns the kind of failures raised with values of type E. E should be a concrete type,
// kinds are never matched against interfaces.
func KindOf[E any]() Kind {
	return reflectutils.TypeOf[E]()
}

// KindOfValue returns the kind of failures raised with the given value.
func KindOfValue(value any) Kind {
	return reflect.TypeOf(value)
}

func (f *Failure) Kind() Kind {
	return reflect.TypeOf(f.Value)
}

func (f *Failure) String() string {
	if f.Panicked {
		return fmt.Sprintf("panic: %v", f.Value)
	}
	return fmt.Sprintf("%v", f.Value)
}

// raise gives the results of the outcome to a caller, panicking again if the call panicked.
func (o outcome) raise() []any {
	if o.failure != nil && o.failure.Panicked {
		panic(o.failure.Value)
	}
	return o.results
}

func newValueDispatcher(value any) valueDispatcher {
	return valueDispatcher{value: reflect.ValueOf(value)}
}

func (d valueDispatcher) signature(method string) (reflect.Type, error) {
	m := d.value.MethodByName(method)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s has no method %s", ErrUnknownMethod, d.value.Type(), method)
	}
	return m.Type(), nil
}

func (d valueDispatcher) dispatch(method string, args []any) (o outcome) {
	defer func() {
		if r := recover(); r != nil {
			o = outcome{failure: &Failure{Value: r, Panicked: true}}
		}
	}()

	m := d.value.MethodByName(method)
	if !m.IsValid() {
		panic(fmt.Errorf("%w: %s has no method %s", ErrUnknownMethod, d.value.Type(), method))
	}
	in, spread, err := reflectutils.CallArgs(m.Type(), args)
	if err != nil {
		panic(fmt.Errorf("failed to call %s.%s:\n\t%w", d.value.Type(), method, err))
	}

	var out []reflect.Value
	if spread {
		out = m.CallSlice(in)
	} else {
		out = m.Call(in)
	}

	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	o.results = results
	if reflectutils.ReturnsError(m.Type()) {
		if err, _ := results[len(results)-1].(error); err != nil {
			o.failure = &Failure{Value: err}
		}
	}
	return o
}
