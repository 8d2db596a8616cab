package reflective

import (
	"fmt"

	"github.com/a-peyrard/reflective/structs"
)

type (
	PropertyName[T any] struct {
		path string
	}

	// PropertyInvoker reads and writes a property reached through a dotted path of struct fields and
	// map keys, e.g. "Address.City".
	PropertyInvoker[T any] struct {
		path   string
		target any
	}
)

// Property starts the access to the property at path, of type T.
func Property[T any](path string) *PropertyName[T] {
	return &PropertyName[T]{path: path}
}

func (p *PropertyName[T]) In(target any) *PropertyInvoker[T] {
	return &PropertyInvoker[T]{
		path:   p.path,
		target: target,
	}
}

// Get returns the value of the property. Only exported fields are reachable.
func (p *PropertyInvoker[T]) Get() (T, error) {
	var zero T
	raw, err := structs.Get(p.target, p.path)
	if err != nil {
		return zero, fmt.Errorf("failed to get property %s:\n\t%w", p.path, err)
	}
	if raw == nil {
		return zero, nil
	}
	value, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: property %s is a %T, not a %s", ErrTypeMismatch, p.path, raw, TypeOf[T]())
	}
	return value, nil
}

// Set replaces the value of the property. The target must be a pointer for struct fields to be
// writable.
func (p *PropertyInvoker[T]) Set(value T) error {
	if err := structs.Set(p.target, p.path, value); err != nil {
		return fmt.Errorf("failed to set property %s:\n\t%w", p.path, err)
	}
	return nil
}
