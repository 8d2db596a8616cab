package decorator

import "fmt"

type (
	// Accessor reads and replaces the value held by one field.
	Accessor[I any] interface {
		Get() (I, error)
		Set(value I) error
	}

	// Resolver reads and writes fields by name on a target.
	Resolver interface {
		Read(target any, field string) (any, error)
		Write(target any, field string, value any) error
	}

	boundField[I any] struct {
		resolver Resolver
		target   any
		field    string
	}
)

// Bind returns an accessor of the field named field of target, going through resolver.
func Bind[I any](resolver Resolver, target any, field string) Accessor[I] {
	return &boundField[I]{
		resolver: resolver,
		target:   target,
		field:    field,
	}
}

func (b *boundField[I]) Get() (I, error) {
	var zero I
	raw, err := b.resolver.Read(b.target, b.field)
	if err != nil {
		return zero, fmt.Errorf("failed to read field %q of %T:\n\t%w", b.field, b.target, err)
	}
	if raw == nil {
		return zero, nil
	}
	value, ok := raw.(I)
	if !ok {
		return zero, fmt.Errorf("%w: field %q of %T holds a %T", ErrTypeMismatch, b.field, b.target, raw)
	}
	return value, nil
}

func (b *boundField[I]) Set(value I) error {
	if err := b.resolver.Write(b.target, b.field, value); err != nil {
		return fmt.Errorf("failed to write field %q of %T:\n\t%w", b.field, b.target, err)
	}
	return nil
}

func (b *boundField[I]) String() string {
	return fmt.Sprintf("%T.%s", b.target, b.field)
}
