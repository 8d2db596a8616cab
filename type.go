package reflective

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/a-peyrard/reflective/option"
	"github.com/a-peyrard/reflective/reflectutils"
)

type (
	TypeOptions struct {
		named string
	}

	// TypeName loads a registered type by its name.
	TypeName struct {
		name string
	}
)

var registeredTypes sync.Map

// Named registers the type under the given name instead of its qualified name.
func Named(name string) option.Option[TypeOptions] {
	return func(opts *TypeOptions) {
		opts.named = name
	}
}

// RegisterType makes T loadable by name. By default the name is the qualified name of the type,
// the package path followed by the type name, e.g. "github.com/acme/app/model.User".
func RegisterType[T any](opts ...option.Option[TypeOptions]) string {
	typ := TypeOf[T]()
	options := option.Build(&TypeOptions{named: QualifiedName(typ)}, opts...)
	registeredTypes.Store(options.named, typ)
	return options.named
}

// QualifiedName returns the package path of a named type followed by its name. Unnamed types, like
// pointers or slices, use their string representation.
func QualifiedName(typ reflect.Type) string {
	if typ.Name() == "" || typ.PkgPath() == "" {
		return typ.String()
	}
	return typ.PkgPath() + "." + typ.Name()
}

// Type starts the loading of the type registered as name.
func Type(name string) *TypeName {
	return &TypeName{name: name}
}

// Load returns the type registered under the name.
func (t *TypeName) Load() (reflect.Type, error) {
	raw, found := registeredTypes.Load(t.name)
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, t.name)
	}
	return raw.(reflect.Type), nil
}

// LoadAs returns the type registered under name, checking it can be used as a T.
func LoadAs[T any](name string) (reflect.Type, error) {
	typ, err := Type(name).Load()
	if err != nil {
		return nil, err
	}
	if !reflectutils.MatchType(TypeOf[T](), typ) {
		return nil, fmt.Errorf("%w: type %q is not a %s", ErrTypeMismatch, name, TypeOf[T]())
	}
	return typ, nil
}

// RegisteredTypes lists the names of all registered types, sorted.
func RegisteredTypes() []string {
	var names []string
	registeredTypes.Range(func(key, _ any) bool {
		names = append(names, key.(string))
		return true
	})
	sort.Strings(names)
	return names
}
