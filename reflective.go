// Package reflective is a fluent layer over reflective member access.
//
// Each fluent step stores one piece of configuration, the terminal step delegates to reflection:
//
//	name, err := reflective.Field[string]("name").In(&person).Get()
//	err = reflective.Field[string]("name").In(&person).Set("Leia")
//	greeting, err := reflective.Method[string]("Greet").WithParameterTypes(reflective.TypeOf[string]()).In(person).Invoke("Luke")
//	jedi, err := reflective.Constructor[*Jedi]().In(NewJedi).NewInstance("Yoda")
//	typ, err := reflective.Type("example.Jedi").Load()
//	city, err := reflective.Property[string]("Address.City").In(&person).Get()
//
// Interface-typed fields can also be decorated, see package decorator:
//
//	err = reflective.Field[Uploader]("uploader").In(service).
//		AttachBefore(spy).
//		IgnoreExceptions().
//		ReturnDecoratorResult().
//		Err()
package reflective

import (
	"errors"
	"reflect"

	"github.com/a-peyrard/reflective/reflectutils"
)

// Void is the result type of methods not returning any value, except an optional error.
type Void struct{}

var (
	ErrMemberNotFound = reflectutils.ErrMemberNotFound
	ErrTypeMismatch   = reflectutils.ErrTypeMismatch
	ErrInvocation     = errors.New("invocation failed")
	ErrTypeNotFound   = errors.New("type not found")

	voidType = TypeOf[Void]()
)

// TypeOf returns the reflect.Type of T, interfaces included.
func TypeOf[T any]() reflect.Type {
	return reflectutils.TypeOf[T]()
}
