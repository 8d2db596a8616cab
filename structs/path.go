// Package structs reads and writes values nested in structs and maps, addressed by dotted paths
// such as "user.address.street".
package structs

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/a-peyrard/reflective/reflectutils"
)

var ErrInvalidPath = errors.New("invalid path")

// hop is one resolved token of a path.
type hop struct {
	container reflect.Value
	token     string
	position  int
	path      string
}

func split(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: field path cannot be empty", ErrInvalidPath)
	}
	tokens := strings.Split(path, ".")
	for i, token := range tokens {
		if token == "" {
			return nil, fmt.Errorf("%w: empty token at position %d in field path %s", ErrInvalidPath, i, path)
		}
	}
	return tokens, nil
}

// walk follows tokens from origin, stopping before the last one, and returns the container holding
// the last token.
func walk(origin reflect.Value, path string, tokens []string) (hop, error) {
	current := origin
	for i, token := range tokens {
		h := hop{
			container: reflectutils.Deref(current),
			token:     token,
			position:  i,
			path:      path,
		}
		if !h.container.IsValid() {
			return hop{}, h.errorf(reflectutils.ErrNotAddressable, "encountered nil value")
		}
		if i == len(tokens)-1 {
			return h, nil
		}

		next, err := h.value()
		if err != nil {
			return hop{}, err
		}
		current = next
	}
	return hop{}, fmt.Errorf("%w: field path cannot be empty", ErrInvalidPath)
}

// value returns the value the token designates in its container.
func (h hop) value() (reflect.Value, error) {
	switch h.container.Kind() {
	case reflect.Map:
		key, err := h.key()
		if err != nil {
			return reflect.Value{}, err
		}
		value := h.container.MapIndex(key)
		if !value.IsValid() {
			return reflect.Value{}, h.errorf(reflectutils.ErrMemberNotFound, "key not found in map")
		}
		return value, nil

	case reflect.Struct:
		value := h.container.FieldByName(h.token)
		if !value.IsValid() {
			return reflect.Value{}, h.errorf(reflectutils.ErrMemberNotFound, "field not found in struct %s", h.container.Type().Name())
		}
		return value, nil

	default:
		return reflect.Value{}, h.errorf(ErrInvalidPath, "expected struct or map but got %s", h.container.Kind())
	}
}

func (h hop) key() (reflect.Value, error) {
	key := reflect.ValueOf(h.token)
	keyType := h.container.Type().Key()
	if !key.Type().ConvertibleTo(keyType) || keyType.Kind() != reflect.String {
		return reflect.Value{}, h.errorf(reflectutils.ErrTypeMismatch, "cannot use the token as a key of %s", h.container.Type())
	}
	return key.Convert(keyType), nil
}

func (h hop) errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf(
		"%w: %s, at token %s (position %d) in field path %s",
		sentinel,
		fmt.Sprintf(format, args...),
		h.token,
		h.position,
		h.path,
	)
}
