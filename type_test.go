package reflective

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType(t *testing.T) {
	t.Run("it should load a type registered under its qualified name", func(t *testing.T) {
		// GIVEN
		name := RegisterType[Jedi]()

		// WHEN
		typ, err := Type(name).Load()

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "github.com/a-peyrard/reflective.Jedi", name)
		assert.Equal(t, reflect.TypeOf(Jedi{}), typ)
	})

	t.Run("it should load a type registered under a custom name", func(t *testing.T) {
		// GIVEN
		RegisterType[*politeGreeter](Named("greeter.polite"))

		// WHEN
		typ, err := Type("greeter.polite").Load()

		// THEN
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeOf(&politeGreeter{}), typ)
		assert.Contains(t, RegisteredTypes(), "greeter.polite")
	})

	t.Run("it should check the loaded type", func(t *testing.T) {
		// GIVEN
		RegisterType[*politeGreeter](Named("greeter.polite"))
		RegisterType[Address](Named("address"))

		// WHEN
		greeter, err := LoadAs[Greeter]("greeter.polite")
		_, mismatch := LoadAs[Greeter]("address")

		// THEN
		require.NoError(t, err)
		assert.True(t, greeter.Implements(TypeOf[Greeter]()))
		assert.ErrorIs(t, mismatch, ErrTypeMismatch)
	})

	t.Run("it should fail on an unknown type", func(t *testing.T) {
		// WHEN
		_, err := Type("unknown.Sith").Load()
		_, loadAsErr := LoadAs[Greeter]("unknown.Sith")

		// THEN
		assert.ErrorIs(t, err, ErrTypeNotFound)
		assert.ErrorIs(t, loadAsErr, ErrTypeNotFound)
	})

	t.Run("it should name unnamed types by their representation", func(t *testing.T) {
		assert.Equal(t, "[]string", QualifiedName(TypeOf[[]string]()))
		assert.Equal(t, "int", QualifiedName(TypeOf[int]()))
	})
}
