package structs

import (
	"testing"

	"github.com/a-peyrard/reflective/reflectutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	t.Run("it should set simple field of struct", func(t *testing.T) {
		// GIVEN
		user := &User{Name: "John"}

		// WHEN
		err := Set(user, "Name", "Jane")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "Jane", user.Name)
	})

	t.Run("it should set nested field through a pointer", func(t *testing.T) {
		// GIVEN
		user := &User{Address: &Address{City: "Springfield"}}

		// WHEN
		err := Set(user, "Address.City", "Shelbyville")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "Shelbyville", user.Address.City)
	})

	t.Run("it should set nested value of a map", func(t *testing.T) {
		// GIVEN
		user := &User{Labels: map[string]any{"team": "blue"}}

		// WHEN
		err := Set(user, "Labels.team", "red")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "red", user.Labels["team"])
	})

	t.Run("it should write a map even when passed by value", func(t *testing.T) {
		// GIVEN
		data := map[string]any{
			"user": &User{},
		}

		// WHEN
		err := Set(data, "user.Age", 30)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, 30, data["user"].(*User).Age)
	})

	t.Run("it should reset a field with nil", func(t *testing.T) {
		// GIVEN
		user := &User{Address: &Address{}}

		// WHEN
		err := Set(user, "Address", nil)

		// THEN
		require.NoError(t, err)
		assert.Nil(t, user.Address)
	})

	t.Run("it should fail when the struct is passed by value", func(t *testing.T) {
		// WHEN
		err := Set(User{}, "Name", "Jane")

		// THEN
		assert.ErrorIs(t, err, reflectutils.ErrNotAddressable)
		assert.ErrorContains(t, err, "not settable")
	})

	t.Run("it should fail on private fields", func(t *testing.T) {
		// WHEN
		err := Set(&User{}, "private", "secret")

		// THEN
		assert.ErrorContains(t, err, "not settable")
	})

	t.Run("it should fail on a type mismatch in a map", func(t *testing.T) {
		// GIVEN
		data := map[string]int{"count": 1}

		// WHEN
		err := Set(data, "count", "two")

		// THEN
		assert.ErrorIs(t, err, reflectutils.ErrTypeMismatch)
		assert.Equal(t, 1, data["count"])
	})

	t.Run("it should fail on a type mismatch", func(t *testing.T) {
		// WHEN
		err := Set(&User{}, "Age", "thirty")

		// THEN
		assert.ErrorIs(t, err, reflectutils.ErrTypeMismatch)
	})

	t.Run("it should fail on invalid paths", func(t *testing.T) {
		testCases := []struct {
			name   string
			origin any
			path   string
		}{
			{name: "nil origin", origin: nil, path: "Name"},
			{name: "empty path", origin: &User{}, path: ""},
			{name: "empty token", origin: &User{}, path: "Address..City"},
			{name: "unknown field", origin: &User{}, path: "Email"},
			{name: "nil hop", origin: &User{}, path: "Address.City"},
			{name: "missing key", origin: &User{Labels: map[string]any{}}, path: "Labels.team.name"},
			{name: "not traversable", origin: &User{}, path: "Name.First"},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				// WHEN
				err := Set(tc.origin, tc.path, "value")

				// THEN
				assert.Error(t, err)
			})
		}
	})
}
