package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func Test_parseProperties(t *testing.T) {
	t.Run("it should parse simple key=value properties", func(t *testing.T) {
		// GIVEN
		line := "@decoratable proxy=uploaderStub"

		// WHEN
		result := parseProperties(line, decoratableAnnotationTag)

		// THEN
		assert.Equal(t, map[string]string{"proxy": "uploaderStub"}, result)
	})

	t.Run("it should parse quoted values", func(t *testing.T) {
		// GIVEN
		line := `@decoratable proxy="uploaderStub" note="hello world"`

		// WHEN
		result := parseProperties(line, decoratableAnnotationTag)

		// THEN
		assert.Equal(t, "uploaderStub", result["proxy"])
		assert.Equal(t, "hello world", result["note"])
	})

	t.Run("it should return empty map for empty content", func(t *testing.T) {
		// WHEN
		result := parseProperties(decoratableAnnotationTag, decoratableAnnotationTag)

		// THEN
		assert.Empty(t, result)
	})
}

func Test_isDecoratable(t *testing.T) {
	testCases := []struct {
		name     string
		doc      string
		expected bool
	}{
		{name: "annotation alone", doc: "Uploader sends files.\n@decoratable\n", expected: true},
		{name: "annotation with properties", doc: "@decoratable proxy=stub", expected: true},
		{name: "indented annotation", doc: "   @decoratable\n", expected: true},
		{name: "no annotation", doc: "Uploader sends files.\n", expected: false},
		{name: "annotation within a sentence", doc: "Not @decoratable at all.\n", expected: false},
		{name: "longer tag", doc: "@decoratables\n", expected: false},
	}
	for _, tc := range testCases {
		t.Run("it should handle "+tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isDecoratable(tc.doc))
		})
	}
}

func Test_parseDecoratableAnnotation(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("it should separate the description from the annotation", func(t *testing.T) {
		// GIVEN
		doc := "Uploader sends files\nto a remote storage.\n@decoratable proxy=stub\n"

		// WHEN
		annotation := parseDecoratableAnnotation(&logger, doc)

		// THEN
		assert.Equal(t, "Uploader sends files\nto a remote storage.", annotation.description)
		proxy, found := annotation.Proxy()
		assert.True(t, found)
		assert.Equal(t, "stub", proxy)
	})

	t.Run("it should ignore invalid proxy names", func(t *testing.T) {
		// GIVEN
		doc := `@decoratable proxy="not an identifier"`

		// WHEN
		annotation := parseDecoratableAnnotation(&logger, doc)

		// THEN
		_, found := annotation.Proxy()
		assert.False(t, found)
	})

	t.Run("it should report unknown properties", func(t *testing.T) {
		// WHEN
		annotation := parseDecoratableAnnotation(&logger, "@decoratable priority=3 proxy=stub")

		// THEN
		assert.Equal(t, []string{"priority"}, annotation.UnknownProperties())
	})
}
