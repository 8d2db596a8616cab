package main

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

const shopSource = `package shop

import (
	"context"
	"io"
	stdtime "time"
)

// Uploader sends files to a remote storage.
// @decoratable
type Uploader interface {
	Upload(file, destination string) (bool, error)
}

type (
	// Catalog lists the products.
	// @decoratable proxy=catalogStub
	Catalog interface {
		io.Closer
		Find(ctx context.Context, ids ...int) (map[int]Product, error)
		Touch(_ stdtime.Time, p *Product)
		Reset()
	}

	// Inventory is not annotated.
	Inventory interface {
		Count() int
	}

	// Product is not an interface.
	// @decoratable
	Product struct {
		Name string
	}
)

// Cache is generic.
// @decoratable
type Cache[K comparable] interface {
	Get(key K) bool
}

// Marker has nothing to decorate.
// @decoratable
type Marker interface{}
`

const generatedSource = `// Code generated by proxygen. DO NOT EDIT.

package shop

// @decoratable
type Leftover interface {
	Do()
}
`

// typeCheck parses and type checks files, named by their file names, as the package at path.
func typeCheck(t *testing.T, path string, files map[string]string) (*token.FileSet, []*ast.File, *types.Package) {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	fset := token.NewFileSet()
	parsed := make([]*ast.File, len(names))
	for i, name := range names {
		file, err := parser.ParseFile(fset, name, files[name], parser.ParseComments)
		require.NoError(t, err)
		parsed[i] = file
	}

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check(path, fset, parsed, nil)
	require.NoError(t, err)
	return fset, parsed, pkg
}
