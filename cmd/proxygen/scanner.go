package main

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/a-peyrard/reflective/fn"
	"github.com/a-peyrard/reflective/slices"
	"github.com/a-peyrard/reflective/str"
	"github.com/rs/zerolog"
)

const generatedSuffix = "_proxy_gen.go"

// InterfaceDefinition describes an interface annotated with @decoratable.
type InterfaceDefinition struct {
	Name        string
	ProxyName   string
	Description string
	File        string
	Methods     []*types.Func
}

func (d InterfaceDefinition) String() string {
	methods := make([]string, len(d.Methods))
	for i, method := range d.Methods {
		methods[i] = method.Name()
	}
	return fmt.Sprintf(
		`🎨 Decoratable: %s
Description: %s
File: %s
Proxy: %s
Methods: [%s]`,
		d.Name,
		d.Description,
		d.File,
		d.ProxyName,
		strings.Join(methods, ", "),
	)
}

// scan looks for the interfaces annotated with @decoratable in files, resolving their method sets
// with the type information of pkg. Generated files are ignored.
func scan(logger *zerolog.Logger, fset *token.FileSet, files []*ast.File, pkg *types.Package) []InterfaceDefinition {
	isGenerated := func(file *ast.File) bool {
		return strings.HasSuffix(fset.Position(file.Pos()).Filename, generatedSuffix)
	}

	var definitions []InterfaceDefinition
	for _, file := range slices.Filter(files, fn.Not[*ast.File](isGenerated)) {
		filePath := fset.Position(file.Pos()).Filename

		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				if _, ok := typeSpec.Type.(*ast.InterfaceType); !ok {
					continue
				}
				doc := typeSpec.Doc
				if doc == nil && len(genDecl.Specs) == 1 {
					doc = genDecl.Doc
				}
				if doc == nil || !isDecoratable(doc.Text()) {
					continue
				}

				logger := logger.With().Str("interface", typeSpec.Name.Name).Logger()
				logger.Debug().Msg("=> Found decoratable")
				if definition, ok := define(&logger, pkg, typeSpec.Name.Name, doc.Text()); ok {
					definition.File = filePath
					definitions = append(definitions, definition)
				}
			}
		}
	}
	return definitions
}

func define(logger *zerolog.Logger, pkg *types.Package, name string, docText string) (InterfaceDefinition, bool) {
	obj, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		logger.Warn().Msg("No type information, skipping it")
		return InterfaceDefinition{}, false
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		logger.Warn().Msg("Interface aliases can not be decorated, skipping it")
		return InterfaceDefinition{}, false
	}
	if named.TypeParams().Len() > 0 {
		logger.Warn().Msg("Generic interfaces can not be decorated, skipping it")
		return InterfaceDefinition{}, false
	}
	iface, ok := named.Underlying().(*types.Interface)
	if !ok || !iface.IsMethodSet() {
		logger.Warn().Msg("Constraint interfaces can not be decorated, skipping it")
		return InterfaceDefinition{}, false
	}
	if iface.NumMethods() == 0 {
		logger.Warn().Msg("Interface without methods, nothing to decorate, skipping it")
		return InterfaceDefinition{}, false
	}

	annotation := parseDecoratableAnnotation(logger, docText)
	proxyName := str.ToLowerCamelCase(name) + "Proxy"
	if custom, found := annotation.Proxy(); found {
		proxyName = custom
	}

	methods := make([]*types.Func, iface.NumMethods())
	for i := range methods {
		methods[i] = iface.Method(i)
	}
	return InterfaceDefinition{
		Name:        name,
		ProxyName:   proxyName,
		Description: annotation.description,
		Methods:     methods,
	}, true
}
