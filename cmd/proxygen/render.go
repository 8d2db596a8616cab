package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/a-peyrard/reflective/set"
)

const decoratorImportPath = "github.com/a-peyrard/reflective/decorator"

var proxyTemplate = template.Must(template.New("proxy").Parse(`// Code generated by proxygen. DO NOT EDIT.

package {{ .Package }}
{{ if or .StdImports .Imports }}
import (
{{- range .StdImports }}
	{{ if .Aliased }}{{ .Alias }} {{ end }}"{{ .Path }}"
{{- end }}
{{- if and .StdImports .Imports }}
{{ end }}
{{- range .Imports }}
	{{ if .Aliased }}{{ .Alias }} {{ end }}"{{ .Path }}"
{{- end }}
)
{{ end }}
type (
{{- range .Proxies }}
	// {{ .ProxyName }} forwards the calls of {{ .Interface }} to a decorator invoker.
	{{ .ProxyName }} struct {
		invoker {{ $.Decorator }}Invoker
	}
{{ end -}}
)

func init() {
{{- range .Proxies }}
	{{ $.Decorator }}RegisterProxy[{{ .Interface }}](func(invoker {{ $.Decorator }}Invoker) {{ .Interface }} {
		return &{{ .ProxyName }}{invoker: invoker}
	})
{{- end }}
}
{{ range $proxy := .Proxies }}{{ range .Methods }}
func (p *{{ $proxy.ProxyName }}) {{ .Name }}({{ .Params }}){{ .Results }} {
{{- if .Outs }}
	out := p.invoker.Invoke({{ .Call }})
	return {{ .Outs }}
{{- else }}
	p.invoker.Invoke({{ .Call }})
{{- end }}
}
{{ end }}{{ end }}`))

type (
	importData struct {
		Alias   string
		Path    string
		Aliased bool
	}

	methodData struct {
		Name    string
		Params  string
		Results string
		Call    string
		Outs    string
	}

	proxyData struct {
		Interface string
		ProxyName string
		Methods   []methodData
	}

	fileData struct {
		Package    string
		Decorator  string
		StdImports []importData
		Imports    []importData
		Proxies    []proxyData
	}

	// imports assigns a unique alias to every package referenced by the generated code.
	imports struct {
		self    *types.Package
		aliases set.Set[string]
		byPath  map[string]importData
	}
)

func newImports(self *types.Package) *imports {
	return &imports{
		self:    self,
		aliases: set.New[string](),
		byPath:  make(map[string]importData),
	}
}

// qualifier is a types.Qualifier registering the packages it is asked for.
func (i *imports) qualifier(pkg *types.Package) string {
	if pkg == nil || pkg.Path() == i.self.Path() {
		return ""
	}
	return i.add(pkg.Path(), pkg.Name())
}

func (i *imports) add(path string, name string) string {
	if imp, found := i.byPath[path]; found {
		return imp.Alias
	}
	alias := findSuitableAlias(path, name, i.aliases)
	i.aliases.Add(alias)
	i.byPath[path] = importData{Alias: alias, Path: path, Aliased: alias != name}
	return alias
}

func (i *imports) list() []importData {
	list := make([]importData, 0, len(i.byPath))
	for _, imp := range i.byPath {
		list = append(list, imp)
	}
	sort.Slice(list, func(a, b int) bool {
		return list[a].Path < list[b].Path
	})
	return list
}

// groupImports splits imports between the standard library and the other packages, keeping their
// order.
func groupImports(list []importData) (std []importData, others []importData) {
	for _, imp := range list {
		if isStandard(imp.Path) {
			std = append(std, imp)
		} else {
			others = append(others, imp)
		}
	}
	return std, others
}

// isStandard tells if path belongs to the standard library, whose first element has no dot.
func isStandard(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}

// findSuitableAlias returns name if not taken yet, otherwise prefixes it with the initials of the
// parent directories of path, then suffixes it with a number.
func findSuitableAlias(path string, name string, aliases set.Set[string]) string {
	alias := name
	if aliases.DoesNotContain(alias) {
		return alias
	}

	tokens := strings.Split(path, "/")
	for i := len(tokens) - 2; i >= 0; i-- {
		initial := []rune(tokens[i])
		if len(initial) == 0 || !unicode.IsLetter(initial[0]) {
			continue
		}
		alias = string(unicode.ToLower(initial[0])) + alias
		if aliases.DoesNotContain(alias) {
			return alias
		}
	}

	for n := 0; ; n++ {
		candidate := alias + strconv.Itoa(n)
		if aliases.DoesNotContain(candidate) {
			return candidate
		}
	}
}

// render generates the source of the proxies of definitions, declared in package pkg.
func render(pkg *types.Package, definitions []InterfaceDefinition) ([]byte, error) {
	imps := newImports(pkg)
	data := fileData{Package: pkg.Name()}
	if pkg.Path() != decoratorImportPath {
		data.Decorator = imps.add(decoratorImportPath, "decorator") + "."
	}

	for _, definition := range definitions {
		proxy := proxyData{
			Interface: definition.Name,
			ProxyName: definition.ProxyName,
		}
		for _, method := range definition.Methods {
			proxy.Methods = append(proxy.Methods, signatureOf(method, imps))
		}
		data.Proxies = append(data.Proxies, proxy)
	}

	// parameters can shadow packages, so they are named once every import is known
	reserved := set.NewWithValues("p", "out", "invoker")
	for _, imp := range imps.byPath {
		reserved.Add(imp.Alias)
	}
	for i, definition := range definitions {
		for j, method := range definition.Methods {
			nameParameters(&data.Proxies[i].Methods[j], method, reserved, imps, data.Decorator)
		}
	}
	data.StdImports, data.Imports = groupImports(imps.list())

	var buf bytes.Buffer
	if err := proxyTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render proxies of package %s: %w", pkg.Path(), err)
	}
	source, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format proxies of package %s: %w\n%s", pkg.Path(), err, buf.String())
	}
	return source, nil
}

// signatureOf registers the packages used by the signature of method.
func signatureOf(method *types.Func, imps *imports) methodData {
	sig := method.Type().(*types.Signature)
	for i := 0; i < sig.Params().Len(); i++ {
		types.TypeString(sig.Params().At(i).Type(), imps.qualifier)
	}
	for i := 0; i < sig.Results().Len(); i++ {
		types.TypeString(sig.Results().At(i).Type(), imps.qualifier)
	}
	return methodData{Name: method.Name()}
}

func nameParameters(data *methodData, method *types.Func, reserved set.Set[string], imps *imports, decoratorPrefix string) {
	sig := method.Type().(*types.Signature)
	params := sig.Params()

	taken := set.New[string]()
	for i := 0; i < params.Len(); i++ {
		taken.Add(params.At(i).Name())
	}
	names := make([]string, params.Len())
	declared := make([]string, params.Len())
	for i := 0; i < params.Len(); i++ {
		name := params.At(i).Name()
		if name == "" || name == "_" || reserved.Contains(name) {
			name = "arg" + strconv.Itoa(i)
			for taken.Contains(name) {
				name += "_"
			}
			taken.Add(name)
		}
		names[i] = name

		typ := params.At(i).Type()
		if sig.Variadic() && i == params.Len()-1 {
			declared[i] = name + " ..." + types.TypeString(typ.(*types.Slice).Elem(), imps.qualifier)
		} else {
			declared[i] = name + " " + types.TypeString(typ, imps.qualifier)
		}
	}
	data.Params = strings.Join(declared, ", ")
	data.Call = strings.Join(append([]string{strconv.Quote(method.Name())}, names...), ", ")

	results := sig.Results()
	resultTypes := make([]string, results.Len())
	outs := make([]string, results.Len())
	for i := 0; i < results.Len(); i++ {
		resultTypes[i] = types.TypeString(results.At(i).Type(), imps.qualifier)
		outs[i] = fmt.Sprintf("%sOut[%s](out, %d)", decoratorPrefix, resultTypes[i], i)
	}
	switch len(resultTypes) {
	case 0:
	case 1:
		data.Results = " " + resultTypes[0]
	default:
		data.Results = " (" + strings.Join(resultTypes, ", ") + ")"
	}
	data.Outs = strings.Join(outs, ", ")
}
