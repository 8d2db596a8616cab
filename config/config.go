// Package config loads settings structs from the environment with viper.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/a-peyrard/reflective/fn"
	"github.com/a-peyrard/reflective/option"
	"github.com/a-peyrard/reflective/reflectutils"
	"github.com/a-peyrard/reflective/str"
	"github.com/spf13/viper"
)

type (
	Options struct {
		prefix string
	}

	// WithDefault is implemented by settings structs filling their zero fields after loading.
	WithDefault interface {
		ApplyDefault()
	}
)

var withDefaultType = reflectutils.TypeOf[WithDefault]()

func WithEnvPrefix(prefix string) option.Option[Options] {
	return func(opts *Options) {
		opts.prefix = prefix
	}
}

// Load builds a T from environment variables. A field Foo.BarBaz of T is read from FOO_BAR_BAZ,
// prefixed by the env prefix if any. Nil pointers to nested structs are allocated, then every
// struct implementing WithDefault gets its defaults applied.
func Load[T any](opts ...option.Option[Options]) (*T, error) {
	options := option.Build(&Options{}, opts...)

	v := viper.New()
	v.SetEnvPrefix(options.prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var vT T
	bindEnvs(v, options.prefix, reflectutils.TypeOf[T]())

	if err := v.Unmarshal(&vT); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	reflectutils.WalkStruct(
		&vT,
		fn.AllTriConsumer(
			reflectutils.CreateNilStructs,
			applyDefault,
		),
	)

	return &vT, nil
}

func applyDefault(val reflect.Value, typ reflect.Type, _ []string) {
	if typ.Kind() == reflect.Pointer && typ.Implements(withDefaultType) && !val.IsNil() {
		val.Interface().(WithDefault).ApplyDefault()
	}
}

func bindEnvs(v *viper.Viper, envPrefix string, typ reflect.Type, parts ...string) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok {
			name = field.Name
		}
		path := append(parts[:len(parts):len(parts)], name)

		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Struct {
			bindEnvs(v, envPrefix, fieldType, path...)
			continue
		}

		envParts := make([]string, len(path))
		for j, part := range path {
			envParts[j] = str.ToScreamingSnakeCase(part)
		}
		_ = v.BindEnv(strings.Join(path, "."), mergeWithEnvPrefix(envPrefix, strings.Join(envParts, "_")))
	}
}

func mergeWithEnvPrefix(envPrefix string, in string) string {
	if envPrefix != "" {
		return strings.ToUpper(envPrefix + "_" + in)
	}

	return strings.ToUpper(in)
}
