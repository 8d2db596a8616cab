package decorator

import "reflect"

// Defaults gives the value returned in place of a result of the given type when a shield swallows
// a failure. A nil value stands for absence, proxies turn it into the zero value of the result.
type Defaults func(typ reflect.Type) any

// TypedDefaults returns the zero value of the exact result type.
func TypedDefaults(typ reflect.Type) any {
	return reflect.Zero(typ).Interface()
}

// literalDefaults holds the historical table: every entry is a zero literal, but the int8 and int16
// entries hold an untyped 0, stored as an int.
var literalDefaults = map[reflect.Type]any{
	reflect.TypeOf(false):      false,
	reflect.TypeOf(int8(0)):    0,
	reflect.TypeOf(int16(0)):   0,
	reflect.TypeOf(0):          0,
	reflect.TypeOf(int32(0)):   int32(0),
	reflect.TypeOf(int64(0)):   int64(0),
	reflect.TypeOf(float32(0)): float32(0),
	reflect.TypeOf(float64(0)): float64(0),
}

// LiteralDefaults reproduces the historical defaults table. Results of type int8 or int16 get an int,
// which makes a proxy fail when converting the result back to the declared type. Types outside of
// the table get nil.
func LiteralDefaults(typ reflect.Type) any {
	return literalDefaults[typ]
}

func defaultsFor(defaults Defaults, signature reflect.Type) []any {
	results := make([]any, signature.NumOut())
	for i := range results {
		results[i] = defaults(signature.Out(i))
	}
	return results
}
