package decorator

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/a-peyrard/reflective/reflectutils"
)

// ProxyFactory builds a value implementing I whose methods all forward to the given invoker.
type ProxyFactory[I any] func(invoker Invoker) I

var proxies sync.Map

// RegisterProxy registers the proxy factory of the interface I, replacing any previous one.
// It panics if I is not an interface.
func RegisterProxy[I any](factory ProxyFactory[I]) {
	typ := reflectutils.TypeOf[I]()
	if typ.Kind() != reflect.Interface {
		panic(fmt.Sprintf("failed to register proxy for %s:\n\t%v", typ, ErrNotInterface))
	}
	proxies.Store(typ, factory)
}

// HasProxy tells if a proxy factory is registered for I.
func HasProxy[I any]() bool {
	_, found := proxies.Load(reflectutils.TypeOf[I]())
	return found
}

// NewProxy builds a proxy of I forwarding to invoker. Proxies must be comparable, the controller
// recognizes its proxy in the field with ==, so func types and structs holding slices, maps or funcs
// are rejected.
func NewProxy[I any](invoker Invoker) (I, error) {
	var zero I
	typ := reflectutils.TypeOf[I]()
	raw, found := proxies.Load(typ)
	if !found {
		return zero, fmt.Errorf("%w for %s, generate one with proxygen or call RegisterProxy", ErrNoProxy, typ)
	}
	proxy := raw.(ProxyFactory[I])(invoker)
	if isNil(proxy) {
		return zero, fmt.Errorf("%w: proxy factory of %s returned nil", ErrNilValue, typ)
	}
	if !reflect.ValueOf(proxy).Comparable() {
		return zero, fmt.Errorf("%w: %T proxy of %s, use a pointer type", ErrUncomparableProxy, proxy, typ)
	}
	return proxy, nil
}

// sameProxy tells if the field still holds proxy. Values of another dynamic type never match.
func sameProxy[I any](current I, proxy I) bool {
	c, p := reflect.ValueOf(current), reflect.ValueOf(proxy)
	if !c.IsValid() || !p.IsValid() || c.Type() != p.Type() || !c.Comparable() {
		return false
	}
	return c.Equal(p)
}

// Out converts the i-th result of an invocation to T, nil being converted to the zero value of T.
// Generated proxies use it to return the results of their invoker.
func Out[T any](results []any, i int) T {
	if i >= len(results) || results[i] == nil {
		var zero T
		return zero
	}
	return results[i].(T)
}
