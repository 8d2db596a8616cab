package decorator

import (
	"fmt"
	"reflect"

	"github.com/a-peyrard/reflective/option"
	"github.com/a-peyrard/reflective/reflectutils"
)

// Handler runs every call on a decorator and on an original, in a fixed order, and picks whose
// results are returned. Handlers are immutable, the With methods return modified copies.
type Handler struct {
	capability reflect.Type
	original   dispatcher
	decorator  dispatcher
	order      Order
	result     ResultSource

	options *Options
}

// NewHandler creates a handler decorating original with decorator. Both must implement the
// interface I. Until WithResult is used, the handler returns the results of the original.
func NewHandler[I any](original, decorator I, order Order, opts ...option.Option[Options]) (*Handler, error) {
	return newHandler(original, decorator, order, buildOptions(opts...))
}

func newHandler[I any](original, decorator I, order Order, options *Options) (*Handler, error) {
	capability := reflectutils.TypeOf[I]()
	if capability.Kind() != reflect.Interface {
		return nil, fmt.Errorf("%w: got %s", ErrNotInterface, capability)
	}
	if isNil(original) {
		return nil, fmt.Errorf("%w: no original %s to decorate", ErrNilValue, capability)
	}
	if isNil(decorator) {
		return nil, fmt.Errorf("%w: decorator of %s cannot be nil", ErrNilValue, capability)
	}

	return &Handler{
		capability: capability,
		original:   newValueDispatcher(original),
		decorator:  newValueDispatcher(decorator),
		order:      order,
		result:     OriginalResult,
		options:    options,
	}, nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func (h *Handler) Capability() reflect.Type {
	return h.capability
}

func (h *Handler) Order() Order {
	return h.order
}

func (h *Handler) Result() ResultSource {
	return h.result
}

// WithResult returns a copy of the handler returning the results of the given side.
func (h *Handler) WithResult(result ResultSource) *Handler {
	c := *h
	c.result = result
	return &c
}

// WithShield returns a copy of the handler whose decorator is shielded against failures of the
// given kind. The original is left untouched.
func (h *Handler) WithShield(kind Kind) *Handler {
	c := *h
	c.decorator = newShield(h.decorator, kind, h.options)
	return &c
}

func (h *Handler) Invoke(method string, args ...any) []any {
	return h.dispatch(method, args).raise()
}

func (h *Handler) dispatch(method string, args []any) outcome {
	first, second := h.decorator, h.original
	if h.order == After {
		first, second = h.original, h.decorator
	}

	firstOutcome := first.dispatch(method, args)
	if firstOutcome.failure != nil {
		return firstOutcome
	}
	secondOutcome := second.dispatch(method, args)
	if secondOutcome.failure != nil {
		return secondOutcome
	}

	decoratorOutcome, originalOutcome := firstOutcome, secondOutcome
	if h.order == After {
		decoratorOutcome, originalOutcome = secondOutcome, firstOutcome
	}
	if h.result == DecoratorResult {
		return decoratorOutcome
	}
	return originalOutcome
}

func (h *Handler) signature(method string) (reflect.Type, error) {
	return h.original.signature(method)
}

func (h *Handler) String() string {
	return fmt.Sprintf("Handler(%s, %s, result=%s)", h.capability, h.order, h.result)
}
