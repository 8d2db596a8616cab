package decorator

import (
	"fmt"

	"github.com/a-peyrard/reflective/option"
)

// Controller configures the decoration of one field.
//
// Every step builds a new handler and a new proxy, then swaps the proxy into the field. A controller
// only acts while the field still holds its proxy: once another decorator has been attached on top
// of it, use the controller returned by that attachment.
//
// Result selection and shields therefore apply to an attachment only until the next decorator is
// attached: call ReturnDecoratorResult or IgnoreExceptions on a controller before attaching on top of
// it, later calls fail with ErrStaleController.
//
// Errors are sticky, after a failed step the following steps do nothing and Err reports the failure.
type Controller[I any] struct {
	slot    Accessor[I]
	handler *Handler
	proxy   I
	options *Options

	err error
}

// AttachBefore decorates the value held by slot with decorator, running decorator first.
func AttachBefore[I any](slot Accessor[I], decorator I, opts ...option.Option[Options]) *Controller[I] {
	return attach(slot, decorator, Before, buildOptions(opts...))
}

// AttachAfter decorates the value held by slot with decorator, running decorator last.
func AttachAfter[I any](slot Accessor[I], decorator I, opts ...option.Option[Options]) *Controller[I] {
	return attach(slot, decorator, After, buildOptions(opts...))
}

func attach[I any](slot Accessor[I], decorator I, order Order, options *Options) *Controller[I] {
	c := &Controller[I]{
		slot:    slot,
		options: options,
	}

	original, err := slot.Get()
	if err != nil {
		c.err = fmt.Errorf("failed to attach decorator:\n\t%w", err)
		return c
	}
	handler, err := newHandler(original, decorator, order, options)
	if err != nil {
		c.err = fmt.Errorf("failed to attach decorator:\n\t%w", err)
		return c
	}
	c.install(handler)
	if c.err == nil {
		options.logger.Debug().
			Str("field", fmt.Sprint(slot)).
			Stringer("capability", handler.Capability()).
			Stringer("order", order).
			Msg("Decorator attached")
	}
	return c
}

// install swaps the proxy of handler into the field.
func (c *Controller[I]) install(handler *Handler) {
	proxy, err := NewProxy[I](handler)
	if err != nil {
		c.err = err
		return
	}

	if c.handler != nil {
		current, err := c.slot.Get()
		if err != nil {
			c.err = err
			return
		}
		if !sameProxy(current, c.proxy) {
			c.err = fmt.Errorf("%w: %s", ErrStaleController, c.handler)
			return
		}
	}

	if err = c.slot.Set(proxy); err != nil {
		c.err = fmt.Errorf("failed to install proxy:\n\t%w", err)
		return
	}
	c.handler = handler
	c.proxy = proxy
}

// ReturnDecoratorResult makes the proxy return the results of the decorator instead of the ones of
// the original. Both are still invoked.
func (c *Controller[I]) ReturnDecoratorResult() *Controller[I] {
	if c.err != nil {
		return c
	}
	c.install(c.handler.WithResult(DecoratorResult))
	return c
}

// IgnoreExceptions shields the decorator against PlainError failures.
func (c *Controller[I]) IgnoreExceptions() *Controller[I] {
	return c.IgnoreExceptionsOfType(PlainError)
}

// IgnoreExceptionsOfType shields the decorator against failures of exactly the given kind. Failures
// of any other kind, wrapping errors and embedding types included, still reach the caller.
func (c *Controller[I]) IgnoreExceptionsOfType(kind Kind) *Controller[I] {
	if c.err != nil {
		return c
	}
	if kind == nil {
		c.err = fmt.Errorf("%w: cannot shield against a nil kind", ErrNilValue)
		return c
	}
	c.install(c.handler.WithShield(kind))
	if c.err == nil {
		c.options.logger.Debug().
			Stringer("capability", c.handler.Capability()).
			Stringer("kind", kind).
			Msg("Decorator shielded")
	}
	return c
}

// AttachBefore attaches another decorator on top of the current proxy, running first.
func (c *Controller[I]) AttachBefore(decorator I) *Controller[I] {
	return c.attachNext(decorator, Before)
}

// AttachAfter attaches another decorator on top of the current proxy, running last.
func (c *Controller[I]) AttachAfter(decorator I) *Controller[I] {
	return c.attachNext(decorator, After)
}

func (c *Controller[I]) attachNext(decorator I, order Order) *Controller[I] {
	if c.err != nil {
		return &Controller[I]{slot: c.slot, options: c.options, err: c.err}
	}
	return attach(c.slot, decorator, order, c.options)
}

// Proxy returns the proxy installed by the last step.
func (c *Controller[I]) Proxy() I {
	return c.proxy
}

// Handler returns the handler behind the installed proxy, nil if nothing has been installed.
func (c *Controller[I]) Handler() *Handler {
	return c.handler
}

// Err returns the first error met while configuring the decoration.
func (c *Controller[I]) Err() error {
	return c.err
}

// Must panics if any step failed, and returns the controller otherwise.
func (c *Controller[I]) Must() *Controller[I] {
	if c.err != nil {
		panic(fmt.Sprintf("decoration failed:\n\t%v", c.err))
	}
	return c
}
