// Package decorator replaces the value held by an interface-typed field with a proxy running an extra
// implementation of the same interface before or after every call reaching the original value.
//
// A call "fails" when it panics or when it returns a non-nil error as its last result. A failure stops
// the interception right away: in a Before handler a failing decorator prevents the original from
// being invoked, in an After handler a failing original prevents the decorator from being invoked.
// Failures reach the caller untouched, a panic is raised again with the very same value.
//
// Decorators can be shielded: a shielded decorator failing with a value of exactly the configured
// type returns default values instead of failing.
//
// Proxies are plain Go types implementing the capability interface and forwarding every method to an
// Invoker. They are registered per interface with RegisterProxy, usually from code generated by
// cmd/proxygen.
package decorator

import (
	"errors"
	"fmt"

	"github.com/a-peyrard/reflective/option"
	"github.com/rs/zerolog"
)

type (
	// Order tells when the decorator runs compared to the original.
	Order int

	// ResultSource tells whose results are returned to the caller.
	ResultSource int

	Options struct {
		logger   *zerolog.Logger
		defaults Defaults
	}
)

const (
	Before Order = iota
	After
)

const (
	OriginalResult ResultSource = iota
	DecoratorResult
)

var (
	ErrNoProxy         = errors.New("no proxy registered")
	ErrNotInterface    = errors.New("capability must be an interface")
	ErrNilValue        = errors.New("nil value")
	ErrStaleController = errors.New("field no longer holds the proxy of this controller")
	ErrTypeMismatch    = errors.New("type mismatch")

	ErrUncomparableProxy = errors.New("proxy is not comparable")
)

func (o Order) String() string {
	switch o {
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

func (r ResultSource) String() string {
	switch r {
	case OriginalResult:
		return "original"
	case DecoratorResult:
		return "decorator"
	default:
		return fmt.Sprintf("ResultSource(%d)", int(r))
	}
}

// WithLogger sets the logger used to trace attachments and swallowed failures, at debug level.
func WithLogger(logger *zerolog.Logger) option.Option[Options] {
	return func(opts *Options) {
		opts.logger = logger
	}
}

// WithDefaults sets the table used by shields to produce the results of a swallowed failure.
func WithDefaults(defaults Defaults) option.Option[Options] {
	return func(opts *Options) {
		opts.defaults = defaults
	}
}

func buildOptions(opts ...option.Option[Options]) *Options {
	nop := zerolog.Nop()
	return option.Build(
		&Options{
			logger:   &nop,
			defaults: TypedDefaults,
		},
		opts...,
	)
}
