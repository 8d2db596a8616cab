package decorator

import (
	"reflect"

	"github.com/a-peyrard/reflective/option"
	"github.com/rs/zerolog"
)

// Shield forwards calls to a value and swallows its failures of one exact kind, returning default
// values instead.
type Shield struct {
	inner    dispatcher
	kind     Kind
	defaults Defaults
	logger   *zerolog.Logger
}

// NewShield shields value against failures of the given kind.
func NewShield[I any](value I, kind Kind, opts ...option.Option[Options]) *Shield {
	return newShield(newValueDispatcher(value), kind, buildOptions(opts...))
}

func newShield(inner dispatcher, kind Kind, options *Options) *Shield {
	return &Shield{
		inner:    inner,
		kind:     kind,
		defaults: options.defaults,
		logger:   options.logger,
	}
}

func (s *Shield) Invoke(method string, args ...any) []any {
	return s.dispatch(method, args).raise()
}

func (s *Shield) dispatch(method string, args []any) outcome {
	o := s.inner.dispatch(method, args)
	if o.failure == nil || o.failure.Kind() != s.kind {
		return o
	}

	signature, err := s.inner.signature(method)
	if err != nil {
		return outcome{failure: &Failure{Value: err, Panicked: true}}
	}
	s.logger.Debug().
		Str("method", method).
		Stringer("kind", s.kind).
		Str("failure", o.failure.String()).
		Msg("Failure swallowed by shield")

	return outcome{results: defaultsFor(s.defaults, signature)}
}

func (s *Shield) signature(method string) (reflect.Type, error) {
	return s.inner.signature(method)
}
