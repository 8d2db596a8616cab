// Package option implements functional options: a constructor takes variadic Option[T] values, each
// one tweaking the defaults of its options struct.
package option

// Option modifies options of type T.
type Option[T any] func(opts *T)

// Build applies opts, in order, to defaultOpts and returns it.
func Build[T any](defaultOpts *T, opts ...Option[T]) *T {
	for _, opt := range opts {
		if opt != nil {
			opt(defaultOpts)
		}
	}
	return defaultOpts
}
