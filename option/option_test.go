package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type generationOptions struct {
	output  string
	verbose bool
	jobs    int
}

func withOutput(output string) Option[generationOptions] {
	return func(opts *generationOptions) {
		opts.output = output
	}
}

func withJobs(jobs int) Option[generationOptions] {
	return func(opts *generationOptions) {
		opts.jobs = jobs
	}
}

func verbose() Option[generationOptions] {
	return func(opts *generationOptions) {
		opts.verbose = true
	}
}

func TestBuild(t *testing.T) {
	t.Run("it should keep the defaults without options", func(t *testing.T) {
		// WHEN
		opts := Build(&generationOptions{jobs: 4})

		// THEN
		assert.Equal(t, &generationOptions{jobs: 4}, opts)
	})

	t.Run("it should apply options in order", func(t *testing.T) {
		// WHEN
		opts := Build(&generationOptions{jobs: 4}, withJobs(1), withOutput("proxies.go"), withJobs(2), verbose())

		// THEN
		assert.Equal(t, &generationOptions{output: "proxies.go", verbose: true, jobs: 2}, opts)
	})

	t.Run("it should return the given defaults", func(t *testing.T) {
		// GIVEN
		defaults := &generationOptions{}

		// WHEN
		opts := Build(defaults, verbose())

		// THEN
		assert.Same(t, defaults, opts)
		assert.True(t, defaults.verbose)
	})

	t.Run("it should skip nil options", func(t *testing.T) {
		// WHEN
		opts := Build(&generationOptions{}, nil, withJobs(3))

		// THEN
		assert.Equal(t, 3, opts.jobs)
	})
}
