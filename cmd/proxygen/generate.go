package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/a-peyrard/reflective/concurrent"
	"github.com/a-peyrard/reflective/runner"
	"github.com/a-peyrard/reflective/slices"
	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

type (
	// generator writes the proxies of the decoratable interfaces found in a set of packages.
	generator struct {
		logger   *zerolog.Logger
		settings *Settings
		stdout   io.Writer

		mu      sync.Mutex
		proxies atomic.Int32
		written *concurrent.Slice[string]
	}

	// packageGeneration generates the proxies of one package.
	packageGeneration struct {
		*generator
		pkg *packages.Package
	}
)

func newGenerator(logger *zerolog.Logger, settings *Settings, stdout io.Writer) *generator {
	return &generator{
		logger:   logger,
		settings: settings,
		stdout:   stdout,
		written:  concurrent.NewSlice[string](),
	}
}

// Generate loads the packages matching patterns and writes their proxies, one package at a time per
// job.
func (g *generator) Generate(ctx context.Context, patterns ...string) error {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	startScan := time.Now()

	cfg := &packages.Config{
		Context: ctx,
		Dir:     g.settings.Dir,
		Mode:    loadMode,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("failed to load packages %v: %w", patterns, err)
	}
	if len(pkgs) == 0 {
		return fmt.Errorf("no package matches %v", patterns)
	}
	g.logger.Info().Msgf("🕵️‍♂️ %d packages loaded in %s", len(pkgs), time.Since(startScan))

	jobs := slices.Map(pkgs, func(pkg *packages.Package) runner.Runnable {
		return &packageGeneration{generator: g, pkg: pkg}
	})
	if err = runner.RunLimited(ctx, g.settings.Jobs, jobs...); err != nil {
		return err
	}

	g.logger.Debug().Msgf("Files:\n%s", strings.Join(g.written.Sorted(strings.Compare), "\n"))
	g.logger.Info().Msgf(
		"✅ %d proxies generated in %d files in %s",
		g.proxies.Load(),
		g.written.Len(),
		time.Since(startScan),
	)
	return nil
}

func (j *packageGeneration) Run(ctx context.Context) error {
	logger := j.logger.With().Str("package", j.pkg.PkgPath).Logger()
	logger.Debug().Msg("Scanning package")
	if len(j.pkg.Syntax) == 0 && len(j.pkg.Errors) > 0 {
		return fmt.Errorf("failed to load package %s: %v", j.pkg.ID, j.pkg.Errors[0])
	}
	for _, pkgErr := range j.pkg.Errors {
		logger.Warn().Msgf("Package loaded with errors: %s", pkgErr)
	}
	if j.pkg.Types == nil || j.pkg.Fset == nil {
		logger.Warn().Msg("No type information, skipping package")
		return nil
	}

	definitions := scan(&logger, j.pkg.Fset, j.pkg.Syntax, j.pkg.Types)
	if len(definitions) == 0 {
		logger.Debug().Msg("No decoratable interface")
		return nil
	}
	logger.Debug().Msgf("Decoratables:\n%s", strings.Join(slices.Map(definitions, InterfaceDefinition.String), "\n----\n"))

	byOutput := make(map[string][]InterfaceDefinition)
	for _, definition := range definitions {
		output := j.outputPath(definition)
		byOutput[output] = append(byOutput[output], definition)
	}
	outputs := make([]string, 0, len(byOutput))
	for output := range byOutput {
		outputs = append(outputs, output)
	}
	sort.Strings(outputs)

	for _, output := range outputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		source, err := render(j.pkg.Types, byOutput[output])
		if err != nil {
			return err
		}
		if err = j.write(output, source); err != nil {
			return err
		}
		j.proxies.Add(int32(len(byOutput[output])))
		j.written.Append(output)
		logger.Info().Msgf("🎨 %d proxies written in %s", len(byOutput[output]), output)
	}
	return nil
}

// outputPath returns the file receiving the proxy of definition: the configured output file in the
// package directory, or the declaring file suffixed by _proxy_gen.
func (j *packageGeneration) outputPath(definition InterfaceDefinition) string {
	if j.settings.Output != "" {
		return filepath.Join(filepath.Dir(definition.File), j.settings.Output)
	}
	return strings.TrimSuffix(definition.File, ".go") + generatedSuffix
}

func (j *packageGeneration) write(output string, source []byte) error {
	if j.settings.DryRun {
		j.mu.Lock()
		defer j.mu.Unlock()
		_, err := fmt.Fprintf(j.stdout, "// %s\n%s\n", output, source)
		return err
	}
	if err := os.WriteFile(output, source, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	return nil
}

