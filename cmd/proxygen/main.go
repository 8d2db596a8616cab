// Command proxygen generates the proxies needed to decorate interfaces at runtime.
//
// Interfaces opt in with the @decoratable annotation in their doc comment:
//
//	// Uploader sends files to a remote storage.
//	// @decoratable
//	type Uploader interface {
//		Upload(file, destination string) (bool, error)
//	}
//
// and the package declares the generation:
//
//	//go:generate go run github.com/a-peyrard/reflective/cmd/proxygen
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/a-peyrard/reflective/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func newRootCommand(settings *Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proxygen [packages]",
		Short: "Generate the proxies of the interfaces annotated with @decoratable",
		Long: `Scans the given packages, the current one by default, for interfaces annotated with
@decoratable, and writes for each of them a proxy registered in the decorator package.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), settings.Verbose)
			if err := newGenerator(&logger, settings, cmd.OutOrStdout()).Generate(cmd.Context(), args...); err != nil {
				logger.Error().Err(err).Msg("Failed to generate proxies")
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&settings.Output, "output", "o", settings.Output, "file receiving all the proxies of a package, instead of one file per declaring file")
	flags.BoolVar(&settings.DryRun, "dry-run", settings.DryRun, "print the generated code instead of writing it")
	flags.BoolVarP(&settings.Verbose, "verbose", "v", settings.Verbose, "log the details of the scan")
	flags.StringVar(&settings.Dir, "dir", settings.Dir, "directory the package patterns are resolved from")
	flags.IntVarP(&settings.Jobs, "jobs", "j", settings.Jobs, "number of packages generated concurrently")
	return cmd
}

func main() {
	settings, err := config.Load[Settings](config.WithEnvPrefix("PROXYGEN"))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}
	if err = newRootCommand(settings).Execute(); err != nil {
		os.Exit(1)
	}
}
