// Package cli wires flags, configuration, the color palette and the
// pipeline into the mediareport command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/mediareport/internal/config"
	"github.com/backmassage/mediareport/internal/logging"
	"github.com/backmassage/mediareport/internal/pipeline"
	"github.com/backmassage/mediareport/internal/term"
)

// Exit statuses.
const (
	ExitOK          = 0
	ExitUsage       = 1   // No arguments, no paths, or a bad flag.
	ExitInterrupted = 130 // SIGINT/SIGTERM during scanning.
)

// Build identifies the binary; injected at build time via -ldflags.
type Build struct {
	Version string
	Commit  string
}

// Execute runs mediareport with args (program name excluded), writing all
// output to out, and returns the process exit status.
func Execute(build Build, args []string, out io.Writer) int {
	if len(args) == 0 {
		printUsage(out)
		return ExitUsage
	}

	cfg := config.DefaultConfig()
	code := ExitOK

	cmd := &cobra.Command{
		Use:           "mediareport [--color-scheme=<scheme>] <library_path>...",
		Short:         "Report companion metadata coverage for media libraries",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	flags := config.BindFlags(cmd.Flags(), &cfg)

	cmd.RunE = func(cmd *cobra.Command, paths []string) error {
		if flags.ShowVersion {
			fmt.Fprintf(out, "mediareport v%s (%s)\n", build.Version, build.Commit)
			return nil
		}

		cfg.Paths = paths
		config.ApplyFlags(&cfg, flags)
		if err := cfg.Validate(); err != nil {
			if errors.Is(err, config.ErrNoPaths) {
				fmt.Fprintln(out, "Error: No library paths provided.")
				printUsage(out)
				code = ExitUsage
				return nil
			}
			return err
		}

		code = run(cmd.Context(), build, &cfg, out)
		return nil
	}

	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) { printUsage(c.OutOrStdout()) })
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		printUsage(c.OutOrStdout())
		return nil
	})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		printUsage(out)
		return ExitUsage
	}
	return code
}

// run selects the palette once, then hands off to the pipeline. SIGINT and
// SIGTERM cancel in-flight scans.
func run(parent context.Context, build Build, cfg *config.Config, out io.Writer) int {
	pal := term.Select(cfg.ColorScheme, rand.IntN)
	if !term.ColorsEnabled(cfg.ColorMode) {
		pal = pal.Plain()
	}

	log := logging.NewLogger(cfg, out, pal)
	log.Debug("=== mediareport v%s (%s) ===", build.Version, build.Commit)
	if _, ok := term.Lookup(cfg.ColorScheme); !ok && cfg.ColorScheme != term.RandomScheme {
		log.Warn("Unknown color scheme %q, using %s", cfg.ColorScheme, term.DefaultScheme)
	}
	log.Debug("Color scheme: %s", pal.Name)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var interrupted atomic.Bool
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			interrupted.Store(true)
			log.Warn("Received interrupt, abandoning remaining scans…")
			cancel()
		case <-ctx.Done():
		}
	}()

	pipeline.Run(ctx, cfg, pal, log)

	if interrupted.Load() {
		return ExitInterrupted
	}
	return ExitOK
}
