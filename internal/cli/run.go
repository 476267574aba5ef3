package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// EditOptions contains all the configuration for the edit command.
type EditOptions struct {
	Config     config.Config
	ScriptPath string // Read commands from this file instead of Stdin
	Input      io.Reader
	Output     io.Writer
}

// RunEdit starts a terminal editor session.
func RunEdit(opts EditOptions) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := createLogger(cfg.Debug, cfg.LogLevel)
	if err != nil {
		return err
	}

	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.ScriptPath != "" {
		f, err := os.Open(opts.ScriptPath)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	interactive := isTerminal(in) && isTerminal(out)

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return err
	}
	hooks := metrics.Hooks()
	if cfg.Debug {
		hooks = observability.Chain(hooks, createDebugHooks(logger))
	}

	ed, err := turing.New(cfg.Alphabet,
		turing.WithLogger(logger),
		turing.WithHooks(hooks),
		turing.WithName(cfg.Name),
	)
	if err != nil {
		return err
	}

	var renderer tui.Renderer = tui.PlainRenderer
	if interactive {
		renderer = tui.NewRenderer()
		if cfg.Banner {
			tui.PrintBanner(out, turing.Version)
		}
	}

	session := NewSession(ed, out,
		WithSessionLogger(logger),
		WithSessionRenderer(renderer),
		WithSessionStats(reg),
		WithInteractive(interactive),
	)

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if err := session.Run(sigCtx, in); err != nil {
		if sigCtx.Signal() != nil {
			// Interrupted by the user; not a failure.
			return nil
		}
		return err
	}
	return nil
}
