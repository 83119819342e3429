package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/maestro-inspector/ctxhook/internal/adapter/cli"
	"github.com/maestro-inspector/ctxhook/internal/adapter/constraints"
	"github.com/maestro-inspector/ctxhook/internal/adapter/observability"
	contextout "github.com/maestro-inspector/ctxhook/internal/adapter/output/context"
	"github.com/maestro-inspector/ctxhook/internal/adapter/output/summary"
	"github.com/maestro-inspector/ctxhook/internal/adapter/store/sqlite"
	"github.com/maestro-inspector/ctxhook/internal/config"
	"github.com/maestro-inspector/ctxhook/internal/usecase/inject"
	"github.com/maestro-inspector/ctxhook/internal/version"
)

func main() {
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	// Create cancellable context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(config.LoaderOptions{
		ConfigPaths: defaultConfigPaths(),
		FileName:    "ctxhook",
		EnvPrefix:   "CTXHOOK",
	})
	if err != nil {
		// The hook is advisory and must keep working with zero setup: a broken
		// config file degrades to the built-in defaults instead of failing the
		// instrumented tool call.
		cfg = config.Default()
	}

	logger := buildLogger(cfg.Observability.Logging)

	systemLoader := &loaderAdapter{loader: constraints.NewLoader(cfg.Constraints.Path)}

	// Initialize the audit store if enabled. Store problems never stop the
	// hook; they just disable auditing for this invocation.
	var recorder inject.Recorder
	var history cli.HistoryLister
	if cfg.Store.Enabled {
		storeDir := filepath.Dir(cfg.Store.Path)
		if err := os.MkdirAll(storeDir, 0o755); err != nil {
			log.Printf("warning: failed to create store directory: %v", err)
		} else {
			auditStore, err := sqlite.NewStore(cfg.Store.Path)
			if err != nil {
				log.Printf("warning: failed to initialize store: %v", err)
			} else {
				recorder = auditStore
				history = auditStore
				defer auditStore.Close()
			}
		}
	}

	injector := inject.NewInjector(inject.Deps{
		Loader:        systemLoader,
		Render:        contextout.Render,
		ContextWriter: os.Stderr,
		Recorder:      recorder,
		Logger:        logger,
	})

	root := cli.NewRootCommand(cli.Dependencies{
		Handler:   injector,
		Loader:    systemLoader,
		History:   history,
		Render:    contextout.Render,
		Summarize: summary.Render,
		Version:   version.Value(),
	})

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, cli.ErrVersionRequested) {
			return nil
		}
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ctxhook"))
	}
	return paths
}

// buildLogger creates the structured logger when diagnostics are enabled.
// A nil logger keeps the hook silent, which is the default contract.
func buildLogger(cfg config.LoggingConfig) inject.Logger {
	if !cfg.Enabled {
		return nil
	}
	return observability.NewLogger(
		os.Stderr,
		observability.ParseLevel(cfg.Level),
		observability.ParseFormat(cfg.Format),
	)
}

// loaderAdapter bridges the constraints loader to the injector's Loader
// interface, collapsing the tagged load status to a source label at the
// boundary.
type loaderAdapter struct {
	loader *constraints.Loader
}

func (a *loaderAdapter) Load(ctx context.Context) inject.LoadedSystem {
	result := a.loader.Load(ctx)
	return inject.LoadedSystem{
		System: result.System,
		Source: result.Status.Source(),
	}
}

// Compile-time interface compliance checks
var _ inject.Loader = (*loaderAdapter)(nil)
var _ inject.Recorder = (*sqlite.Store)(nil)
var _ inject.Logger = (*observability.Logger)(nil)
var _ cli.PreToolUseHandler = (*inject.Injector)(nil)
var _ cli.SystemLoader = (*loaderAdapter)(nil)
var _ cli.HistoryLister = (*sqlite.Store)(nil)
