package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/maestro-inspector/ctxhook/internal/adapter/constraints"
	"github.com/maestro-inspector/ctxhook/internal/config"
	"github.com/maestro-inspector/ctxhook/internal/domain"
)

func TestLoaderAdapterCollapsesStatusToSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design-system.json")

	adapter := &loaderAdapter{loader: constraints.NewLoader(path)}

	loaded := adapter.Load(context.Background())
	if loaded.Source != domain.SourceDefault {
		t.Fatalf("missing file should yield default source, got %s", loaded.Source)
	}
	if loaded.System.Spacing.Unit != 8 {
		t.Fatalf("expected default spacing unit, got %d", loaded.System.Spacing.Unit)
	}

	if err := os.WriteFile(path, []byte(`{"brand":{"colors":{"primary":"#1a73e8"}}}`), 0o644); err != nil {
		t.Fatalf("write constraints file: %v", err)
	}

	loaded = adapter.Load(context.Background())
	if loaded.Source != domain.SourceFile {
		t.Fatalf("readable file should yield file source, got %s", loaded.Source)
	}
	if len(loaded.System.Colors) != 1 || loaded.System.Colors[0].Name != "primary" {
		t.Fatalf("unexpected colors: %+v", loaded.System.Colors)
	}
}

func TestBuildLoggerDisabledByDefault(t *testing.T) {
	if logger := buildLogger(config.Default().Observability.Logging); logger != nil {
		t.Fatal("default config must produce a nil logger")
	}

	enabled := config.LoggingConfig{Enabled: true, Level: "debug", Format: "json"}
	if logger := buildLogger(enabled); logger == nil {
		t.Fatal("enabled config must produce a logger")
	}
}

func TestDefaultConfigPathsIncludeWorkingDirectory(t *testing.T) {
	paths := defaultConfigPaths()
	if len(paths) == 0 || paths[0] != "." {
		t.Fatalf("expected working directory first, got %v", paths)
	}
}
