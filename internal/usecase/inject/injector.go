// Package inject implements the pre-tool-use context injection.
//
// The injector is advisory and non-blocking: whatever goes wrong, the host
// tool call proceeds. Handle therefore never returns an error; it returns a
// Result describing which path was taken so callers and tests can observe
// the outcome without changing the external contract.
package inject

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/maestro-inspector/ctxhook/internal/domain"
)

// LoadedSystem is a normalized design system plus the source it came from
// (domain.SourceFile for a clean load, domain.SourceDefault otherwise).
type LoadedSystem struct {
	System domain.DesignSystem
	Source string
}

// Loader supplies the design system for one invocation. Implementations must
// not fail: degraded loads return the default system tagged SourceDefault.
type Loader interface {
	Load(ctx context.Context) LoadedSystem
}

// Renderer turns a normalized design system into the advisory text block.
type Renderer func(domain.DesignSystem) string

// Recorder persists an audit record per injection. Optional; recording
// failures are logged and dropped, never surfaced.
type Recorder interface {
	RecordInjection(ctx context.Context, inj domain.Injection) error
}

// Logger receives structured diagnostics. Optional.
type Logger interface {
	LogInfo(ctx context.Context, message string, fields map[string]interface{})
	LogWarning(ctx context.Context, message string, fields map[string]interface{})
}

// Deps captures the injector's collaborators.
type Deps struct {
	Loader        Loader
	Render        Renderer
	ContextWriter io.Writer
	Recorder      Recorder
	Logger        Logger
	Now           func() time.Time
}

// Result reports which path Handle took.
type Result struct {
	Activated bool
	ToolName  string
	Source    string
}

// Injector emits design-system context ahead of visual-inspection tool calls.
type Injector struct {
	loader   Loader
	render   Renderer
	out      io.Writer
	recorder Recorder
	logger   Logger
	now      func() time.Time
}

// NewInjector wires an injector from its dependencies.
func NewInjector(deps Deps) *Injector {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Injector{
		loader:   deps.Loader,
		render:   deps.Render,
		out:      deps.ContextWriter,
		recorder: deps.Recorder,
		logger:   deps.Logger,
		now:      now,
	}
}

// Handle processes one invocation record.
//
// A payload that does not parse, or names a tool outside the allow-list,
// produces no output. An allow-listed tool gets the rendered context written
// to the context writer, falling back to the default design system when the
// constraints file is unusable. Handle never fails.
func (i *Injector) Handle(ctx context.Context, rawInput []byte) Result {
	var inv domain.Invocation
	if err := json.Unmarshal(rawInput, &inv); err != nil {
		// Malformed invocation: let the tool proceed without context.
		i.logInfo(ctx, "invocation payload not parseable, skipping", map[string]interface{}{
			"error": err.Error(),
		})
		return Result{}
	}

	if !domain.IsVisualInspectionTool(inv.ToolName) {
		return Result{ToolName: inv.ToolName}
	}

	loaded := i.loader.Load(ctx)
	text := i.render(loaded.System)
	if _, err := fmt.Fprintln(i.out, text); err != nil {
		i.logWarning(ctx, "context write failed", map[string]interface{}{
			"tool":  inv.ToolName,
			"error": err.Error(),
		})
	}

	i.recordInjection(ctx, inv.ToolName, loaded.Source)

	return Result{Activated: true, ToolName: inv.ToolName, Source: loaded.Source}
}

func (i *Injector) recordInjection(ctx context.Context, toolName, source string) {
	if i.recorder == nil {
		return
	}
	inj := domain.Injection{
		ToolName:  toolName,
		Source:    source,
		CreatedAt: i.now(),
	}
	if err := i.recorder.RecordInjection(ctx, inj); err != nil {
		i.logWarning(ctx, "injection audit record failed", map[string]interface{}{
			"tool":  toolName,
			"error": err.Error(),
		})
	}
}

func (i *Injector) logInfo(ctx context.Context, message string, fields map[string]interface{}) {
	if i.logger != nil {
		i.logger.LogInfo(ctx, message, fields)
	}
}

func (i *Injector) logWarning(ctx context.Context, message string, fields map[string]interface{}) {
	if i.logger != nil {
		i.logger.LogWarning(ctx, message, fields)
	}
}
