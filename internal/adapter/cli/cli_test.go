package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/maestro-inspector/ctxhook/internal/adapter/cli"
	"github.com/maestro-inspector/ctxhook/internal/domain"
	"github.com/maestro-inspector/ctxhook/internal/usecase/inject"
)

type handlerStub struct {
	raw    []byte
	called int
	result inject.Result
}

func (h *handlerStub) Handle(ctx context.Context, rawInput []byte) inject.Result {
	h.called++
	h.raw = append([]byte(nil), rawInput...)
	return h.result
}

type loaderStub struct {
	loaded inject.LoadedSystem
}

func (l *loaderStub) Load(ctx context.Context) inject.LoadedSystem {
	return l.loaded
}

type historyStub struct {
	records []domain.Injection
	err     error
	limit   int
}

func (h *historyStub) RecentInjections(ctx context.Context, limit int) ([]domain.Injection, error) {
	h.limit = limit
	return h.records, h.err
}

func render(ds domain.DesignSystem) string    { return "RENDERED\n" }
func summarize(ds domain.DesignSystem) string { return "SUMMARY\n" }

func newRoot(deps cli.Dependencies) (*bytes.Buffer, *bytes.Buffer, *handlerStub, func(args ...string) error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	handler := &handlerStub{}
	if deps.Handler == nil {
		deps.Handler = handler
	}
	if deps.Loader == nil {
		deps.Loader = &loaderStub{}
	}
	if deps.Render == nil {
		deps.Render = render
	}
	if deps.Summarize == nil {
		deps.Summarize = summarize
	}
	if deps.Interactive == nil {
		deps.Interactive = func() bool { return false }
	}
	deps.Args = cli.Arguments{OutWriter: out, ErrWriter: errOut}

	root := cli.NewRootCommand(deps)
	return out, errOut, handler, func(args ...string) error {
		root.SetArgs(args)
		return root.Execute()
	}
}

func TestPreToolUseCommandPassesStdinToHandler(t *testing.T) {
	out := &bytes.Buffer{}
	handler := &handlerStub{}
	root := cli.NewRootCommand(cli.Dependencies{
		Handler:     handler,
		Loader:      &loaderStub{},
		Render:      render,
		Summarize:   summarize,
		Interactive: func() bool { return false },
		Args:        cli.Arguments{OutWriter: out, ErrWriter: io.Discard},
	})

	payload := `{"tool_name": "maestro_capture_screen", "tool_input": {}}`
	root.SetIn(strings.NewReader(payload))
	root.SetArgs([]string{"hook", "pre-tool-use"})

	if err := root.Execute(); err != nil {
		t.Fatalf("command execution failed: %v", err)
	}

	if handler.called != 1 {
		t.Fatalf("expected handler to be called once, got %d", handler.called)
	}
	if string(handler.raw) != payload {
		t.Fatalf("unexpected payload passed to handler: %s", handler.raw)
	}
	if out.Len() != 0 {
		t.Fatalf("pre-tool-use must not write to the primary output, got %q", out.String())
	}
}

func TestPreToolUseCommandNeverFails(t *testing.T) {
	// Even garbage input exits successfully: the hook is advisory.
	out := &bytes.Buffer{}
	handler := &handlerStub{}
	root := cli.NewRootCommand(cli.Dependencies{
		Handler:   handler,
		Loader:    &loaderStub{},
		Render:    render,
		Summarize: summarize,
		Args:      cli.Arguments{OutWriter: out, ErrWriter: io.Discard},
	})

	root.SetIn(bytes.NewReader([]byte{0xff, 0xfe, '{'}))
	root.SetArgs([]string{"hook", "pre-tool-use"})

	if err := root.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestShowCommandRendersContext(t *testing.T) {
	out, _, _, execute := newRoot(cli.Dependencies{
		Loader: &loaderStub{loaded: inject.LoadedSystem{Source: domain.SourceDefault}},
	})

	if err := execute("show"); err != nil {
		t.Fatalf("command execution failed: %v", err)
	}

	if out.String() != "RENDERED\n" {
		t.Fatalf("unexpected show output: %q", out.String())
	}
}

func TestShowSummaryNonInteractiveOmitsSourceLine(t *testing.T) {
	out, _, _, execute := newRoot(cli.Dependencies{
		Loader: &loaderStub{loaded: inject.LoadedSystem{Source: domain.SourceFile}},
	})

	if err := execute("show", "--summary"); err != nil {
		t.Fatalf("command execution failed: %v", err)
	}

	if out.String() != "SUMMARY\n" {
		t.Fatalf("unexpected summary output: %q", out.String())
	}
}

func TestShowSummaryInteractiveShowsSource(t *testing.T) {
	out, _, _, execute := newRoot(cli.Dependencies{
		Loader:      &loaderStub{loaded: inject.LoadedSystem{Source: domain.SourceFile}},
		Interactive: func() bool { return true },
	})

	if err := execute("show", "--summary"); err != nil {
		t.Fatalf("command execution failed: %v", err)
	}

	want := "Constraints source: file\n\nSUMMARY\n"
	if out.String() != want {
		t.Fatalf("unexpected summary output: %q", out.String())
	}
}

func TestHistoryCommandWithoutStoreFails(t *testing.T) {
	_, _, _, execute := newRoot(cli.Dependencies{})

	err := execute("history")
	if err == nil {
		t.Fatal("expected error when store is disabled")
	}
	if !strings.Contains(err.Error(), "store.enabled") {
		t.Fatalf("error should point at store.enabled, got %v", err)
	}
}

func TestHistoryCommandListsRecords(t *testing.T) {
	history := &historyStub{records: []domain.Injection{
		{
			ID:        2,
			ToolName:  "maestro_hierarchy",
			Source:    domain.SourceFile,
			CreatedAt: time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        1,
			ToolName:  "maestro_capture_screen",
			Source:    domain.SourceDefault,
			CreatedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
		},
	}}
	out, _, _, execute := newRoot(cli.Dependencies{History: history})

	if err := execute("history", "--limit", "5"); err != nil {
		t.Fatalf("command execution failed: %v", err)
	}

	if history.limit != 5 {
		t.Fatalf("expected limit 5, got %d", history.limit)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "maestro_hierarchy") || !strings.Contains(lines[0], "file") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "maestro_capture_screen") || !strings.Contains(lines[1], "default") {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}

func TestHistoryCommandEmptyStore(t *testing.T) {
	out, _, _, execute := newRoot(cli.Dependencies{History: &historyStub{}})

	if err := execute("history"); err != nil {
		t.Fatalf("command execution failed: %v", err)
	}

	if out.String() != "No injections recorded.\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestHistoryCommandPropagatesStoreError(t *testing.T) {
	_, _, _, execute := newRoot(cli.Dependencies{
		History: &historyStub{err: errors.New("database is locked")},
	})

	err := execute("history")
	if err == nil || !strings.Contains(err.Error(), "database is locked") {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestVersionFlag(t *testing.T) {
	out, _, _, execute := newRoot(cli.Dependencies{Version: "v1.2.3"})

	if err := execute("--version"); !errors.Is(err, cli.ErrVersionRequested) {
		t.Fatalf("expected ErrVersionRequested sentinel, got %v", err)
	}

	if strings.TrimSpace(out.String()) != "v1.2.3" {
		t.Fatalf("unexpected version output: %q", out.String())
	}
}
