package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/maestro-inspector/ctxhook/internal/domain"
	"github.com/maestro-inspector/ctxhook/internal/usecase/inject"
)

// ErrVersionRequested indicates the user requested the CLI version and no further work should be done.
var ErrVersionRequested = errors.New("version requested")

// PreToolUseHandler processes one invocation record read from stdin.
type PreToolUseHandler interface {
	Handle(ctx context.Context, rawInput []byte) inject.Result
}

// SystemLoader supplies the current design system for the show command.
type SystemLoader interface {
	Load(ctx context.Context) inject.LoadedSystem
}

// HistoryLister reads back recorded injections for the history command.
type HistoryLister interface {
	RecentInjections(ctx context.Context, limit int) ([]domain.Injection, error)
}

// RenderFunc turns a normalized design system into display text.
type RenderFunc func(domain.DesignSystem) string

// Arguments encapsulates IO writers injected from the host process.
type Arguments struct {
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Dependencies captures the collaborators for the CLI.
type Dependencies struct {
	Handler     PreToolUseHandler
	Loader      SystemLoader
	History     HistoryLister // nil when the audit store is disabled
	Render      RenderFunc
	Summarize   RenderFunc
	Interactive func() bool // defaults to stdout-TTY detection
	Args        Arguments
	Version     string
}

// NewRootCommand constructs the root Cobra command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	versionString := deps.Version
	if versionString == "" {
		versionString = "v0.0.0"
	}

	root := &cobra.Command{
		Use:   "ctxhook",
		Short: "Design-system context hook for Maestro visual inspection tools",
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	outWriter := deps.Args.OutWriter
	if outWriter == nil {
		outWriter = os.Stdout
	}
	errWriter := deps.Args.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	root.SetOut(outWriter)
	root.SetErr(errWriter)

	hookCmd := &cobra.Command{
		Use:   "hook",
		Short: "Hook entry points invoked by the host tool pipeline",
	}
	hookCmd.AddCommand(preToolUseCommand(deps.Handler))
	root.AddCommand(hookCmd)

	interactive := deps.Interactive
	if interactive == nil {
		interactive = inject.IsOutputTerminal
	}
	root.AddCommand(showCommand(deps.Loader, deps.Render, deps.Summarize, interactive))
	root.AddCommand(historyCommand(deps.History))

	var showVersion bool
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version and exit")
	versionHandler := func(cmd *cobra.Command, args []string) error {
		if showVersion {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString)
			return ErrVersionRequested
		}
		return nil
	}
	root.PersistentPreRunE = versionHandler
	root.PreRunE = versionHandler
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if err := versionHandler(cmd, args); err != nil {
			return err
		}
		return cmd.Help()
	}

	return root
}

// preToolUseCommand creates the pre-tool-use subcommand, the entry point the
// host pipeline wires as its PreToolUse hook.
//
// The command is advisory and never blocks the instrumented tool call: it
// always exits 0, whether or not context was injected. Context goes to the
// error writer; the primary output stream stays untouched for the host.
func preToolUseCommand(handler PreToolUseHandler) *cobra.Command {
	return &cobra.Command{
		Use:   "pre-tool-use",
		Short: "Inject design-system context before visual inspection tools",
		Long: `Read a tool invocation record from stdin and, for visual inspection
tools, write design-system guidance to stderr before the tool runs.

Activates only for:
  maestro_capture_screen
  maestro_hierarchy
  maestro_focus_region

Any other tool name, a missing tool_name, or an unparseable payload is a
silent no-op. The command always exits 0 so the instrumented tool call is
never blocked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return nil // Swallow input errors, don't block.
			}
			handler.Handle(cmd.Context(), raw)
			return nil
		},
	}
}
