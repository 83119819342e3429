package domain

import "time"

// Visual-inspection tool identifiers the hook activates for. The set is a
// contract with the host pipeline; names outside it are silently ignored.
const (
	ToolCaptureScreen = "maestro_capture_screen"
	ToolHierarchy     = "maestro_hierarchy"
	ToolFocusRegion   = "maestro_focus_region"
)

// Invocation is the tool-call record delivered on stdin. Any field beyond
// tool_name is ignored.
type Invocation struct {
	ToolName string `json:"tool_name"`
}

// VisualInspectionTools returns the fixed allow-list of tool names.
func VisualInspectionTools() []string {
	return []string{ToolCaptureScreen, ToolHierarchy, ToolFocusRegion}
}

// IsVisualInspectionTool reports whether name is in the allow-list.
func IsVisualInspectionTool(name string) bool {
	switch name {
	case ToolCaptureScreen, ToolHierarchy, ToolFocusRegion:
		return true
	}
	return false
}

// Constraint-source labels recorded with each injection.
const (
	SourceFile    = "file"
	SourceDefault = "default"
)

// Injection records one successful context injection for the audit store.
type Injection struct {
	ID        int64
	ToolName  string
	Source    string
	CreatedAt time.Time
}
