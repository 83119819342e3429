// Package constraints reads the externally-owned design-system file.
//
// The file is produced and updated by the inspector tooling; this package
// only ever reads it. Every failure mode collapses to the built-in default
// document, but the load status is kept so callers (and tests) can tell which
// path was taken.
package constraints

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/maestro-inspector/ctxhook/internal/domain"
)

// FileName is the well-known constraints file name inside InspectorDir.
const FileName = "design-system.json"

// InspectorDir is the shared directory name under the system temp directory.
const InspectorDir = "maestro-inspector"

// LoadStatus tags the outcome of a load attempt.
type LoadStatus int

const (
	// StatusLoaded means the file existed and parsed.
	StatusLoaded LoadStatus = iota
	// StatusNotFound means no file exists at the path.
	StatusNotFound
	// StatusInvalid means the file exists but is not valid JSON for the
	// document shape.
	StatusInvalid
	// StatusIOError means the file could not be read.
	StatusIOError
)

// String returns the status label used in logs and the audit store.
func (s LoadStatus) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusNotFound:
		return "not-found"
	case StatusInvalid:
		return "invalid"
	case StatusIOError:
		return "io-error"
	}
	return "unknown"
}

// Source maps the status to the constraint-source label recorded with an
// injection: only a clean load counts as coming from the file.
func (s LoadStatus) Source() string {
	if s == StatusLoaded {
		return domain.SourceFile
	}
	return domain.SourceDefault
}

// LoadResult carries the normalized design system plus the path taken to
// produce it. Non-loaded statuses always carry the default design system, so
// callers never branch on status to get usable data.
type LoadResult struct {
	Status LoadStatus
	System domain.DesignSystem
}

// DefaultPath returns the well-known constraints location shared with the
// inspector tooling.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), InspectorDir, FileName)
}

// Loader reads the constraints file from a fixed path.
type Loader struct {
	path string
}

// NewLoader constructs a loader for the given path. An empty path selects the
// well-known location; tests inject a temp path instead.
func NewLoader(path string) *Loader {
	if path == "" {
		path = DefaultPath()
	}
	return &Loader{path: path}
}

// Path returns the file path this loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Load reads and normalizes the constraints file. It performs one read with
// no locking or retries; a concurrent writer is tolerated and simply yields
// whatever snapshot exists right now. Load never returns an error: every
// failure degrades to the default design system with a non-loaded status.
func (l *Loader) Load(ctx context.Context) LoadResult {
	data, err := os.ReadFile(l.path)
	if err != nil {
		status := StatusIOError
		if errors.Is(err, os.ErrNotExist) {
			status = StatusNotFound
		}
		return LoadResult{Status: status, System: domain.DefaultDesignSystem()}
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return LoadResult{Status: StatusInvalid, System: domain.DefaultDesignSystem()}
	}

	return LoadResult{Status: StatusLoaded, System: doc.ApplyDefaults()}
}
