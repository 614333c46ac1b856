package app

import (
	"context"
	"io/fs"
	"time"

	"robosync/internal/domain"
)

// Invocation is one launch of the external copy utility.
type Invocation struct {
	Source      string
	Destination string
	LogPath     string
	ListOnly    bool
	// InterPacketDelayMs throttles the live transfer; zero disables it.
	InterPacketDelayMs int
}

// ProcessRunner launches the external copy utility.
type ProcessRunner interface {
	// Run blocks until the utility exits. A fatal exit status is an error.
	Run(ctx context.Context, inv Invocation) error
	// Start launches the utility and returns without waiting for it.
	Start(ctx context.Context, inv Invocation) (Process, error)
}

// Process is a handle to a running copy utility.
type Process interface {
	// Exited reports, without blocking, whether the process has ended.
	Exited() bool
	// ExitCode is the exit status once Exited is true, -1 before that.
	ExitCode() int
	Kill() error
}

type FileSystem interface {
	// ReadLog returns the whole log, or "" when it does not exist yet.
	ReadLog(path string) (string, error)
	MkdirAll(path string, perm fs.FileMode) error
	TempDir() string
}

// ProgressSink displays progress while the transfer runs.
type ProgressSink interface {
	Update(label, status string, percent float64)
	Complete(label, status string)
}

// Ticker is an interface for time.Ticker to allow mocking.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TimeProvider provides time-related functionality for dependency injection.
type TimeProvider interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Reporter prints the analysis totals and the final summary.
type Reporter interface {
	PrintTotals(job domain.CopyJob, analysis domain.AnalysisResult)
	PrintSummary(report domain.Report)
}
