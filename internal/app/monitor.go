package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"robosync/internal/domain"
	appErrors "robosync/internal/errors"
	"robosync/internal/logging"
	"robosync/internal/logparse"
)

const (
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Monitor polls the live log on a fixed interval until the copy process exits.
// Each tick re-reads the whole log; there is no incremental tailing.
type Monitor struct {
	FS     FileSystem
	Sink   ProgressSink
	Clock  TimeProvider
	Logger logging.Logger
	Label  string
}

// Validate reports whether Watch could run with the given interval.
func (m *Monitor) Validate(interval time.Duration) error {
	if m.FS == nil || m.Sink == nil {
		return errors.New("monitor requires FS and Sink")
	}
	if interval <= 0 {
		return fmt.Errorf("monitor interval must be positive, got %s", interval)
	}
	return nil
}

// Watch returns the snapshot from the last tick. The tick that observes the
// exit reads the log after the exit, so the final snapshot covers the full log.
// Cancelling ctx kills the process and returns a Cancelled error together with
// the last snapshot taken.
//
// Diagnostics are held back until the sink has completed, since a sink may
// own the terminal while the copy runs.
func (m *Monitor) Watch(ctx context.Context, proc Process, logPath string, interval time.Duration, analysis domain.AnalysisResult) (domain.Snapshot, error) {
	if proc == nil {
		return domain.Snapshot{}, errors.New("monitor requires a process")
	}
	if err := m.Validate(interval); err != nil {
		return domain.Snapshot{}, err
	}

	clock := m.Clock
	if clock == nil {
		clock = RealTimeProvider{}
	}
	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	var (
		snap       domain.Snapshot
		ticks      int
		readFailed int
		lastErr    error
	)
	reportReads := func() {
		if readFailed > 0 {
			m.Logger.Verbosef("%d of %d log reads failed, last: %v", readFailed, ticks, lastErr)
		}
	}

	for {
		select {
		case <-ctx.Done():
			killErr := proc.Kill()
			m.Sink.Complete(m.Label, StatusCancelled)
			if killErr != nil {
				m.Logger.Verbosef("Kill copy process: %v", killErr)
			}
			reportReads()
			return snap, appErrors.Wrap(appErrors.Cancelled, "monitor", logPath, ctx.Err())
		case <-ticker.C():
		}
		ticks++

		exited := proc.Exited()

		text, err := m.FS.ReadLog(logPath)
		if err != nil {
			// a read racing the writer is retried on the next tick
			readFailed++
			lastErr = err
		} else {
			stats := logparse.Parse(text)
			snap = domain.NewSnapshot(stats.Records, stats.Bytes, stats.SizeTokens, analysis)
		}

		m.Sink.Update(m.Label, StatusLine(snap, analysis), domain.Round(snap.Percent, 2))

		if exited {
			m.Sink.Complete(m.Label, StatusCompleted)
			m.Logger.Verbosef("Copy process exited after %d ticks with code %d", ticks, proc.ExitCode())
			reportReads()
			return snap, nil
		}
	}
}

// StatusLine renders copied/total files, gigabytes and percent for one tick.
func StatusLine(snap domain.Snapshot, analysis domain.AnalysisResult) string {
	return fmt.Sprintf("Files: %d / %d | GB: %.3f / %.3f | %.2f%%",
		snap.FilesCopied, analysis.TotalFiles,
		snap.GigabytesCopied(), analysis.TotalGigabytes(),
		domain.Round(snap.Percent, 2),
	)
}
