package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"robosync/internal/domain"
	appErrors "robosync/internal/errors"
	"robosync/internal/logging"
)

const transferLogLayout = "20060102-150405"

// Transferrer launches the live copy and hands back the log to watch.
type Transferrer struct {
	Runner ProcessRunner
	FS     FileSystem
	Clock  TimeProvider
	Logger logging.Logger
	// Settle is waited after launch so the utility can create its log.
	Settle time.Duration
}

// Start launches the copy utility without waiting for it. The log is written
// under the destination root so it stays next to the copied tree.
func (t *Transferrer) Start(ctx context.Context, job domain.CopyJob) (string, Process, error) {
	if t.Runner == nil || t.FS == nil {
		return "", nil, errors.New("transferrer requires Runner and FS")
	}

	if err := t.FS.MkdirAll(job.DestinationRoot, 0o755); err != nil {
		return "", nil, appErrors.Wrap(appErrors.IOFailure, "mkdir", job.DestinationRoot, err)
	}

	logPath := filepath.Join(job.DestinationRoot, fmt.Sprintf("robosync-%s.log", t.now().Format(transferLogLayout)))
	inv := Invocation{
		Source:             job.Source,
		Destination:        job.EffectiveDestination(),
		LogPath:            logPath,
		InterPacketDelayMs: job.InterPacketDelayMs,
	}
	t.Logger.Verbosef("Transfer log: %s", logPath)

	if err := ctx.Err(); err != nil {
		return "", nil, appErrors.Wrap(appErrors.Cancelled, "start transfer", job.Source, err)
	}

	proc, err := t.Runner.Start(ctx, inv)
	if err != nil {
		return "", nil, toolError("start transfer", job.Source, err)
	}

	if t.Settle > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(t.Settle):
		}
	}

	return logPath, proc, nil
}

func (t *Transferrer) now() time.Time {
	if t.Clock == nil {
		return time.Now()
	}
	return t.Clock.Now()
}
