package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"robosync/internal/domain"
	appErrors "robosync/internal/errors"
	"robosync/internal/logging"
	"robosync/internal/logparse"
)

// Analyzer runs the copy utility in list-only mode to size the job before any
// data moves.
type Analyzer struct {
	Runner ProcessRunner
	FS     FileSystem
	Logger logging.Logger
	// NewID names the temporary log; defaults to a random UUID.
	NewID func() string
}

func (a *Analyzer) Analyze(ctx context.Context, job domain.CopyJob) (domain.AnalysisResult, error) {
	if a.Runner == nil || a.FS == nil {
		return domain.AnalysisResult{}, errors.New("analyzer requires Runner and FS")
	}

	stop := a.Logger.Measure("Analysis")
	defer stop()

	logPath := filepath.Join(a.FS.TempDir(), fmt.Sprintf("robosync-analysis-%s.log", a.newID()))
	inv := Invocation{
		Source:      job.Source,
		Destination: job.EffectiveDestination(),
		LogPath:     logPath,
		ListOnly:    true,
	}
	a.Logger.Verbosef("Analysis log: %s", logPath)

	if err := a.Runner.Run(ctx, inv); err != nil {
		if ctx.Err() != nil {
			return domain.AnalysisResult{}, appErrors.Wrap(appErrors.Cancelled, "analyze", job.Source, ctx.Err())
		}
		return domain.AnalysisResult{}, toolError("analyze", job.Source, err)
	}

	text, err := a.FS.ReadLog(logPath)
	if err != nil {
		return domain.AnalysisResult{}, appErrors.Wrap(appErrors.IOFailure, "read analysis log", logPath, err)
	}

	stats := logparse.Parse(text)
	a.Logger.Verbosef("Analysis parsed %d records, %d bytes (%d size tokens)", stats.Records, stats.Bytes, stats.SizeTokens)

	return domain.AnalysisResult{
		TotalFiles: stats.Records,
		TotalBytes: stats.Bytes,
		SizeTokens: stats.SizeTokens,
	}, nil
}

func (a *Analyzer) newID() string {
	if a.NewID != nil {
		return a.NewID()
	}
	return uuid.NewString()
}

// toolError keeps an already classified error and marks anything else as a
// failure of the external utility.
func toolError(op, path string, err error) error {
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return appErrors.Wrap(appErrors.ExternalTool, op, path, err)
}
