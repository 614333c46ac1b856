package domain

import (
	"path/filepath"
	"time"
)

// CopyJob describes one directory copy. Both paths are expected to be non-empty.
type CopyJob struct {
	Source             string
	DestinationRoot    string
	InterPacketDelayMs int
	ReportIntervalMs   int
}

// EffectiveDestination is the directory the source tree lands in:
// the destination root joined with the source's base name.
func (j CopyJob) EffectiveDestination() string {
	return filepath.Join(j.DestinationRoot, filepath.Base(filepath.Clean(j.Source)))
}

func (j CopyJob) ReportInterval() time.Duration {
	return time.Duration(j.ReportIntervalMs) * time.Millisecond
}

// AnalysisResult holds the dry-run totals used as the denominator for progress.
type AnalysisResult struct {
	TotalFiles uint
	TotalBytes uint64
	SizeTokens uint
}

func (a AnalysisResult) TotalGigabytes() float64 {
	return Gigabytes(a.TotalBytes)
}
