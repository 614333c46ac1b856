package domain

import "math"

const bytesPerGigabyte = 1073741824

// copiedThreshold is the percent above which a run counts as a meaningful copy.
const copiedThreshold = 0.1

// Snapshot is the transfer state observed on one tick. A new value is produced
// per tick; nothing mutates a snapshot after it is built.
type Snapshot struct {
	FilesCopied uint
	BytesCopied uint64
	Percent     float64
	// SizeTokens counts the byte-size tokens found. Records without any
	// size token mean the log format was not understood.
	SizeTokens uint
}

// NewSnapshot derives the percent complete from the bytes copied so far.
func NewSnapshot(files uint, bytes uint64, sizeTokens uint, analysis AnalysisResult) Snapshot {
	return Snapshot{
		FilesCopied: files,
		BytesCopied: bytes,
		Percent:     Percent(bytes, analysis.TotalBytes),
		SizeTokens:  sizeTokens,
	}
}

func (s Snapshot) GigabytesCopied() float64 {
	return Gigabytes(s.BytesCopied)
}

// Percent returns copied/total*100, or 0 when nothing was copied or the total is zero.
func Percent(copied, total uint64) float64 {
	if copied == 0 || total == 0 {
		return 0
	}
	return float64(copied) / float64(total) * 100
}

// Gigabytes converts bytes to binary gigabytes rounded to 3 decimals.
func Gigabytes(bytes uint64) float64 {
	return Round(float64(bytes)/bytesPerGigabyte, 3)
}

func Round(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}

// Outcome classifies how a transfer ended.
type Outcome int

const (
	OutcomeNothingToCopy Outcome = iota
	OutcomeCopied
	OutcomeParseFailed
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeParseFailed:
		return "parse_failed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "nothing_to_copy"
	}
}

// Classify decides the outcome of a finished (not cancelled) transfer.
// Records present without any size token means the log could not be measured,
// which is reported separately from "nothing to copy".
func Classify(final Snapshot, analysis AnalysisResult) Outcome {
	if final.Percent > copiedThreshold {
		return OutcomeCopied
	}
	if final.FilesCopied > 0 && final.SizeTokens == 0 {
		return OutcomeParseFailed
	}
	if analysis.TotalFiles > 0 && analysis.SizeTokens == 0 {
		return OutcomeParseFailed
	}
	return OutcomeNothingToCopy
}

// Report is everything known about a run once the transfer has ended.
type Report struct {
	Job      CopyJob
	Analysis AnalysisResult
	Final    Snapshot
	Outcome  Outcome
	LogPath  string
	// ExitCode of the transfer process, -1 when it was killed or never observed.
	ExitCode int
}
