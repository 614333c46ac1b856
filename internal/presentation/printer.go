package presentation

import (
	"fmt"
	"io"

	"robosync/internal/domain"
)

// Printer writes the plain console report: analysis totals and the final summary.
type Printer struct {
	Writer  io.Writer
	Verbose bool
	// FatalExitCode is the lowest transfer exit status worth a warning; zero disables it.
	FatalExitCode int
}

func (p Printer) PrintTotals(job domain.CopyJob, analysis domain.AnalysisResult) {
	fmt.Fprintf(p.Writer, "Found %d files, %.3f GB to examine in %s\n", analysis.TotalFiles, analysis.TotalGigabytes(), job.Source)
	if p.Verbose {
		fmt.Fprintf(p.Writer, "Verbose: analysis totals files=%d bytes=%d size_tokens=%d\n", analysis.TotalFiles, analysis.TotalBytes, analysis.SizeTokens)
	}
}

// PrintSummary always ends with the live log path.
func (p Printer) PrintSummary(report domain.Report) {
	fmt.Fprintln(p.Writer)

	switch report.Outcome {
	case domain.OutcomeCopied:
		fmt.Fprintf(p.Writer, "Copied from: %s\n", report.Job.Source)
		fmt.Fprintf(p.Writer, "Copied to:   %s\n", report.Job.EffectiveDestination())
		fmt.Fprintf(p.Writer, "Files:       %d of %d\n", report.Final.FilesCopied, report.Analysis.TotalFiles)
		fmt.Fprintf(p.Writer, "Data:        %.3f GB of %.3f GB\n", report.Final.GigabytesCopied(), report.Analysis.TotalGigabytes())
	case domain.OutcomeCancelled:
		fmt.Fprintf(p.Writer, "Copy cancelled after %d of %d files (%.3f GB of %.3f GB).\n",
			report.Final.FilesCopied, report.Analysis.TotalFiles,
			report.Final.GigabytesCopied(), report.Analysis.TotalGigabytes())
	case domain.OutcomeParseFailed:
		fmt.Fprintln(p.Writer, "Progress could not be measured: the copy log did not contain recognizable file sizes.")
		fmt.Fprintln(p.Writer, "Data may or may not have been copied. Check the log below.")
	default:
		fmt.Fprintln(p.Writer, "All items are most likely already present at the destination.")
		fmt.Fprintln(p.Writer, "Check the log below for details.")
	}

	if p.FatalExitCode > 0 && report.ExitCode >= p.FatalExitCode {
		fmt.Fprintf(p.Writer, "Warning: the copy utility exited with code %d, some items may have failed.\n", report.ExitCode)
	}
	if p.Verbose {
		fmt.Fprintf(p.Writer, "Verbose: outcome=%s files=%d bytes=%d percent=%.2f exit_code=%d\n",
			report.Outcome, report.Final.FilesCopied, report.Final.BytesCopied, report.Final.Percent, report.ExitCode)
	}

	fmt.Fprintf(p.Writer, "Log: %s\n", report.LogPath)
}

// PrintNoSelection is the notice for a run without a source or destination.
func (p Printer) PrintNoSelection() {
	fmt.Fprintln(p.Writer, "No source or destination folder selected, nothing to copy.")
}
