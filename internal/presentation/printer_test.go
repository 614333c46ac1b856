package presentation

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Gomega convention

	"robosync/internal/domain"
)

func sampleReport(outcome domain.Outcome) domain.Report {
	analysis := domain.AnalysisResult{TotalFiles: 40, TotalBytes: 5_000_000_000, SizeTokens: 40}
	return domain.Report{
		Job:      domain.CopyJob{Source: "/data/photos", DestinationRoot: "/backup"},
		Analysis: analysis,
		Final:    domain.NewSnapshot(10, 1_250_000_000, 10, analysis),
		Outcome:  outcome,
		LogPath:  "/backup/robosync-20261019-090000.log",
		ExitCode: 1,
	}
}

func lastLine(output string) string {
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	return lines[len(lines)-1]
}

func TestPrintSummaryCopied(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer

	Printer{Writer: &buf}.PrintSummary(sampleReport(domain.OutcomeCopied))
	output := buf.String()

	g.Expect(output).To(ContainSubstring("Copied from: /data/photos"))
	g.Expect(output).To(ContainSubstring("Copied to:   /backup/photos"))
	g.Expect(output).To(ContainSubstring("Files:       10 of 40"))
	g.Expect(output).To(ContainSubstring("Data:        1.164 GB of 4.657 GB"))
	g.Expect(output).NotTo(ContainSubstring("Verbose:"))
	g.Expect(lastLine(output)).To(Equal("Log: /backup/robosync-20261019-090000.log"))
}

func TestPrintSummaryNothingToCopy(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer

	Printer{Writer: &buf}.PrintSummary(domain.Report{LogPath: "/backup/x.log"})
	output := buf.String()

	g.Expect(output).To(ContainSubstring("most likely already present"))
	g.Expect(output).NotTo(ContainSubstring("Copied from"))
	g.Expect(lastLine(output)).To(Equal("Log: /backup/x.log"))
}

func TestPrintSummaryParseFailedIsDistinct(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer

	Printer{Writer: &buf}.PrintSummary(sampleReport(domain.OutcomeParseFailed))
	output := buf.String()

	g.Expect(output).To(ContainSubstring("could not be measured"))
	g.Expect(output).NotTo(ContainSubstring("already present"))
	g.Expect(lastLine(output)).To(HavePrefix("Log: "))
}

func TestPrintSummaryCancelled(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer

	Printer{Writer: &buf}.PrintSummary(sampleReport(domain.OutcomeCancelled))

	g.Expect(buf.String()).To(ContainSubstring("Copy cancelled after 10 of 40 files (1.164 GB of 4.657 GB)."))
}

func TestPrintSummaryWarnsOnFatalExitCode(t *testing.T) {
	g := NewWithT(t)
	report := sampleReport(domain.OutcomeCopied)
	report.ExitCode = 9

	var buf bytes.Buffer
	Printer{Writer: &buf, FatalExitCode: 8}.PrintSummary(report)
	g.Expect(buf.String()).To(ContainSubstring("exited with code 9"))
	g.Expect(lastLine(buf.String())).To(HavePrefix("Log: "))

	buf.Reset()
	report.ExitCode = 3
	Printer{Writer: &buf, FatalExitCode: 8}.PrintSummary(report)
	g.Expect(buf.String()).NotTo(ContainSubstring("exited with code"))
}

func TestPrintSummaryVerbose(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer

	Printer{Writer: &buf, Verbose: true}.PrintSummary(sampleReport(domain.OutcomeCopied))

	g.Expect(buf.String()).To(ContainSubstring("Verbose: outcome=copied files=10 bytes=1250000000 percent=25.00 exit_code=1"))
	g.Expect(lastLine(buf.String())).To(HavePrefix("Log: "))
}

func TestPrintTotals(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer

	Printer{Writer: &buf}.PrintTotals(domain.CopyJob{Source: "/data"}, domain.AnalysisResult{TotalFiles: 3, TotalBytes: 1073741824})

	g.Expect(buf.String()).To(Equal("Found 3 files, 1.000 GB to examine in /data\n"))
}

func TestPrintNoSelectionIsOneLine(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer

	Printer{Writer: &buf}.PrintNoSelection()

	g.Expect(strings.Count(buf.String(), "\n")).To(Equal(1))
}

func TestProgressLines(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer
	sink := ProgressLines{Writer: &buf}

	sink.Update("Copying", "Files: 1 / 2 | GB: 0.000 / 0.000 | 50.00%", 50)
	sink.Complete("Copying", "Completed")

	g.Expect(buf.String()).To(Equal("Copying: Files: 1 / 2 | GB: 0.000 / 0.000 | 50.00%\nCopying: Completed\n"))
}
