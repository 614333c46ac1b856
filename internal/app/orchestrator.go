package app

import (
	"context"
	"errors"

	"robosync/internal/domain"
	appErrors "robosync/internal/errors"
	"robosync/internal/logging"
)

// Orchestrator runs analysis, transfer, monitoring and the summary in sequence.
type Orchestrator struct {
	Analyzer    *Analyzer
	Transferrer *Transferrer
	Monitor     *Monitor
	Reporter    Reporter
	Logger      logging.Logger
}

// Run copies job.Source into the destination root. A cancelled run still
// prints a summary and returns its report alongside the Cancelled error.
func (o *Orchestrator) Run(ctx context.Context, job domain.CopyJob) (domain.Report, error) {
	if o.Analyzer == nil || o.Transferrer == nil || o.Monitor == nil || o.Reporter == nil {
		return domain.Report{}, errors.New("orchestrator requires Analyzer, Transferrer, Monitor and Reporter")
	}

	if err := o.Monitor.Validate(job.ReportInterval()); err != nil {
		return domain.Report{}, appErrors.Wrap(appErrors.InvalidConfig, "monitor", job.Source, err)
	}

	report := domain.Report{Job: job, ExitCode: -1}

	o.Logger.Banner("Analyzing")
	o.Logger.Infof("Analyzing %s", job.Source)
	analysis, err := o.Analyzer.Analyze(ctx, job)
	if err != nil {
		return report, err
	}
	report.Analysis = analysis
	o.Reporter.PrintTotals(job, analysis)

	o.Logger.Banner("Copying")
	o.Logger.Infof("Copying %s to %s", job.Source, job.EffectiveDestination())
	logPath, proc, err := o.Transferrer.Start(ctx, job)
	if err != nil {
		return report, err
	}
	report.LogPath = logPath

	final, err := o.Monitor.Watch(ctx, proc, logPath, job.ReportInterval(), analysis)
	report.Final = final
	if err != nil {
		if appErrors.KindOf(err) == appErrors.Cancelled {
			report.Outcome = domain.OutcomeCancelled
			o.Reporter.PrintSummary(report)
			return report, err
		}
		if killErr := proc.Kill(); killErr != nil {
			o.Logger.Verbosef("Kill copy process: %v", killErr)
		}
		return report, err
	}

	report.ExitCode = proc.ExitCode()
	report.Outcome = domain.Classify(final, analysis)
	o.Logger.Verbosef("Outcome %s: %d files, %d bytes, exit code %d", report.Outcome, final.FilesCopied, final.BytesCopied, report.ExitCode)

	o.Reporter.PrintSummary(report)
	return report, nil
}
