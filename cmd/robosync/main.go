package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"robosync/internal/app"
	"robosync/internal/config"
	appErrors "robosync/internal/errors"
	"robosync/internal/infra/fs"
	"robosync/internal/infra/prompt"
	"robosync/internal/infra/robocopy"
	"robosync/internal/logging"
	"robosync/internal/presentation"
	"robosync/internal/tui"
)

const exitCancelled = 130

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		exitWithError(err)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:   "robosync [source] [dest]",
		Short: "Copy a directory tree with robocopy and show live progress",
		Long: "robosync sizes the source with a list-only robocopy run, then copies it into\n" +
			"<dest>/<source name> while estimating progress from robocopy's log.",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Resolve(&cfg, cmd.Flags(), args); err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	config.Register(cmd.Flags(), &cfg)
	return cmd
}

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	stdoutTTY := isTerminal(out)
	printer := presentation.Printer{
		Writer:        out,
		Verbose:       cfg.Verbose,
		FatalExitCode: robocopy.DefaultFatalExitCode,
	}

	if !cfg.Selected() && stdoutTTY && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := selectMissing(&cfg, out); err != nil {
			return appErrors.Wrap(appErrors.Internal, "prompt", "", err)
		}
	}
	if !cfg.Selected() {
		printer.PrintNoSelection()
		return nil
	}

	filesystem := fs.OSFS{}
	if exists, err := filesystem.Exists(cfg.SourceDir); err != nil || !exists {
		if err == nil {
			err = os.ErrNotExist
		}
		return appErrors.Wrap(appErrors.NotFound, "stat", cfg.SourceDir, err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := logging.New(out, cfg.Verbose)
	runner := robocopy.Runner{Binary: cfg.Tool, Logger: logger}

	var sink app.ProgressSink = presentation.ProgressLines{Writer: out}
	if stdoutTTY && !cfg.Plain {
		sink = tui.NewSink(tui.Config{
			SourceDir: cfg.SourceDir,
			TargetDir: cfg.TargetDir,
			Cancel:    cancel,
		})
	}

	clock := app.RealTimeProvider{}
	orchestrator := app.Orchestrator{
		Analyzer: &app.Analyzer{Runner: runner, FS: filesystem, Logger: logger},
		Transferrer: &app.Transferrer{
			Runner: runner,
			FS:     filesystem,
			Clock:  clock,
			Logger: logger,
			Settle: cfg.Settle(),
		},
		Monitor: &app.Monitor{
			FS:     filesystem,
			Sink:   sink,
			Clock:  clock,
			Logger: logger,
			Label:  "Copying",
		},
		Reporter: printer,
		Logger:   logger,
	}

	_, err := orchestrator.Run(ctx, cfg.Job())
	return err
}

func selectMissing(cfg *config.Config, out io.Writer) error {
	selector := prompt.NewLineSelector(os.Stdin, out)
	if cfg.SourceDir == "" {
		path, err := selector.SelectFolder("Source folder")
		if err != nil {
			return err
		}
		cfg.SourceDir = path
	}
	if cfg.SourceDir != "" && cfg.TargetDir == "" {
		path, err := selector.SelectFolder("Destination folder")
		if err != nil {
			return err
		}
		cfg.TargetDir = path
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
	if errors.Is(err, context.Canceled) || appErrors.KindOf(err) == appErrors.Cancelled {
		os.Exit(exitCancelled)
	}
	os.Exit(1)
}
