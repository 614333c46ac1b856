package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"robosync/internal/domain"
)

const envPrefix = "ROBOSYNC_"

type Config struct {
	SourceDir          string
	TargetDir          string
	InterPacketDelayMs int
	ReportIntervalMs   int
	SettleMs           int
	Tool               string
	Verbose            bool
	Plain              bool
}

// Register binds cfg to flags with their defaults.
func Register(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.SourceDir, "source", "s", "", "Source directory to copy")
	fs.StringVarP(&cfg.TargetDir, "dest", "d", "", "Destination root; the source folder is created inside it")
	fs.IntVar(&cfg.InterPacketDelayMs, "ipg", 0, "Inter-packet delay in milliseconds to throttle the copy")
	fs.IntVar(&cfg.ReportIntervalMs, "interval", 1000, "Progress report interval in milliseconds")
	fs.IntVar(&cfg.SettleMs, "settle", 100, "Delay in milliseconds before the first progress poll")
	fs.StringVar(&cfg.Tool, "tool", "robocopy", "Copy utility to run")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVar(&cfg.Plain, "plain", false, "Plain line progress instead of the interactive display")
}

// Resolve fills source and destination from positional args, applies
// environment fallbacks for flags that were not given, and validates.
// Missing source or destination is not an error here; see Selected.
func Resolve(cfg *Config, fs *pflag.FlagSet, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("expected at most <source> <dest>, got %d arguments", len(args))
	}
	if len(args) > 0 && cfg.SourceDir == "" {
		cfg.SourceDir = args[0]
	}
	if len(args) > 1 && cfg.TargetDir == "" {
		cfg.TargetDir = args[1]
	}

	if cfg.SourceDir == "" {
		cfg.SourceDir = envOrEmpty(envPrefix + "SOURCE")
	}
	if cfg.TargetDir == "" {
		cfg.TargetDir = envOrEmpty(envPrefix + "DEST")
	}
	if !cfg.Verbose {
		cfg.Verbose = envTruthy(envPrefix + "VERBOSE")
	}
	if !fs.Changed("tool") {
		if tool := envOrEmpty(envPrefix + "TOOL"); tool != "" {
			cfg.Tool = tool
		}
	}
	if err := envInt(fs, "ipg", envPrefix+"IPG", &cfg.InterPacketDelayMs); err != nil {
		return err
	}
	if err := envInt(fs, "interval", envPrefix+"INTERVAL", &cfg.ReportIntervalMs); err != nil {
		return err
	}

	if cfg.ReportIntervalMs <= 0 {
		return errors.New("interval must be a positive number of milliseconds")
	}
	if cfg.InterPacketDelayMs < 0 {
		return errors.New("ipg must not be negative")
	}
	if cfg.SettleMs < 0 {
		return errors.New("settle must not be negative")
	}
	if strings.TrimSpace(cfg.Tool) == "" {
		return errors.New("tool must not be empty")
	}
	return nil
}

// Selected reports whether both a source and a destination were chosen.
func (cfg Config) Selected() bool {
	return cfg.SourceDir != "" && cfg.TargetDir != ""
}

func (cfg Config) Job() domain.CopyJob {
	return domain.CopyJob{
		Source:             cfg.SourceDir,
		DestinationRoot:    cfg.TargetDir,
		InterPacketDelayMs: cfg.InterPacketDelayMs,
		ReportIntervalMs:   cfg.ReportIntervalMs,
	}
}

func (cfg Config) Settle() time.Duration {
	return time.Duration(cfg.SettleMs) * time.Millisecond
}

func envInt(fs *pflag.FlagSet, flag, key string, dst *int) error {
	if fs.Changed(flag) {
		return nil
	}
	raw := envOrEmpty(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q, use a whole number of milliseconds", key, raw)
	}
	*dst = value
	return nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
