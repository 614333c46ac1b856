package config

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Gomega convention
	"github.com/spf13/pflag"

	"robosync/internal/domain"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	var cfg Config
	fs := pflag.NewFlagSet("robosync", pflag.ContinueOnError)
	Register(fs, &cfg)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	err := Resolve(&cfg, fs, fs.Args())
	return cfg, err
}

func TestDefaults(t *testing.T) {
	g := NewWithT(t)

	cfg, err := parse(t)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.ReportIntervalMs).To(Equal(1000))
	g.Expect(cfg.InterPacketDelayMs).To(BeZero())
	g.Expect(cfg.Tool).To(Equal("robocopy"))
	g.Expect(cfg.Selected()).To(BeFalse())
}

func TestPositionalArgs(t *testing.T) {
	g := NewWithT(t)

	cfg, err := parse(t, "/data/photos", "/backup", "--ipg", "25", "-v")

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Selected()).To(BeTrue())
	g.Expect(cfg.Job()).To(Equal(domainJob("/data/photos", "/backup", 25, 1000)))
	g.Expect(cfg.Verbose).To(BeTrue())
}

func TestFlagsWinOverPositional(t *testing.T) {
	g := NewWithT(t)

	cfg, err := parse(t, "-s", "/flag/src", "/pos/src", "/pos/dst")

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.SourceDir).To(Equal("/flag/src"))
	g.Expect(cfg.TargetDir).To(Equal("/pos/dst"))
}

func TestEnvironmentFallback(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("ROBOSYNC_SOURCE", "/env/src")
	t.Setenv("ROBOSYNC_DEST", "/env/dst")
	t.Setenv("ROBOSYNC_INTERVAL", "250")
	t.Setenv("ROBOSYNC_TOOL", "/opt/bin/robocopy")
	t.Setenv("ROBOSYNC_VERBOSE", "yes")

	cfg, err := parse(t)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.SourceDir).To(Equal("/env/src"))
	g.Expect(cfg.TargetDir).To(Equal("/env/dst"))
	g.Expect(cfg.ReportIntervalMs).To(Equal(250))
	g.Expect(cfg.Tool).To(Equal("/opt/bin/robocopy"))
	g.Expect(cfg.Verbose).To(BeTrue())
}

func TestExplicitFlagBeatsEnvironment(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("ROBOSYNC_INTERVAL", "250")

	cfg, err := parse(t, "--interval", "500")

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.ReportIntervalMs).To(Equal(500))
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "zero interval", args: []string{"--interval", "0"}},
		{name: "negative ipg", args: []string{"--ipg", "-1"}},
		{name: "negative settle", args: []string{"--settle", "-5"}},
		{name: "empty tool", args: []string{"--tool", " "}},
		{name: "too many args", args: []string{"a", "b", "c"}},
		{name: "bad env interval", env: map[string]string{"ROBOSYNC_INTERVAL": "fast"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := parse(t, tt.args...)

			g.Expect(err).To(HaveOccurred())
		})
	}
}

func domainJob(src, dst string, ipg, interval int) domain.CopyJob {
	return domain.CopyJob{Source: src, DestinationRoot: dst, InterPacketDelayMs: ipg, ReportIntervalMs: interval}
}
