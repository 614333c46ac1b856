package app

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"robosync/internal/domain"
)

// mockFS serves a sequence of contents per log path; each read advances one
// step and the last content repeats once the sequence is exhausted.
type mockFS struct {
	logs    map[string][]string
	reads   map[string]int
	readErr map[int]error
	mkdirs  []string
	mkdirFn func(path string) error
	tempDir string
}

func newMockFS() *mockFS {
	return &mockFS{
		logs:    map[string][]string{},
		reads:   map[string]int{},
		readErr: map[int]error{},
		tempDir: "/tmp",
	}
}

func (m *mockFS) ReadLog(path string) (string, error) {
	n := m.reads[path]
	m.reads[path] = n + 1
	if err, ok := m.readErr[n]; ok {
		return "", err
	}
	seq := m.logs[path]
	if len(seq) == 0 {
		return "", nil
	}
	if n >= len(seq) {
		n = len(seq) - 1
	}
	return seq[n], nil
}

func (m *mockFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mkdirs = append(m.mkdirs, path)
	if m.mkdirFn != nil {
		return m.mkdirFn(path)
	}
	return nil
}

func (m *mockFS) TempDir() string {
	return m.tempDir
}

type mockRunner struct {
	fs       *mockFS
	runs     []Invocation
	starts   []Invocation
	runErr   error
	startErr error
	// analysisLog is what a list-only run writes to its log.
	analysisLog string
	// transferLogs is the sequence of contents the live log shows per read.
	transferLogs []string
	proc         *mockProcess
}

func (m *mockRunner) Run(ctx context.Context, inv Invocation) error {
	m.runs = append(m.runs, inv)
	if m.runErr != nil {
		return m.runErr
	}
	if m.fs != nil {
		m.fs.logs[inv.LogPath] = []string{m.analysisLog}
	}
	return nil
}

func (m *mockRunner) Start(ctx context.Context, inv Invocation) (Process, error) {
	m.starts = append(m.starts, inv)
	if m.startErr != nil {
		return nil, m.startErr
	}
	if m.fs != nil {
		m.fs.logs[inv.LogPath] = m.transferLogs
	}
	if m.proc == nil {
		m.proc = &mockProcess{exitAfter: 1}
	}
	return m.proc, nil
}

// mockProcess reports exit on the exitAfter-th call to Exited.
type mockProcess struct {
	exitAfter int
	checks    int
	code      int
	killed    bool
	killErr   error
}

func (p *mockProcess) Exited() bool {
	p.checks++
	return p.exitAfter > 0 && p.checks >= p.exitAfter
}

func (p *mockProcess) ExitCode() int {
	if p.killed || p.exitAfter == 0 || p.checks < p.exitAfter {
		return -1
	}
	return p.code
}

func (p *mockProcess) Kill() error {
	p.killed = true
	return p.killErr
}

type mockTicker struct {
	ch      chan time.Time
	stopped bool
}

func (m *mockTicker) C() <-chan time.Time { return m.ch }
func (m *mockTicker) Stop()               { m.stopped = true }

// mockClock hands out a ticker preloaded with ticks.
type mockClock struct {
	now      time.Time
	ticks    int
	interval time.Duration
	ticker   *mockTicker
}

func (m *mockClock) Now() time.Time { return m.now }

func (m *mockClock) NewTicker(d time.Duration) Ticker {
	m.interval = d
	m.ticker = &mockTicker{ch: make(chan time.Time, m.ticks)}
	for i := 0; i < m.ticks; i++ {
		m.ticker.ch <- m.now.Add(time.Duration(i+1) * d)
	}
	return m.ticker
}

type sinkUpdate struct {
	label   string
	status  string
	percent float64
}

type recordingSink struct {
	updates   []sinkUpdate
	completes []string
}

func (s *recordingSink) Update(label, status string, percent float64) {
	s.updates = append(s.updates, sinkUpdate{label: label, status: status, percent: percent})
}

func (s *recordingSink) Complete(label, status string) {
	s.completes = append(s.completes, status)
}

type recordingReporter struct {
	totals    []domain.AnalysisResult
	summaries []domain.Report
}

func (r *recordingReporter) PrintTotals(job domain.CopyJob, analysis domain.AnalysisResult) {
	r.totals = append(r.totals, analysis)
}

func (r *recordingReporter) PrintSummary(report domain.Report) {
	r.summaries = append(r.summaries, report)
}

var errBoom = errors.New("boom")
