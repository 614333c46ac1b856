package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Sink forwards progress updates to a bubbletea program. The program starts on
// the first update so earlier console output is not interleaved with it.
type Sink struct {
	program *tea.Program
	start   sync.Once
	done    chan struct{}
	err     error
}

func NewSink(cfg Config, opts ...tea.ProgramOption) *Sink {
	return &Sink{
		program: tea.NewProgram(NewModel(cfg), opts...),
		done:    make(chan struct{}),
	}
}

func (s *Sink) Update(label, status string, percent float64) {
	s.ensureStarted()
	s.program.Send(UpdateMsg{Label: label, Status: status, Percent: percent})
}

// Complete shows the final state and waits for the program to exit.
func (s *Sink) Complete(label, status string) {
	s.ensureStarted()
	s.program.Send(CompleteMsg{Label: label, Status: status})
	<-s.done
}

// Err reports why the program stopped, if it failed.
func (s *Sink) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

func (s *Sink) ensureStarted() {
	s.start.Do(func() {
		go func() {
			defer close(s.done)
			_, s.err = s.program.Run()
		}()
	})
}
