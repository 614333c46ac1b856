package app

import "time"

// RealTimeProvider implements TimeProvider using real time functions.
type RealTimeProvider struct{}

func (RealTimeProvider) NewTicker(d time.Duration) Ticker {
	return &realTicker{ticker: time.NewTicker(d)}
}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

type realTicker struct {
	ticker *time.Ticker
}

func (r *realTicker) C() <-chan time.Time {
	return r.ticker.C
}

func (r *realTicker) Stop() {
	r.ticker.Stop()
}
