package engine

import "time"

// Pacer spaces calls to Wait at a fixed rate. The first call returns at once;
// each later call sleeps until one interval has passed since the previous
// frame boundary. A frame that overruns does not cause a burst of catch-up
// frames.
type Pacer struct {
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer creates a pacer on the wall clock.
func NewPacer() *Pacer {
	return &Pacer{now: time.Now, sleep: time.Sleep}
}

// Interval returns the frame duration for a rate in ticks per second.
func Interval(rateHz int) time.Duration {
	if rateHz <= 0 {
		return 0
	}
	return time.Second / time.Duration(rateHz)
}

// Wait blocks until the next frame boundary and returns the time spent waiting.
func (p *Pacer) Wait(rateHz int) time.Duration {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
		return 0
	}

	target := p.last.Add(Interval(rateHz))
	if !now.Before(target) {
		p.last = now
		return 0
	}

	d := target.Sub(now)
	p.sleep(d)
	p.last = target
	return d
}

// Reset forgets the previous frame boundary.
func (p *Pacer) Reset() {
	p.last = time.Time{}
}
