package engine

import (
	"testing"
	"time"
)

// fakeClock is a manual clock for pacing tests.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func newFakePacer(c *fakeClock) *Pacer {
	return &Pacer{now: c.Now, sleep: c.Sleep}
}

func TestInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{10, 100 * time.Millisecond},
		{60, time.Second / 60},
		{1, time.Second},
		{0, 0},
		{-5, 0},
	}

	for _, tc := range tests {
		if got := Interval(tc.rate); got != tc.expected {
			t.Errorf("Interval(%d) = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}

func TestPacerFirstWaitReturnsImmediately(t *testing.T) {
	c := &fakeClock{now: time.Unix(1000, 0)}
	p := newFakePacer(c)

	if d := p.Wait(10); d != 0 {
		t.Errorf("first Wait() = %v, expected 0", d)
	}
	if len(c.slept) != 0 {
		t.Errorf("first Wait() slept %v", c.slept)
	}
}

func TestPacerHoldsRate(t *testing.T) {
	c := &fakeClock{now: time.Unix(1000, 0)}
	p := newFakePacer(c)
	p.Wait(10)

	// 30ms of work, then wait: should sleep the remaining 70ms
	c.now = c.now.Add(30 * time.Millisecond)
	if d := p.Wait(10); d != 70*time.Millisecond {
		t.Errorf("Wait() = %v, expected 70ms", d)
	}

	// No work: a full interval
	if d := p.Wait(10); d != 100*time.Millisecond {
		t.Errorf("Wait() = %v, expected 100ms", d)
	}
}

func TestPacerOverrunDoesNotBurst(t *testing.T) {
	c := &fakeClock{now: time.Unix(1000, 0)}
	p := newFakePacer(c)
	p.Wait(10)

	// A slow frame overruns by 250ms
	c.now = c.now.Add(350 * time.Millisecond)
	if d := p.Wait(10); d != 0 {
		t.Errorf("Wait() after overrun = %v, expected 0", d)
	}
	// The next frame is paced from the late boundary, not caught up
	if d := p.Wait(10); d != 100*time.Millisecond {
		t.Errorf("Wait() = %v, expected 100ms", d)
	}
}

func TestPacerReset(t *testing.T) {
	c := &fakeClock{now: time.Unix(1000, 0)}
	p := newFakePacer(c)
	p.Wait(10)
	p.Reset()

	if d := p.Wait(10); d != 0 {
		t.Errorf("Wait() after Reset = %v, expected 0", d)
	}
}
