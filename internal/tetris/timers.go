package tetris

import "time"

// intervalTimer accumulates elapsed time and reports how many whole
// intervals have passed. All engine timing is expressed in real durations
// rather than frame counts, so behavior is independent of the caller's tick
// rate.
type intervalTimer struct {
	acc time.Duration
}

// advance adds elapsed time and returns the number of complete intervals
// consumed. Interval may change between calls (gravity speeds up on level
// up); the remainder carries over.
func (t *intervalTimer) advance(elapsed, interval time.Duration) int {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	t.acc += elapsed
	steps := 0
	for t.acc >= interval {
		t.acc -= interval
		steps++
	}
	return steps
}

// reset discards any accumulated time.
func (t *intervalTimer) reset() {
	t.acc = 0
}

// repeatTimer implements delayed auto shift (DAS) for a held input: after an
// initial delay the action repeats at a fixed interval until release. The
// immediate move on the initial press is the caller's job; the timer only
// produces the held repeats.
type repeatTimer struct {
	delay    time.Duration
	interval time.Duration

	held      bool
	repeating bool
	acc       time.Duration
}

// press marks the input held and restarts the initial delay.
func (t *repeatTimer) press() {
	t.held = true
	t.repeating = false
	t.acc = 0
}

// release clears the hold state.
func (t *repeatTimer) release() {
	t.held = false
	t.repeating = false
	t.acc = 0
}

// advance adds elapsed time and returns how many repeats fire during it.
// Returns 0 while the input is not held or the initial delay has not passed.
func (t *repeatTimer) advance(elapsed time.Duration) int {
	if !t.held {
		return 0
	}
	t.acc += elapsed

	fires := 0
	if !t.repeating {
		if t.acc < t.delay {
			return 0
		}
		t.acc -= t.delay
		t.repeating = true
		fires++
	}
	if t.interval <= 0 {
		return fires
	}
	for t.acc >= t.interval {
		t.acc -= t.interval
		fires++
	}
	return fires
}
