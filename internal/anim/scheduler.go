package anim

import "time"

// Timer is a pending delayed callback.
type Timer struct {
	at      time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// Stop prevents the callback from running. It reports whether the timer
// was still pending.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Pending reports whether the timer has neither fired nor been stopped.
func (t *Timer) Pending() bool {
	return t != nil && !t.stopped && !t.fired
}

// Scheduler runs delayed callbacks on the frame clock.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []*Timer
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the time accumulated through Update.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d has elapsed. A non-positive d runs fn
// on the next Update.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{at: s.now + d, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Pending returns the number of timers waiting to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if t.Pending() {
			n++
		}
	}
	return n
}

// StopAll stops every pending timer.
func (s *Scheduler) StopAll() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

// Update advances the clock and fires due timers in deadline order.
// Timers scheduled by a callback fire in the same call if already due.
func (s *Scheduler) Update(dt time.Duration) {
	s.now += dt
	for {
		next := s.nextDue()
		if next == nil {
			break
		}
		next.fired = true
		next.fn()
	}
	s.compact()
}

func (s *Scheduler) nextDue() *Timer {
	var best *Timer
	for _, t := range s.timers {
		if !t.Pending() || t.at > s.now {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if t.Pending() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}
