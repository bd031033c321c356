package anim

import "time"

type segment struct {
	start  time.Duration
	end    time.Duration
	tweens []*tween
}

// Timeline sequences groups of tweens on a shared clock. Segments may
// overlap; where two running segments write the same field, the one added
// later wins for that frame.
type Timeline struct {
	segments []*segment
	end      time.Duration
	elapsed  time.Duration
	repeat   bool
	cycles   int
}

// NewTimeline creates an empty timeline. With repeat set the timeline
// restarts from the beginning each time it reaches its end.
func NewTimeline(repeat bool) *Timeline {
	return &Timeline{repeat: repeat}
}

// Append adds a segment that starts offset after the current end of the
// timeline. A negative offset overlaps the previous segment. The first
// segment always starts at zero.
func (tl *Timeline) Append(offset time.Duration, props ...Property) {
	start := tl.end + offset
	if len(tl.segments) == 0 || start < 0 {
		start = 0
	}
	seg := &segment{start: start, end: start}
	for _, p := range props {
		if p.Value == nil {
			continue
		}
		seg.tweens = append(seg.tweens, newTween(p))
		if e := start + p.Duration; e > seg.end {
			seg.end = e
		}
	}
	tl.segments = append(tl.segments, seg)
	if seg.end > tl.end {
		tl.end = seg.end
	}
}

// Duration is the length of one pass.
func (tl *Timeline) Duration() time.Duration {
	return tl.end
}

// Len returns the number of segments.
func (tl *Timeline) Len() int {
	return len(tl.segments)
}

// Elapsed returns the time into the current pass.
func (tl *Timeline) Elapsed() time.Duration {
	return tl.elapsed
}

// Cycles returns the number of completed passes.
func (tl *Timeline) Cycles() int {
	return tl.cycles
}

func (tl *Timeline) fields() []*float64 {
	seen := make(map[*float64]struct{})
	var out []*float64
	for _, seg := range tl.segments {
		for _, tw := range seg.tweens {
			if _, ok := seen[tw.prop.Value]; ok {
				continue
			}
			seen[tw.prop.Value] = struct{}{}
			out = append(out, tw.prop.Value)
		}
	}
	return out
}

func (tl *Timeline) advance(dt time.Duration) bool {
	tl.elapsed += dt
	for _, seg := range tl.segments {
		if tl.elapsed < seg.start {
			continue
		}
		local := tl.elapsed - seg.start
		for _, tw := range seg.tweens {
			// Finished tweens stop writing so a later overlapping
			// segment keeps control of the field.
			if tw.finished {
				continue
			}
			tw.seek(local)
		}
	}
	if tl.elapsed < tl.end {
		return false
	}
	tl.cycles++
	if !tl.repeat || tl.end <= 0 {
		return true
	}
	tl.elapsed -= tl.end
	for _, seg := range tl.segments {
		for _, tw := range seg.tweens {
			tw.reset()
		}
	}
	return false
}
