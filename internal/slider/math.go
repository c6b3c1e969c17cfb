package slider

import "math"

// State is the slider model.
//
// Invariants: Min < Max, Step > 0, Min <= Value <= Max, Value is a
// multiple of Step offset from Min, rounded to two decimals.
type State struct {
	Min      float64
	Max      float64
	Step     float64
	Value    float64
	Dragging bool
}

const (
	defaultMin  = 0
	defaultMax  = 360
	defaultStep = 1
)

// Sanitize applies the construction-time repairs: NaN fields fall back to
// zero (min) and the defaults, max <= min becomes min+10, a non-positive
// step becomes 0.1, and an out-of-range value resets to min.
func Sanitize(minV, maxV, step, value float64) State {
	if math.IsNaN(minV) {
		minV = 0
	}
	if math.IsNaN(maxV) {
		maxV = 0
	}
	if maxV <= minV {
		maxV = minV + 10
	}
	if math.IsNaN(step) || step <= 0 {
		step = 0.1
	}
	if math.IsNaN(value) || value < minV || value > maxV {
		value = minV
	}
	s := State{Min: minV, Max: maxV, Step: step}
	s.Value = s.Align(value)
	return s
}

// Clamp limits v to [Min, Max].
func (s State) Clamp(v float64) float64 {
	return math.Max(s.Min, math.Min(s.Max, v))
}

// Align snaps v to the step grid anchored at Min, clamps it and rounds it
// to two decimals.
func (s State) Align(v float64) float64 {
	steps := math.Round((v - s.Min) / s.Step)
	return round2(s.Clamp(s.Min + steps*s.Step))
}

// ValueToPosition maps a value to a handle offset over span pixels, where
// span is the track width minus the handle width.
func (s State) ValueToPosition(v, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return math.Round((s.Clamp(v) - s.Min) / (s.Max - s.Min) * span)
}

// PositionToValue maps a handle offset to a step-aligned value. A
// non-positive span maps everything to Min.
func (s State) PositionToValue(p, span float64) float64 {
	if span <= 0 {
		return s.Min
	}
	p = math.Max(0, math.Min(span, p))
	return s.Align(s.Min + p/span*(s.Max-s.Min))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
