package animation

import (
	"math"
	"time"
)

const (
	stepperSteps    = 20
	stepperDuration = 500 * time.Millisecond
)

// Stepper tweens the calculator's displayed total toward a new target in
// fixed linear steps. Unlike the stat counters it starts from the previous
// displayed value, not zero, and uses no easing; the last step always lands
// exactly on the target.
type Stepper struct {
	value     float64
	target    int
	increment float64
	step      int
}

func NewStepper(current, target int) *Stepper {
	return &Stepper{
		value:     float64(current),
		target:    target,
		increment: float64(target-current) / stepperSteps,
	}
}

// Next advances one step and reports the value to display and whether the
// tween has settled.
func (s *Stepper) Next() (value int, done bool) {
	s.step++
	if s.step >= stepperSteps {
		s.value = float64(s.target)
		return s.target, true
	}

	s.value = math.Round(s.value + s.increment)
	return int(s.value), false
}

// Interval is the delay between steps.
func (s *Stepper) Interval() time.Duration {
	return stepperDuration / stepperSteps
}
