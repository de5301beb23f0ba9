package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runStepper(s *Stepper) []int {
	var values []int
	for {
		v, done := s.Next()
		values = append(values, v)
		if done {
			return values
		}
	}
}

func TestStepperSettlesExactlyOnTarget(t *testing.T) {
	s := NewStepper(0, 77978)
	values := runStepper(s)

	require.Len(t, values, 20)
	assert.Equal(t, 77978, values[len(values)-1])
}

func TestStepperStartsFromPreviousValue(t *testing.T) {
	s := NewStepper(1499, 2999)
	values := runStepper(s)

	assert.Greater(t, values[0], 1499)
	assert.Equal(t, 2999, values[len(values)-1])
}

func TestStepperDecreasingTarget(t *testing.T) {
	s := NewStepper(4999, 1499)
	values := runStepper(s)

	assert.Less(t, values[0], 4999)
	assert.Equal(t, 1499, values[len(values)-1])
}

func TestStepperNoChange(t *testing.T) {
	s := NewStepper(2999, 2999)
	values := runStepper(s)

	for _, v := range values {
		assert.Equal(t, 2999, v)
	}
}

func TestStepperInterval(t *testing.T) {
	s := NewStepper(0, 100)
	assert.Equal(t, 25*time.Millisecond, s.Interval())
}

func TestFormatCompact(t *testing.T) {
	assert.Equal(t, "25", FormatCompact(25))
	assert.Equal(t, "5K", FormatCompact(5000))
	assert.Equal(t, "150", FormatCompact(150))
	assert.Equal(t, "1.2M", FormatCompact(1200000))
}

func TestStatsCatalog(t *testing.T) {
	require.Len(t, Stats, 4)
	assert.Equal(t, 5000, Stats[0].Value)
	assert.Equal(t, 2*time.Second, Stats[0].Duration)
}
