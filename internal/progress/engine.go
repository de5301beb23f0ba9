package progress

import (
	"math"
	"time"
)

// WeightPercent derives completion from absolute distance traveled between
// start and goal. Moving past (or away from) the goal still counts distance,
// so the raw figure can overshoot before the clamp; the clamp is the contract,
// not a symptom to fix.
func (r Record) WeightPercent() int {
	if r.StartWeight == 0 || r.GoalWeight == 0 {
		return 0
	}

	total := math.Abs(r.StartWeight - r.GoalWeight)
	if total == 0 {
		// Goal equals start: any recorded movement is full progress.
		if r.CurrentWeight != r.StartWeight {
			return 100
		}
		return 0
	}

	traveled := math.Abs(r.StartWeight - r.CurrentWeight)
	return clampPercent(int(math.Round(traveled / total * 100)))
}

// WorkoutPercent derives completion against the monthly workout goal.
func (r Record) WorkoutPercent() int {
	if r.WorkoutGoal <= 0 {
		return 0
	}
	return clampPercent(int(math.Round(float64(r.WorkoutsLogged) / float64(r.WorkoutGoal) * 100)))
}

// WeightDelta is the absolute kilograms moved since the start.
func (r Record) WeightDelta() float64 {
	return math.Abs(r.StartWeight - r.CurrentWeight)
}

// SetGoals starts (or restarts) tracking with the given weights.
func SetGoals(r Record, start, current, goal float64, now time.Time) Record {
	r.StartWeight = start
	r.CurrentWeight = current
	r.GoalWeight = goal
	r.LastUpdated = now.Format(time.RFC3339)
	return r
}

// UpdateWeight records a new current weight.
func UpdateWeight(r Record, weight float64, now time.Time) Record {
	r.CurrentWeight = weight
	r.LastUpdated = now.Format(time.RFC3339)
	return r
}

// LogWorkout increments the workout count and advances the streak by calendar
// day in now's time zone: a log the day after the last one extends the streak,
// a log after a gap restarts it at 1, and further logs on the same day leave
// it untouched while the count still grows.
func LogWorkout(r Record, now time.Time) Record {
	last, ok := r.lastUpdatedTime()

	switch {
	case ok && sameDay(last.In(now.Location()), now.AddDate(0, 0, -1)):
		r.Streak++
	case !ok || !sameDay(last.In(now.Location()), now):
		r.Streak = 1
	}

	r.WorkoutsLogged++
	r.LastUpdated = now.Format(time.RFC3339)
	return r
}

// Reset returns the record to its uninitialized state, which sends the widget
// back to goal-setting.
func Reset() Record {
	return DefaultRecord()
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
