package progress

import "time"

// DefaultWorkoutGoal is the monthly workout target a fresh record starts with.
const DefaultWorkoutGoal = 20

// Record is the persisted progress snapshot. Weights are kilograms.
// LastUpdated is an RFC 3339 instant, or empty when nothing was ever logged.
// A record is "started" once StartWeight is non-zero and keeps persisting
// until an explicit reset.
type Record struct {
	StartWeight    float64 `json:"startWeight"`
	CurrentWeight  float64 `json:"currentWeight"`
	GoalWeight     float64 `json:"goalWeight"`
	WorkoutsLogged int     `json:"workoutsLogged"`
	WorkoutGoal    int     `json:"workoutGoal"`
	Streak         int     `json:"streak"`
	LastUpdated    string  `json:"lastUpdated"`
}

func DefaultRecord() Record {
	return Record{WorkoutGoal: DefaultWorkoutGoal}
}

func (r Record) Started() bool {
	return r.StartWeight != 0
}

// lastUpdatedTime parses LastUpdated, reporting false when empty or invalid.
func (r Record) lastUpdatedTime() (time.Time, bool) {
	if r.LastUpdated == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, r.LastUpdated)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
