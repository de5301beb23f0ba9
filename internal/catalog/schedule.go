package catalog

// ClassCategory is the fixed set of class types used for schedule filtering.
type ClassCategory string

const (
	CategoryYoga          ClassCategory = "yoga"
	CategoryWeightLifting ClassCategory = "weight-lifting"
	CategoryCore          ClassCategory = "core"
	CategoryFlexibility   ClassCategory = "flexibility"
)

// ClassSession is one scheduled class in the weekly timetable. Spots is the
// advertised remaining capacity; it is static and does not decrement when a
// visitor reserves.
type ClassSession struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Category   ClassCategory `json:"category"`
	Instructor string        `json:"instructor"`
	Time       string        `json:"time"`
	Duration   string        `json:"duration"`
	Spots      int           `json:"spots"`
	MaxSpots   int           `json:"max_spots"`
	Room       string        `json:"room"`
}

type DaySchedule struct {
	Day     string         `json:"day"`
	Classes []ClassSession `json:"classes"`
}

var WeekSchedule = []DaySchedule{
	{
		Day: "Monday",
		Classes: []ClassSession{
			{ID: "mon-1", Name: "Morning Yoga", Category: CategoryYoga, Instructor: "Priya S.", Time: "6:00 AM", Duration: "60 min", Spots: 8, MaxSpots: 15, Room: "Studio A"},
			{ID: "mon-2", Name: "Power Lifting", Category: CategoryWeightLifting, Instructor: "Raj P.", Time: "7:30 AM", Duration: "75 min", Spots: 3, MaxSpots: 10, Room: "Weight Room"},
			{ID: "mon-3", Name: "Core Blast", Category: CategoryCore, Instructor: "Amit K.", Time: "6:00 PM", Duration: "45 min", Spots: 12, MaxSpots: 20, Room: "Studio B"},
		},
	},
	{
		Day: "Tuesday",
		Classes: []ClassSession{
			{ID: "tue-1", Name: "Flexibility Flow", Category: CategoryFlexibility, Instructor: "Priya S.", Time: "6:30 AM", Duration: "45 min", Spots: 10, MaxSpots: 15, Room: "Studio A"},
			{ID: "tue-2", Name: "Heavy Weights", Category: CategoryWeightLifting, Instructor: "Raj P.", Time: "5:30 PM", Duration: "90 min", Spots: 5, MaxSpots: 8, Room: "Weight Room"},
			{ID: "tue-3", Name: "Evening Yoga", Category: CategoryYoga, Instructor: "Meera J.", Time: "7:30 PM", Duration: "60 min", Spots: 6, MaxSpots: 15, Room: "Studio A"},
		},
	},
	{
		Day: "Wednesday",
		Classes: []ClassSession{
			{ID: "wed-1", Name: "Sunrise Yoga", Category: CategoryYoga, Instructor: "Priya S.", Time: "5:30 AM", Duration: "60 min", Spots: 11, MaxSpots: 15, Room: "Studio A"},
			{ID: "wed-2", Name: "Core & Strength", Category: CategoryCore, Instructor: "Amit K.", Time: "12:00 PM", Duration: "45 min", Spots: 15, MaxSpots: 20, Room: "Studio B"},
			{ID: "wed-3", Name: "Olympic Lifting", Category: CategoryWeightLifting, Instructor: "Raj P.", Time: "6:00 PM", Duration: "90 min", Spots: 2, MaxSpots: 6, Room: "Weight Room"},
		},
	},
	{
		Day: "Thursday",
		Classes: []ClassSession{
			{ID: "thu-1", Name: "Morning Stretch", Category: CategoryFlexibility, Instructor: "Meera J.", Time: "6:00 AM", Duration: "45 min", Spots: 9, MaxSpots: 15, Room: "Studio A"},
			{ID: "thu-2", Name: "Weight Training", Category: CategoryWeightLifting, Instructor: "Raj P.", Time: "7:00 AM", Duration: "75 min", Spots: 4, MaxSpots: 10, Room: "Weight Room"},
			{ID: "thu-3", Name: "Core Express", Category: CategoryCore, Instructor: "Amit K.", Time: "7:00 PM", Duration: "30 min", Spots: 18, MaxSpots: 25, Room: "Studio B"},
		},
	},
	{
		Day: "Friday",
		Classes: []ClassSession{
			{ID: "fri-1", Name: "Power Yoga", Category: CategoryYoga, Instructor: "Priya S.", Time: "6:00 AM", Duration: "75 min", Spots: 7, MaxSpots: 15, Room: "Studio A"},
			{ID: "fri-2", Name: "Full Body Weights", Category: CategoryWeightLifting, Instructor: "Raj P.", Time: "5:00 PM", Duration: "90 min", Spots: 1, MaxSpots: 8, Room: "Weight Room"},
			{ID: "fri-3", Name: "Flexibility & Core", Category: CategoryFlexibility, Instructor: "Meera J.", Time: "6:30 PM", Duration: "60 min", Spots: 13, MaxSpots: 20, Room: "Studio A"},
		},
	},
	{
		Day: "Saturday",
		Classes: []ClassSession{
			{ID: "sat-1", Name: "Weekend Yoga", Category: CategoryYoga, Instructor: "Priya S.", Time: "8:00 AM", Duration: "90 min", Spots: 5, MaxSpots: 20, Room: "Studio A"},
			{ID: "sat-2", Name: "Strength Training", Category: CategoryWeightLifting, Instructor: "Raj P.", Time: "10:00 AM", Duration: "75 min", Spots: 6, MaxSpots: 10, Room: "Weight Room"},
			{ID: "sat-3", Name: "Core Challenge", Category: CategoryCore, Instructor: "Amit K.", Time: "11:30 AM", Duration: "45 min", Spots: 14, MaxSpots: 20, Room: "Studio B"},
		},
	},
	{
		Day: "Sunday",
		Classes: []ClassSession{
			{ID: "sun-1", Name: "Restorative Yoga", Category: CategoryYoga, Instructor: "Meera J.", Time: "9:00 AM", Duration: "75 min", Spots: 10, MaxSpots: 15, Room: "Studio A"},
			{ID: "sun-2", Name: "Stretching Session", Category: CategoryFlexibility, Instructor: "Priya S.", Time: "11:00 AM", Duration: "45 min", Spots: 12, MaxSpots: 15, Room: "Studio A"},
		},
	},
}

// ClassByID searches the weekly schedule. Returns the session and its day.
func ClassByID(id string) (*ClassSession, string) {
	for d := range WeekSchedule {
		for c := range WeekSchedule[d].Classes {
			if WeekSchedule[d].Classes[c].ID == id {
				return &WeekSchedule[d].Classes[c], WeekSchedule[d].Day
			}
		}
	}
	return nil, ""
}

// FilterSchedule narrows each day to classes of the given category. An empty
// category (or "all") keeps everything. Days with no matching classes are
// kept with an empty list, mirroring the calendar's per-day rendering.
func FilterSchedule(category ClassCategory) []DaySchedule {
	if category == "" || category == "all" {
		return WeekSchedule
	}

	filtered := make([]DaySchedule, 0, len(WeekSchedule))
	for _, day := range WeekSchedule {
		out := DaySchedule{Day: day.Day}
		for _, c := range day.Classes {
			if c.Category == category {
				out.Classes = append(out.Classes, c)
			}
		}
		filtered = append(filtered, out)
	}
	return filtered
}
