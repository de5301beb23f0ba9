// Package catalog holds the static membership, service and schedule data for
// the Pathan Fitness site. Everything here is immutable at runtime; widgets
// reference entries by ID and must tolerate unknown IDs gracefully.
package catalog

// Plan is a membership tier. Prices are whole rupees.
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	MonthlyPrice int      `json:"monthly_price"`
	YearlyPrice  int      `json:"yearly_price"`
	Features     []string `json:"features"`
	Popular      bool     `json:"popular,omitempty"`
}

// AddOn is an optional extra priced per month. Add-ons have no discounted
// yearly rate.
type AddOn struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// TrialService is a bookable free-trial session type.
type TrialService struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

var Plans = []Plan{
	{
		ID:           "basic",
		Name:         "Basic",
		MonthlyPrice: 1499,
		YearlyPrice:  14990,
		Features:     []string{"Gym access (6 AM - 10 PM)", "Basic equipment", "Locker room access", "Free fitness assessment"},
	},
	{
		ID:           "premium",
		Name:         "Premium",
		MonthlyPrice: 2999,
		YearlyPrice:  29990,
		Features:     []string{"24/7 gym access", "All equipment", "Group classes included", "Sauna & steam room", "1 PT session/month"},
		Popular:      true,
	},
	{
		ID:           "elite",
		Name:         "Elite",
		MonthlyPrice: 4999,
		YearlyPrice:  49990,
		Features:     []string{"Everything in Premium", "Unlimited PT sessions", "Personalized meal plans", "Priority booking", "Guest passes (4/month)"},
	},
}

var AddOns = []AddOn{
	{ID: "pt-pack", Name: "PT Session Pack (4)", Price: 3999, Description: "4 personal training sessions"},
	{ID: "nutrition", Name: "Nutrition Coaching", Price: 1499, Description: "Monthly diet consultation"},
	{ID: "locker", Name: "Private Locker", Price: 499, Description: "Dedicated locker with key"},
}

var TrialServices = []TrialService{
	{ID: "personal-training", Name: "Personal Training Session", Duration: "60 min"},
	{ID: "yoga", Name: "Yoga Class", Duration: "45 min"},
	{ID: "weight-training", Name: "Weight Training", Duration: "60 min"},
	{ID: "core-training", Name: "Core Training", Duration: "45 min"},
}

// BookingServices are the options on the full booking form.
var BookingServices = []string{
	"Personal Training Session",
	"Yoga Class",
	"Weight Lifting Class",
	"Flexibility Training",
	"Core Training",
	"Free Consultation",
}

// TrialTimeSlots are the slots offered on the trial form.
var TrialTimeSlots = []string{
	"6:00 AM", "7:00 AM", "8:00 AM", "9:00 AM", "10:00 AM",
	"5:00 PM", "6:00 PM", "7:00 PM", "8:00 PM",
}

// BookingTimeSlots are the hourly slots offered on the full booking form.
var BookingTimeSlots = []string{
	"6:00 AM", "7:00 AM", "8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM",
	"12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
	"6:00 PM", "7:00 PM", "8:00 PM", "9:00 PM", "10:00 PM", "11:00 PM",
}

// PlanByID returns nil for unknown IDs; callers treat that as "no selection".
func PlanByID(id string) *Plan {
	for i := range Plans {
		if Plans[i].ID == id {
			return &Plans[i]
		}
	}
	return nil
}

// AddOnByID returns nil for unknown IDs; unknown add-ons are ignored in sums.
func AddOnByID(id string) *AddOn {
	for i := range AddOns {
		if AddOns[i].ID == id {
			return &AddOns[i]
		}
	}
	return nil
}

func TrialServiceByID(id string) *TrialService {
	for i := range TrialServices {
		if TrialServices[i].ID == id {
			return &TrialServices[i]
		}
	}
	return nil
}
