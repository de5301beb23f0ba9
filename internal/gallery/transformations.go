package gallery

// Transformation is one before/after story in the gallery carousel.
type Transformation struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Duration    string `json:"duration"`
	WeightLost  string `json:"weight_lost"`
	Testimonial string `json:"testimonial"`
	BeforeDesc  string `json:"before_desc"`
	AfterDesc   string `json:"after_desc"`
}

var Transformations = []Transformation{
	{
		ID:          1,
		Name:        "Rahul Sharma",
		Age:         32,
		Duration:    "6 months",
		WeightLost:  "18 kg",
		Testimonial: "The trainers at Pathan Fitness changed my life. I never thought I could achieve this!",
		BeforeDesc:  "Before: 98 kg",
		AfterDesc:   "After: 80 kg",
	},
	{
		ID:          2,
		Name:        "Priya Patel",
		Age:         28,
		Duration:    "4 months",
		WeightLost:  "12 kg",
		Testimonial: "The personalized nutrition plan combined with expert training made all the difference.",
		BeforeDesc:  "Before: 75 kg",
		AfterDesc:   "After: 63 kg",
	},
	{
		ID:          3,
		Name:        "Vikram Singh",
		Age:         45,
		Duration:    "8 months",
		WeightLost:  "25 kg",
		Testimonial: "At 45, I'm in the best shape of my life. Age is just a number at Pathan Fitness!",
		BeforeDesc:  "Before: 105 kg",
		AfterDesc:   "After: 80 kg",
	},
	{
		ID:          4,
		Name:        "Anjali Verma",
		Age:         35,
		Duration:    "5 months",
		WeightLost:  "15 kg",
		Testimonial: "The supportive community here kept me motivated throughout my journey.",
		BeforeDesc:  "Before: 82 kg",
		AfterDesc:   "After: 67 kg",
	},
}

// DefaultSliderPosition is where the reveal handle starts, mid-container.
const DefaultSliderPosition = 50.0
