package animation

import (
	"fmt"
	"strconv"
	"time"
)

// FormatCompact abbreviates large stat values for display: millions to one
// decimal with an M, thousands to a whole K.
func FormatCompact(n int) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	}
	if n >= 1000 {
		return fmt.Sprintf("%.0fK", float64(n)/1000)
	}
	return strconv.Itoa(n)
}

// Stat is one home-page headline number.
type Stat struct {
	Value    int
	Suffix   string
	Label    string
	Duration time.Duration
}

var Stats = []Stat{
	{Value: 5000, Suffix: "+", Label: "Happy Members", Duration: 2000 * time.Millisecond},
	{Value: 1200000, Suffix: "+", Label: "Kg Lifted This Year", Duration: 2500 * time.Millisecond},
	{Value: 25, Suffix: "", Label: "Years of Excellence", Duration: 1500 * time.Millisecond},
	{Value: 150, Suffix: "+", Label: "Transformations", Duration: 1800 * time.Millisecond},
}
