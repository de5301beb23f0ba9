package pricing

import (
	"testing"

	"github.com/Faisal-badshah/pathan-fitness/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMonthly(t *testing.T) {
	q := Calculate(Selection{PlanID: "basic", Cycle: CycleMonthly})
	assert.Equal(t, 1499, q.Base)
	assert.Equal(t, 0, q.AddOns)
	assert.Equal(t, 1499, q.Total)
	assert.Zero(t, q.Savings)
}

func TestCalculateMonthlyWithAddOns(t *testing.T) {
	q := Calculate(Selection{
		PlanID:   "premium",
		Cycle:    CycleMonthly,
		AddOnIDs: []string{"pt-pack", "locker"},
	})
	assert.Equal(t, 2999, q.Base)
	assert.Equal(t, 3999+499, q.AddOns)
	assert.Equal(t, 2999+3999+499, q.Total)
	assert.Zero(t, q.Savings, "savings only apply to yearly billing")
}

func TestCalculateYearlyWithAddOn(t *testing.T) {
	// premium yearly + pt-pack: total bills the add-on at full monthly rate
	// times 12, while savings credits a 10% figure never applied to the total.
	q := Calculate(Selection{
		PlanID:   "premium",
		Cycle:    CycleYearly,
		AddOnIDs: []string{"pt-pack"},
	})
	assert.Equal(t, 29990, q.Base)
	assert.Equal(t, 12*3999, q.AddOns)
	assert.Equal(t, 77978, q.Total)
	assert.InDelta(t, 10796.8, q.Savings, 0.001)
	assert.Equal(t, 10797, q.DisplaySavings())
}

func TestCalculateYearlyTotalsForAllPlans(t *testing.T) {
	for _, plan := range catalog.Plans {
		q := Calculate(Selection{PlanID: plan.ID, Cycle: CycleYearly})
		assert.Equal(t, plan.YearlyPrice, q.Total, plan.ID)
		assert.Greater(t, q.Savings, 0.0, plan.ID)
	}
}

func TestCalculateUnknownPlan(t *testing.T) {
	q := Calculate(Selection{PlanID: "platinum", Cycle: CycleYearly, AddOnIDs: []string{"pt-pack"}})
	assert.Equal(t, Quote{}, q)
}

func TestCalculateIgnoresUnknownAddOns(t *testing.T) {
	q := Calculate(Selection{
		PlanID:   "basic",
		Cycle:    CycleMonthly,
		AddOnIDs: []string{"spa", "nutrition", "helicopter"},
	})
	assert.Equal(t, 1499+1499, q.Total)
}
