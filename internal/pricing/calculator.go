// Package pricing implements the membership cost calculator.
package pricing

import (
	"math"

	"github.com/Faisal-badshah/pathan-fitness/internal/catalog"
)

type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
)

// Selection is the calculator's input state: a plan, a billing cycle, and a
// set of add-on IDs. It lives only for the session and is never persisted.
type Selection struct {
	PlanID   string       `json:"plan_id"`
	Cycle    BillingCycle `json:"cycle"`
	AddOnIDs []string     `json:"add_on_ids"`
}

// Quote is the derived price breakdown. Amounts are whole rupees except
// Savings, which carries the fractional add-on credit and is rounded only
// for display.
//
// Savings counts a notional 10% yearly credit on add-ons even though add-ons
// are billed at full price in Total. The mismatch is intentional: it is the
// advertised figure, kept pending product clarification.
type Quote struct {
	Base    int     `json:"base"`
	AddOns  int     `json:"add_ons"`
	Total   int     `json:"total"`
	Savings float64 `json:"savings"`
}

// Calculate derives the quote for a selection. An unknown plan yields a zero
// quote ("no selection"); unknown add-on IDs contribute nothing.
func Calculate(sel Selection) Quote {
	plan := catalog.PlanByID(sel.PlanID)
	if plan == nil {
		return Quote{}
	}

	yearly := sel.Cycle == CycleYearly

	base := plan.MonthlyPrice
	if yearly {
		base = plan.YearlyPrice
	}

	addOnsMonthly := 0
	for _, id := range sel.AddOnIDs {
		if addOn := catalog.AddOnByID(id); addOn != nil {
			addOnsMonthly += addOn.Price
		}
	}

	addOns := addOnsMonthly
	if yearly {
		addOns = addOnsMonthly * 12
	}

	q := Quote{
		Base:   base,
		AddOns: addOns,
		Total:  base + addOns,
	}

	if yearly {
		q.Savings = float64(plan.MonthlyPrice*12-plan.YearlyPrice) +
			float64(addOnsMonthly)*12*0.1
	}

	return q
}

// DisplaySavings is the rounded figure shown next to the total.
func (q Quote) DisplaySavings() int {
	return int(math.Round(q.Savings))
}
