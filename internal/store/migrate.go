package store

import (
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/models"
)

// migrate reconciles a persisted state with the current seed fixtures.
//
// Persisted financials win per-field over seed defaults, with three forced
// exceptions: transactions, offers, and nextPayDate always come from the
// seed. The fixture data is meant to reset on every load so the demo stays
// coherent; a system with real persisted transactions must not copy this.
func migrate(persisted models.UserState) models.UserState {
	seed := SeedState()

	out := persisted
	out.User = seed.User
	out.Agents = seed.Agents
	out.Transactions = seed.Transactions
	out.Offers = seed.Offers

	out.Financials = mergeFinancials(seed.Financials, persisted.Financials)
	out.Financials.NextPayDate = seed.Financials.NextPayDate

	return out
}

// mergeFinancials overlays persisted financial fields onto the seed defaults.
// Zero values are treated as "never set" and fall back to the seed, matching
// the original per-field merge.
func mergeFinancials(seed, persisted models.Financials) models.Financials {
	out := seed

	if persisted.PayFrequency != "" {
		out.PayFrequency = persisted.PayFrequency
	}
	if persisted.NextPayDate != "" {
		out.NextPayDate = persisted.NextPayDate
	}
	if !persisted.IncomeAmount.IsZero() {
		out.IncomeAmount = persisted.IncomeAmount
	}
	if !persisted.OverallLimit.IsZero() {
		out.OverallLimit = persisted.OverallLimit
	}
	if persisted.FixedExpenses != nil {
		out.FixedExpenses = persisted.FixedExpenses
	}
	if persisted.CategoryLimits != nil {
		out.CategoryLimits = persisted.CategoryLimits
	}
	if !persisted.DailyTarget.IsZero() {
		out.DailyTarget = persisted.DailyTarget
	}

	return out
}
