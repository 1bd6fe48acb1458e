// Package onboarding implements the stepwise first-run setup flow. The core
// store accepts whatever it is handed; all submission-time validation lives
// here.
package onboarding

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vivekkutty-vibe/starter-bank-agent/internal/models"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/store"
)

// Step is one screen of the setup flow.
type Step int

// Flow steps, in order.
const (
	StepWelcome Step = iota
	StepIncome
	StepExpenses
	StepTargets
	StepDone
)

// String returns the display name of the step.
func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepIncome:
		return "income"
	case StepExpenses:
		return "expenses"
	case StepTargets:
		return "targets"
	case StepDone:
		return "done"
	}
	return "unknown"
}

// Answers collects everything the flow asks for.
type Answers struct {
	PayFrequency   models.PayFrequency
	NextPayDate    string
	Rent           decimal.Decimal
	Netflix        decimal.Decimal
	CategoryLimits map[string]decimal.Decimal
	DailyTarget    decimal.Decimal
}

// DefaultAnswers returns the prefilled form values.
func DefaultAnswers() Answers {
	return Answers{
		PayFrequency: models.PayBiweekly,
		Rent:         decimal.NewFromInt(1200),
		Netflix:      decimal.RequireFromString("15.99"),
		CategoryLimits: map[string]decimal.Decimal{
			"dining":        decimal.NewFromInt(300),
			"shopping":      decimal.NewFromInt(200),
			"transport":     decimal.NewFromInt(150),
			"groceries":     decimal.NewFromInt(400),
			"travel":        decimal.NewFromInt(0),
			"entertainment": decimal.NewFromInt(50),
		},
		DailyTarget: decimal.NewFromInt(30),
	}
}

// Flow tracks the user's progress through the setup steps.
type Flow struct {
	step    Step
	Answers Answers
}

// NewFlow starts at the welcome step with prefilled answers.
func NewFlow() *Flow {
	return &Flow{step: StepWelcome, Answers: DefaultAnswers()}
}

// Step returns the current step.
func (f *Flow) Step() Step {
	return f.step
}

// Next advances the flow, enforcing the per-step requirements the original
// form enforced. Advancing past the last step is an error; use Submit.
func (f *Flow) Next() error {
	switch f.step {
	case StepIncome:
		if f.Answers.NextPayDate == "" {
			return fmt.Errorf("next payday is required to continue")
		}
	case StepTargets, StepDone:
		return fmt.Errorf("flow is at %s, call Submit", f.step)
	}
	f.step++
	return nil
}

// Back returns to the previous step, stopping at welcome.
func (f *Flow) Back() {
	if f.step > StepWelcome {
		f.step--
	}
}

// Submit validates the answers against the overall cycle limit and applies
// them: financials are updated and onboarding is marked complete.
func (f *Flow) Submit(st *store.Store) error {
	if f.step != StepTargets {
		return fmt.Errorf("flow is at %s, not ready to submit", f.step)
	}

	overall := st.State().Financials.OverallLimit
	if err := Validate(f.Answers, overall); err != nil {
		return err
	}

	fixed := []models.FixedExpense{
		{ID: "rent", Name: "Rent", Amount: f.Answers.Rent},
		{ID: "netflix", Name: "Netflix", Amount: f.Answers.Netflix},
	}

	st.UpdateFinancials(store.FinancialsPatch{
		PayFrequency:   &f.Answers.PayFrequency,
		NextPayDate:    &f.Answers.NextPayDate,
		FixedExpenses:  fixed,
		CategoryLimits: f.Answers.CategoryLimits,
		DailyTarget:    &f.Answers.DailyTarget,
	})
	st.CompleteOnboarding()
	f.step = StepDone
	return nil
}

// Validate checks the submitted answers. The category limit sum must not
// exceed the overall cycle limit; this is only enforced here, at submission
// time, never continuously.
func Validate(a Answers, overallLimit decimal.Decimal) error {
	var errs []string

	if !a.PayFrequency.Valid() {
		errs = append(errs, fmt.Sprintf("pay frequency must be biweekly or monthly, got %q", a.PayFrequency))
	}

	if a.NextPayDate == "" {
		errs = append(errs, "next payday is required")
	} else if _, err := time.Parse("2006-01-02", a.NextPayDate); err != nil {
		errs = append(errs, fmt.Sprintf("next payday %q is not a valid date", a.NextPayDate))
	}

	sum := decimal.Zero
	for cat, limit := range a.CategoryLimits {
		if !models.IsCategory(cat) {
			errs = append(errs, fmt.Sprintf("unknown category %q", cat))
			continue
		}
		if limit.IsNegative() {
			errs = append(errs, fmt.Sprintf("limit for %s cannot be negative", cat))
			continue
		}
		sum = sum.Add(limit)
	}
	if sum.GreaterThan(overallLimit) {
		errs = append(errs, fmt.Sprintf("category limits total $%s, above the overall cycle limit of $%s", sum.StringFixed(0), overallLimit.StringFixed(0)))
	}

	if a.DailyTarget.IsNegative() {
		errs = append(errs, "daily target cannot be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("onboarding validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
