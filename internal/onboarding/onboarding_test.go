package onboarding

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vivekkutty-vibe/starter-bank-agent/internal/models"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(store.NewMemoryStorage())
	require.NoError(t, err)
	return st
}

func TestFlowStepsInOrder(t *testing.T) {
	t.Parallel()

	f := NewFlow()
	require.Equal(t, StepWelcome, f.Step())

	require.NoError(t, f.Next())
	require.Equal(t, StepIncome, f.Step())

	f.Answers.NextPayDate = "2026-02-01"
	require.NoError(t, f.Next())
	require.Equal(t, StepExpenses, f.Step())

	require.NoError(t, f.Next())
	require.Equal(t, StepTargets, f.Step())

	err := f.Next()
	require.Error(t, err)
	require.Contains(t, err.Error(), "call Submit")
}

func TestNextRequiresPayday(t *testing.T) {
	t.Parallel()

	f := NewFlow()
	require.NoError(t, f.Next())
	require.Equal(t, StepIncome, f.Step())

	f.Answers.NextPayDate = ""
	err := f.Next()
	require.Error(t, err)
	require.Equal(t, StepIncome, f.Step(), "flow must not advance without a payday")
}

func TestBackStopsAtWelcome(t *testing.T) {
	t.Parallel()

	f := NewFlow()
	f.Back()
	require.Equal(t, StepWelcome, f.Step())

	require.NoError(t, f.Next())
	f.Back()
	require.Equal(t, StepWelcome, f.Step())
}

func TestDefaultAnswersValidate(t *testing.T) {
	t.Parallel()

	a := DefaultAnswers()
	a.NextPayDate = "2026-02-01"
	require.NoError(t, Validate(a, decimal.NewFromInt(2200)))
}

func TestValidateFailures(t *testing.T) {
	t.Parallel()

	base := func() Answers {
		a := DefaultAnswers()
		a.NextPayDate = "2026-02-01"
		return a
	}

	tests := []struct {
		name    string
		mutate  func(*Answers)
		overall decimal.Decimal
		wantErr string
	}{
		{
			name:    "bad frequency",
			mutate:  func(a *Answers) { a.PayFrequency = "weekly" },
			overall: decimal.NewFromInt(2200),
			wantErr: "pay frequency",
		},
		{
			name:    "missing payday",
			mutate:  func(a *Answers) { a.NextPayDate = "" },
			overall: decimal.NewFromInt(2200),
			wantErr: "next payday is required",
		},
		{
			name:    "malformed payday",
			mutate:  func(a *Answers) { a.NextPayDate = "Feb 1st" },
			overall: decimal.NewFromInt(2200),
			wantErr: "not a valid date",
		},
		{
			name:    "unknown category",
			mutate:  func(a *Answers) { a.CategoryLimits["crypto"] = decimal.NewFromInt(50) },
			overall: decimal.NewFromInt(2200),
			wantErr: `unknown category "crypto"`,
		},
		{
			name:    "negative limit",
			mutate:  func(a *Answers) { a.CategoryLimits["dining"] = decimal.NewFromInt(-1) },
			overall: decimal.NewFromInt(2200),
			wantErr: "cannot be negative",
		},
		{
			name:    "limits above overall",
			mutate:  func(a *Answers) {},
			overall: decimal.NewFromInt(1000),
			wantErr: "above the overall cycle limit",
		},
		{
			name:    "negative daily target",
			mutate:  func(a *Answers) { a.DailyTarget = decimal.NewFromInt(-5) },
			overall: decimal.NewFromInt(2200),
			wantErr: "daily target cannot be negative",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := base()
			tt.mutate(&a)

			err := Validate(a, tt.overall)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	t.Parallel()

	a := DefaultAnswers()
	a.PayFrequency = "weekly"
	a.NextPayDate = ""
	a.DailyTarget = decimal.NewFromInt(-5)

	err := Validate(a, decimal.NewFromInt(2200))
	require.Error(t, err)
	require.Contains(t, err.Error(), "pay frequency")
	require.Contains(t, err.Error(), "next payday is required")
	require.Contains(t, err.Error(), "daily target")
}

func TestSubmitAppliesAnswers(t *testing.T) {
	t.Parallel()

	st := openStore(t)

	f := NewFlow()
	require.NoError(t, f.Next())
	f.Answers.NextPayDate = "2026-02-01"
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())

	f.Answers.PayFrequency = models.PayMonthly
	f.Answers.CategoryLimits["dining"] = decimal.NewFromInt(250)
	f.Answers.DailyTarget = decimal.NewFromInt(25)

	require.NoError(t, f.Submit(st))
	require.Equal(t, StepDone, f.Step())

	state := st.State()
	require.True(t, state.Onboarded)
	require.Equal(t, models.PayMonthly, state.Financials.PayFrequency)
	require.Equal(t, "2026-02-01", state.Financials.NextPayDate)
	require.True(t, state.Financials.CategoryLimits["dining"].Equal(decimal.NewFromInt(250)))
	require.True(t, state.Financials.DailyTarget.Equal(decimal.NewFromInt(25)))

	require.Len(t, state.Financials.FixedExpenses, 2)
	require.Equal(t, "Rent", state.Financials.FixedExpenses[0].Name)
}

func TestSubmitRejectsWrongStep(t *testing.T) {
	t.Parallel()

	st := openStore(t)

	f := NewFlow()
	err := f.Submit(st)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not ready to submit")
	require.False(t, st.State().Onboarded)
}

func TestSubmitRejectsInvalidAnswers(t *testing.T) {
	t.Parallel()

	st := openStore(t)

	f := NewFlow()
	require.NoError(t, f.Next())
	f.Answers.NextPayDate = "2026-02-01"
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())

	f.Answers.CategoryLimits["dining"] = decimal.NewFromInt(99999)

	err := f.Submit(st)
	require.Error(t, err)
	require.Equal(t, StepTargets, f.Step(), "a failed submit keeps the flow on targets")
	require.False(t, st.State().Onboarded)
}
