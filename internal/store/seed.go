package store

import (
	"github.com/shopspring/decimal"

	"github.com/vivekkutty-vibe/starter-bank-agent/internal/models"
)

// ReferenceToday is the fixed "today" the fixture data is anchored to.
const ReferenceToday = "2026-01-15"

// seedNextPayDate is forced back onto every load so the payday countdown
// stays ahead of ReferenceToday no matter what an older slot saved.
const seedNextPayDate = "2026-01-30"

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// SeedState returns the initial fixture state for a fresh install.
func SeedState() models.UserState {
	return models.UserState{
		Onboarded: false,
		User: models.Profile{
			Name:   "Alex",
			Role:   "Junior Designer",
			Salary: dec("3200"),
		},
		Financials: models.Financials{
			PayFrequency:   models.PayBiweekly,
			NextPayDate:    seedNextPayDate,
			IncomeAmount:   dec("3200"),
			OverallLimit:   dec("2200"),
			FixedExpenses:  []models.FixedExpense{},
			CategoryLimits: map[string]decimal.Decimal{},
			DailyTarget:    dec("30"),
		},
		Transactions: []models.Transaction{
			{ID: 1, Date: "2026-01-12", Title: "Starbucks", Amount: dec("5.50"), Category: "dining", Icon: "coffee"},
			{ID: 2, Date: "2026-01-10", Title: "Uber", Amount: dec("18.20"), Category: "transport", Icon: "car"},
			{ID: 3, Date: "2026-01-08", Title: "Whole Foods", Amount: dec("145.00"), Category: "groceries", Icon: "shopping-cart"},
			{ID: 4, Date: "2026-01-05", Title: "Netflix", Amount: dec("15.99"), Category: "subscriptions", Icon: "tv"},
			{ID: 5, Date: "2026-01-01", Title: "Rent", Amount: dec("1200.00"), Category: "bills", Icon: "home"},
			{ID: 6, Date: "2025-12-28", Title: "Zara", Amount: dec("89.90"), Category: "shopping", Icon: "shopping-bag"},
			{ID: 7, Date: "2025-12-25", Title: "Shell Station", Amount: dec("45.00"), Category: "transport", Icon: "gas"},
			{ID: 8, Date: "2025-12-20", Title: "Waitrose", Amount: dec("120.00"), Category: "groceries", Icon: "shopping-cart"},
			{ID: 9, Date: "2025-12-15", Title: "Apple Music", Amount: dec("9.99"), Category: "subscriptions", Icon: "music"},
			{ID: 10, Date: "2025-12-01", Title: "Rent", Amount: dec("1200.00"), Category: "bills", Icon: "home"},
		},
		Agents: map[string]models.Agent{
			"onboarding_agent": {Name: "Ally", Role: "Onboarding Specialist", Color: "#6366f1", Avatar: "👋"},
			"transfer_agent":   {Name: "Swift", Role: "Funds Transfer", Color: "#10b981", Avatar: "💸"},
			"expense_agent":    {Name: "Hawk", Role: "Expense Manager", Color: "#f59e0b", Avatar: "🦅"},
			"paycheck_agent":   {Name: "Planner", Role: "Paycheck Optimizer", Color: "#8b5cf6", Avatar: "📅"},
			"lending_agent":    {Name: "Bridge", Role: "Lending Specialist", Color: "#3b82f6", Avatar: "🌉"},
			"rewards_agent":    {Name: "Perks", Role: "Rewards Hunter", Color: "#ec4899", Avatar: "🎁"},
			"overdraft_agent":  {Name: "Shield", Role: "Overdraft Protector", Color: "#ef4444", Avatar: "🛡️"},
		},
		Offers: seedOffers(),
	}
}

func seedOffers() []models.Offer {
	return []models.Offer{
		{
			ID:          "off_1",
			AgentID:     "paycheck_agent",
			Title:       "Optimize Cashflow",
			Type:        models.OfferSplit,
			WidgetType:  models.WidgetChart,
			Priority:    2,
			Amount:      dec("145.00"),
			Savings:     dec("0"),
			Description: "Large expense detected at Whole Foods.",
			ChartData:   []float64{20, 45, 30, 145},
			Conversation: []models.Turn{
				{Role: models.RoleAgent, Text: "I noticed a $145 charge at Whole Foods. That’s a bit higher than your usual $80."},
				{Role: models.RoleAgent, Text: "Since rent is due in 3 days, do you want to split this into 4 payments of $36.25? It’s fee-free."},
				{Role: models.RoleOptions, Options: []models.OfferOption{
					{Label: "Yes, Split it", Action: "activate_split", SuccessMsg: "Done! Your purchase is now split. Your first payment of $36.25 is due today."},
					{Label: "No thanks", Action: "dismiss", SuccessMsg: "Got it. I’ll keep an eye out for other ways to save."},
				}},
			},
		},
		{
			ID:          "off_2",
			AgentID:     "rewards_agent",
			Title:       "Dining Rewards",
			Type:        models.OfferReward,
			WidgetType:  models.WidgetStat,
			Priority:    1,
			Amount:      dec("15.00"),
			Savings:     dec("5.00"),
			StatValue:   "5% Back",
			StatLabel:   "On all dining this weekend",
			Description: "Get 5% back on dining this weekend",
			Conversation: []models.Turn{
				{Role: models.RoleAgent, Text: "Planning to eat out this weekend? You have a mocked offer for 5% cashback."},
				{Role: models.RoleOptions, Options: []models.OfferOption{
					{Label: "Activate Offer", Action: "activate_reward", SuccessMsg: "Offer activated! Use your card this weekend to earn 5% back."},
				}},
			},
		},
		{
			ID:          "off_3",
			AgentID:     "expense_agent",
			Title:       "Spending Alert",
			Type:        models.OfferAlert,
			WidgetType:  models.WidgetProgress,
			Priority:    3,
			Current:     dec("310"),
			Limit:       dec("300"),
			Category:    "dining",
			Description: "You have exceeded your dining limit.",
			Conversation: []models.Turn{
				{Role: models.RoleAgent, Text: "Heads up! You’ve hit $310 on Dining, which is over your $300 limit."},
				{Role: models.RoleAgent, Text: "Should we bump the limit to $350 just for this month, or do you want to curb spending?"},
				{Role: models.RoleOptions, Options: []models.OfferOption{
					{Label: "Bump Limit to $350", Action: "increase_limit", SuccessMsg: "Limit updated to $350. Try to stay on track!"},
					{Label: "I'll be careful", Action: "dismiss", SuccessMsg: "Understood. I’ll notify you if you trend higher."},
				}},
			},
		},
		{
			ID:          "off_4",
			AgentID:     "transfer_agent",
			Title:       "Low Balance Warning",
			Type:        models.OfferAlert,
			WidgetType:  models.WidgetStat,
			Priority:    10,
			Amount:      dec("0"),
			Savings:     dec("35.00"),
			StatValue:   "$35 Saved",
			StatLabel:   "Overdraft Fee Avoided",
			Description: "Checking account balance is low.",
			Conversation: []models.Turn{
				{Role: models.RoleAgent, Text: "Your checking balance is down to $45. You have a $120 utility bill coming up tomorrow."},
				{Role: models.RoleAgent, Text: "I can transfer $200 from your Savings to cover it. You have $4,500 available there."},
				{Role: models.RoleOptions, Options: []models.OfferOption{
					{Label: "Transfer $200", Action: "transfer_funds", SuccessMsg: "Transfer complete! Your checking balance is now $245."},
					{Label: "I'll handle it", Action: "dismiss", SuccessMsg: "Okay, just don’t forget that bill!"},
				}},
			},
		},
		{
			ID:          "off_5",
			AgentID:     "lending_agent",
			Title:       "Pay Over Time",
			Type:        models.OfferSplit,
			WidgetType:  models.WidgetStat,
			Priority:    5,
			Amount:      dec("299.00"),
			Savings:     dec("0"),
			StatValue:   "Pay In 4",
			StatLabel:   "Qualified Purchase",
			Description: "Qualify for Pay in 4 for your recent electronics purchase.",
			Conversation: []models.Turn{
				{Role: models.RoleAgent, Text: "That new monitor looks great! Since it was $299, you qualify for Pay in 4."},
				{Role: models.RoleAgent, Text: "This keeps more cash in your pocket today. No interest if paid on time."},
				{Role: models.RoleOptions, Options: []models.OfferOption{
					{Label: "Enable Pay in 4", Action: "activate_lending", SuccessMsg: "You're set up. First payment of $74.75 has been processed."},
					{Label: "Pay full amount", Action: "dismiss", SuccessMsg: "Sounds good. Enjoy the new gear!"},
				}},
			},
		},
	}
}
