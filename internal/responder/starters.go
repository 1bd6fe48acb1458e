package responder

import "fmt"

// Surface identifies which chat surface a conversation is embedded in. Each
// surface gets its own starter set.
type Surface string

// Known chat surfaces.
const (
	SurfaceDailySpend Surface = "daily"
	SurfaceCycle      Surface = "cycle"
	SurfaceMonthly    Surface = "monthly"
	SurfaceSavings    Surface = "savings"
	SurfaceCategory   Surface = "category"
)

// GlobalSuggestions are the always-on suggestions in the global chat.
func GlobalSuggestions() []string {
	return []string{
		"How much can I spend?",
		"Modify my limits",
		"Top expense this month",
	}
}

// Starters returns the suggested inputs for a surface. For SurfaceCategory,
// a non-empty category yields category-specific starters; otherwise the
// generic cycle-analysis set is returned.
func Starters(surface Surface, category string) []Starter {
	switch surface {
	case SurfaceDailySpend:
		return []Starter{
			{Label: "Compare to last week", Query: "How does this week compare to last week?"},
			{Label: "Can I spend $50?", Query: "Can I afford to spend $50 right now?"},
			{Label: "Show big expenses", Query: "Show me my biggest expenses recently."},
		}
	case SurfaceCycle:
		return []Starter{
			{Label: "Why is my spend up?", Query: "Why is my spending higher in this cycle compared to last?"},
			{Label: "Can I save more?", Query: "How can I increase my savings for this pay cycle?"},
			{Label: "Optimize bills", Query: "Which bills can I potentially reduce or defer?"},
		}
	case SurfaceMonthly:
		return []Starter{
			{Label: "Compare to 2025", Query: "How does my current monthly spend compare to 2025 averages?"},
			{Label: "Budget for next month", Query: "Help me set up a realistic budget for next month based on this data."},
			{Label: "Find hidden costs", Query: "Are there any recurring costs I can cut this month?"},
		}
	case SurfaceSavings:
		return []Starter{
			{Label: "Maximize interest", Query: "How can I earn more interest on these savings?"},
			{Label: "Short-term goals", Query: "Given these savings, what short-term goals can I set?"},
			{Label: "Automate more", Query: "How do I set up automatic round-ups for my spending?"},
		}
	case SurfaceCategory:
		if category == "" {
			return []Starter{
				{Label: "Optimize this cycle", Query: "How can I optimize my spending for this specific pay cycle?"},
				{Label: "Show highest spending", Query: "Show me the top 3 highest spending categories for this period."},
				{Label: "Compare to average", Query: "How does this cycle total compare to my historical average?"},
			}
		}
		capped := capitalize(category)
		return []Starter{
			{Label: "Modify limits", Query: "I want to modify my spending limits."},
			{Label: fmt.Sprintf("Show %s transactions", capped), Query: fmt.Sprintf("Show me recent transactions in %s.", category)},
			{Label: fmt.Sprintf("Save in %s", capped), Query: fmt.Sprintf("Give me 3 specific tips to reduce my spending in %s.", category)},
		}
	}
	return nil
}
