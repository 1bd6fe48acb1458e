package responder

import (
	"fmt"
	"strings"
)

// rule pairs a predicate with a reply builder. Rules are evaluated in table
// order; the first match wins.
type rule struct {
	name  string
	match func(lower string) bool
	reply func(lower string) string
}

func static(s string) func(string) string {
	return func(string) string { return s }
}

func contains(lower string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// limitCategories is the match order for the named-category flow rule. The
// order matters: the reply names the first category found as a substring.
var limitCategories = []string{"shopping", "transport", "groceries", "travel", "entertainment", "dining"}

// flowRules are the higher-priority budget-editing conversation flows.
// They are checked before the informational rules because their keywords
// ("limit", "budget") also appear in generic rules further down.
var flowRules = []rule{
	{
		name: "modify_limits",
		match: func(lower string) bool {
			return lower == "modify limits" ||
				lower == "i want to modify my spending limits." ||
				strings.Contains(lower, "modify spending limits")
		},
		reply: static("I can help with that. Would you like to adjust your **Overall Budget** or a **Specific Category Limit**?"),
	},
	{
		name: "overall_budget",
		match: func(lower string) bool {
			return strings.Contains(lower, "overall") && contains(lower, "budget", "limit")
		},
		reply: static("Understood. Should we set a **Weekly** or **Monthly** overall limit?"),
	},
	{
		name: "category_budget",
		match: func(lower string) bool {
			return strings.Contains(lower, "category") && contains(lower, "budget", "limit")
		},
		reply: static("Which category would you like to adjust? I track: **Shopping, Transport, Groceries, Travel, and Entertainment.**"),
	},
	{
		name: "named_category",
		match: func(lower string) bool {
			for _, cat := range limitCategories {
				if lower == cat || strings.Contains(lower, "limit for "+cat) {
					return true
				}
			}
			return false
		},
		reply: func(lower string) string {
			for _, cat := range limitCategories {
				if strings.Contains(lower, cat) {
					return fmt.Sprintf("Got it. What would you like the new monthly limit for **%s** to be?", capitalize(cat))
				}
			}
			return Fallback
		},
	},
	{
		name: "weekly_limit",
		match: func(lower string) bool {
			return lower == "weekly" || (strings.Contains(lower, "weekly") && strings.Contains(lower, "limit"))
		},
		reply: static("Your current weekly target is $210. What would you like to change it to?"),
	},
	{
		name: "monthly_limit",
		match: func(lower string) bool {
			return lower == "monthly" || (strings.Contains(lower, "monthly") && strings.Contains(lower, "limit"))
		},
		reply: static("Your current monthly limit is $2,200. What is the new amount you'd like to set?"),
	},
}

// insightRules answer specific informational queries. Order preserved from
// the scripted dialogue, overlaps and all; the trailing rules are
// deliberately loose catch-alls.
var insightRules = []rule{
	{
		name:  "compare_to_2025",
		match: func(lower string) bool { return strings.Contains(lower, "compare to 2025") },
		reply: static("In 2025, your average monthly spend was $2,450. Currently, you're at $2,200—putting you **10% below last year's average**. Great progress!"),
	},
	{
		name:  "next_month_budget",
		match: func(lower string) bool { return strings.Contains(lower, "budget for next month") },
		reply: static("Based on your salary of $3,200 and fixed costs of $1,365, I recommend a **spending limit of $1,400** for next month. This ensures you hit your 25% savings goal."),
	},
	{
		name:  "hidden_costs",
		match: func(lower string) bool { return strings.Contains(lower, "find hidden costs") },
		reply: static("Looking at your **Monthly Comparison**, your 'Other' category spiked by $45 due to an automatic renewal for a service you haven't used since November. I recommend canceling to save $540/year."),
	},
	{
		// Also matches the "Save in <category>" starter query, which asks for
		// tips without containing the literal "save in".
		name:  "category_tips",
		match: func(lower string) bool { return contains(lower, "save in", "tips to reduce my spending") },
		reply: func(lower string) string {
			switch {
			case strings.Contains(lower, "dining"):
				return "1. Use your 'Dining Rewards' offer (5% back).\n2. Set a 'Thursday Home-Cook' rule to avoid the mid-week checkout spike.\n3. Limit coffee runs to twice a week."
			case strings.Contains(lower, "shopping"):
				return "1. Wait 24 hours before any purchase over $50.\n2. Unsubscribe from marketing emails that trigger impulse buys.\n3. Use 'Pay in 4' only for essential large items."
			case strings.Contains(lower, "transport"):
				return "1. Combine errands into one trip.\n2. Check tire pressure to improve fuel efficiency.\n3. Use public transport for city-center trips."
			}
			return "I can help with tips for that category. Do you want to see a spending trend first?"
		},
	},
	{
		name:  "maximize_interest",
		match: func(lower string) bool { return strings.Contains(lower, "maximize interest") },
		reply: static("You have $4,500 in a standard savings account (0.1%). Moving this to a **High-Yield Savings account (4.5%)** would earn you an extra **$202 per year**."),
	},
	{
		name:  "short_term_goals",
		match: func(lower string) bool { return strings.Contains(lower, "short-term goals") },
		reply: static("With your current $400 monthly savings, you can fully fund a **$1,200 Emergency Fund** in exactly 3 months."),
	},
	{
		name:  "recent_in_category",
		match: func(lower string) bool { return strings.Contains(lower, "show me recent transactions in") },
		reply: func(lower string) string {
			cat := "this category"
			if parts := strings.Split(lower, "in "); len(parts) > 1 && parts[1] != "" {
				cat = parts[1]
			}
			return fmt.Sprintf("In the last 14 days, you've had 4 transactions in **%s**, totaling $120. The largest was $45 at 'The Daily Roast'.", cat)
		},
	},
	{
		name: "compare_week",
		match: func(lower string) bool {
			return strings.Contains(lower, "compare") && contains(lower, "week", "last week")
		},
		reply: static("You spent $210 last week, which is $50 less than this week. The increase is mostly in Dining."),
	},
	{
		name: "compare_month",
		match: func(lower string) bool {
			return strings.Contains(lower, "compare") && contains(lower, "month", "cycle")
		},
		reply: static("Spending is down 12% compared to this time last month. Great job on cutting back on subscriptions!"),
	},
	{
		name:  "affordability",
		match: func(lower string) bool { return contains(lower, "can i spend", "afford", "safe to spend") },
		reply: static("Yes, you have $140 left in your 'Safe to Spend' balance. A $50 purchase fits comfortably."),
	},
	{
		name:  "biggest_expense",
		match: func(lower string) bool { return contains(lower, "biggest", "largest", "big expenses") },
		reply: static("Your biggest recent expense was Rent ($1,200) on Oct 1st, followed by Whole Foods ($145)."),
	},
	{
		name:  "savings_potential",
		match: func(lower string) bool { return strings.Contains(lower, "how much can i save") },
		reply: static("Based on your current trend, you could save about $400 this cycle if you stick to your dining limit."),
	},
	{
		name:  "spending_down",
		match: func(lower string) bool { return strings.Contains(lower, "why is spending down") },
		reply: static("You haven't had any large car repairs this month, unlike last month ($500). That's the main difference."),
	},
	{
		name:  "top_expense",
		match: func(lower string) bool { return strings.Contains(lower, "top expense") },
		reply: static("Your top expense this month is Rent ($1,200). The second highest is your Car Payment ($350)."),
	},
	{
		name:  "set_budget",
		match: func(lower string) bool { return strings.Contains(lower, "set a budget") },
		reply: static("I can set a budget. How much would you like to limit your 'Shopping' category to?"),
	},
	{
		name:  "saving_tips",
		match: func(lower string) bool { return contains(lower, "tips to save", "how to save") },
		reply: static("Try using the 'Pay in 4' option for larger purchases to smooth out cash flow, or cook at home one more night a week."),
	},
	{
		name:  "automation",
		match: func(lower string) bool { return contains(lower, "automate more", "automatic round-ups") },
		reply: static("I can definitely help with that! You can enable **'Round-ups'** to save the change from every purchase, or set up a **Targeted Transfer** that moves money to savings as soon as your payday is detected."),
	},
	{
		name:  "projection",
		match: func(lower string) bool { return contains(lower, "projected", "projection") },
		reply: static("You are projected to save $450 this month if you maintain your current daily spending."),
	},
	{
		name: "savings_goal",
		match: func(lower string) bool {
			return contains(lower, "modify", "change") && strings.Contains(lower, "goal")
		},
		reply: static("Your current savings goal is $500/month. Enter the new amount you'd like to aim for."),
	},
	{
		name:  "transfer",
		match: func(lower string) bool { return strings.Contains(lower, "transfer") },
		reply: static("I can help with transfers. Your checking balance is $45. Shall I move $200 from Savings?"),
	},
	{
		name:  "budget_status",
		match: func(lower string) bool { return contains(lower, "limit", "budget") },
		reply: static("Your dining limit is $300. You've currently spent $310. Try to cook at home this week!"),
	},
	{
		// Loose on purpose: "pay" also fires inside unrelated words.
		name:  "lending",
		match: func(lower string) bool { return contains(lower, "pay", "lend", "buy now") },
		reply: static("You qualify for 'Pay in 4' on purchases over $100. Interest-free if paid on time."),
	},
	{
		name:  "savings_status",
		match: func(lower string) bool { return contains(lower, "save", "invest", "savings") },
		reply: static("You have $4,500 in High Yield Savings earning 4.5% APY. Keep it up!"),
	},
	{
		name:  "bills",
		match: func(lower string) bool { return contains(lower, "bill", "rent", "netflix") },
		reply: static("Rent of $1,200 is due on the 1st. I've already set it aside in your forecast."),
	},
	{
		name:  "spending_total",
		match: func(lower string) bool { return contains(lower, "spent", "spending") },
		reply: static("You've spent $842 so far this month. You're on track to stay under your $2,200 limit."),
	},
}

// capitalize upper-cases the first byte, matching the original display style.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
