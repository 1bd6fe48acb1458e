// Package insights derives read-only dashboard numbers from the user state.
package insights

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vivekkutty-vibe/starter-bank-agent/internal/models"
)

// DefaultDaysToPayday is used when no payday is configured.
const DefaultDaysToPayday = 14

// DaysToPayday returns the whole days remaining until the next payday,
// rounding partial days up. Zero or negative means it is payday.
func DaysToPayday(fin models.Financials, today time.Time) int {
	next := fin.PayDate()
	if next.IsZero() {
		return DefaultDaysToPayday
	}
	diff := next.Sub(today)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// IsPayday reports whether the payday countdown has elapsed.
func IsPayday(fin models.Financials, today time.Time) bool {
	return DaysToPayday(fin, today) <= 0
}

// TotalSpent sums every transaction amount.
func TotalSpent(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}

// SpentThisMonth sums the transactions dated in today's calendar month.
func SpentThisMonth(txs []models.Transaction, today time.Time) decimal.Decimal {
	prefix := today.Format("2006-01")
	total := decimal.Zero
	for _, tx := range txs {
		if len(tx.Date) >= len(prefix) && tx.Date[:len(prefix)] == prefix {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// SafeToSpend is the overall cycle limit minus this month's spend. It can go
// negative when the user is over the limit.
func SafeToSpend(fin models.Financials, txs []models.Transaction, today time.Time) decimal.Decimal {
	return fin.OverallLimit.Sub(SpentThisMonth(txs, today))
}

// CategoryBreakdown groups transaction totals by category.
func CategoryBreakdown(txs []models.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		cat := tx.Category
		if cat == "" {
			cat = "other"
		}
		totals[cat] = totals[cat].Add(tx.Amount)
	}
	return totals
}

// TopExpenses returns the n largest transactions, descending by amount.
// Equal amounts keep their original relative order.
func TopExpenses(txs []models.Transaction, n int) []models.Transaction {
	sorted := append([]models.Transaction(nil), txs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// DayAmount is one bar in the daily spend series.
type DayAmount struct {
	Day    string
	Amount float64
}

// DailySpend returns the fixture 7-day spending series shown in the daily
// analysis view.
func DailySpend() []DayAmount {
	return []DayAmount{
		{Day: "Mon", Amount: 45},
		{Day: "Tue", Amount: 120},
		{Day: "Wed", Amount: 35},
		{Day: "Thu", Amount: 80},
		{Day: "Fri", Amount: 15},
		{Day: "Sat", Amount: 75},
		{Day: "Sun", Amount: 65},
	}
}
