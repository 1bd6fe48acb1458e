// Package models defines the domain entities for the banking agent prototype.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayFrequency is how often income lands.
type PayFrequency string

// Supported pay frequencies.
const (
	PayBiweekly PayFrequency = "biweekly"
	PayMonthly  PayFrequency = "monthly"
)

// Valid reports whether f is a known pay frequency.
func (f PayFrequency) Valid() bool {
	return f == PayBiweekly || f == PayMonthly
}

// Categories is the closed set of spending categories that carry limits.
var Categories = []string{"dining", "shopping", "transport", "groceries", "travel", "entertainment"}

// IsCategory reports whether name is one of the known limit categories.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Profile holds the static user profile fields.
type Profile struct {
	Name   string          `json:"name"`
	Role   string          `json:"role"`
	Salary decimal.Decimal `json:"salary"`
}

// FixedExpense is a recurring bill captured during onboarding.
type FixedExpense struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Financials holds the user's financial configuration.
type Financials struct {
	PayFrequency   PayFrequency               `json:"payFrequency"`
	NextPayDate    string                     `json:"nextPayDate"` // YYYY-MM-DD
	IncomeAmount   decimal.Decimal            `json:"incomeAmount"`
	OverallLimit   decimal.Decimal            `json:"overallCycleLimit"`
	FixedExpenses  []FixedExpense             `json:"fixedExpenses"`
	CategoryLimits map[string]decimal.Decimal `json:"categoryLimits"`
	DailyTarget    decimal.Decimal            `json:"dailyTarget"`
}

// PayDate parses NextPayDate. Returns the zero time if unset or malformed.
func (f Financials) PayDate() time.Time {
	t, err := time.Parse("2006-01-02", f.NextPayDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Transaction is a single ledger entry. Fixture data in this prototype.
type Transaction struct {
	ID       int             `json:"id"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Icon     string          `json:"icon"`
}

// Offer types.
const (
	OfferSplit  = "split"
	OfferReward = "reward"
	OfferAlert  = "alert"
)

// Widget types an offer can render as.
const (
	WidgetChart    = "chart"
	WidgetProgress = "progress"
	WidgetStat     = "stat"
)

// Role of a conversation turn.
const (
	RoleUser    = "user"
	RoleAgent   = "agent"
	RoleOptions = "user_options"
)

// OfferOption is a tappable resolution for an offer, identified by an action tag.
type OfferOption struct {
	Label      string `json:"label"`
	Action     string `json:"action"`
	SuccessMsg string `json:"successMsg"`
}

// Turn is one scripted line of an offer conversation. Agent turns carry Text;
// the options turn carries the resolving choices.
type Turn struct {
	Role    string        `json:"role"`
	Text    string        `json:"text,omitempty"`
	Options []OfferOption `json:"options,omitempty"`
}

// Offer is a dismissible, agent-authored suggestion or alert.
type Offer struct {
	ID           string          `json:"id"`
	AgentID      string          `json:"agentId"`
	Title        string          `json:"title"`
	Type         string          `json:"type"`
	WidgetType   string          `json:"widgetType"`
	Priority     int             `json:"priority"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Savings      decimal.Decimal `json:"savings"`
	Current      decimal.Decimal `json:"current,omitempty"`
	Limit        decimal.Decimal `json:"limit,omitempty"`
	Category     string          `json:"category,omitempty"`
	ChartData    []float64       `json:"chartData,omitempty"`
	StatValue    string          `json:"statValue,omitempty"`
	StatLabel    string          `json:"statLabel,omitempty"`
	Conversation []Turn          `json:"conversation"`
}

// Option returns the offer option matching the action tag.
func (o Offer) Option(action string) (OfferOption, bool) {
	for _, turn := range o.Conversation {
		for _, opt := range turn.Options {
			if opt.Action == action {
				return opt, true
			}
		}
	}
	return OfferOption{}, false
}

// AgentTurns returns only the scripted agent lines of the offer conversation.
func (o Offer) AgentTurns() []Turn {
	var turns []Turn
	for _, t := range o.Conversation {
		if t.Role == RoleAgent {
			turns = append(turns, t)
		}
	}
	return turns
}

// Agent is display metadata for an assistant persona.
type Agent struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Color  string `json:"color"`
	Avatar string `json:"avatar"`
}

// UserState is the single persisted root object.
type UserState struct {
	Onboarded    bool             `json:"onboarded"`
	User         Profile          `json:"user"`
	Financials   Financials       `json:"financials"`
	Transactions []Transaction    `json:"transactions"`
	Agents       map[string]Agent `json:"agents"`
	Offers       []Offer          `json:"offers"`
}

// FindOffer returns the offer with the given id.
func (s UserState) FindOffer(id string) (Offer, bool) {
	for _, o := range s.Offers {
		if o.ID == id {
			return o, true
		}
	}
	return Offer{}, false
}
