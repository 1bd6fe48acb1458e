// Package responder maps free-text input to scripted assistant replies using
// an ordered, first-match-wins rule chain. It is a pure function of its
// inputs: no state, no external calls, every number in a reply is a fixture
// literal.
package responder

import "strings"

// Fallback is returned when no rule matches.
const Fallback = "I'm here to help manage your finances. You can ask about transfers, budgets, or bills."

// Starter is a suggested input presented as a tappable button. A starter
// with a non-empty Response bypasses the rule chain entirely.
type Starter struct {
	Label    string
	Query    string
	Response string
}

// Context carries the surface-specific starters active for a conversation.
type Context struct {
	Starters []Starter
}

// Respond maps input text plus context to a reply string.
//
// Precedence is load-bearing: starter overrides run first, then the
// budget-editing flow rules, then the informational rules. Several keyword
// sets overlap ("limit" appears in both a flow rule and the generic budget
// rule), so rule order must not be rearranged. Matching is substring-based,
// not tokenized, which means e.g. "save" also fires on "savings" and "saved".
func Respond(text string, ctx Context) string {
	lower := strings.ToLower(text)

	if reply, ok := starterOverride(lower, ctx.Starters); ok {
		return reply
	}

	for _, r := range flowRules {
		if r.match(lower) {
			return r.reply(lower)
		}
	}

	for _, r := range insightRules {
		if r.match(lower) {
			return r.reply(lower)
		}
	}

	return Fallback
}

// starterOverride returns a starter's canned response when the input exactly
// matches its label or query (case-insensitively).
func starterOverride(lower string, starters []Starter) (string, bool) {
	for _, s := range starters {
		if s.Response == "" {
			continue
		}
		if strings.ToLower(s.Label) == lower || (s.Query != "" && strings.ToLower(s.Query) == lower) {
			return s.Response, true
		}
	}
	return "", false
}
