package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vivekkutty-vibe/starter-bank-agent/internal/config"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/responder"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/store"
)

// runScript feeds input lines to a fresh app over a seeded in-memory store and
// returns everything it printed. The reply delay is zero so chat answers come
// back immediately.
func runScript(t *testing.T, lines ...string) (string, *store.Store) {
	t.Helper()

	st, err := store.Open(store.NewMemoryStorage())
	require.NoError(t, err)

	cfg := &config.Config{
		StatePath: "unused",
		ChartDir:  t.TempDir(),
	}

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")

	a := New(cfg, st, in, &out)
	require.NoError(t, a.Run(context.Background()))

	return out.String(), st
}

func TestRunGreetsAndQuits(t *testing.T) {
	t.Parallel()

	out, _ := runScript(t, "/quit")
	require.Contains(t, out, "Hi Alex, I’m here.")
	require.Contains(t, out, "Type /help for commands")
	require.Contains(t, out, "Bye!")
}

func TestRunStopsAtEOF(t *testing.T) {
	t.Parallel()

	out, _ := runScript(t, "/help")
	require.Contains(t, out, "Available commands:")
}

func TestChatAffordability(t *testing.T) {
	t.Parallel()

	out, _ := runScript(t, "Can I afford to spend $50?", "/quit")
	require.Contains(t, out, "agent is thinking...")
	require.Contains(t, out, "$140")
}

func TestChatFallback(t *testing.T) {
	t.Parallel()

	out, _ := runScript(t, "what's the meaning of life?", "/quit")
	require.Contains(t, out, responder.Fallback)
}

func TestStateCommand(t *testing.T) {
	t.Parallel()

	out, _ := runScript(t, "/state", "/quit")
	require.Contains(t, out, "Alex — Junior Designer")
	require.Contains(t, out, "next payday 2026-01-30")
	require.Contains(t, out, "10 transactions, 5 open offers")
}

func TestOffersListAndOpen(t *testing.T) {
	t.Parallel()

	out, _ := runScript(t, "/offers", "/open off_3", "/quit")
	require.Contains(t, out, "off_1")
	require.Contains(t, out, "off_5")
	require.Contains(t, out, "Spending Alert")
	require.Contains(t, out, "Resolve with /do off_3")
}

func TestOpenUnknownOffer(t *testing.T) {
	t.Parallel()

	out, _ := runScript(t, "/open off_99", "/quit")
	require.Contains(t, out, "No offer off_99")
}

func TestResolveOfferRemovesIt(t *testing.T) {
	t.Parallel()

	out, st := runScript(t, "/do off_1 activate_split", "/quit")
	require.Contains(t, out, "Done! Your purchase is now split.")
	require.Len(t, st.State().Offers, 4)
}

func TestResolveRejectsWrongAction(t *testing.T) {
	t.Parallel()

	out, st := runScript(t, "/do off_1 self_destruct", "/quit")
	require.Contains(t, out, "No offer off_1 with action self_destruct")
	require.Len(t, st.State().Offers, 5)
}

func TestDismissOffer(t *testing.T) {
	t.Parallel()

	out, st := runScript(t, "/dismiss off_2", "/quit")
	require.Contains(t, out, "Dismissed off_2.")
	require.Len(t, st.State().Offers, 4)

	_, ok := st.State().FindOffer("off_2")
	require.False(t, ok)
}

func TestInsightsCommand(t *testing.T) {
	t.Parallel()

	out, _ := runScript(t, "/insights", "/quit")
	require.Contains(t, out, "Payday in 15 days")
	require.Contains(t, out, "Safe to spend: $815.31")
	require.Contains(t, out, "Rent")
}

func TestChartCommandWritesPNG(t *testing.T) {
	t.Parallel()

	out, _ := runScript(t, "/chart daily", "/quit")
	require.Contains(t, out, "Wrote ")
	require.Contains(t, out, "chart_daily_2026-01-15.png")
}

func TestChartRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	out, _ := runScript(t, "/chart weekly", "/quit")
	require.Contains(t, out, "Usage: /chart daily|category")
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()

	out, _ := runScript(t, "/frobnicate", "/quit")
	require.Contains(t, out, "Unknown command /frobnicate")
}

func TestOnboardFlow(t *testing.T) {
	t.Parallel()

	// frequency, payday, then the six category limits with the last overridden.
	out, st := runScript(t,
		"/onboard",
		"monthly",
		"2026-02-01",
		"", "", "", "", "", "250",
		"/quit",
	)
	require.Contains(t, out, "Let's get you set up in 60 seconds.")
	require.Contains(t, out, "All set! Your financial briefing is ready.")

	state := st.State()
	require.True(t, state.Onboarded)
	require.Equal(t, "2026-02-01", state.Financials.NextPayDate)
	require.Equal(t, "250", state.Financials.CategoryLimits["entertainment"].String())
}

func TestOnboardStopsWithoutPayday(t *testing.T) {
	t.Parallel()

	// Keeping the default frequency but skipping the payday stops the flow.
	out, st := runScript(t,
		"/onboard",
		"",
		"",
		"/quit",
	)
	require.Contains(t, out, "Setup stopped:")
	require.False(t, st.State().Onboarded)
}

func TestOnboardTwice(t *testing.T) {
	t.Parallel()

	out, _ := runScript(t,
		"/onboard",
		"", "2026-02-01", "", "", "", "", "", "",
		"/onboard",
		"/quit",
	)
	require.Contains(t, out, "You're already set up.")
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"250", "250", true},
		{"$1,200.50", "1200.5", true},
		{" $50 ", "50", true},
		{"lots", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			d, err := parseAmount(tt.in)
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, d.String())
		})
	}
}
