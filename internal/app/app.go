// Package app provides the interactive chat loop wiring the store, responder
// and session together.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vivekkutty-vibe/starter-bank-agent/internal/charts"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/config"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/insights"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/logger"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/models"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/onboarding"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/responder"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/session"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/store"
)

// App is one interactive run of the banking agent.
type App struct {
	cfg   *config.Config
	store *store.Store
	chat  *session.Session
	in    io.Reader
	out   io.Writer
	today time.Time
}

// New creates an App reading from in and writing to out.
func New(cfg *config.Config, st *store.Store, in io.Reader, out io.Writer) *App {
	state := st.State()
	greeting := fmt.Sprintf("Hi %s, I’m here. Need to find a transaction or check your budget?", state.User.Name)

	today, err := time.Parse("2006-01-02", store.ReferenceToday)
	if err != nil {
		today = time.Now()
	}

	return &App{
		cfg:   cfg,
		store: st,
		chat:  session.New(greeting, session.WithDelay(cfg.ReplyDelay)),
		in:    in,
		out:   out,
		today: today,
	}
}

// Run processes input lines until EOF, /quit, or context cancellation.
func (a *App) Run(ctx context.Context) error {
	defer a.chat.Close()

	a.printGreeting()

	scanner := bufio.NewScanner(a.in)
	a.prompt()
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			a.prompt()
			continue
		}
		if line == "/quit" || line == "/exit" {
			fmt.Fprintln(a.out, "Bye!")
			return nil
		}

		if strings.HasPrefix(line, "/") {
			a.dispatch(scanner, line)
		} else {
			a.sendChat(line)
		}
		a.prompt()
	}
	return scanner.Err()
}

func (a *App) prompt() {
	fmt.Fprint(a.out, "> ")
}

func (a *App) printGreeting() {
	msgs := a.chat.Messages()
	if len(msgs) > 0 {
		fmt.Fprintf(a.out, "agent: %s\n", msgs[0].Text)
	}
	fmt.Fprintln(a.out, "Type /help for commands, or just ask a question.")
	for _, s := range responder.GlobalSuggestions() {
		fmt.Fprintf(a.out, "  try: %s\n", s)
	}
}

// sendChat routes free text through the conversation session and prints the
// reply once the thinking delay has elapsed.
func (a *App) sendChat(text string) {
	logger.Log.Debug().Str("text", logger.SanitizeText(text)).Msg("Chat input")

	before := len(a.chat.Messages())
	if !a.chat.Send(text, responder.Context{}) {
		return
	}
	fmt.Fprintln(a.out, "agent is thinking...")
	a.chat.Wait()

	for _, msg := range a.chat.Messages()[before:] {
		if msg.Role == models.RoleAgent {
			fmt.Fprintf(a.out, "agent: %s\n", msg.Text)
		}
	}
}

func (a *App) dispatch(scanner *bufio.Scanner, line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/help":
		a.printHelp()
	case "/state":
		a.printState()
	case "/offers":
		a.printOffers()
	case "/open":
		a.openOffer(args)
	case "/do":
		a.resolveOffer(args)
	case "/dismiss":
		a.dismissOffer(args)
	case "/insights":
		a.printInsights()
	case "/chart":
		a.writeChart(args)
	case "/onboard":
		a.runOnboarding(scanner)
	default:
		fmt.Fprintf(a.out, "Unknown command %s. Type /help.\n", cmd)
	}
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `Available commands:
  /state              Show your profile and financial configuration
  /offers             List open offers from your agents
  /open <id>          Read an offer conversation and its options
  /do <id> <action>   Resolve an offer (e.g. /do off_1 activate_split)
  /dismiss <id>       Dismiss an offer
  /insights           Show safe-to-spend, payday countdown and top expenses
  /chart daily|category   Render a spending chart to a PNG file
  /onboard            Run the first-time setup flow
  /quit               Exit

Anything else is sent to the assistant.
`)
}

func (a *App) printState() {
	state := a.store.State()
	fin := state.Financials

	fmt.Fprintf(a.out, "%s — %s\n", state.User.Name, state.User.Role)
	fmt.Fprintf(a.out, "Onboarded: %v\n", state.Onboarded)
	fmt.Fprintf(a.out, "Pay: $%s %s, next payday %s\n", fin.IncomeAmount.StringFixed(0), fin.PayFrequency, fin.NextPayDate)
	fmt.Fprintf(a.out, "Overall cycle limit: $%s, daily target $%s\n", fin.OverallLimit.StringFixed(0), fin.DailyTarget.StringFixed(0))
	if len(fin.CategoryLimits) > 0 {
		cats := make([]string, 0, len(fin.CategoryLimits))
		for cat := range fin.CategoryLimits {
			cats = append(cats, cat)
		}
		sort.Strings(cats)
		fmt.Fprintln(a.out, "Category limits:")
		for _, cat := range cats {
			fmt.Fprintf(a.out, "  %-14s $%s\n", cat, fin.CategoryLimits[cat].StringFixed(0))
		}
	}
	fmt.Fprintf(a.out, "%d transactions, %d open offers\n", len(state.Transactions), len(state.Offers))
}

func (a *App) printOffers() {
	state := a.store.State()
	if len(state.Offers) == 0 {
		fmt.Fprintln(a.out, "You're all caught up! No new insights or alerts for now.")
		return
	}

	offers := append([]models.Offer(nil), state.Offers...)
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Priority > offers[j].Priority
	})

	for _, o := range offers {
		agent := state.Agents[o.AgentID]
		fmt.Fprintf(a.out, "%s %s [%s] — %s (%s)\n", agent.Avatar, o.ID, o.Type, o.Title, agent.Name)
		fmt.Fprintf(a.out, "   %s\n", o.Description)
	}
}

func (a *App) openOffer(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: /open <offer-id>")
		return
	}

	state := a.store.State()
	offer, ok := state.FindOffer(args[0])
	if !ok {
		fmt.Fprintf(a.out, "No offer %s. See /offers.\n", args[0])
		return
	}

	agent := state.Agents[offer.AgentID]
	fmt.Fprintf(a.out, "%s %s — %s\n", agent.Avatar, agent.Name, agent.Role)
	for _, turn := range offer.AgentTurns() {
		fmt.Fprintf(a.out, "agent: %s\n", turn.Text)
	}
	for _, turn := range offer.Conversation {
		for _, opt := range turn.Options {
			fmt.Fprintf(a.out, "  [%s] %s\n", opt.Action, opt.Label)
		}
	}
	fmt.Fprintf(a.out, "Resolve with /do %s <action>\n", offer.ID)
}

func (a *App) resolveOffer(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: /do <offer-id> <action>")
		return
	}

	msg, ok := a.store.ResolveOffer(args[0], args[1])
	if !ok {
		fmt.Fprintf(a.out, "No offer %s with action %s. See /offers.\n", args[0], args[1])
		return
	}
	fmt.Fprintf(a.out, "agent: %s\n", msg)
}

func (a *App) dismissOffer(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: /dismiss <offer-id>")
		return
	}
	a.store.RemoveOffer(args[0])
	fmt.Fprintf(a.out, "Dismissed %s.\n", args[0])
}

func (a *App) printInsights() {
	state := a.store.State()
	fin := state.Financials

	days := insights.DaysToPayday(fin, a.today)
	if days <= 0 {
		fmt.Fprintln(a.out, "It's Payday!")
	} else {
		fmt.Fprintf(a.out, "Payday in %d days\n", days)
	}

	spent := insights.SpentThisMonth(state.Transactions, a.today)
	safe := insights.SafeToSpend(fin, state.Transactions, a.today)
	fmt.Fprintf(a.out, "Safe to spend: $%s ($%s spent of $%s limit)\n",
		safe.StringFixed(2), spent.StringFixed(0), fin.OverallLimit.StringFixed(0))

	fmt.Fprintln(a.out, "Top expenses:")
	for _, tx := range insights.TopExpenses(state.Transactions, 3) {
		fmt.Fprintf(a.out, "  %s  %-14s $%s\n", tx.Date, tx.Title, tx.Amount.StringFixed(2))
	}
}

func (a *App) writeChart(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: /chart daily|category")
		return
	}

	state := a.store.State()
	var (
		data []byte
		name string
		err  error
	)
	switch args[0] {
	case "daily":
		data, err = charts.DailySpendChart(insights.DailySpend(), state.Financials.DailyTarget)
		name = fmt.Sprintf("chart_daily_%s.png", a.today.Format("2006-01-02"))
	case "category":
		data, err = charts.CategoryBreakdownChart(insights.CategoryBreakdown(state.Transactions))
		name = fmt.Sprintf("chart_category_%s.png", a.today.Format("2006-01"))
	default:
		fmt.Fprintln(a.out, "Usage: /chart daily|category")
		return
	}
	if err != nil {
		fmt.Fprintf(a.out, "Could not render chart: %v\n", err)
		return
	}

	path := filepath.Join(a.cfg.ChartDir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		fmt.Fprintf(a.out, "Could not write chart: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Wrote %s\n", path)
}

// runOnboarding walks the setup flow, prompting on the shared scanner.
// Entering nothing keeps the prefilled answer.
func (a *App) runOnboarding(scanner *bufio.Scanner) {
	if a.store.State().Onboarded {
		fmt.Fprintln(a.out, "You're already set up.")
		return
	}

	flow := onboarding.NewFlow()
	fmt.Fprintf(a.out, "Hi, %s. Let's get you set up in 60 seconds.\n", a.store.State().User.Name)
	_ = flow.Next()

	freq := a.ask(scanner, fmt.Sprintf("Pay frequency (biweekly/monthly) [%s]: ", flow.Answers.PayFrequency))
	if freq != "" {
		flow.Answers.PayFrequency = models.PayFrequency(strings.ToLower(freq))
	}
	date := a.ask(scanner, "Next payday (YYYY-MM-DD): ")
	flow.Answers.NextPayDate = date
	if err := flow.Next(); err != nil {
		fmt.Fprintf(a.out, "Setup stopped: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "I've identified these recurring bills from your history:")
	fmt.Fprintf(a.out, "  Rent $%s, Netflix $%s\n", flow.Answers.Rent.StringFixed(0), flow.Answers.Netflix.StringFixed(2))
	_ = flow.Next()

	fmt.Fprintln(a.out, "Category limits (press enter to keep defaults):")
	for _, cat := range models.Categories {
		cur := flow.Answers.CategoryLimits[cat]
		if v := a.ask(scanner, fmt.Sprintf("  %s [$%s]: ", cat, cur.StringFixed(0))); v != "" {
			if d, err := parseAmount(v); err == nil {
				flow.Answers.CategoryLimits[cat] = d
			}
		}
	}

	if err := flow.Submit(a.store); err != nil {
		fmt.Fprintf(a.out, "Setup failed: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "All set! Your financial briefing is ready.")
}

func (a *App) ask(scanner *bufio.Scanner, prompt string) string {
	fmt.Fprint(a.out, prompt)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
