// Package store holds the single authoritative UserState with persistence to
// a string-keyed storage slot.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/vivekkutty-vibe/starter-bank-agent/internal/logger"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/models"
)

// Store is the single source of truth for the user's state. Every mutation
// persists the full state to the storage slot; persistence failures are
// logged and swallowed so the in-memory state stays authoritative for the
// rest of the session.
type Store struct {
	mu      sync.Mutex
	state   models.UserState
	storage Storage
}

// Open loads the state from the storage slot, falling back to seed fixtures
// when the slot is empty or unreadable.
func Open(storage Storage) (*Store, error) {
	s := &Store{storage: storage}

	data, ok, err := storage.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to open state: %w", err)
	}
	if !ok {
		s.state = SeedState()
		return s, nil
	}

	var persisted models.UserState
	if err := json.Unmarshal(data, &persisted); err != nil {
		logger.Log.Warn().Err(err).Msg("Persisted state is corrupt, falling back to seed")
		s.state = SeedState()
		return s, nil
	}

	s.state = migrate(persisted)
	return s, nil
}

// State returns a snapshot of the current state. Mutating the snapshot does
// not affect the store.
func (s *Store) State() models.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// FinancialsPatch is a partial update to the financial configuration. Nil
// fields are left untouched.
type FinancialsPatch struct {
	PayFrequency   *models.PayFrequency
	NextPayDate    *string
	IncomeAmount   *decimal.Decimal
	OverallLimit   *decimal.Decimal
	FixedExpenses  []models.FixedExpense
	CategoryLimits map[string]decimal.Decimal
	DailyTarget    *decimal.Decimal
}

// UpdateFinancials shallow-merges the patch into the financial configuration.
// No validation happens here; callers validate before invoking.
func (s *Store) UpdateFinancials(patch FinancialsPatch) models.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()

	fin := &s.state.Financials
	if patch.PayFrequency != nil {
		fin.PayFrequency = *patch.PayFrequency
	}
	if patch.NextPayDate != nil {
		fin.NextPayDate = *patch.NextPayDate
	}
	if patch.IncomeAmount != nil {
		fin.IncomeAmount = *patch.IncomeAmount
	}
	if patch.OverallLimit != nil {
		fin.OverallLimit = *patch.OverallLimit
	}
	if patch.FixedExpenses != nil {
		fin.FixedExpenses = patch.FixedExpenses
	}
	if patch.CategoryLimits != nil {
		fin.CategoryLimits = patch.CategoryLimits
	}
	if patch.DailyTarget != nil {
		fin.DailyTarget = *patch.DailyTarget
	}

	s.save()
	return cloneState(s.state)
}

// CompleteOnboarding marks onboarding as done. There is no path back to the
// setup flow; calling it again is a no-op.
func (s *Store) CompleteOnboarding() models.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Onboarded = true
	s.save()
	return cloneState(s.state)
}

// SetUserName overrides the display name. The migration forces the seed
// profile back on every load, so the override is applied per run, after Open.
// A blank name is a no-op.
func (s *Store) SetUserName(name string) models.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name != "" {
		s.state.User.Name = name
		s.save()
	}
	return cloneState(s.state)
}

// RemoveOffer dismisses the offer with the given id. Unknown ids are a
// silent no-op.
func (s *Store) RemoveOffer(offerID string) models.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Offers[:0:0]
	for _, o := range s.state.Offers {
		if o.ID != offerID {
			kept = append(kept, o)
		}
	}
	s.state.Offers = kept
	s.save()
	return cloneState(s.state)
}

// ResolveOffer executes one of an offer's options by action tag. The offer is
// removed and the option's success message returned. Unknown ids or actions
// leave the state untouched.
func (s *Store) ResolveOffer(offerID, action string) (string, bool) {
	s.mu.Lock()

	offer, found := s.state.FindOffer(offerID)
	if !found {
		s.mu.Unlock()
		return "", false
	}
	opt, found := offer.Option(action)
	if !found {
		s.mu.Unlock()
		return "", false
	}
	s.mu.Unlock()

	s.RemoveOffer(offerID)
	return opt.SuccessMsg, true
}

// save serializes the state into the storage slot. Must be called with the
// lock held.
func (s *Store) save() {
	data, err := json.Marshal(s.state)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Failed to serialize state, continuing in memory")
		return
	}
	if err := s.storage.Write(data); err != nil {
		logger.Log.Warn().Err(err).Msg("Failed to persist state, continuing in memory")
	}
}

// cloneState deep-copies the slices and maps so snapshots are independent.
func cloneState(in models.UserState) models.UserState {
	out := in

	out.Transactions = append([]models.Transaction(nil), in.Transactions...)
	out.Offers = append([]models.Offer(nil), in.Offers...)
	for i := range out.Offers {
		out.Offers[i].Conversation = append([]models.Turn(nil), in.Offers[i].Conversation...)
		out.Offers[i].ChartData = append([]float64(nil), in.Offers[i].ChartData...)
	}

	out.Agents = make(map[string]models.Agent, len(in.Agents))
	for k, v := range in.Agents {
		out.Agents[k] = v
	}

	out.Financials.FixedExpenses = append([]models.FixedExpense(nil), in.Financials.FixedExpenses...)
	out.Financials.CategoryLimits = make(map[string]decimal.Decimal, len(in.Financials.CategoryLimits))
	for k, v := range in.Financials.CategoryLimits {
		out.Financials.CategoryLimits[k] = v
	}

	return out
}
