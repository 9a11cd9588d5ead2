package services

import (
	"context"
	"errors"
	"sync"

	"github.com/fundscope/fundscope-cli/internal/client/api"
	"github.com/fundscope/fundscope-cli/internal/client/models"
)

var (
	// ErrFundRef rejects selections naming both or neither of id/name.
	ErrFundRef = errors.New("exactly one of fund id or fund name must be set")
	// ErrWeightRange rejects weights outside 1-100 percent.
	ErrWeightRange = errors.New("weight must be between 1 and 100 percent")
	// ErrTotalWeight rejects portfolios whose weights sum past 100 percent.
	ErrTotalWeight = errors.New("total weight exceeds 100 percent")
	// ErrNoSelections rejects submitting an empty portfolio.
	ErrNoSelections = errors.New("no funds selected")
)

// PortfolioService accumulates a hand-picked fund portfolio and submits it
// for diagnosis (overlap, diversification, wealth projection).
type PortfolioService struct {
	api api.Client

	mu         sync.RWMutex
	selections []models.ManualSelectionItem
}

func NewPortfolioService(apiClient api.Client) *PortfolioService {
	return &PortfolioService{api: apiClient}
}

// Add validates and appends one selection row.
func (s *PortfolioService) Add(item models.ManualSelectionItem) error {
	if (item.FundID == "") == (item.FundName == "") {
		return ErrFundRef
	}
	if item.WeightPct < 1 || item.WeightPct > 100 {
		return ErrWeightRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.totalWeightLocked()+item.WeightPct > 100 {
		return ErrTotalWeight
	}
	s.selections = append(s.selections, item)
	return nil
}

// Selections returns a copy of the current rows.
func (s *PortfolioService) Selections() []models.ManualSelectionItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ManualSelectionItem, len(s.selections))
	copy(out, s.selections)
	return out
}

// TotalWeight sums the selected weights in percent.
func (s *PortfolioService) TotalWeight() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalWeightLocked()
}

func (s *PortfolioService) totalWeightLocked() float64 {
	var total float64
	for _, item := range s.selections {
		total += item.WeightPct
	}
	return total
}

// Clear drops all rows.
func (s *PortfolioService) Clear() {
	s.mu.Lock()
	s.selections = nil
	s.mu.Unlock()
}

// Submit posts the portfolio for diagnosis. The selection list survives a
// failed submit so the user can retry.
func (s *PortfolioService) Submit(ctx context.Context) (*models.ManualSelectionResponse, error) {
	selections := s.Selections()
	if len(selections) == 0 {
		return nil, ErrNoSelections
	}
	return s.api.SubmitManualSelection(ctx, models.ManualSelectionRequest{Selections: selections})
}
