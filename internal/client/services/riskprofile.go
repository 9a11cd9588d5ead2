package services

import (
	"context"
	"sync"

	"github.com/fundscope/fundscope-cli/internal/client/api"
	"github.com/fundscope/fundscope-cli/internal/client/models"
)

// RiskProfileService holds the questionnaire state while the user walks
// through the wizard steps and submits the assembled request. Sections are
// replaced wholesale per step; subscribers see every change.
type RiskProfileService struct {
	api api.Client

	mu    sync.RWMutex
	state models.RiskProfileRequest
	subs  map[int]chan models.RiskProfileRequest
	next  int
}

func NewRiskProfileService(apiClient api.Client) *RiskProfileService {
	return &RiskProfileService{
		api:   apiClient,
		state: defaultProfile(),
		subs:  make(map[int]chan models.RiskProfileRequest),
	}
}

func defaultProfile() models.RiskProfileRequest {
	return models.RiskProfileRequest{
		Preferences: &models.PreferencesData{PreferredInvestmentStyle: "PASSIVE"},
	}
}

// Current returns a copy of the assembled request.
func (s *RiskProfileService) Current() models.RiskProfileRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers a wizard-state subscriber; the channel closes when
// ctx ends.
func (s *RiskProfileService) Subscribe(ctx context.Context) <-chan models.RiskProfileRequest {
	ch := make(chan models.RiskProfileRequest, 16)

	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

func (s *RiskProfileService) patch(fn func(*models.RiskProfileRequest)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state
	for _, ch := range s.subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *RiskProfileService) UpdateDemographics(d models.DemographicsData) {
	s.patch(func(r *models.RiskProfileRequest) { r.Demographics = d })
}

func (s *RiskProfileService) UpdateFinancials(f models.FinancialsData) {
	s.patch(func(r *models.RiskProfileRequest) { r.Financials = f })
}

func (s *RiskProfileService) UpdateBehavioral(b models.BehavioralData) {
	s.patch(func(r *models.RiskProfileRequest) { r.Behavioral = b })
}

func (s *RiskProfileService) UpdateGoals(g models.GoalsData) {
	s.patch(func(r *models.RiskProfileRequest) { r.Goals = g })
}

func (s *RiskProfileService) UpdatePreferences(p models.PreferencesData) {
	s.patch(func(r *models.RiskProfileRequest) { r.Preferences = &p })
}

// Reset restores the initial wizard state.
func (s *RiskProfileService) Reset() {
	s.patch(func(r *models.RiskProfileRequest) { *r = defaultProfile() })
}

// Submit posts the assembled questionnaire. The response arrives in one of
// several envelopes; the API client unwraps them and fails hard on shapes
// it does not recognize.
func (s *RiskProfileService) Submit(ctx context.Context) (*models.RiskProfileResponse, error) {
	return s.api.SubmitRiskProfile(ctx, s.Current())
}
