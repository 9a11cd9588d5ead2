package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fundscope/fundscope-cli/internal/client/models"
)

type selectionAPI struct {
	fakeAPI
	lastReq models.ManualSelectionRequest
	resp    *models.ManualSelectionResponse
	err     error
}

func (f *selectionAPI) SubmitManualSelection(ctx context.Context, req models.ManualSelectionRequest) (*models.ManualSelectionResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func TestPortfolio_AddValidation(t *testing.T) {
	tests := []struct {
		name    string
		item    models.ManualSelectionItem
		wantErr error
	}{
		{
			name:    "neither id nor name",
			item:    models.ManualSelectionItem{WeightPct: 50},
			wantErr: ErrFundRef,
		},
		{
			name:    "both id and name",
			item:    models.ManualSelectionItem{FundID: "f-1", FundName: "Bluechip", WeightPct: 50},
			wantErr: ErrFundRef,
		},
		{
			name:    "weight below range",
			item:    models.ManualSelectionItem{FundID: "f-1", WeightPct: 0.5},
			wantErr: ErrWeightRange,
		},
		{
			name:    "weight above range",
			item:    models.ManualSelectionItem{FundID: "f-1", WeightPct: 101},
			wantErr: ErrWeightRange,
		},
		{
			name: "by id ok",
			item: models.ManualSelectionItem{FundID: "f-1", WeightPct: 60},
		},
		{
			name: "by name ok",
			item: models.ManualSelectionItem{FundName: "Bluechip", WeightPct: 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPortfolioService(&selectionAPI{})
			err := svc.Add(tt.item)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, svc.Selections())
				return
			}
			require.NoError(t, err)
			require.Len(t, svc.Selections(), 1)
		})
	}
}

func TestPortfolio_CumulativeWeightCap(t *testing.T) {
	svc := NewPortfolioService(&selectionAPI{})
	require.NoError(t, svc.Add(models.ManualSelectionItem{FundID: "f-1", WeightPct: 60}))
	require.NoError(t, svc.Add(models.ManualSelectionItem{FundID: "f-2", WeightPct: 40}))
	require.Equal(t, 100.0, svc.TotalWeight())

	err := svc.Add(models.ManualSelectionItem{FundID: "f-3", WeightPct: 1})
	require.ErrorIs(t, err, ErrTotalWeight)
	require.Len(t, svc.Selections(), 2)
}

func TestPortfolio_SubmitEmpty(t *testing.T) {
	svc := NewPortfolioService(&selectionAPI{})
	_, err := svc.Submit(context.Background())
	require.ErrorIs(t, err, ErrNoSelections)
}

func TestPortfolio_SubmitSendsSelections(t *testing.T) {
	apiClient := &selectionAPI{resp: &models.ManualSelectionResponse{
		Portfolio: models.ManualSelectionPortfolio{
			Summary: models.PortfolioSummary{TotalHoldings: 2, TotalWeightPct: 90},
		},
	}}
	svc := NewPortfolioService(apiClient)
	require.NoError(t, svc.Add(models.ManualSelectionItem{FundID: "f-1", WeightPct: 50}))
	require.NoError(t, svc.Add(models.ManualSelectionItem{FundName: "Bluechip", WeightPct: 40}))

	resp, err := svc.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, resp.Portfolio.Summary.TotalHoldings)
	require.Len(t, apiClient.lastReq.Selections, 2)
}

func TestPortfolio_SelectionsSurviveFailedSubmit(t *testing.T) {
	apiClient := &selectionAPI{err: errors.New("backend down")}
	svc := NewPortfolioService(apiClient)
	require.NoError(t, svc.Add(models.ManualSelectionItem{FundID: "f-1", WeightPct: 50}))

	_, err := svc.Submit(context.Background())
	require.Error(t, err)
	require.Len(t, svc.Selections(), 1)

	svc.Clear()
	require.Empty(t, svc.Selections())
	require.Zero(t, svc.TotalWeight())
}
