package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fundscope/fundscope-cli/internal/client/models"
)

// AddFund prompts for one fund selection. A fund is named either by id or by
// name, never both; the weight is a percentage of the portfolio.
func (a *App) AddFund(ctx context.Context) error {
	if !a.requireAuth("/portfolio") {
		return nil
	}

	id, err := getSimpleText(a.reader, "Fund id (leave empty to search by name)", os.Stdout)
	if err != nil {
		return err
	}
	var name string
	if id == "" {
		name, err = getSimpleText(a.reader, "Fund name", os.Stdout)
		if err != nil {
			return err
		}
	}
	weight, err := GetFloat(a.reader, "Weight (percent)", 0, os.Stdout)
	if err != nil {
		return err
	}

	item := models.ManualSelectionItem{FundID: id, FundName: name, WeightPct: weight}
	if err := a.portfolioService.Add(item); err != nil {
		fmt.Println("Not added:", err)
		return err
	}
	fmt.Printf("Added. Total weight: %.0f%%\n", a.portfolioService.TotalWeight())
	return nil
}

// ListFunds prints the current selection.
func (a *App) ListFunds(ctx context.Context) error {
	if !a.requireAuth("/portfolio") {
		return nil
	}

	selections := a.portfolioService.Selections()
	if len(selections) == 0 {
		fmt.Println("No funds selected yet. Use addfund.")
		return nil
	}
	for i, item := range selections {
		ref := item.FundID
		if ref == "" {
			ref = item.FundName
		}
		fmt.Printf("%d. %s - %.0f%%\n", i+1, ref, item.WeightPct)
	}
	fmt.Printf("Total weight: %.0f%%\n", a.portfolioService.TotalWeight())
	return nil
}

// ClearFunds drops the current selection.
func (a *App) ClearFunds(ctx context.Context) error {
	if !a.requireAuth("/portfolio") {
		return nil
	}
	a.portfolioService.Clear()
	fmt.Println("Selection cleared.")
	return nil
}

// SubmitFunds sends the selection for diagnosis and renders the result.
func (a *App) SubmitFunds(ctx context.Context) error {
	if !a.requireAuth("/portfolio") {
		return nil
	}

	resp, err := a.portfolioService.Submit(ctx)
	if err != nil {
		fmt.Println("Submit failed:", err)
		return err
	}

	for _, result := range resp.Results {
		ref := result.InputFundID
		if ref == "" {
			ref = result.InputFundName
		}
		fmt.Printf("%s: %s", ref, result.Status)
		if result.Message != "" {
			fmt.Printf(" (%s)", result.Message)
		}
		fmt.Println()
	}

	summary := resp.Portfolio.Summary
	fmt.Printf("\nPortfolio: %d holdings, %.0f%% allocated\n", summary.TotalHoldings, summary.TotalWeightPct)
	for _, h := range resp.Portfolio.Holdings {
		fmt.Printf("  - %s (%s) %.0f%% nav %.2f\n", h.FundName, h.FundCategory, h.WeightPct, h.CurrentNav)
	}

	if resp.Analysis != nil {
		renderPortfolioHealth(resp.Analysis)
	}
	return nil
}

func renderPortfolioHealth(h *models.PortfolioHealth) {
	fmt.Printf("\nDiversification score: %.0f (%s sector concentration, overlap %s)\n",
		h.DiversificationScore, h.SectorConcentration, h.OverlapStatus)

	if len(h.TopOverlappingStocks) > 0 {
		fmt.Println("Top overlapping stocks:")
		for _, stock := range h.TopOverlappingStocks {
			fmt.Printf("  - %s %.1f%% across %d funds\n", stock.StockName, stock.TotalWeight, stock.FundCount)
		}
	}

	for _, sim := range h.FundSimilarities {
		fmt.Printf("  %s vs %s: %.0f%% stock overlap\n", sim.FundA, sim.FundB, sim.StockOverlapPct)
	}

	wp := h.WealthProjection
	if wp.ProjectedYears > 0 {
		fmt.Printf("Projection over %d years (invested %.0f): %.0f likely, %.0f–%.0f range\n",
			wp.ProjectedYears, wp.TotalInvestment, wp.LikelyScenarioAmount,
			wp.PessimisticScenarioAmount, wp.OptimisticScenarioAmount)
	}
}
