package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fundscope/fundscope-cli/internal/client/models"
)

// Profile walks the user through the risk-profile wizard step by step and
// submits the assembled questionnaire. Each step replaces its section in the
// wizard state, so rerunning the command starts from the previous answers.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireAuth("/onboarding") {
		return nil
	}

	fmt.Println("Risk profile wizard. Press Enter to keep a default.")

	if err := a.profileDemographics(); err != nil {
		return err
	}
	if err := a.profileFinancials(); err != nil {
		return err
	}
	if err := a.profileBehavioral(); err != nil {
		return err
	}
	if err := a.profileGoals(); err != nil {
		return err
	}
	if err := a.profilePreferences(); err != nil {
		return err
	}

	resp, err := a.profileService.Submit(ctx)
	if err != nil {
		fmt.Println("Could not compute your risk profile:", err)
		return err
	}

	renderRiskProfile(resp)
	return nil
}

func (a *App) profileDemographics() error {
	age, err := GetInt(a.reader, "Your age", 30, os.Stdout)
	if err != nil {
		return err
	}
	income, err := GetChoice(a.reader, "Annual income range",
		[]string{"BELOW_5L", "5L_10L", "10L_25L", "ABOVE_25L"}, "5L_10L", os.Stdout)
	if err != nil {
		return err
	}
	dependents, err := GetInt(a.reader, "Number of dependents", 0, os.Stdout)
	if err != nil {
		return err
	}
	a.profileService.UpdateDemographics(models.DemographicsData{
		Age:         age,
		IncomeRange: income,
		Dependents:  dependents,
	})
	return nil
}

func (a *App) profileFinancials() error {
	emergency, err := GetInt(a.reader, "Emergency fund (months of expenses)", 3, os.Stdout)
	if err != nil {
		return err
	}
	emi, err := GetFloat(a.reader, "Existing monthly EMI for loans", 0, os.Stdout)
	if err != nil {
		return err
	}
	knowledge, err := GetChoice(a.reader, "Financial knowledge",
		[]string{"BEGINNER", "INTERMEDIATE", "ADVANCED"}, "BEGINNER", os.Stdout)
	if err != nil {
		return err
	}
	monthly, err := GetFloat(a.reader, "Monthly investment amount", 10000, os.Stdout)
	if err != nil {
		return err
	}
	a.profileService.UpdateFinancials(models.FinancialsData{
		EmergencyFundMonths:     emergency,
		ExistingEmiForLoans:     emi,
		FinancialKnowledge:      knowledge,
		MonthlyInvestmentAmount: monthly,
	})
	return nil
}

func (a *App) profileBehavioral() error {
	reaction, err := GetChoice(a.reader, "If the market drops 20%, you would",
		[]string{"SELL_EVERYTHING", "SELL_SOME", "HOLD", "BUY_MORE"}, "HOLD", os.Stdout)
	if err != nil {
		return err
	}
	experience, err := GetChoice(a.reader, "Investment experience",
		[]string{"NONE", "LESS_THAN_3Y", "3Y_TO_10Y", "MORE_THAN_10Y"}, "NONE", os.Stdout)
	if err != nil {
		return err
	}
	a.profileService.UpdateBehavioral(models.BehavioralData{
		MarketDropReaction:         reaction,
		InvestmentPeriodExperience: experience,
	})
	return nil
}

func (a *App) profileGoals() error {
	goal, err := GetChoice(a.reader, "Primary goal",
		[]string{"RETIREMENT", "WEALTH_CREATION", "CHILD_EDUCATION", "HOUSE", "EMERGENCY"}, "WEALTH_CREATION", os.Stdout)
	if err != nil {
		return err
	}
	horizon, err := GetInt(a.reader, "Time horizon (years)", 10, os.Stdout)
	if err != nil {
		return err
	}
	target, err := GetFloat(a.reader, "Target amount", 0, os.Stdout)
	if err != nil {
		return err
	}
	a.profileService.UpdateGoals(models.GoalsData{
		PrimaryGoal:      goal,
		TimeHorizonYears: horizon,
		TargetAmount:     target,
	})
	return nil
}

func (a *App) profilePreferences() error {
	style, err := GetChoice(a.reader, "Preferred investment style",
		[]string{"PASSIVE", "ACTIVE"}, "PASSIVE", os.Stdout)
	if err != nil {
		return err
	}
	tax, err := GetBool(a.reader, "Do you need tax-saving funds?", false, os.Stdout)
	if err != nil {
		return err
	}
	a.profileService.UpdatePreferences(models.PreferencesData{
		PreferredInvestmentStyle: style,
		TaxSavingNeeded:          tax,
	})
	return nil
}

func renderRiskProfile(resp *models.RiskProfileResponse) {
	fmt.Printf("\nRisk profile: %s (score %.0f)\n", resp.RiskProfile.Level, resp.RiskProfile.Score)
	if resp.RiskProfile.Rationale != "" {
		fmt.Println(resp.RiskProfile.Rationale)
	}
	fmt.Printf("Suggested allocation: %.0f%% equity / %.0f%% debt / %.0f%% gold\n",
		resp.AssetAllocation.Equity, resp.AssetAllocation.Debt, resp.AssetAllocation.Gold)

	for _, rec := range resp.Recommendations {
		fmt.Printf("\n%s - %.0f%% (%.2f)\n", rec.AllocationCategory, rec.AllocationPercent, rec.Amount)
		for _, fund := range rec.Funds {
			fmt.Printf("  - %s (%s)", fund.Name, fund.Category)
			if fund.Reason != "" {
				fmt.Printf(": %s", fund.Reason)
			}
			fmt.Println()
		}
	}
}
