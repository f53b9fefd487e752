package matching

import (
	"sort"

	"github.com/investlens/investlens/internal/domain"
)

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Match scores every property against the profile and returns one result per
// property, ranked by score descending. Ties keep catalog order, so the
// output is deterministic for unchanged input.
func (e *Engine) Match(profile domain.InvestorProfile, properties []domain.Property) []domain.MatchResult {
	out := make([]domain.MatchResult, 0, len(properties))
	for _, p := range properties {
		score, reasons := e.scoreOne(profile, p)
		out = append(out, domain.MatchResult{
			Property:   p,
			MatchScore: score,
			Category:   e.categorize(score, p),
			Reasons:    reasons,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	return out
}

func (e *Engine) scoreOne(profile domain.InvestorProfile, p domain.Property) (int, []string) {
	score := 0
	var reasons []string

	// Budget fit, max 40.
	switch {
	case p.Price >= profile.BudgetMin && p.Price <= profile.BudgetMax:
		score += e.cfg.BudgetWithinPoints
		reasons = append(reasons, "Within budget range")
	case p.Price <= profile.BudgetMax*e.cfg.BudgetStretchFactor:
		score += e.cfg.BudgetStretchPoints
		reasons = append(reasons, "Slightly above budget")
	}

	// Goal fit, max 30. A missed goal still earns the baseline, so goal
	// mismatch can never cost more than 15 points.
	switch {
	case profile.InvestmentGoal == domain.GoalRentalIncome && p.RentalYield > e.cfg.YieldThreshold:
		score += e.cfg.GoalPoints
		reasons = append(reasons, "High rental yield")
	case profile.InvestmentGoal == domain.GoalCapitalAppreciation && p.Appreciation > e.cfg.AppreciationThreshold:
		score += e.cfg.GoalPoints
		reasons = append(reasons, "Strong appreciation potential")
	default:
		score += e.cfg.GoalBaselinePoints
	}

	// Risk fit, max 20.
	if riskAligned(profile.RiskTolerance, p.RiskLevel) {
		score += e.cfg.RiskPoints
		reasons = append(reasons, "Risk profile aligned")
	}

	// Location fit, max 10. No preference means every state qualifies.
	if len(profile.PreferredLocations) == 0 || containsState(profile.PreferredLocations, p.State) {
		score += e.cfg.LocationPoints
		reasons = append(reasons, "Preferred location")
	}

	return score, reasons
}

func (e *Engine) categorize(score int, p domain.Property) domain.MatchCategory {
	if score >= e.cfg.BestFitMinScore && p.RiskLevel != domain.RiskHigh {
		return domain.CategoryBestFit
	}
	if p.RiskLevel == domain.RiskHigh && p.OpportunityScore > e.cfg.HighRiskMinOpportunity {
		return domain.CategoryHighRisk
	}
	return domain.CategoryMediumFit
}

func riskAligned(tolerance domain.RiskTolerance, level domain.RiskLevel) bool {
	switch tolerance {
	case domain.ToleranceConservative:
		return level == domain.RiskLow
	case domain.ToleranceBalanced:
		return level != domain.RiskHigh
	case domain.ToleranceAggressive:
		return true
	}
	return false
}

func containsState(states []string, state string) bool {
	for _, s := range states {
		if s == state {
			return true
		}
	}
	return false
}

// BestFitCount reports how many results landed in the best-fit category.
func BestFitCount(results []domain.MatchResult) int {
	n := 0
	for _, r := range results {
		if r.Category == domain.CategoryBestFit {
			n++
		}
	}
	return n
}
