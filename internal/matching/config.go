package matching

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the point weights and thresholds of the scoring model.
// The four bands add up to 100 attainable points.
type Config struct {
	BudgetWithinPoints  int     `json:"budget_within_points"`
	BudgetStretchPoints int     `json:"budget_stretch_points"`
	BudgetStretchFactor float64 `json:"budget_stretch_factor"`

	GoalPoints            int     `json:"goal_points"`
	GoalBaselinePoints    int     `json:"goal_baseline_points"`
	YieldThreshold        float64 `json:"yield_threshold"`
	AppreciationThreshold float64 `json:"appreciation_threshold"`

	RiskPoints     int `json:"risk_points"`
	LocationPoints int `json:"location_points"`

	BestFitMinScore        int `json:"best_fit_min_score"`
	HighRiskMinOpportunity int `json:"high_risk_min_opportunity"`
}

// DefaultConfig returns the production scoring model: 40/30/20/10 bands,
// a 10% budget stretch, and the 80/85 category cutoffs.
func DefaultConfig() Config {
	return Config{
		BudgetWithinPoints:  40,
		BudgetStretchPoints: 20,
		BudgetStretchFactor: 1.1,

		GoalPoints:            30,
		GoalBaselinePoints:    15,
		YieldThreshold:        6,
		AppreciationThreshold: 10,

		RiskPoints:     20,
		LocationPoints: 10,

		BestFitMinScore:        80,
		HighRiskMinOpportunity: 85,
	}
}

// LoadConfigFromFile loads scoring config from a JSON file, falling back to
// defaults on read errors.
func LoadConfigFromFile(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read matching config: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal matching config: %w", err)
	}
	return cfg, nil
}
