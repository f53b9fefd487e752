package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investlens/investlens/internal/domain"
)

func balancedProfile() domain.InvestorProfile {
	return domain.InvestorProfile{
		BudgetMin:          5_000_000,
		BudgetMax:          10_000_000,
		RiskTolerance:      domain.ToleranceBalanced,
		InvestmentGoal:     domain.GoalRentalIncome,
		PreferredLocations: []string{},
	}
}

func property(id string, price float64) domain.Property {
	return domain.Property{
		ID:          id,
		Price:       price,
		RentalYield: 7,
		RiskLevel:   domain.RiskMedium,
		State:       "Maharashtra",
	}
}

func TestMatchPerfectScore(t *testing.T) {
	e := NewEngine(DefaultConfig())

	results := e.Match(balancedProfile(), []domain.Property{property("p1", 8_000_000)})
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 100, r.MatchScore)
	assert.Equal(t, domain.CategoryBestFit, r.Category)
	assert.Equal(t, []string{
		"Within budget range",
		"High rental yield",
		"Risk profile aligned",
		"Preferred location",
	}, r.Reasons)
}

func TestMatchBudgetBands(t *testing.T) {
	e := NewEngine(DefaultConfig())
	profile := balancedProfile()
	// Neutralize the other bands: low yield, High risk, location mismatch.
	base := domain.Property{RentalYield: 2, RiskLevel: domain.RiskHigh, State: "Kerala"}
	profile.PreferredLocations = []string{"Maharashtra"}

	cases := []struct {
		name  string
		price float64
		want  int
	}{
		{"within range", 8_000_000, 40 + 15},
		{"at max", 10_000_000, 40 + 15},
		{"at min", 5_000_000, 40 + 15},
		{"stretch band", 10_500_000, 20 + 15},
		{"at 1.1x max", 11_000_000, 20 + 15},
		{"beyond stretch", 11_000_001, 0 + 15},
		{"below min", 4_000_000, 20 + 15}, // below min still satisfies the stretch comparison
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			p.Price = tc.price
			results := e.Match(profile, []domain.Property{p})
			require.Len(t, results, 1)
			assert.Equal(t, tc.want, results[0].MatchScore)
		})
	}
}

func TestMatchGoalBaseline(t *testing.T) {
	e := NewEngine(DefaultConfig())

	profile := balancedProfile()
	profile.InvestmentGoal = domain.GoalCapitalAppreciation

	p := property("p1", 8_000_000)
	p.Appreciation = 4 // misses the appreciation threshold
	results := e.Match(profile, []domain.Property{p})
	require.Len(t, results, 1)

	// 40 budget + 15 baseline + 20 risk + 10 location; no goal reason recorded.
	assert.Equal(t, 85, results[0].MatchScore)
	assert.NotContains(t, results[0].Reasons, "High rental yield")
	assert.NotContains(t, results[0].Reasons, "Strong appreciation potential")
}

func TestMatchAppreciationGoal(t *testing.T) {
	e := NewEngine(DefaultConfig())

	profile := balancedProfile()
	profile.InvestmentGoal = domain.GoalCapitalAppreciation

	p := property("p1", 8_000_000)
	p.Appreciation = 12.5
	results := e.Match(profile, []domain.Property{p})
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Reasons, "Strong appreciation potential")
	assert.Equal(t, 100, results[0].MatchScore)
}

func TestMatchRiskAlignment(t *testing.T) {
	e := NewEngine(DefaultConfig())

	cases := []struct {
		tolerance domain.RiskTolerance
		level     domain.RiskLevel
		aligned   bool
	}{
		{domain.ToleranceConservative, domain.RiskLow, true},
		{domain.ToleranceConservative, domain.RiskMedium, false},
		{domain.ToleranceConservative, domain.RiskHigh, false},
		{domain.ToleranceBalanced, domain.RiskLow, true},
		{domain.ToleranceBalanced, domain.RiskMedium, true},
		{domain.ToleranceBalanced, domain.RiskHigh, false},
		{domain.ToleranceAggressive, domain.RiskHigh, true},
	}
	for _, tc := range cases {
		profile := balancedProfile()
		profile.RiskTolerance = tc.tolerance

		p := property("p1", 8_000_000)
		p.RiskLevel = tc.level
		results := e.Match(profile, []domain.Property{p})
		require.Len(t, results, 1)

		if tc.aligned {
			assert.Contains(t, results[0].Reasons, "Risk profile aligned", "%s x %s", tc.tolerance, tc.level)
		} else {
			assert.NotContains(t, results[0].Reasons, "Risk profile aligned", "%s x %s", tc.tolerance, tc.level)
		}
	}
}

func TestMatchLocationPreference(t *testing.T) {
	e := NewEngine(DefaultConfig())

	profile := balancedProfile()
	profile.PreferredLocations = []string{"Karnataka", "Telangana"}

	p := property("p1", 8_000_000) // Maharashtra
	results := e.Match(profile, []domain.Property{p})
	require.Len(t, results, 1)
	assert.Equal(t, 90, results[0].MatchScore)
	assert.NotContains(t, results[0].Reasons, "Preferred location")

	profile.PreferredLocations = []string{"Maharashtra"}
	results = e.Match(profile, []domain.Property{p})
	assert.Equal(t, 100, results[0].MatchScore)
}

func TestMatchHighRiskCategory(t *testing.T) {
	e := NewEngine(DefaultConfig())

	// 1.15x budget max: outside the stretch band entirely.
	p := domain.Property{
		ID:               "p1",
		Price:            11_500_000,
		RentalYield:      2,
		RiskLevel:        domain.RiskHigh,
		OpportunityScore: 90,
		State:            "Maharashtra",
	}
	results := e.Match(balancedProfile(), []domain.Property{p})
	require.Len(t, results, 1)

	// 0 budget + 15 baseline + 0 risk (Balanced excludes High) + 10 location.
	assert.Equal(t, 25, results[0].MatchScore)
	assert.Equal(t, domain.CategoryHighRisk, results[0].Category)
}

func TestHighScoreWithHighRiskIsNeverBestFit(t *testing.T) {
	e := NewEngine(DefaultConfig())

	profile := balancedProfile()
	profile.RiskTolerance = domain.ToleranceAggressive

	p := property("p1", 8_000_000)
	p.RiskLevel = domain.RiskHigh
	p.OpportunityScore = 95
	results := e.Match(profile, []domain.Property{p})
	require.Len(t, results, 1)

	assert.GreaterOrEqual(t, results[0].MatchScore, 80)
	assert.Equal(t, domain.CategoryHighRisk, results[0].Category)
}

func TestMediumFitFallback(t *testing.T) {
	e := NewEngine(DefaultConfig())

	p := property("p1", 20_000_000) // far over budget
	p.RentalYield = 2
	p.RiskLevel = domain.RiskHigh
	p.OpportunityScore = 50 // not enough opportunity for high-risk
	results := e.Match(balancedProfile(), []domain.Property{p})
	require.Len(t, results, 1)
	assert.Equal(t, domain.CategoryMediumFit, results[0].Category)
}

func TestMatchCoversEveryPropertyOnce(t *testing.T) {
	e := NewEngine(DefaultConfig())

	catalog := []domain.Property{
		property("a", 8_000_000),
		property("b", 25_000_000),
		property("c", 6_000_000),
		property("d", 10_500_000),
	}
	results := e.Match(balancedProfile(), catalog)
	require.Len(t, results, len(catalog))

	seen := map[string]bool{}
	for _, r := range results {
		assert.False(t, seen[r.Property.ID], "property %s appears twice", r.Property.ID)
		seen[r.Property.ID] = true
		assert.GreaterOrEqual(t, r.MatchScore, 0)
		assert.LessOrEqual(t, r.MatchScore, 100)
	}
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].MatchScore, results[i].MatchScore)
	}
}

func TestMatchStableOrderForTies(t *testing.T) {
	e := NewEngine(DefaultConfig())

	// Identical metrics, distinct ids: scores tie, catalog order must hold.
	catalog := []domain.Property{
		property("first", 8_000_000),
		property("second", 8_000_000),
		property("third", 8_000_000),
	}
	results := e.Match(balancedProfile(), catalog)
	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].Property.ID)
	assert.Equal(t, "second", results[1].Property.ID)
	assert.Equal(t, "third", results[2].Property.ID)
}

func TestMatchIdempotent(t *testing.T) {
	e := NewEngine(DefaultConfig())

	catalog := []domain.Property{
		property("a", 8_000_000),
		property("b", 25_000_000),
		property("c", 10_500_000),
	}
	first := e.Match(balancedProfile(), catalog)
	second := e.Match(balancedProfile(), catalog)
	assert.Equal(t, first, second)
}

func TestMatchEmptyCatalog(t *testing.T) {
	e := NewEngine(DefaultConfig())
	results := e.Match(balancedProfile(), nil)
	assert.Empty(t, results)
}

func TestBestFitCount(t *testing.T) {
	results := []domain.MatchResult{
		{Category: domain.CategoryBestFit},
		{Category: domain.CategoryMediumFit},
		{Category: domain.CategoryBestFit},
		{Category: domain.CategoryHighRisk},
	}
	assert.Equal(t, 2, BestFitCount(results))
}
