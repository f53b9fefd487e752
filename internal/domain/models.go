package domain

import "time"

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

type PropertyType string

const (
	TypeResidential PropertyType = "Residential"
	TypeCommercial  PropertyType = "Commercial"
	TypeIndustrial  PropertyType = "Industrial"
	TypeRetail      PropertyType = "Retail"
)

type RiskTolerance string

const (
	ToleranceConservative RiskTolerance = "Conservative"
	ToleranceBalanced     RiskTolerance = "Balanced"
	ToleranceAggressive   RiskTolerance = "Aggressive"
)

type InvestmentGoal string

const (
	GoalRentalIncome        InvestmentGoal = "Rental Income"
	GoalCapitalAppreciation InvestmentGoal = "Capital Appreciation"
)

// PricePoint is one month of a property's historical price series.
type PricePoint struct {
	Month string  `json:"month"`
	Price float64 `json:"price"`
}

// Property is one investable asset. Records are seeded once at startup and
// never mutated; all metrics are precomputed.
type Property struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Location         string       `json:"location"`
	City             string       `json:"city"`
	State            string       `json:"state"`
	Price            float64      `json:"price"`
	PriceHistory     []PricePoint `json:"priceHistory"`
	RentalYield      float64      `json:"rentalYield"`
	VacancyRate      float64      `json:"vacancyRate"`
	Appreciation     float64      `json:"appreciation"`
	MarketStability  float64      `json:"marketStability"`
	RiskScore        int          `json:"riskScore"`
	OpportunityScore int          `json:"opportunityScore"`
	RiskLevel        RiskLevel    `json:"riskLevel"`
	PropertyType     PropertyType `json:"propertyType"`
	Area             float64      `json:"area"`
	Bedrooms         int          `json:"bedrooms,omitempty"`
	Amenities        []string     `json:"amenities"`
	Description      string       `json:"description"`
	ImageURL         string       `json:"imageUrl,omitempty"`
}

// InvestorProfile holds the single user's investment preferences. Exactly one
// profile exists per process.
type InvestorProfile struct {
	ID                     string         `json:"id"`
	Name                   string         `json:"name"`
	Email                  string         `json:"email"`
	Phone                  string         `json:"phone"`
	Address                string         `json:"address"`
	BudgetMin              float64        `json:"budgetMin"`
	BudgetMax              float64        `json:"budgetMax"`
	RiskTolerance          RiskTolerance  `json:"riskTolerance"`
	InvestmentGoal         InvestmentGoal `json:"investmentGoal"`
	TimelineYears          int            `json:"timeline"`
	PreferredLocations     []string       `json:"preferredLocations"`
	PreferredPropertyTypes []string       `json:"preferredPropertyTypes"`
	CreatedAt              time.Time      `json:"createdAt"`
	UpdatedAt              time.Time      `json:"updatedAt"`
}

type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyError   NotificationType = "error"
)

// Notification is a user-facing event record. New entries start unread and
// are prepended, most recent first.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}

type MatchCategory string

const (
	CategoryBestFit   MatchCategory = "best-fit"
	CategoryMediumFit MatchCategory = "medium-fit"
	CategoryHighRisk  MatchCategory = "high-risk"
)

// MatchResult is one scored property for one profile. Result sets are
// recomputed wholesale per matching run and never persisted.
type MatchResult struct {
	Property   Property      `json:"property"`
	MatchScore int           `json:"matchScore"`
	Category   MatchCategory `json:"category"`
	Reasons    []string      `json:"reasons"`
}

type NotificationPrefs struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

type PrivacyPrefs struct {
	ShareData bool `json:"shareData"`
	Analytics bool `json:"analytics"`
	Marketing bool `json:"marketing"`
}

// Settings is the process-wide preference record.
type Settings struct {
	Language      string            `json:"language"`
	Theme         string            `json:"theme"` // dark|light|system
	Notifications NotificationPrefs `json:"notifications"`
	Privacy       PrivacyPrefs      `json:"privacy"`
}

// DefaultSettings mirrors the preferences a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		Language: "English",
		Theme:    "dark",
		Notifications: NotificationPrefs{
			Email: true,
			Push:  true,
			SMS:   false,
		},
		Privacy: PrivacyPrefs{
			ShareData: false,
			Analytics: true,
			Marketing: false,
		},
	}
}

// DefaultProfile is the fallback when no profile snapshot exists yet.
func DefaultProfile(now time.Time) InvestorProfile {
	return InvestorProfile{
		ID:                     "investor-1",
		BudgetMin:              5_000_000,
		BudgetMax:              10_000_000,
		RiskTolerance:          ToleranceBalanced,
		InvestmentGoal:         GoalRentalIncome,
		TimelineYears:          10,
		PreferredLocations:     []string{},
		PreferredPropertyTypes: []string{},
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}
