package catalog

import "github.com/investlens/investlens/internal/domain"

// Seed returns the built-in property dataset. The slice is freshly allocated
// per call so callers can never mutate the canonical data.
func Seed() []domain.Property {
	return []domain.Property{
		{
			ID:       "prop-001",
			Name:     "Lodha Sea Breeze",
			Location: "Worli Sea Face",
			City:     "Mumbai",
			State:    "Maharashtra",
			Price:    8_000_000,
			PriceHistory: []domain.PricePoint{
				{Month: "Jan", Price: 7_400_000},
				{Month: "Feb", Price: 7_520_000},
				{Month: "Mar", Price: 7_650_000},
				{Month: "Apr", Price: 7_780_000},
				{Month: "May", Price: 7_900_000},
				{Month: "Jun", Price: 8_000_000},
			},
			RentalYield:      7.0,
			VacancyRate:      4.5,
			Appreciation:     8.2,
			MarketStability:  88,
			RiskScore:        35,
			OpportunityScore: 91,
			RiskLevel:        domain.RiskMedium,
			PropertyType:     domain.TypeResidential,
			Area:             1250,
			Bedrooms:         3,
			Amenities:        []string{"Gym", "Swimming Pool", "Covered Parking", "24x7 Security"},
			Description:      "Sea-facing residential tower with strong rental demand from corporate tenants.",
		},
		{
			ID:       "prop-002",
			Name:     "Prestige Tech Park Annex",
			Location: "Outer Ring Road",
			City:     "Bangalore",
			State:    "Karnataka",
			Price:    12_500_000,
			PriceHistory: []domain.PricePoint{
				{Month: "Jan", Price: 11_200_000},
				{Month: "Feb", Price: 11_450_000},
				{Month: "Mar", Price: 11_800_000},
				{Month: "Apr", Price: 12_000_000},
				{Month: "May", Price: 12_300_000},
				{Month: "Jun", Price: 12_500_000},
			},
			RentalYield:      8.4,
			VacancyRate:      6.0,
			Appreciation:     11.5,
			MarketStability:  81,
			RiskScore:        48,
			OpportunityScore: 94,
			RiskLevel:        domain.RiskMedium,
			PropertyType:     domain.TypeCommercial,
			Area:             3400,
			Amenities:        []string{"Grade A Fitout", "Power Backup", "Food Court"},
			Description:      "Leased office block adjoining a major IT corridor with long-tenure tenants.",
		},
		{
			ID:       "prop-003",
			Name:     "Emerald Heights",
			Location: "Gachibowli",
			City:     "Hyderabad",
			State:    "Telangana",
			Price:    6_200_000,
			PriceHistory: []domain.PricePoint{
				{Month: "Jan", Price: 5_650_000},
				{Month: "Feb", Price: 5_760_000},
				{Month: "Mar", Price: 5_880_000},
				{Month: "Apr", Price: 6_000_000},
				{Month: "May", Price: 6_100_000},
				{Month: "Jun", Price: 6_200_000},
			},
			RentalYield:      6.5,
			VacancyRate:      5.5,
			Appreciation:     12.8,
			MarketStability:  84,
			RiskScore:        30,
			OpportunityScore: 89,
			RiskLevel:        domain.RiskLow,
			PropertyType:     domain.TypeResidential,
			Area:             1480,
			Bedrooms:         3,
			Amenities:        []string{"Clubhouse", "Children's Play Area", "Covered Parking"},
			Description:      "Gated community apartments in the financial district with steady appreciation.",
		},
		{
			ID:       "prop-004",
			Name:     "Phoenix Retail Arcade",
			Location: "Lower Parel",
			City:     "Mumbai",
			State:    "Maharashtra",
			Price:    18_000_000,
			PriceHistory: []domain.PricePoint{
				{Month: "Jan", Price: 16_100_000},
				{Month: "Feb", Price: 16_500_000},
				{Month: "Mar", Price: 17_000_000},
				{Month: "Apr", Price: 17_300_000},
				{Month: "May", Price: 17_700_000},
				{Month: "Jun", Price: 18_000_000},
			},
			RentalYield:      9.2,
			VacancyRate:      9.0,
			Appreciation:     14.0,
			MarketStability:  62,
			RiskScore:        78,
			OpportunityScore: 92,
			RiskLevel:        domain.RiskHigh,
			PropertyType:     domain.TypeRetail,
			Area:             2100,
			Amenities:        []string{"High Street Frontage", "Valet Parking"},
			Description:      "High-street retail unit with premium yields and footfall-driven volatility.",
		},
		{
			ID:       "prop-005",
			Name:     "DLF Cyber Court",
			Location: "DLF Cyber City",
			City:     "Gurgaon",
			State:    "Haryana",
			Price:    9_800_000,
			PriceHistory: []domain.PricePoint{
				{Month: "Jan", Price: 9_100_000},
				{Month: "Feb", Price: 9_200_000},
				{Month: "Mar", Price: 9_350_000},
				{Month: "Apr", Price: 9_500_000},
				{Month: "May", Price: 9_650_000},
				{Month: "Jun", Price: 9_800_000},
			},
			RentalYield:      7.8,
			VacancyRate:      7.5,
			Appreciation:     9.6,
			MarketStability:  76,
			RiskScore:        52,
			OpportunityScore: 86,
			RiskLevel:        domain.RiskMedium,
			PropertyType:     domain.TypeCommercial,
			Area:             1900,
			Amenities:        []string{"Metro Connectivity", "Power Backup", "Cafeteria"},
			Description:      "Pre-leased office space in the NCR's prime commercial corridor.",
		},
		{
			ID:       "prop-006",
			Name:     "Chennai Logistics Hub",
			Location: "Oragadam Industrial Corridor",
			City:     "Chennai",
			State:    "Tamil Nadu",
			Price:    14_200_000,
			PriceHistory: []domain.PricePoint{
				{Month: "Jan", Price: 13_000_000},
				{Month: "Feb", Price: 13_250_000},
				{Month: "Mar", Price: 13_500_000},
				{Month: "Apr", Price: 13_750_000},
				{Month: "May", Price: 14_000_000},
				{Month: "Jun", Price: 14_200_000},
			},
			RentalYield:      8.8,
			VacancyRate:      3.0,
			Appreciation:     7.4,
			MarketStability:  90,
			RiskScore:        28,
			OpportunityScore: 83,
			RiskLevel:        domain.RiskLow,
			PropertyType:     domain.TypeIndustrial,
			Area:             12_000,
			Amenities:        []string{"Dock Levellers", "Fire Suppression", "Highway Access"},
			Description:      "Warehouse asset on a long lease to a third-party logistics operator.",
		},
		{
			ID:       "prop-007",
			Name:     "Godrej Garden Residences",
			Location: "Hinjewadi Phase 2",
			City:     "Pune",
			State:    "Maharashtra",
			Price:    5_400_000,
			PriceHistory: []domain.PricePoint{
				{Month: "Jan", Price: 4_950_000},
				{Month: "Feb", Price: 5_050_000},
				{Month: "Mar", Price: 5_150_000},
				{Month: "Apr", Price: 5_250_000},
				{Month: "May", Price: 5_320_000},
				{Month: "Jun", Price: 5_400_000},
			},
			RentalYield:      5.8,
			VacancyRate:      6.5,
			Appreciation:     13.2,
			MarketStability:  79,
			RiskScore:        38,
			OpportunityScore: 87,
			RiskLevel:        domain.RiskLow,
			PropertyType:     domain.TypeResidential,
			Area:             1100,
			Bedrooms:         2,
			Amenities:        []string{"Landscaped Gardens", "Gym", "Covered Parking"},
			Description:      "Mid-market apartments beside Pune's IT hub, positioned for capital growth.",
		},
		{
			ID:       "prop-008",
			Name:     "Noida Expressway Galleria",
			Location: "Sector 129",
			City:     "Noida",
			State:    "Uttar Pradesh",
			Price:    11_000_000,
			PriceHistory: []domain.PricePoint{
				{Month: "Jan", Price: 9_600_000},
				{Month: "Feb", Price: 9_900_000},
				{Month: "Mar", Price: 10_200_000},
				{Month: "Apr", Price: 10_500_000},
				{Month: "May", Price: 10_800_000},
				{Month: "Jun", Price: 11_000_000},
			},
			RentalYield:      9.6,
			VacancyRate:      12.0,
			Appreciation:     16.5,
			MarketStability:  58,
			RiskScore:        82,
			OpportunityScore: 90,
			RiskLevel:        domain.RiskHigh,
			PropertyType:     domain.TypeRetail,
			Area:             2600,
			Amenities:        []string{"Anchor Tenant", "Multiplex", "Basement Parking"},
			Description:      "New-build retail galleria with aggressive yields in an emerging catchment.",
		},
	}
}
