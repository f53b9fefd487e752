package storage

import (
	"database/sql"
	"encoding/json"

	"github.com/investlens/investlens/internal/domain"
)

// SeedProperties mirrors the catalog into the properties table without
// duplicating by id, so restarts are idempotent.
func (s *Store) SeedProperties(items []domain.Property) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT OR IGNORE INTO properties
(id, name, location, city, state, price, rental_yield, vacancy_rate, appreciation,
 market_stability, risk_score, opportunity_score, risk_level, property_type, area,
 bedrooms, description, amenities_json, price_history_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range items {
		am, _ := json.Marshal(p.Amenities)
		ph, _ := json.Marshal(p.PriceHistory)

		if _, err := stmt.Exec(
			p.ID, p.Name, p.Location, p.City, p.State, p.Price, p.RentalYield,
			p.VacancyRate, p.Appreciation, p.MarketStability, p.RiskScore,
			p.OpportunityScore, string(p.RiskLevel), string(p.PropertyType),
			p.Area, p.Bedrooms, p.Description, string(am), string(ph),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) CountProperties() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM properties`).Scan(&n)
	return n, err
}

// GetProperty reads one mirrored property row.
func (s *Store) GetProperty(id string) (domain.Property, bool, error) {
	var p domain.Property
	var amJSON, phJSON string

	err := s.db.QueryRow(`
SELECT id, name, location, city, state, price, rental_yield, vacancy_rate, appreciation,
       market_stability, risk_score, opportunity_score, risk_level, property_type, area,
       bedrooms, description, amenities_json, price_history_json
FROM properties WHERE id = ?
`, id).Scan(
		&p.ID, &p.Name, &p.Location, &p.City, &p.State, &p.Price, &p.RentalYield,
		&p.VacancyRate, &p.Appreciation, &p.MarketStability, &p.RiskScore,
		&p.OpportunityScore, &p.RiskLevel, &p.PropertyType, &p.Area,
		&p.Bedrooms, &p.Description, &amJSON, &phJSON,
	)
	if err == sql.ErrNoRows {
		return domain.Property{}, false, nil
	}
	if err != nil {
		return domain.Property{}, false, err
	}

	_ = json.Unmarshal([]byte(amJSON), &p.Amenities)
	_ = json.Unmarshal([]byte(phJSON), &p.PriceHistory)
	return p, true, nil
}
