// Package catalog holds the immutable property dataset and the derived
// filter/sort views the listing endpoints serve.
package catalog

import (
	"sort"
	"strings"

	"github.com/investlens/investlens/internal/domain"
)

// SortKey selects the ordering of a filtered listing.
type SortKey string

const (
	SortOpportunity  SortKey = "score"
	SortPriceAsc     SortKey = "price-low"
	SortPriceDesc    SortKey = "price-high"
	SortYield        SortKey = "yield"
	SortAppreciation SortKey = "appreciation"
)

// Filter describes conjunctive listing predicates. Zero values mean "no
// constraint".
type Filter struct {
	Query        string
	City         string
	State        string
	PropertyType string
	RiskLevel    string
}

type Catalog struct {
	properties []domain.Property
}

func New(properties []domain.Property) *Catalog {
	return &Catalog{properties: properties}
}

// All returns a copy of the full property list in seed order.
func (c *Catalog) All() []domain.Property {
	out := make([]domain.Property, len(c.properties))
	copy(out, c.properties)
	return out
}

func (c *Catalog) Len() int { return len(c.properties) }

// Get looks a property up by id.
func (c *Catalog) Get(id string) (domain.Property, bool) {
	for _, p := range c.properties {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Property{}, false
}

// List applies the filter predicates (ANDed) and sorts the survivors. The
// catalog itself is never reordered.
func (c *Catalog) List(f Filter, sortBy SortKey) []domain.Property {
	out := make([]domain.Property, 0, len(c.properties))
	for _, p := range c.properties {
		if matches(f, p) {
			out = append(out, p)
		}
	}
	sortProperties(out, sortBy)
	return out
}

func matches(f Filter, p domain.Property) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.City), q) &&
			!strings.Contains(strings.ToLower(p.State), q) {
			return false
		}
	}
	if f.City != "" && p.City != f.City {
		return false
	}
	if f.State != "" && p.State != f.State {
		return false
	}
	if f.PropertyType != "" && string(p.PropertyType) != f.PropertyType {
		return false
	}
	if f.RiskLevel != "" && string(p.RiskLevel) != f.RiskLevel {
		return false
	}
	return true
}

func sortProperties(props []domain.Property, sortBy SortKey) {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(props, func(i, j int) bool { return props[i].Price < props[j].Price })
	case SortPriceDesc:
		sort.SliceStable(props, func(i, j int) bool { return props[i].Price > props[j].Price })
	case SortYield:
		sort.SliceStable(props, func(i, j int) bool { return props[i].RentalYield > props[j].RentalYield })
	case SortAppreciation:
		sort.SliceStable(props, func(i, j int) bool { return props[i].Appreciation > props[j].Appreciation })
	case SortOpportunity:
		sort.SliceStable(props, func(i, j int) bool { return props[i].OpportunityScore > props[j].OpportunityScore })
	default:
		// unknown key keeps seed order
	}
}
