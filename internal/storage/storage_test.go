package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investlens/investlens/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.EnsureSchema())
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)

	in := domain.DefaultSettings()
	in.Theme = "light"
	require.NoError(t, s.SaveSnapshot(KeySettings, in))

	var out domain.Settings
	require.NoError(t, s.LoadSnapshot(KeySettings, &out))
	assert.Equal(t, in, out)
}

func TestSnapshotMissingKey(t *testing.T) {
	s := openTestStore(t)

	var out domain.Settings
	err := s.LoadSnapshot(KeySettings, &out)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSnapshotOverwrite(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveSnapshot(KeySettings, map[string]string{"v": "one"}))
	require.NoError(t, s.SaveSnapshot(KeySettings, map[string]string{"v": "two"}))

	var out map[string]string
	require.NoError(t, s.LoadSnapshot(KeySettings, &out))
	assert.Equal(t, "two", out["v"])
}

func TestSeedPropertiesIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	props := []domain.Property{
		{
			ID: "p1", Name: "One", Location: "Loc", City: "Mumbai", State: "Maharashtra",
			Price: 8_000_000, RentalYield: 7, RiskLevel: domain.RiskMedium,
			PropertyType: domain.TypeResidential, Area: 1200, Bedrooms: 3,
			Amenities:    []string{"Gym"},
			PriceHistory: []domain.PricePoint{{Month: "Jan", Price: 7_500_000}},
		},
		{
			ID: "p2", Name: "Two", Location: "Loc", City: "Pune", State: "Maharashtra",
			Price: 5_400_000, RiskLevel: domain.RiskLow, PropertyType: domain.TypeResidential,
		},
	}

	require.NoError(t, s.SeedProperties(props))
	require.NoError(t, s.SeedProperties(props)) // second run must not duplicate

	n, err := s.CountProperties()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestGetProperty(t *testing.T) {
	s := openTestStore(t)

	in := domain.Property{
		ID: "p1", Name: "One", Location: "Loc", City: "Mumbai", State: "Maharashtra",
		Price: 8_000_000, RentalYield: 7, VacancyRate: 4.5, Appreciation: 8.2,
		MarketStability: 88, RiskScore: 35, OpportunityScore: 91,
		RiskLevel: domain.RiskMedium, PropertyType: domain.TypeResidential,
		Area: 1200, Bedrooms: 3, Description: "desc",
		Amenities:    []string{"Gym", "Pool"},
		PriceHistory: []domain.PricePoint{{Month: "Jan", Price: 7_500_000}, {Month: "Feb", Price: 7_600_000}},
	}
	require.NoError(t, s.SeedProperties([]domain.Property{in}))

	got, ok, err := s.GetProperty("p1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, got)

	_, ok, err = s.GetProperty("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
