package matching

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigBandsSumTo100(t *testing.T) {
	cfg := DefaultConfig()
	total := cfg.BudgetWithinPoints + cfg.GoalPoints + cfg.RiskPoints + cfg.LocationPoints
	assert.Equal(t, 100, total)
}

func TestLoadConfigFromFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoring.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"budget_within_points": 50}`), 0o644))

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.BudgetWithinPoints)
	// untouched fields keep defaults
	assert.Equal(t, 30, cfg.GoalPoints)
}

func TestLoadConfigFromFileMissingFallsBack(t *testing.T) {
	cfg, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
