package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsApplied(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 60, cfg.GetTPS())
	assert.Equal(t, 2.0, cfg.Monster.BaseSpeed)
	assert.Equal(t, 60.0, cfg.Monster.RaycastLimit)
	assert.Equal(t, 5*time.Second, cfg.WanderInterval())
	assert.Equal(t, 3*time.Second, cfg.HideScanInterval())
	assert.Equal(t, 4*time.Second, cfg.FleeDuration())
	assert.Equal(t, time.Second, cfg.PathRecalcInterval())
	assert.Equal(t, 800*time.Millisecond, cfg.HostileRecalcInterval())
	assert.Equal(t, 1.5, cfg.Monster.FleeSpeedMultiplier)
	assert.Equal(t, 40.0, cfg.Audio.HeartbeatMaxDistance)
}

func TestLoadConfigOverridesAndBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
simulation:
  target_tps: 30
monster:
  base_speed: 3.5
  hostile_recalc_ms: 500
world:
  home_zone: crypt
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.GetTPS())
	assert.Equal(t, 3.5, cfg.Monster.BaseSpeed)
	assert.Equal(t, 500*time.Millisecond, cfg.HostileRecalcInterval())
	assert.Equal(t, "crypt", cfg.World.HomeZone)
	// Unset values still get defaults.
	assert.Equal(t, time.Second, cfg.PathRecalcInterval())
	assert.Equal(t, 2.0, cfg.World.CellSize)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation: ["), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
