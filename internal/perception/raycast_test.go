package perception

import (
	"os"
	"path/filepath"
	"testing"

	"mirkhollow/internal/mathutil"
	"mirkhollow/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A corridor with a wall stub and a cover cell:
//
//	#######
//	#.....#
//	#.#.~.#
//	#.....#
//	#######
func loadTestZone(t *testing.T) *world.Zone {
	t.Helper()
	body := "#######\n#.....#\n#.#.~.#\n#.....#\n#######\n"
	path := filepath.Join(t.TempDir(), "corridor.zone")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	zone, err := world.LoadZone(path, 1.0)
	require.NoError(t, err)
	return zone
}

func TestClearSightAlongRow(t *testing.T) {
	zone := loadTestZone(t)
	r := NewRaycaster(zone)

	from := zone.CellCenter(1, 1)
	to := zone.CellCenter(5, 1)
	assert.True(t, r.IsVisible(from, to, 0))
	assert.True(t, r.IsVisible(to, from, 0), "visibility is symmetric here")
}

func TestWallBlocksSight(t *testing.T) {
	zone := loadTestZone(t)
	r := NewRaycaster(zone)

	// (1,2) and (3,2) are separated by the wall stub at (2,2).
	assert.False(t, r.IsVisible(zone.CellCenter(1, 2), zone.CellCenter(3, 2), 0))
}

func TestCoverBlocksSightButEyeInsideCoverSeesOut(t *testing.T) {
	zone := loadTestZone(t)
	r := NewRaycaster(zone)

	cover := zone.CellCenter(4, 2)

	// Looking at a point inside cover: hidden.
	assert.False(t, r.IsVisible(zone.CellCenter(4, 1), cover, 0))

	// Looking out from inside cover: the eye cell is skipped.
	assert.True(t, r.IsVisible(cover, zone.CellCenter(4, 1), 0))
}

func TestMaxRange(t *testing.T) {
	zone := loadTestZone(t)
	r := NewRaycaster(zone)

	from := zone.CellCenter(1, 1)
	to := zone.CellCenter(5, 1)
	assert.False(t, r.IsVisible(from, to, 2.0), "beyond max range reads as unseen")
	assert.True(t, r.IsVisible(from, to, 10.0))
}

func TestDegenerateAndOutOfBounds(t *testing.T) {
	zone := loadTestZone(t)
	r := NewRaycaster(zone)

	p := zone.CellCenter(1, 1)
	assert.True(t, r.IsVisible(p, p, 0), "zero-length cast sees itself")

	outside := mathutil.Vec3{X: -5, Z: -5}
	assert.False(t, r.IsVisible(p, outside, 0))
	assert.False(t, r.IsVisible(outside, p, 0))

	var nilCaster *Raycaster
	assert.False(t, nilCaster.IsVisible(p, p, 0), "nil service is fail-safe")
}
