package world

import (
	"os"
	"path/filepath"
	"testing"

	"mirkhollow/internal/mathutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZone(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const smallZone = `; a 5x4 test zone
#####
#.@.#
#.~.#
#####
`

func TestLoadZoneGrid(t *testing.T) {
	path := writeZone(t, t.TempDir(), "cellar.zone", smallZone)

	zone, err := LoadZone(path, 2.0)
	require.NoError(t, err)

	assert.Equal(t, "cellar", zone.Name)
	assert.Equal(t, 5, zone.Width)
	assert.Equal(t, 4, zone.Height)

	assert.Equal(t, CellWall, zone.Cell(0, 0))
	assert.Equal(t, CellFloor, zone.Cell(1, 1))
	assert.Equal(t, CellCover, zone.Cell(2, 2))
	assert.Equal(t, CellVoid, zone.Cell(99, 99))

	assert.True(t, zone.Walkable(2, 2), "cover is walkable")
	assert.True(t, zone.BlocksSight(2, 2), "cover occludes")
	assert.False(t, zone.Walkable(0, 0))

	require.Len(t, zone.SpawnCells(), 1)
	assert.Equal(t, [2]int{2, 1}, zone.SpawnCells()[0])
}

func TestCellCenterRoundTrip(t *testing.T) {
	path := writeZone(t, t.TempDir(), "cellar.zone", smallZone)
	zone, err := LoadZone(path, 2.0)
	require.NoError(t, err)

	center := zone.CellCenter(2, 1)
	assert.Equal(t, mathutil.Vec3{X: 5, Z: 3}, center)

	cx, cz, ok := zone.CellAt(center)
	require.True(t, ok)
	assert.Equal(t, 2, cx)
	assert.Equal(t, 1, cz)

	_, _, ok = zone.CellAt(mathutil.Vec3{X: -1, Z: 0})
	assert.False(t, ok)
}

func TestLoadZoneRejectsUnknownCell(t *testing.T) {
	path := writeZone(t, t.TempDir(), "bad.zone", "#?#\n")
	_, err := LoadZone(path, 2.0)
	assert.Error(t, err)
}

func TestLoadZonesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeZone(t, dir, "a.zone", "###\n#@#\n###\n")
	writeZone(t, dir, "b.zone", "....\n")

	zones, err := LoadZones(dir, 1.0)
	require.NoError(t, err)
	require.Len(t, zones, 2)
	assert.Contains(t, zones, "a")
	assert.Contains(t, zones, "b")
}

func TestLoadZonesEmptyDirectory(t *testing.T) {
	_, err := LoadZones(t.TempDir(), 1.0)
	assert.Error(t, err)
}
