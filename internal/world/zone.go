package world

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"mirkhollow/internal/mathutil"

	"golang.org/x/sync/errgroup"
)

// CellKind classifies one grid cell of a zone.
type CellKind byte

const (
	CellFloor CellKind = iota // walkable, clear
	CellWall                  // solid: blocks movement and sight
	CellCover                 // walkable, blocks sight (low cover, dense brush)
	CellVoid                  // outside the playable area
)

// Zone is the static geometry of one named area: a character grid loaded
// from a .zone file. The navmesh and the raycaster are both derived from it.
type Zone struct {
	Name     string
	Width    int
	Height   int
	CellSize float64

	cells      [][]CellKind
	spawnCells [][2]int // preferred spawn cells, in file order
}

// LoadZone reads a zone grid from a text file. Lines starting with ';' are
// comments ('#' is taken by walls). Cell characters: '#' wall, '.' floor,
// '~' cover, '@' preferred spawn (floor), space void. Rows may have uneven
// length; short rows are padded with void.
func LoadZone(path string, cellSize float64) (*Zone, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open zone file %s: %w", path, err)
	}
	defer file.Close()

	var rows []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ";") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read zone file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("zone file %s has no grid rows", path)
	}

	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}

	zone := &Zone{
		Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Width:    width,
		Height:   len(rows),
		CellSize: cellSize,
		cells:    make([][]CellKind, len(rows)),
	}

	for z, row := range rows {
		zone.cells[z] = make([]CellKind, width)
		for x := range zone.cells[z] {
			zone.cells[z][x] = CellVoid
		}
		for x, ch := range []byte(row) {
			switch ch {
			case '#':
				zone.cells[z][x] = CellWall
			case '.':
				zone.cells[z][x] = CellFloor
			case '~':
				zone.cells[z][x] = CellCover
			case '@':
				zone.cells[z][x] = CellFloor
				zone.spawnCells = append(zone.spawnCells, [2]int{x, z})
			case ' ':
				// void
			default:
				return nil, fmt.Errorf("zone file %s: unknown cell %q at row %d col %d", path, ch, z, x)
			}
		}
	}

	return zone, nil
}

// LoadZones loads every *.zone file in dir concurrently and returns them
// keyed by zone name.
func LoadZones(dir string, cellSize float64) (map[string]*Zone, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.zone"))
	if err != nil {
		return nil, fmt.Errorf("scan zone dir %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no zone files in %s", dir)
	}

	var (
		mu    sync.Mutex
		zones = make(map[string]*Zone, len(paths))
		g     errgroup.Group
	)
	for _, p := range paths {
		g.Go(func() error {
			zone, err := LoadZone(p, cellSize)
			if err != nil {
				return err
			}
			mu.Lock()
			zones[zone.Name] = zone
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return zones, nil
}

// InBounds reports whether the cell coordinate lies inside the grid.
func (z *Zone) InBounds(cx, cz int) bool {
	return cx >= 0 && cz >= 0 && cx < z.Width && cz < z.Height
}

// Cell returns the kind at a cell coordinate; out of bounds reads as void.
func (z *Zone) Cell(cx, cz int) CellKind {
	if !z.InBounds(cx, cz) {
		return CellVoid
	}
	return z.cells[cz][cx]
}

// Walkable reports whether an agent may occupy the cell.
func (z *Zone) Walkable(cx, cz int) bool {
	k := z.Cell(cx, cz)
	return k == CellFloor || k == CellCover
}

// BlocksSight reports whether the cell occludes a line of sight.
func (z *Zone) BlocksSight(cx, cz int) bool {
	k := z.Cell(cx, cz)
	return k == CellWall || k == CellCover
}

// CellCenter returns the world-space centroid of a cell (ground plane, y=0).
func (z *Zone) CellCenter(cx, cz int) mathutil.Vec3 {
	return mathutil.Vec3{
		X: (float64(cx) + 0.5) * z.CellSize,
		Z: (float64(cz) + 0.5) * z.CellSize,
	}
}

// CellAt maps a world point to its cell coordinate.
func (z *Zone) CellAt(p mathutil.Vec3) (cx, cz int, ok bool) {
	cx = int(p.X / z.CellSize)
	cz = int(p.Z / z.CellSize)
	if p.X < 0 || p.Z < 0 || !z.InBounds(cx, cz) {
		return 0, 0, false
	}
	return cx, cz, true
}

// SpawnCells returns the preferred spawn cells in file order.
func (z *Zone) SpawnCells() [][2]int {
	return z.spawnCells
}
