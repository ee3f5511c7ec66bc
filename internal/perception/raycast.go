// Package perception answers visibility queries against a zone's static
// geometry. It is a read-only service; failures degrade to "not visible" so
// callers never wrongly believe something is seen.
package perception

import (
	"math"

	"mirkhollow/internal/mathutil"
	"mirkhollow/internal/world"
)

// Raycaster tests straight-line visibility within one zone.
type Raycaster struct {
	zone *world.Zone
}

func NewRaycaster(zone *world.Zone) *Raycaster {
	return &Raycaster{zone: zone}
}

// IsVisible reports whether to can be seen from from. The segment is sampled
// at half-cell steps against sight-blocking cells. The cell containing the
// eye point is skipped (an observer inside cover can still see out) while
// an occluder at the far endpoint hides it. Anything beyond maxRange, out of
// zone bounds, or queried with no zone reads as not visible.
func (r *Raycaster) IsVisible(from, to mathutil.Vec3, maxRange float64) bool {
	if r == nil || r.zone == nil {
		return false
	}

	delta := to.Sub(from).Flatten()
	dist := delta.Length()
	if maxRange > 0 && dist > maxRange {
		return false
	}
	if dist < 1e-9 {
		return true
	}

	eyeX, eyeZ, eyeIn := r.zone.CellAt(from)
	if !eyeIn {
		return false
	}

	steps := int(math.Ceil(dist/(r.zone.CellSize/2))) + 1
	stepVec := delta.Scale(1 / float64(steps))

	for i := 1; i <= steps; i++ {
		sample := from.Add(stepVec.Scale(float64(i)))
		cx, cz, ok := r.zone.CellAt(sample)
		if !ok {
			return false
		}
		if cx == eyeX && cz == eyeZ {
			continue
		}
		if r.zone.BlocksSight(cx, cz) {
			return false
		}
	}

	return true
}
