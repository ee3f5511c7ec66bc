package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecArithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -2, 1}

	assert.Equal(t, Vec3{5, 0, 4}, a.Add(b))
	assert.Equal(t, Vec3{-3, 4, 2}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.InDelta(t, 3.0, a.Dot(b), 1e-9)
}

func TestNormalizedDegenerate(t *testing.T) {
	assert.True(t, Vec3{}.Normalized().IsZero())
	assert.InDelta(t, 1.0, Vec3{0, 0, 7}.Normalized().Length(), 1e-9)
}

func TestFlattenDropsVertical(t *testing.T) {
	v := Vec3{3, 9, 4}
	flat := v.Flatten()
	assert.Equal(t, Vec3{3, 0, 4}, flat)
	assert.InDelta(t, 5.0, flat.Length(), 1e-9)
}

func TestDistanceTo(t *testing.T) {
	assert.InDelta(t, 5.0, Vec3{0, 0, 0}.DistanceTo(Vec3{3, 0, 4}), 1e-9)
}
