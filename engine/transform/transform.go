package transform

import (
	"github.com/Carmen-Shannon/oxy-raymarch/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform places an object in world space: scaled first, then rotated, then translated.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// Identity returns the transform that leaves points unchanged.
func Identity() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// FromMatrix decomposes a model matrix without shear into a Transform.
//
// Parameters:
//   - m: the model matrix
//
// Returns:
//   - Transform: the translation, unit rotation and scale of m
func FromMatrix(m mgl32.Mat4) Transform {
	t, r, s := common.DecomposeTransformation(m)
	return Transform{Translation: t, Rotation: r, Scale: s}
}

// Model returns the model matrix T * R * S.
func (t Transform) Model() mgl32.Mat4 {
	return common.ModelMatrix(t.Translation, t.Rotation, t.Scale)
}

// Matrices holds the per-object matrices consumed by a rendering pass.
type Matrices struct {
	Model  mgl32.Mat4
	Normal mgl32.Mat4
}

// Matrices returns the model matrix and the matching normal matrix.
func (t Transform) Matrices() Matrices {
	model := t.Model()
	return Matrices{
		Model:  model,
		Normal: common.ComputeNormalTransformationMatrix(model, false),
	}
}
