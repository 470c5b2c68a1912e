package transform

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-raymarch/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	if m := Identity().Model(); m != mgl32.Ident4() {
		t.Fatalf("Identity().Model\nhave %v\nwant identity", m)
	}
	if m := Identity().Matrices(); m.Normal != mgl32.Ident4() {
		t.Fatalf("Identity().Matrices Normal\nhave %v\nwant identity", m.Normal)
	}
}

func TestFromMatrix(t *testing.T) {
	tr := Transform{
		Translation: mgl32.Vec3{-4, 0.5, 9},
		Rotation:    mgl32.QuatRotate(1.1, mgl32.Vec3{0, 0.6, 0.8}),
		Scale:       mgl32.Vec3{1, 4, 2},
	}
	got := FromMatrix(tr.Model())

	if !got.Translation.ApproxEqualThreshold(tr.Translation, 1e-4) {
		t.Fatalf("FromMatrix Translation\nhave %v\nwant %v", got.Translation, tr.Translation)
	}
	if !got.Scale.ApproxEqualThreshold(tr.Scale, 1e-4) {
		t.Fatalf("FromMatrix Scale\nhave %v\nwant %v", got.Scale, tr.Scale)
	}
	if !got.Rotation.OrientationEqualThreshold(tr.Rotation, 1e-4) {
		t.Fatalf("FromMatrix Rotation\nhave %v\nwant %v", got.Rotation, tr.Rotation)
	}
}

func TestMatrices(t *testing.T) {
	tr := Transform{
		Translation: mgl32.Vec3{1, 2, 3},
		Rotation:    mgl32.QuatRotate(math.Pi/3, mgl32.Vec3{1, 0, 0}),
		Scale:       mgl32.Vec3{2, 1, 1},
	}
	m := tr.Matrices()
	if want := common.ModelMatrix(tr.Translation, tr.Rotation, tr.Scale); m.Model != want {
		t.Fatalf("Transform.Matrices Model\nhave %v\nwant %v", m.Model, want)
	}
	if want := common.ComputeNormalTransformationMatrix(m.Model, false); m.Normal != want {
		t.Fatalf("Transform.Matrices Normal\nhave %v\nwant %v", m.Normal, want)
	}
}
