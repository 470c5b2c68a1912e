package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const testThreshold = 1e-5

// floatsNear compares element-wise with an absolute tolerance. mgl32's ApproxEqualThreshold
// is relative and treats values near zero too strictly for trigonometric results.
func floatsNear(a, b []float32, eps float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > eps || d < -eps {
			return false
		}
	}
	return true
}

func mat4Near(a, b mgl32.Mat4, eps float32) bool { return floatsNear(a[:], b[:], eps) }
func vec4Near(a, b mgl32.Vec4, eps float32) bool { return floatsNear(a[:], b[:], eps) }
func vec3Near(a, b mgl32.Vec3, eps float32) bool { return floatsNear(a[:], b[:], eps) }

func TestPerspective(t *testing.T) {
	m := Perspective(math.Pi/2, 2, 1, 3)
	want := mgl32.Mat4{
		0.5, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -2, -1,
		0, 0, -3, 0,
	}
	if !mat4Near(m, want, testThreshold) {
		t.Fatalf("Perspective\nhave %v\nwant %v", m, want)
	}

	fov := DegsToRads(float32(60))
	m = Perspective(fov, 16.0/9.0, 0.01, 10000)
	if want := mgl32.Perspective(fov, 16.0/9.0, 0.01, 10000); !mat4Near(m, want, 1e-4) {
		t.Fatalf("Perspective\nhave %v\nwant %v", m, want)
	}

	m = Perspective(math.Pi/2, 1, 1, 3)
	if p := TransformPoint(m, mgl32.Vec4{0, 0, -1, 1}); !FloatEqual(p[2], -1) {
		t.Fatalf("Perspective near plane depth\nhave %v\nwant -1", p[2])
	}
	if p := TransformPoint(m, mgl32.Vec4{0, 0, -3, 1}); !FloatEqual(p[2], 1) {
		t.Fatalf("Perspective far plane depth\nhave %v\nwant 1", p[2])
	}
}

func TestOrthographic(t *testing.T) {
	m := Orthographic(1, 0, 10)
	want := mgl32.Mat4{
		3.5, 0, 0, 0,
		0, 3.5, 0, 0,
		0, 0, -0.7, 0,
		0, 0, -1, 1,
	}
	if !mat4Near(m, want, testThreshold) {
		t.Fatalf("Orthographic\nhave %v\nwant %v", m, want)
	}

	for _, aspect := range []float32{1, 2, 0.5} {
		m = Orthographic(aspect, 0.1, 100)
		if x, want := m.At(0, 0), 3.5/aspect; !FloatEqual(x, want) {
			t.Fatalf("Orthographic(%v) x scale\nhave %v\nwant %v", aspect, x, want)
		}
		if y := m.At(1, 1); !FloatEqual(y, 3.5) {
			t.Fatalf("Orthographic(%v) y scale\nhave %v\nwant 3.5", aspect, y)
		}
	}
}

func TestLookAt(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 2}
	m := LookAt(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	if want := mgl32.Translate3D(0, 0, -2); !mat4Near(m, want, testThreshold) {
		t.Fatalf("LookAt\nhave %v\nwant %v", m, want)
	}

	eye = mgl32.Vec3{3, -1, 5}
	target := mgl32.Vec3{-2, 4, 0.5}
	up := mgl32.Vec3{0, 3, 0}
	m = LookAt(eye, target, up)
	if want := mgl32.LookAtV(eye, target, up.Normalize()); !mat4Near(m, want, 1e-4) {
		t.Fatalf("LookAt\nhave %v\nwant %v", m, want)
	}

	// The eye maps to the origin and the target lies on the -Z axis.
	if p := m.Mul4x1(eye.Vec4(1)).Vec3(); !vec3Near(p, mgl32.Vec3{}, 1e-4) {
		t.Fatalf("LookAt eye\nhave %v\nwant [0 0 0]", p)
	}
	p := m.Mul4x1(target.Vec4(1)).Vec3()
	if !FloatEqual(p[0], 0) || !FloatEqual(p[1], 0) || !FloatLessThan(p[2], 0) {
		t.Fatalf("LookAt target\nhave %v\nwant [0 0 -d]", p)
	}
}

func TestScaleTranslation(t *testing.T) {
	s := ScaleMatrix(mgl32.Vec3{2, 3, 4})
	if p := s.Mul4x1(mgl32.Vec4{1, 1, 1, 1}); p != (mgl32.Vec4{2, 3, 4, 1}) {
		t.Fatalf("ScaleMatrix\nhave %v\nwant [2 3 4 1]", p)
	}
	tr := TranslationMatrix(mgl32.Vec3{1, -2, 3})
	if p := tr.Mul4x1(mgl32.Vec4{1, 1, 1, 1}); p != (mgl32.Vec4{2, -1, 4, 1}) {
		t.Fatalf("TranslationMatrix\nhave %v\nwant [2 -1 4 1]", p)
	}
	if p := tr.Mul4x1(mgl32.Vec4{1, 1, 1, 0}); p != (mgl32.Vec4{1, 1, 1, 0}) {
		t.Fatalf("TranslationMatrix direction\nhave %v\nwant [1 1 1 0]", p)
	}
}

func TestRotationMatrixEuler(t *testing.T) {
	m := RotationMatrixEuler(mgl32.Vec3{math.Pi / 2, 0, 0})
	if p := m.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3(); !vec3Near(p, mgl32.Vec3{0, 0, 1}, testThreshold) {
		t.Fatalf("RotationMatrixEuler X\nhave %v\nwant [0 0 1]", p)
	}

	// X is applied before Y.
	m = RotationMatrixEuler(mgl32.Vec3{math.Pi / 2, math.Pi / 2, 0})
	if p := m.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3(); !vec3Near(p, mgl32.Vec3{1, 0, 0}, testThreshold) {
		t.Fatalf("RotationMatrixEuler XY\nhave %v\nwant [1 0 0]", p)
	}

	m = RotationMatrixEuler(mgl32.Vec3{0, 0, math.Pi / 2})
	if p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3(); !vec3Near(p, mgl32.Vec3{0, 1, 0}, testThreshold) {
		t.Fatalf("RotationMatrixEuler Z\nhave %v\nwant [0 1 0]", p)
	}

	if m = RotationMatrixEuler(mgl32.Vec3{}); m != mgl32.Ident4() {
		t.Fatalf("RotationMatrixEuler zero\nhave %v\nwant identity", m)
	}
}

func TestModelMatrix(t *testing.T) {
	q := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 0, 1})
	m := ModelMatrix(mgl32.Vec3{1, 2, 3}, q, mgl32.Vec3{2, 2, 2})
	if p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}); !vec4Near(p, mgl32.Vec4{1, 4, 3, 1}, testThreshold) {
		t.Fatalf("ModelMatrix\nhave %v\nwant [1 4 3 1]", p)
	}

	e := ModelMatrixEuler(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, math.Pi / 2}, mgl32.Vec3{2, 2, 2})
	if !mat4Near(e, m, testThreshold) {
		t.Fatalf("ModelMatrixEuler\nhave %v\nwant %v", e, m)
	}

	if m = ModelMatrix(mgl32.Vec3{}, mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1}); m != mgl32.Ident4() {
		t.Fatalf("ModelMatrix identity\nhave %v\nwant identity", m)
	}
}

func TestDecomposeTransformation(t *testing.T) {
	translation := mgl32.Vec3{1, -2, 3}
	rotation := mgl32.QuatRotate(0.7, mgl32.Vec3{1, 1, 0}.Normalize())
	scale := mgl32.Vec3{2, 3, 0.5}

	tr, rot, sc := DecomposeTransformation(ModelMatrix(translation, rotation, scale))
	if !vec3Near(tr, translation, 1e-4) {
		t.Fatalf("DecomposeTransformation translation\nhave %v\nwant %v", tr, translation)
	}
	if !vec3Near(sc, scale, 1e-4) {
		t.Fatalf("DecomposeTransformation scale\nhave %v\nwant %v", sc, scale)
	}
	if !rot.OrientationEqualThreshold(rotation, 1e-4) {
		t.Fatalf("DecomposeTransformation rotation\nhave %v\nwant %v", rot, rotation)
	}
	if l := rot.Len(); !FloatEqual(l, 1) {
		t.Fatalf("DecomposeTransformation rotation length\nhave %v\nwant 1", l)
	}

	tr, rot, sc = DecomposeTransformation(mgl32.Ident4())
	if tr != (mgl32.Vec3{}) || sc != (mgl32.Vec3{1, 1, 1}) || !rot.OrientationEqualThreshold(mgl32.QuatIdent(), 1e-4) {
		t.Fatalf("DecomposeTransformation identity\nhave %v %v %v", tr, rot, sc)
	}
}

func TestComputeNormalTransformationMatrix(t *testing.T) {
	m := ScaleMatrix(mgl32.Vec3{2, 1, 1})
	n := ComputeNormalTransformationMatrix(m, false)
	if want := ScaleMatrix(mgl32.Vec3{0.5, 1, 1}); !mat4Near(n, want, testThreshold) {
		t.Fatalf("ComputeNormalTransformationMatrix\nhave %v\nwant %v", n, want)
	}

	r := RotationMatrixEuler(mgl32.Vec3{0.3, -1.1, 2})
	if n = ComputeNormalTransformationMatrix(r, false); !mat4Near(n, r, 1e-4) {
		t.Fatalf("ComputeNormalTransformationMatrix rotation\nhave %v\nwant %v", n, r)
	}

	m = ModelMatrixEuler(mgl32.Vec3{4, 5, 6}, mgl32.Vec3{0.2, 0.4, 0.6}, mgl32.Vec3{1, 2, 3})
	a := ComputeNormalTransformationMatrix(m, false)
	b := ComputeNormalTransformationMatrix(m.Inv(), true)
	if !mat4Near(a, b, testThreshold) {
		t.Fatalf("ComputeNormalTransformationMatrix inverted\nhave %v\nwant %v", b, a)
	}
	if n = ComputeNormalTransformationMatrix(m, true); n != m.Transpose() {
		t.Fatalf("ComputeNormalTransformationMatrix transpose only\nhave %v\nwant %v", n, m.Transpose())
	}
}

func TestTransformPoint(t *testing.T) {
	m := TranslationMatrix(mgl32.Vec3{1, 2, 3})
	want := mgl32.Vec4{2, 3, 4, 1}
	for _, p := range []mgl32.Vec4{{1, 1, 1, 1}, {2, 2, 2, 2}} {
		if have := TransformPoint(m, p); !vec4Near(have, want, testThreshold) {
			t.Fatalf("TransformPoint(%v)\nhave %v\nwant %v", p, have, want)
		}
	}

	proj := Perspective(math.Pi/2, 1, 1, 3)
	if have := TransformPoint(proj, mgl32.Vec4{0, 0, -1, 1}); !FloatEqual(have.Z(), -1) {
		t.Fatalf("TransformPoint near plane\nhave z %v\nwant -1", have.Z())
	}
	if have := TransformPoint(proj, mgl32.Vec4{0, 0, -3, 1}); !FloatEqual(have.Z(), 1) {
		t.Fatalf("TransformPoint far plane\nhave z %v\nwant 1", have.Z())
	}
}
