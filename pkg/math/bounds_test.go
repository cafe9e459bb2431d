package math

import "testing"

func TestAABBExtend(t *testing.T) {
	b := EmptyAABB()
	if !b.IsEmpty() {
		t.Fatal("EmptyAABB should be empty")
	}

	b = b.Extend(Vec3{1, 2, 3}).Extend(Vec3{-1, 0, 5})
	if b.IsEmpty() {
		t.Fatal("box with points should not be empty")
	}
	if b.Min != (Vec3{-1, 0, 3}) || b.Max != (Vec3{1, 2, 5}) {
		t.Errorf("box = %+v", b)
	}
	if b.Center() != (Vec3{0, 1, 4}) {
		t.Errorf("Center() = %v", b.Center())
	}
	if b.Size() != (Vec3{2, 2, 2}) {
		t.Errorf("Size() = %v", b.Size())
	}
}

func TestAABBUnionEmpty(t *testing.T) {
	b := EmptyAABB().Extend(Vec3{1, 1, 1})
	if got := b.Union(EmptyAABB()); got != b {
		t.Errorf("Union(empty) = %+v, want %+v", got, b)
	}
}

func TestAABBTransform(t *testing.T) {
	b := AABB{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}}
	got := b.Transform(Translate(10, 0, 0).Mul(Scale(2, 1, 1)))

	if got.Min != (Vec3{8, -1, -1}) || got.Max != (Vec3{12, 1, 1}) {
		t.Errorf("Transform = %+v", got)
	}
}
