package ink

import "testing"

func TestXYWHMatchesLTRB(t *testing.T) {
	a := XYWH(2, 3, 4, 5)
	b := LTRB(2, 3, 6, 8)
	if a != b {
		t.Errorf("XYWH(2,3,4,5) = %v, want %v", a, b)
	}
}

func TestRectIsEmpty(t *testing.T) {
	if !LTRB(5, 5, 5, 5).IsEmpty() {
		t.Errorf("zero-area rect should be empty")
	}
	if LTRB(0, 0, 1, 1).IsEmpty() {
		t.Errorf("unit rect should not be empty")
	}
}

func TestRectCornersOrder(t *testing.T) {
	c := LTRB(1, 2, 5, 8).Corners()
	want := [4]Point{{1, 2}, {5, 2}, {5, 8}, {1, 8}}
	if c != want {
		t.Errorf("Corners() = %v, want %v", c, want)
	}
}

func TestRoundToIntHalfwayRoundsUp(t *testing.T) {
	if roundToInt(0.5) != 1 {
		t.Errorf("roundToInt(0.5) = %d, want 1", roundToInt(0.5))
	}
	if roundToInt(-0.5) != 0 {
		t.Errorf("roundToInt(-0.5) = %d, want 0", roundToInt(-0.5))
	}
	if roundToInt(2.4) != 2 {
		t.Errorf("roundToInt(2.4) = %d, want 2", roundToInt(2.4))
	}
}
