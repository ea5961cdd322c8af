package rasterfill

import "testing"

func TestNewEdgeCanonicalizesDirection(t *testing.T) {
	e, ok := NewEdge(Point{X: 0, Y: 10}, Point{X: 5, Y: 0})
	if !ok {
		t.Fatalf("NewEdge failed, want success")
	}
	if e.P0.Y != 0 || e.P1.Y != 10 {
		t.Errorf("edge not canonicalized: P0=%v P1=%v", e.P0, e.P1)
	}
	if e.Winding != -1 {
		t.Errorf("Winding = %d, want -1 for flipped edge", e.Winding)
	}
}

func TestNewEdgePreservesWindingWhenAlreadyOrdered(t *testing.T) {
	e, ok := NewEdge(Point{X: 0, Y: 0}, Point{X: 0, Y: 10})
	if !ok {
		t.Fatalf("NewEdge failed")
	}
	if e.Winding != 1 {
		t.Errorf("Winding = %d, want 1", e.Winding)
	}
}

func TestNewEdgeRejectsSingleScanline(t *testing.T) {
	_, ok := NewEdge(Point{X: 0, Y: 0.1}, Point{X: 5, Y: 0.4})
	if ok {
		t.Errorf("NewEdge should reject an edge rounding to one scanline")
	}
}

func TestXAtYInterpolates(t *testing.T) {
	e, _ := NewEdge(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	if x := e.XAtY(5); x != 5 {
		t.Errorf("XAtY(5) = %v, want 5", x)
	}
}

func TestActiveAtHalfOpenRange(t *testing.T) {
	e, _ := NewEdge(Point{X: 0, Y: 2}, Point{X: 0, Y: 5})
	if e.ActiveAt(1) {
		t.Errorf("ActiveAt(1) should be false, below range")
	}
	if !e.ActiveAt(2) {
		t.Errorf("ActiveAt(2) should be true, start of range")
	}
	if !e.ActiveAt(4) {
		t.Errorf("ActiveAt(4) should be true")
	}
	if e.ActiveAt(5) {
		t.Errorf("ActiveAt(5) should be false, range is half-open")
	}
}
