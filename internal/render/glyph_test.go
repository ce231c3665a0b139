package render

import "testing"

func TestSnap(t *testing.T) {
	cases := []struct {
		v    float64
		want float64
	}{
		{0, 0},
		{9.99, 0},
		{10, 10},
		{57.3, 50},
	}
	for _, c := range cases {
		if got := Snap(c.v, 10); got != c.want {
			t.Fatalf("Snap(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestGlyphIsSnappedToCell(t *testing.T) {
	segs := Glyph(23, 47.8, 10)
	first := segs[0]
	if first.X0 != 25 || first.Y0 != 40 || first.X1 != 22 || first.Y1 != 50 {
		t.Fatalf("first stroke = %+v", first)
	}
	for i, s := range segs {
		for _, x := range []float64{s.X0, s.X1} {
			if x < 20 || x > 30 {
				t.Fatalf("stroke %d leaves the cell horizontally: %+v", i, s)
			}
		}
		for _, y := range []float64{s.Y0, s.Y1} {
			if y < 40 || y > 50 {
				t.Fatalf("stroke %d leaves the cell vertically: %+v", i, s)
			}
		}
	}
}

func TestGlyphScalesWithGrid(t *testing.T) {
	segs := Glyph(0, 0, 20)
	if segs[2].X1 != 19 || segs[3].Y0 != 12 {
		t.Fatalf("scaled strokes = %+v", segs)
	}
}
