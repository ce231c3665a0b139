package render

// Segment is one stroked line of a drop glyph, in surface pixels.
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
}

// glyphStrokes is the hash-shaped drop drawn in a 10px cell.
var glyphStrokes = [4]Segment{
	{X0: 5, Y0: 0, X1: 2, Y1: 10},
	{X0: 8, Y0: 0, X1: 5, Y1: 10},
	{X0: 1.5, Y0: 3, X1: 9.5, Y1: 3},
	{X0: 0.5, Y0: 6, X1: 8.5, Y1: 6},
}

// Snap truncates v to the top-left corner of its grid cell.
func Snap(v float64, grid int) float64 {
	if grid <= 0 {
		return v
	}
	return float64(int(v/float64(grid)) * grid)
}

// Glyph returns the four strokes of a drop at (x, y) snapped to the grid and
// scaled to the cell size.
func Glyph(x, y float64, grid int) [4]Segment {
	ox, oy := Snap(x, grid), Snap(y, grid)
	scale := 1.0
	if grid > 0 {
		scale = float64(grid) / 10
	}
	var out [4]Segment
	for i, s := range glyphStrokes {
		out[i] = Segment{
			X0: ox + s.X0*scale,
			Y0: oy + s.Y0*scale,
			X1: ox + s.X1*scale,
			Y1: oy + s.Y1*scale,
		}
	}
	return out
}
