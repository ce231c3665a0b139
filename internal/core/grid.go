package core

// Heightmap stores the landing floor of every grid column, in pixels from the
// top of the surface. Floors only ever rise (the value decreases).
type Heightmap struct {
	Cell   int
	floors []int
}

// NewHeightmap allocates one column per cell of width and sets each floor to
// the last full grid row above height.
func NewHeightmap(width, height, cell int) *Heightmap {
	if cell <= 0 {
		cell = 1
	}
	cols := width / cell
	if width%cell != 0 {
		cols++
	}
	if cols <= 0 {
		cols = 1
	}
	h := &Heightmap{Cell: cell, floors: make([]int, cols)}
	h.Reset(height)
	return h
}

// Reset flattens every column back to the base floor for height.
func (h *Heightmap) Reset(height int) {
	base := (height/h.Cell)*h.Cell - h.Cell
	for i := range h.floors {
		h.floors[i] = base
	}
}

// Columns returns the number of columns.
func (h *Heightmap) Columns() int { return len(h.floors) }

// Contains reports whether col addresses a column of the map.
func (h *Heightmap) Contains(col int) bool { return col >= 0 && col < len(h.floors) }

// Floor returns the current floor of col.
func (h *Heightmap) Floor(col int) int { return h.floors[col] }

// Settle returns the floor of col and raises it by one cell.
func (h *Heightmap) Settle(col int) int {
	floor := h.floors[col]
	h.floors[col] -= h.Cell
	return floor
}

// Floors exposes the backing slice for read-only rendering.
func (h *Heightmap) Floors() []int { return h.floors }
