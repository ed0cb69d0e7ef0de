package solver

import "weakfield/internal/vecmath"

// cell is a fixed-capacity bucket of particle indices plus a count. The
// array never reallocates; Insert saturates rather than growing it.
type cell struct {
	ids   [CellCapacity]ParticleID
	count int
}

// Grid is a uniform spatial hash over the world rectangle, rebuilt from
// scratch every substep. CellSize must be at least twice the maximum
// particle radius so that any colliding pair lies in cells at most one
// apart in each axis.
type Grid struct {
	Width, Height int
	CellSize      float32
	cells         []cell
}

// NewGrid builds an empty grid covering a worldWidth x worldHeight
// world with the given cell edge length.
func NewGrid(worldWidth, worldHeight, cellSize float32) *Grid {
	w := int(worldWidth/cellSize) + 1
	h := int(worldHeight/cellSize) + 1
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Grid{
		Width:    w,
		Height:   h,
		CellSize: cellSize,
		cells:    make([]cell, w*h),
	}
}

// Clear zeros every cell's count without reallocating the backing array.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].count = 0
	}
}

// cellCoords returns the (cx, cy) cell coordinates for a world position.
func (g *Grid) cellCoords(pos vecmath.Vec2) (int, int) {
	cx := int(pos.X / g.CellSize)
	cy := int(pos.Y / g.CellSize)
	return cx, cy
}

// inBounds reports whether (cx, cy) names a valid cell.
func (g *Grid) inBounds(cx, cy int) bool {
	return cx >= 0 && cx < g.Width && cy >= 0 && cy < g.Height
}

// index converts in-bounds cell coordinates to a flat cell index.
func (g *Grid) index(cx, cy int) int {
	return cx*g.Height + cy
}

// Insert adds a particle id to the cell containing pos. Overflow is
// write-sacrificial: the count saturates at CellCapacity-1, so every
// insert from that point on overwrites the last array slot, which lies
// past the count. CellIDs and ForEachCell expose only the first
// CellCapacity-1 occupants; the particle left in the last slot, like
// every other overflow insert, takes part in no collision sweep.
func (g *Grid) Insert(pos vecmath.Vec2, id ParticleID) {
	cx, cy := g.cellCoords(pos)
	if !g.inBounds(cx, cy) {
		return
	}
	c := &g.cells[g.index(cx, cy)]
	c.ids[c.count] = id
	if c.count < CellCapacity-1 {
		c.count++
	}
}

// Rebuild clears the grid and reinserts every non-fixed-margin particle
// by current position. Particles within one world-unit of any boundary
// are skipped — the border reflector will catch them on integrate.
func (g *Grid) Rebuild(particles []Particle, worldWidth, worldHeight float32) {
	g.Clear()
	for i := range particles {
		p := &particles[i]
		if withinMargin(p.Position, worldWidth, worldHeight) {
			continue
		}
		g.Insert(p.Position, ParticleID(i))
	}
}

func withinMargin(pos vecmath.Vec2, worldWidth, worldHeight float32) bool {
	const margin = 1.0
	return pos.X < margin || pos.Y < margin || pos.X > worldWidth-margin || pos.Y > worldHeight-margin
}

// ForEachCell invokes fn once per non-empty cell in column-major order
// with the cell's particle ids slice (length == count) and its flat
// index, so callers can derive neighbour indices themselves.
func (g *Grid) ForEachCell(fn func(idx int, ids []ParticleID)) {
	for idx := range g.cells {
		c := &g.cells[idx]
		if c.count == 0 {
			continue
		}
		fn(idx, c.ids[:c.count])
	}
}

// CellIDs returns the occupant slice for a raw cell index, or nil if the
// index is out of range.
func (g *Grid) CellIDs(idx int) []ParticleID {
	if idx < 0 || idx >= len(g.cells) {
		return nil
	}
	c := &g.cells[idx]
	return c.ids[:c.count]
}

// ColumnOf recovers the column a flat cell index belongs to.
func (g *Grid) ColumnOf(idx int) int {
	return idx / g.Height
}

// NeighbourIndices appends to dst the flat indices of the up-to-8
// in-bounds cells surrounding (cx, cy) — the 3x3 neighbourhood minus the
// centre cell itself. Column-edge cells correctly have fewer neighbours
// rather than wrapping into the adjacent column, unlike a naive
// idx±1/idx±height offset scheme would.
func (g *Grid) NeighbourIndices(cx, cy int, dst []int) []int {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := cx+dx, cy+dy
			if g.inBounds(nx, ny) {
				dst = append(dst, g.index(nx, ny))
			}
		}
	}
	return dst
}

// ColumnOccupancy returns, for each of the Width columns, the total
// particle count summed over that column's Height cells. Used only by
// the optional diagnostics reader; never on the hot physics path.
func (g *Grid) ColumnOccupancy() []int {
	occ := make([]int, g.Width)
	for cx := 0; cx < g.Width; cx++ {
		sum := 0
		for cy := 0; cy < g.Height; cy++ {
			sum += g.cells[g.index(cx, cy)].count
		}
		occ[cx] = sum
	}
	return occ
}
