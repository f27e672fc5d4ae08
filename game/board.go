package game

// BoardSize is the edge length of the square grid.
const BoardSize = 5

// MaxHeight is the tallest tower level a worker can stand on. Building on a
// cell at MaxHeight places a dome instead of raising the tower.
const MaxHeight = 3

// Point is a cell position on the board.
type Point struct {
	Row int
	Col int
}

// NoPoint marks the absence of a cell, e.g. the build site of a move that
// wins by reaching the top.
var NoPoint = Point{Row: -1, Col: -1}

// InBounds reports whether the point lies on the board.
func (p Point) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Distance returns the Chebyshev distance between two points, consistent
// with 8-direction adjacency: adjacent cells are exactly distance 1 apart.
func (p Point) Distance(q Point) int {
	dr := p.Row - q.Row
	if dr < 0 {
		dr = -dr
	}
	dc := p.Col - q.Col
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

// neighborOffsets in row-major order. Move generation order derives from
// this; callers must not rely on it beyond determinism within a build.
var neighborOffsets = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the up-to-8 adjacent in-bounds cells.
func (p Point) Neighbors() []Point {
	neighbors := make([]Point, 0, 8)
	for _, d := range neighborOffsets {
		n := Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if n.InBounds() {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Board holds the tower heights and domes of the grid. It is a value type:
// assignment copies the whole grid, which search relies on for cheap
// copy-on-branch.
type Board struct {
	heights [BoardSize][BoardSize]int8
	capped  [BoardSize][BoardSize]bool
}

// Height returns the tower height at p, in [0, MaxHeight].
func (b Board) Height(p Point) int {
	return int(b.heights[p.Row][p.Col])
}

// Capped reports whether p carries a dome. A capped cell is permanently
// unenterable and unbuildable; its height stays at MaxHeight forever.
func (b Board) Capped(p Point) bool {
	return b.capped[p.Row][p.Col]
}

// Build raises the tower at p by one level, or places a dome if the tower
// is already at MaxHeight. Only the rules engine may call this, after
// validating the build; building on a capped cell is an invariant violation.
func (b *Board) Build(p Point) {
	if b.capped[p.Row][p.Col] {
		panic("build on capped cell")
	}
	if b.heights[p.Row][p.Col] == MaxHeight {
		b.capped[p.Row][p.Col] = true
		return
	}
	b.heights[p.Row][p.Col]++
}
