package maze

var neighbourDeltas = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// neighbour returns the cell one step from (x, y) on the torus.
func (g *Grid) neighbour(x, y, dx, dy int) (int, int) {
	nx := (x + dx + g.cols) % g.cols
	ny := (y + dy + g.rows) % g.rows
	return nx, ny
}

// OpenNeighbours counts the passable cells adjacent to (x, y), ignoring
// the cell at skip (used to probe a wall that is not placed yet).
func OpenNeighbours(g *Grid, x, y int, skip Pos) int {
	n := 0
	for _, d := range neighbourDeltas {
		nx, ny := g.neighbour(x, y, d[0], d[1])
		if nx == skip.X && ny == skip.Y {
			continue
		}
		if !g.IsWall(nx, ny) {
			n++
		}
	}
	return n
}

// WouldCreateDeadEnd reports whether walling p would leave an adjacent
// open cell with fewer than two exits.
func WouldCreateDeadEnd(g *Grid, p Pos) bool {
	for _, d := range neighbourDeltas {
		nx, ny := g.neighbour(p.X, p.Y, d[0], d[1])
		if g.IsWall(nx, ny) {
			continue
		}
		if OpenNeighbours(g, nx, ny, p) < 2 {
			return true
		}
	}
	return false
}

// Reachable flood-fills from start and returns the visited mask, indexed
// row-major. Walls are never visited.
func Reachable(g *Grid, start Pos) []bool {
	seen := make([]bool, g.cols*g.rows)
	if !g.InBounds(start.X, start.Y) || g.IsWall(start.X, start.Y) {
		return seen
	}

	queue := []Pos{start}
	seen[start.Y*g.cols+start.X] = true
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range neighbourDeltas {
			nx, ny := g.neighbour(p.X, p.Y, d[0], d[1])
			idx := ny*g.cols + nx
			if seen[idx] || g.IsWall(nx, ny) {
				continue
			}
			seen[idx] = true
			queue = append(queue, Pos{X: nx, Y: ny})
		}
	}
	return seen
}

// firstOpen returns the first passable cell in row-major order.
func firstOpen(g *Grid) (Pos, bool) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if !g.IsWall(x, y) {
				return Pos{X: x, Y: y}, true
			}
		}
	}
	return Pos{}, false
}

// IsConnected reports whether every passable cell can be reached from the
// first passable cell. A grid with no open cells counts as connected.
func IsConnected(g *Grid) bool {
	start, ok := firstOpen(g)
	if !ok {
		return true
	}
	seen := Reachable(g, start)
	for i, t := range g.tiles {
		if t != Wall && !seen[i] {
			return false
		}
	}
	return true
}
