package maze

// lastResort is used when neither search finds a clear footprint.
var lastResort = Pos{X: 1, Y: 1}

// FindOpen locates a position near from where a w x h footprint is clear.
// avoid, when non-nil, rejects otherwise valid positions (occupied cells,
// reserved areas). The search never fails: it spirals out from from, then
// scans from the bottom row upward starting at the center column, and
// finally returns a fixed coordinate.
func FindOpen(g *Grid, from Pos, w, h int, avoid func(Pos) bool) Pos {
	ok := func(p Pos) bool {
		if !g.FootprintClear(p.X, p.Y, w, h) {
			return false
		}
		return avoid == nil || !avoid(p)
	}

	if ok(from) {
		return from
	}

	maxRadius := max(g.cols, g.rows)
	for r := 1; r <= maxRadius; r++ {
		// Walk the ring of Chebyshev radius r clockwise from its top-left.
		for dx := -r; dx <= r; dx++ {
			if p := from.Add(dx, -r); ok(p) {
				return p
			}
		}
		for dy := -r + 1; dy <= r; dy++ {
			if p := from.Add(r, dy); ok(p) {
				return p
			}
		}
		for dx := r - 1; dx >= -r; dx-- {
			if p := from.Add(dx, r); ok(p) {
				return p
			}
		}
		for dy := r - 1; dy > -r; dy-- {
			if p := from.Add(-r, dy); ok(p) {
				return p
			}
		}
	}

	center := (g.cols - w) / 2
	for y := g.rows - h; y >= 0; y-- {
		for off := 0; off <= g.cols; off++ {
			for _, x := range [2]int{center - off, center + off} {
				if p := (Pos{X: x, Y: y}); ok(p) {
					return p
				}
			}
		}
	}

	return lastResort
}
