package geometry

// Point is an integer grid coordinate. Points are value types: two points
// are equal when their coordinates are equal.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Up returns the point one grid step above p.
func (p Point) Up() Point { return Point{X: p.X, Y: p.Y - 1} }

// Down returns the point one grid step below p.
func (p Point) Down() Point { return Point{X: p.X, Y: p.Y + 1} }

// Left returns the point one grid step to the left of p.
func (p Point) Left() Point { return Point{X: p.X - 1, Y: p.Y} }

// Right returns the point one grid step to the right of p.
func (p Point) Right() Point { return Point{X: p.X + 1, Y: p.Y} }

// Scale multiplies both coordinates by factor.
func (p Point) Scale(factor int) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Add returns the vector sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Taxicab returns the L1 (taxicab) distance between p and q.
func (p Point) Taxicab(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
