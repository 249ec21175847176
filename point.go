package ink

// Point is an integer pixel coordinate.
type Point struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}
