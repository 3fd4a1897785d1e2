package layout

// Point is a position in the viewport's coordinate space.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width and height.
type Size struct {
	W int `json:"width"`
	H int `json:"height"`
}

// Rect is an axis-aligned box.
type Rect struct {
	Point
	Size
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether p falls inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}
