package vmath

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Center returns the rectangle midpoint
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Circle is a disc centered at (X, Y)
type Circle struct {
	X, Y, R float64
}

// RectsOverlap tests separating axes on X and Y; touching edges do not overlap
func RectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// RectCircle clamps the circle center into the rectangle and compares squared distance to radius squared
// A circle touching the edge intersects
func RectCircle(r Rect, c Circle) bool {
	nearestX := Clamp(c.X, r.X, r.X+r.W)
	nearestY := Clamp(c.Y, r.Y, r.Y+r.H)
	dx := c.X - nearestX
	dy := c.Y - nearestY
	return dx*dx+dy*dy <= c.R*c.R
}
