package model

// Rect is a screen-space bounding box in device independent pixels
type Rect struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Vec2 is a 2D offset
type Vec2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Add returns the component-wise sum of two vectors
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Lerp interpolates between v and to by t in [0,1]
func (v Vec2) Lerp(to Vec2, t float32) Vec2 {
	return Vec2{X: Lerp(v.X, to.X, t), Y: Lerp(v.Y, to.Y, t)}
}

// Lerp interpolates linearly between from and to
func Lerp(from, to, t float32) float32 {
	return from + (to-from)*t
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Scaled returns the rectangle scaled around its center
func (r Rect) Scaled(scale float32) Rect {
	c := r.Center()
	w := r.Width * scale
	h := r.Height * scale
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// Translated returns the rectangle moved by offset
func (r Rect) Translated(offset Vec2) Rect {
	return Rect{X: r.X + offset.X, Y: r.Y + offset.Y, Width: r.Width, Height: r.Height}
}

// IsEmpty reports whether the rectangle has no area
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}
