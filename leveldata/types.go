// Package leveldata provides TMX level parsing for the playfield. It is
// pure data, with no dependency on ebitengine, donburi, or resolv.
package leveldata

// Level holds everything parsed from one TMX level file.
type Level struct {
	Name      string
	MapWidth  int
	MapHeight int

	Walls   []Rect
	Bricks  []Brick
	Hazards []Rect
	Goals   []Rect

	// Spawn markers; nil when the level omits one.
	PaddleSpawn *Marker
	BallSpawn   *Marker
}

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Brick is a destructible (or not) block with its type ID.
type Brick struct {
	Rect
	TypeID int
}

// Marker is a spawn position with an orientation in degrees.
type Marker struct {
	X, Y     float64
	Rotation float64
}

// FallbackCenter returns the level-independent default position used when a
// spawn marker is missing: the geometric center of the map bounds, or the
// origin when dimensions are absent.
func (l *Level) FallbackCenter() (x, y float64) {
	return float64(l.MapWidth) / 2, float64(l.MapHeight) / 2
}

// DestructibleBricks counts bricks that can still be cleared.
func (l *Level) DestructibleBricks(indestructibleType int) int {
	n := 0
	for _, b := range l.Bricks {
		if b.TypeID != indestructibleType {
			n++
		}
	}
	return n
}
