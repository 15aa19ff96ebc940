package types

// Direction is a unit step on the grid. Y grows downward.
type Direction struct {
	X, Y int
}

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsOpposite reports whether d points exactly against other.
func (d Direction) IsOpposite(other Direction) bool {
	return d == other.Opposite()
}

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
