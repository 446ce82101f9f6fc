package domain

// Snake is the ordered list of occupied cells, head first.
type Snake struct {
	Points        []Coord
	HeadDirection Direction
}

func NewSnake(points []Coord, heading Direction) *Snake {
	body := make([]Coord, len(points))
	copy(body, points)

	return &Snake{
		Points:        body,
		HeadDirection: heading,
	}
}

func (s *Snake) Head() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[0]
}

func (s *Snake) Length() int {
	return len(s.Points)
}

func (s *Snake) Occupies(c Coord) bool {
	for _, p := range s.Points {
		if p.Equals(c) {
			return true
		}
	}
	return false
}

func (s *Snake) Occupied() map[Coord]bool {
	occupied := make(map[Coord]bool, len(s.Points))
	for _, p := range s.Points {
		occupied[p] = true
	}
	return occupied
}

// Advance prepends head and, unless grow is set, drops the tail. It reports the
// vacated cell when one was dropped.
func (s *Snake) Advance(head Coord, grow bool) (Coord, bool) {
	newPoints := make([]Coord, 0, len(s.Points)+1)
	newPoints = append(newPoints, head)
	newPoints = append(newPoints, s.Points...)

	if grow {
		s.Points = newPoints
		return Coord{}, false
	}

	lastIdx := len(newPoints) - 1
	vacated := newPoints[lastIdx]
	s.Points = newPoints[:lastIdx]
	return vacated, true
}

func (s *Snake) Copy() *Snake {
	return NewSnake(s.Points, s.HeadDirection)
}
