package domain

import "time"

const (
	DefaultGridSide       = 20
	DefaultScoreIncrement = 10
	DefaultTickPeriod     = 80 * time.Millisecond
	DefaultTickStep       = 2 * time.Millisecond
	DefaultMinTickPeriod  = 30 * time.Millisecond
)

type GameConfig struct {
	Width  int
	Height int

	ScoreIncrement int

	TickPeriod    time.Duration
	TickStep      time.Duration
	MinTickPeriod time.Duration

	InitialSnake   []Coord
	InitialHeading Direction
	InitialFood    Coord
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:          DefaultGridSide,
		Height:         DefaultGridSide,
		ScoreIncrement: DefaultScoreIncrement,
		TickPeriod:     DefaultTickPeriod,
		TickStep:       DefaultTickStep,
		MinTickPeriod:  DefaultMinTickPeriod,
		InitialSnake: []Coord{
			{10, 10},
			{10, 11},
			{10, 12},
		},
		InitialHeading: DirectionUp,
		InitialFood:    Coord{5, 5},
	}
}

func (c *GameConfig) Validate() bool {
	if c.Width < 5 || c.Width > 100 {
		return false
	}
	if c.Height < 5 || c.Height > 100 {
		return false
	}
	if c.ScoreIncrement <= 0 {
		return false
	}
	if c.MinTickPeriod <= 0 || c.TickPeriod < c.MinTickPeriod {
		return false
	}
	if c.TickStep < 0 {
		return false
	}
	if !c.InitialHeading.Valid() || len(c.InitialSnake) == 0 {
		return false
	}

	field := NewField(c.Width, c.Height)
	seen := make(map[Coord]bool, len(c.InitialSnake))
	for _, cell := range c.InitialSnake {
		if !field.Contains(cell) || seen[cell] {
			return false
		}
		seen[cell] = true
	}
	if !field.Contains(c.InitialFood) || seen[c.InitialFood] {
		return false
	}
	return true
}

func (c *GameConfig) Copy() *GameConfig {
	snake := make([]Coord, len(c.InitialSnake))
	copy(snake, c.InitialSnake)

	return &GameConfig{
		Width:          c.Width,
		Height:         c.Height,
		ScoreIncrement: c.ScoreIncrement,
		TickPeriod:     c.TickPeriod,
		TickStep:       c.TickStep,
		MinTickPeriod:  c.MinTickPeriod,
		InitialSnake:   snake,
		InitialHeading: c.InitialHeading,
		InitialFood:    c.InitialFood,
	}
}
