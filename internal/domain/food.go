package domain

import (
	"errors"
	"math/rand"
)

var ErrGridFull = errors.New("no free cell for food")

const maxFoodAttempts = 100

// PlaceFood picks a free cell uniformly at random. Rejection sampling is
// bounded; once it gives up the free cells are enumerated and one of them is
// drawn, so a crowded grid still terminates.
func PlaceFood(field *Field, occupied map[Coord]bool, rng *rand.Rand) (Coord, error) {
	if len(occupied) >= field.CellCount() {
		return Coord{}, ErrGridFull
	}

	for attempts := 0; attempts < maxFoodAttempts; attempts++ {
		pos := Coord{
			X: rng.Intn(field.Width),
			Y: rng.Intn(field.Height),
		}
		if !occupied[pos] {
			return pos, nil
		}
	}

	free := make([]Coord, 0, field.CellCount()-len(occupied))
	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			pos := Coord{x, y}
			if !occupied[pos] {
				free = append(free, pos)
			}
		}
	}
	if len(free) == 0 {
		return Coord{}, ErrGridFull
	}
	return free[rng.Intn(len(free))], nil
}
