package snake

import "math/rand"

// maxFoodAttempts bounds reject-and-resample before falling back to the free-cell list.
const maxFoodAttempts = 4 * GridSize * GridSize

// placeFood picks a uniformly random cell not covered by body.
// Returns NoCell when every cell is taken.
func placeFood(rng *rand.Rand, body []Cell) Cell {
	taken := make(map[Cell]bool, len(body))
	for _, seg := range body {
		taken[seg] = true
	}

	for range maxFoodAttempts {
		c := Cell{X: rng.Intn(GridSize), Y: rng.Intn(GridSize)}
		if !taken[c] {
			return c
		}
	}

	// Crowded board: sample directly from the complement.
	free := make([]Cell, 0, GridSize*GridSize-len(taken))
	for y := range GridSize {
		for x := range GridSize {
			c := Cell{X: x, Y: y}
			if !taken[c] {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return NoCell
	}
	return free[rng.Intn(len(free))]
}
