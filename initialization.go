package main

import (
	"fmt"
	"math"
	"math/rand"
)

// NewModel initializes the population with random locations and directions.
// Exactly startInfected cells begin infected and startImmune begin immune;
// the rest start vulnerable. Validation happens before any cell is built, so
// a failed construction leaves no partial population behind. rng may be nil,
// in which case a time-seeded source is used.
func NewModel(cells int, speed float64, startInfected, startImmune int, rng *rand.Rand) (*Model, error) {
	if startInfected <= 0 || startInfected >= cells {
		return nil, fmt.Errorf("some number of the cells must begin infected: got %d of %d", startInfected, cells)
	}
	if startImmune < 0 || startImmune >= cells {
		return nil, fmt.Errorf("immune cells must be fewer than the population: got %d of %d", startImmune, cells)
	}
	if startInfected+startImmune >= cells {
		return nil, fmt.Errorf("infected plus immune cells must be fewer than the population: got %d of %d", startInfected+startImmune, cells)
	}
	rng = rngOrDefault(rng)

	m := &Model{Population: make([]Cell, 0, cells)}
	for i := 0; i < cells-startInfected-startImmune; i++ {
		m.Population = append(m.Population, Cell{
			Location:  randomLocation(rng),
			Direction: randomDirection(rng, speed),
			Sickness:  Vulnerable,
		})
	}
	for i := 0; i < startInfected; i++ {
		cell := Cell{Location: randomLocation(rng), Direction: randomDirection(rng, speed)}
		cell.ContractDisease()
		m.Population = append(m.Population, cell)
	}
	for i := 0; i < startImmune; i++ {
		cell := Cell{Location: randomLocation(rng), Direction: randomDirection(rng, speed)}
		cell.Immunize()
		m.Population = append(m.Population, cell)
	}
	return m, nil
}

// randomLocation draws a uniform point inside the arena bounds.
func randomLocation(rng *rand.Rand) Point {
	return Point{
		X: MinX + rng.Float64()*BoundsWidth,
		Y: MinY + rng.Float64()*BoundsHeight,
	}
}

// randomDirection draws a per-tick displacement vector of magnitude speed at
// a uniform angle.
func randomDirection(rng *rand.Rand, speed float64) Point {
	angle := 2.0 * math.Pi * rng.Float64()
	return Point{
		X: math.Cos(angle) * speed,
		Y: math.Sin(angle) * speed,
	}
}
