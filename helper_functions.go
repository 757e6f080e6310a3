package main

import (
	"fmt"
	"math/rand"
	"time"
)

// random number generator helper
func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// countStates tallies the population per disease state.
func countStates(m *Model) (vulnerable, infected, immune int) {
	for i := range m.Population {
		switch {
		case m.Population[i].IsInfected():
			infected++
		case m.Population[i].IsImmune():
			immune++
		default:
			vulnerable++
		}
	}
	return vulnerable, infected, immune
}

func printStats(m *Model) {
	vulnerable, infected, immune := countStates(m)
	fmt.Printf("%d, %d, %d, %d\n", m.Time, vulnerable, infected, immune)
}
