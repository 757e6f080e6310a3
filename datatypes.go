package main

import "math"

// Point is a 2-d cartesian coordinate, doubling as a displacement vector.
type Point struct {
	X float64
	Y float64
}

// Add returns a new Point summing both coordinates.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Cell is an individual subject in the simulation. Its disease state is
// encoded entirely by the Sickness counter measured against the
// Vulnerable/Infected/Immune thresholds; the counter never decreases.
type Cell struct {
	Location  Point
	Direction Point
	Sickness  int
}

// Model holds the whole state of the simulation: the population and the tick
// counter. The population size is fixed at construction; only the cells'
// positions and disease states change afterwards, and the Model owns every
// cell exclusively.
type Model struct {
	Population []Cell
	Time       int
}
