package main

// Disease thresholds. A cell's state lives entirely in its sickness counter:
// Vulnerable < Infected < Immune must hold, and Immune must sit strictly above
// every value the counter can reach while a cell is infected. The counter is
// capped at RecoveryPeriod (at which point it jumps straight to Immune), so
// RecoveryPeriod+1 satisfies that.
const (
	Vulnerable     = 0
	Infected       = 1
	RecoveryPeriod = 45
	Immune         = RecoveryPeriod + 1
)

// Arena bounds. Cells are seeded uniformly inside the box and bounce off the
// edges once they cross them.
const (
	BoundsWidth  = 400.0
	BoundsHeight = 400.0
	MaxX         = BoundsWidth / 2
	MinX         = -MaxX
	MaxY         = BoundsHeight / 2
	MinY         = -MaxY
)

// CellRadius is the contact distance: two cells strictly closer than this
// exchange one contact per tick.
const CellRadius = 15.0

// Driver defaults.
const (
	DefaultCellCount     = 30
	DefaultCellSpeed     = 5.0
	DefaultStartInfected = 1
	DefaultStartImmune   = 0
	ScreenWidth          = 600
	ScreenHeight         = 600
)
