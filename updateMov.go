package main

// Tick advances the cell one time step. The cell always moves by its
// direction vector, whatever its disease state; while infected the sickness
// counter climbs by one per tick until the recovery period is reached, at
// which point the cell immunizes.
func (c *Cell) Tick() {
	c.Location = c.Location.Add(c.Direction)
	if c.IsInfected() {
		c.Sickness++
		if c.Sickness >= RecoveryPeriod {
			c.Immunize()
		}
	}
}

// enforceBounds bounces a cell back inside the arena. The branches are
// mutually exclusive and checked x before y: a cell that escaped on both
// axes in the same tick only reflects on x.
func (m *Model) enforceBounds(cell *Cell) {
	if cell.Location.X > MaxX {
		cell.Location.X = MaxX
		cell.Direction.X *= -1
	} else if cell.Location.X < MinX {
		cell.Location.X = MinX
		cell.Direction.X *= -1
	} else if cell.Location.Y > MaxY {
		cell.Location.Y = MaxY
		cell.Direction.Y *= -1
	} else if cell.Location.Y < MinY {
		cell.Location.Y = MinY
		cell.Direction.Y *= -1
	}
}
