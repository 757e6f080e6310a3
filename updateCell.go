package main

// Disease-state queries and transitions for a single cell.

// ContractDisease marks the cell as newly infected.
func (c *Cell) ContractDisease() {
	c.Sickness = Infected
}

// Immunize makes the cell permanently immune.
func (c *Cell) Immunize() {
	c.Sickness = Immune
}

// IsVulnerable reports whether the cell has never been infected.
func (c *Cell) IsVulnerable() bool {
	return c.Sickness == Vulnerable
}

// IsInfected reports whether the cell has reached disease onset and not yet
// immunized. Immune lies strictly above every reachable counter value, so
// the window test never misreads an immune cell.
func (c *Cell) IsInfected() bool {
	return c.Sickness >= Infected && c.Sickness < Immune
}

// IsImmune reports whether the cell has recovered.
func (c *Cell) IsImmune() bool {
	return c.Sickness == Immune
}

// Color returns the display color for the cell's current state: red while
// infected, blue once immune, gray otherwise.
func (c *Cell) Color() string {
	if c.IsInfected() {
		return "red"
	} else if c.IsImmune() {
		return "blue"
	}
	return "gray"
}

// ContactWith resolves a single contact between two cells. Transmission only
// happens between an infected and a vulnerable cell, and only one branch
// fires per contact; infected-infected or immune contacts change nothing.
func (c *Cell) ContactWith(other *Cell) {
	if c.IsInfected() && other.IsVulnerable() {
		other.ContractDisease()
	} else if c.IsVulnerable() && other.IsInfected() {
		c.ContractDisease()
	}
}
