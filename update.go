package main

// Tick updates the state of the simulation by one time step: every cell
// moves and is bounced back inside the arena, then a single contact pass
// runs over the whole population. The two phases are strictly ordered, so
// contact resolution never sees a pre-move position.
func (m *Model) Tick() {
	m.Time++
	for i := range m.Population {
		m.Population[i].Tick()
		m.enforceBounds(&m.Population[i])
	}
	m.checkContacts()
}

// checkContacts compares every unordered pair of cells exactly once per tick
// and resolves a contact for each pair strictly closer than CellRadius.
func (m *Model) checkContacts() {
	for i := 0; i < len(m.Population); i++ {
		for j := i + 1; j < len(m.Population); j++ {
			if m.Population[i].Location.Distance(m.Population[j].Location) < CellRadius {
				m.Population[i].ContactWith(&m.Population[j])
			}
		}
	}
}

// IsComplete indicates when the simulation is over: no infected cells left.
// Immune and vulnerable cells may well coexist at that point.
func (m *Model) IsComplete() bool {
	for i := range m.Population {
		if m.Population[i].IsInfected() {
			return false
		}
	}
	return true
}
