package rules

// Neighbor-count bands for the 26-neighborhood rule. Both bands are inclusive.
const (
	SurviveMin = 5
	SurviveMax = 7
	BirthMin   = 6
	BirthMax   = 7
)

/*
ApplyLife3DRules applies the 3D Life rules to determine the next state of a cell.

A living cell survives with SurviveMin..SurviveMax alive neighbors, an empty cell
is born with BirthMin..BirthMax alive neighbors. Every other cell is empty in the
next generation.
*/
func ApplyLife3DRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= SurviveMin && neighbors <= SurviveMax
	}
	return neighbors >= BirthMin && neighbors <= BirthMax
}
