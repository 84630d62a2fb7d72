package scoring

// ComputeFrontier returns the names of the alternatives no other alternative
// dominates, in input order. a dominates b when a is at least as good on every
// criterion (>= on benefit, <= on cost) and strictly better on at least one.
// Column normalization is a positive per-column scale, so raw values give the
// same answer as normalized ones.
// O(n^2·k) dominance check; fine for the matrix sizes a decision study has.
func ComputeFrontier(m Matrix) []string {
	frontier := make([]string, 0, len(m.Alternatives))
	for i := range m.Alternatives {
		dominated := false
		for j := range m.Alternatives {
			if i == j {
				continue
			}
			if dominates(m.Criteria, m.Alternatives[j].Scores, m.Alternatives[i].Scores) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, m.Alternatives[i].Name)
		}
	}
	return frontier
}

// dominates returns true if row a dominates row b under the criteria directions.
func dominates(criteria Criteria, a, b []float64) bool {
	strictly := false
	for j, cr := range criteria {
		better, worse := a[j] > b[j], a[j] < b[j]
		if cr.Direction == Cost {
			better, worse = worse, better
		}
		if worse {
			return false
		}
		if better {
			strictly = true
		}
	}
	return strictly
}
