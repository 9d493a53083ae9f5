package routh

import "math"

// firstColumn extracts each row's leading entry.
func firstColumn(table [][]float64) []float64 {
	col := make([]float64, len(table))
	for i, row := range table {
		col[i] = row[0]
	}

	return col
}

// countSignChanges counts adjacent strict sign reversals in col. Entries
// within tol of zero are first replaced by the fixed signSubstitute so
// floating noise around zero neither hides nor fabricates a reversal;
// the substitution itself is never counted as a change.
func countSignChanges(col []float64, tol float64) int {
	cleaned := make([]float64, len(col))
	for i, v := range col {
		if math.Abs(v) < tol {
			cleaned[i] = signSubstitute
		} else {
			cleaned[i] = v
		}
	}

	changes := 0
	for k := 0; k+1 < len(cleaned); k++ {
		a, c := cleaned[k], cleaned[k+1]
		if (a > 0 && c < 0) || (a < 0 && c > 0) {
			changes++
		}
	}

	return changes
}
