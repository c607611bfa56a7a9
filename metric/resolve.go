package metric

// Resolve maps requested onto the closest name in known: an exact match wins,
// otherwise the name with the smallest Levenshtein distance, ties going to
// the earlier entry of known. ok is false only when requested or known is
// empty; exact reports whether no correction was needed.
//
// Complexity: O(len(known) · |requested| · |name|).
func Resolve(requested string, known []string) (name string, exact, ok bool) {
	if requested == "" || len(known) == 0 {
		return "", false, false
	}
	best, bestDist := "", -1
	for _, k := range known {
		if k == requested {
			return k, true, true
		}
		if d := Levenshtein(requested, k); bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}

	return best, false, true
}
