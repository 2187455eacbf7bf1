package match

// Take returns the first k results of an already-ranked slice. It never
// copies: callers get a prefix view of the input.
func Take(results []Result, k int) []Result {
	if k < 0 {
		k = 0
	}
	if k > len(results) {
		k = len(results)
	}
	return results[:k]
}
