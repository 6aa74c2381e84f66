package timer

// Unmatched returns, in input order, every call for which no other call in
// calls satisfies Pairs. Matching is existence based: several calls may
// pair with the same counterpart.
func Unmatched(calls []*Call) []*Call {
	var unmatched []*Call

	for _, c := range calls {
		if !hasPair(c, calls) {
			unmatched = append(unmatched, c)
		}
	}

	return unmatched
}

func hasPair(c *Call, calls []*Call) bool {
	for _, other := range calls {
		if c.Pairs(other) {
			return true
		}
	}

	return false
}
