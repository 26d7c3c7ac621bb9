package segtree

// contains tests if range [outerFrom, outerTo] contains range [innerFrom, innerTo].
func contains(outerFrom, outerTo, innerFrom, innerTo int) bool {
	return innerFrom >= outerFrom && innerTo <= outerTo
}

// intersects tests if the closed ranges [aFrom, aTo] and [bFrom, bTo] share at
// least one position.
func intersects(aFrom, aTo, bFrom, bTo int) bool {
	return aFrom <= bFrom && aTo >= bFrom || //  (.[..)..] or (.[...]..)
		aFrom >= bFrom && aFrom <= bTo //  [.(..]..) or [..(..)..]
}
