package bidi

// Reorder applies L2 to order in place: order must start as the identity
// permutation (order[i] == i) of the character positions to be laid out,
// and level(pos) must return the final embedding level of the character
// at logical position pos (the values stored in order, not the indices
// into it). Each
// successive level from the highest down to the lowest odd level has
// every maximal run of positions at or above it reversed, which turns
// logical order into visual order.
//
// Ported from: dfrg/bidi (src/lib.rs, reorder).
func Reorder(order []int, level func(pos int) Level) {
	n := len(order)
	if n == 0 {
		return
	}
	var maxLevel, lowestOdd Level
	lowestOdd = maxDepth + 2
	for _, pos := range order {
		l := level(pos)
		if l > maxLevel {
			maxLevel = l
		}
		if l&1 != 0 && l < lowestOdd {
			lowestOdd = l
		}
	}
	if lowestOdd > maxLevel {
		return
	}
	for l := maxLevel; l >= lowestOdd; l-- {
		i := 0
		for i < n {
			if level(order[i]) < l {
				i++
				continue
			}
			j := i + 1
			for j < n && level(order[j]) >= l {
				j++
			}
			reverse(order[i:j])
			i = j
		}
	}
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// ReorderLevels is a convenience wrapper over Reorder for callers who
// already have a dense []Level slice (one entry per character) rather
// than a level-lookup closure: it returns the visual order as a fresh
// permutation of [0, len(levels)).
func ReorderLevels(levels []Level) []int {
	order := make([]int, len(levels))
	for i := range order {
		order[i] = i
	}
	Reorder(order, func(pos int) Level { return levels[pos] })
	return order
}
