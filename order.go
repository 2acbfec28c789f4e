package scriptdeps

import (
	"cmp"
	"slices"
)

// Keyed is implemented by anything that can be arranged by [SortByOrder], for example
// [SourceFile].
type Keyed interface {
	Key() ModuleKey
}

// OrderCompare returns a comparison function over [ModuleKey] values that follows the given
// resolved order.  Keys absent from the order compare after every present key and equal to
// each other, so a stable sort keeps their relative input order.
func OrderCompare(order []ModuleKey) func(a, b ModuleKey) int {
	pos := make(map[ModuleKey]int, len(order))
	for i, key := range order {
		if _, ok := pos[key]; !ok {
			pos[key] = i
		}
	}
	at := func(key ModuleKey) int {
		if i, ok := pos[key]; ok {
			return i
		}
		return len(order)
	}
	return func(a, b ModuleKey) int {
		return cmp.Compare(at(a), at(b))
	}
}

// SortByOrder returns a copy of the given collection arranged according to the resolved order
// from [Resolve].  Elements whose key is absent from the order sort after every element whose
// key is present.  The sort is stable: elements that compare equal (two absentees, or
// duplicates of the same key) keep their relative input order.
func SortByOrder[M Keyed](mods []M, order []ModuleKey) []M {
	compare := OrderCompare(order)
	sorted := slices.Clone(mods)
	slices.SortStableFunc(sorted, func(a, b M) int {
		return compare(a.Key(), b.Key())
	})
	return sorted
}
