//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"cmp"
	"slices"
	"strings"
)

//
// SETS AND SLICES
//

// ToSet - returns a blank map of a slice
func ToSet[T comparable](sl []T) map[T]struct{} {
	m := make(map[T]struct{}, len(sl))
	for i := 0; i < len(sl); i++ {
		m[sl[i]] = struct{}{}
	}
	return m
}

// SortedUnique - the unique items from a slice in ascending order
func SortedUnique[T cmp.Ordered](s []T) []T {
	// can't use slices.Compact alone because that only looks as consecutive repeats: [a, a, b, a] -> [a, b, a]
	c := slices.Clone(s)
	slices.Sort(c)
	return slices.Compact(c)
}

// StringMapKeysIntoSlice - convert map[string]T to a sorted []string
func StringMapKeysIntoSlice[T any](mp map[string]T) []string {
	sl := make([]string, len(mp))
	i := 0
	for k := range mp {
		sl[i] = k
		i += 1
	}
	slices.Sort(sl)
	return sl
}

// SplitAndTrim - "French, Seafood,," ==> [French Seafood]
func SplitAndTrim(s string, sep string) []string {
	var out []string
	for _, p := range strings.Split(s, sep) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ContainsAny - does any item of bb appear in aa?
func ContainsAny[T comparable](aa []T, bb []T) bool {
	set := ToSet(aa)
	for _, b := range bb {
		if _, ok := set[b]; ok {
			return true
		}
	}
	return false
}
