//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import "strings"

//
// STRINGS and []RUNE
//

// KeepRunes - delete (not replace) every rune that fails the test
func KeepRunes(checking string, keep func(r rune) bool) string {
	var sb strings.Builder
	sb.Grow(len(checking))
	for _, r := range checking {
		if keep(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
