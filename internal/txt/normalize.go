//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"github.com/fc9399/ForksAndWords/internal/gen"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/kljensen/snowball/english"
	"golang.org/x/text/cases"
	"strings"
	"unicode"
)

//
// LEXICAL NORMALIZATION
//

// Normalizer - turns one description into an ordered run of stems; Stops is read-only once built
type Normalizer struct {
	Stops  map[string]struct{}
	MinLen int
}

func NewNormalizer(stops map[string]struct{}) *Normalizer {
	if stops == nil {
		stops = make(map[string]struct{})
	}
	return &Normalizer{Stops: stops, MinLen: vv.MINTOKENLEN}
}

// Normalize - fold, strip, split, drop, stem; never fails and returns an empty slice for garbage
func (n *Normalizer) Normalize(raw string) []string {
	// "Seared langoustine in a truffled broth; well-known since 1986!"
	//   ==> [sear langoustin truffl broth wellknown sinc]

	folded := strings.ToLower(cases.Fold().String(raw))

	// deletion and not substitution: "well-known" becomes "wellknown"
	stripped := gen.KeepRunes(folded, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || unicode.IsSpace(r)
	})

	words := strings.Fields(stripped)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < n.MinLen {
			continue
		}
		if _, stop := n.Stops[w]; stop {
			continue
		}
		tokens = append(tokens, Stem(w))
	}
	return tokens
}

// NormalizeAll - Normalize each text; output order matches input order
func (n *Normalizer) NormalizeAll(raw []string) [][]string {
	out := make([][]string, len(raw))
	for i := range raw {
		out[i] = n.Normalize(raw[i])
	}
	return out
}

// Stem - snowball (porter2) english stemming: "cooking", "cooked", "cook" ==> "cook"
func Stem(w string) string {
	return english.Stem(w, true)
}
