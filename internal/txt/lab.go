//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import "strings"

//
// STEP BY STEP DISPLAY FOR THE TEXT PROCESSING PAGE
//

const (
	labpunct = ".,!?"
)

type Mark int

const (
	Kept Mark = iota
	Stopped
	Stemmed
)

// LabToken - one whitespace token as the text processing page shows it
type LabToken struct {
	Raw   string
	Base  string
	Stem  string
	Punct string
	Mark  Mark
}

// LabTokens - split on whitespace only and then mark each token as kept, stopped, or stemmed
func LabTokens(raw string, stops map[string]struct{}) []LabToken {
	fields := strings.Fields(raw)
	out := make([]LabToken, len(fields))
	for i, tok := range fields {
		base := strings.Trim(tok, labpunct)
		lt := LabToken{
			Raw:   tok,
			Base:  base,
			Punct: tok[len(strings.TrimRight(tok, labpunct)):],
			Mark:  Kept,
		}
		if _, ok := stops[strings.ToLower(base)]; ok {
			lt.Mark = Stopped
			out[i] = lt
			continue
		}
		lt.Stem = Stem(base)
		if lt.Stem != strings.ToLower(base) {
			lt.Mark = Stemmed
		}
		out[i] = lt
	}
	return out
}

func (t LabToken) IsStop() bool    { return t.Mark == Stopped }
func (t LabToken) IsStemmed() bool { return t.Mark == Stemmed }
