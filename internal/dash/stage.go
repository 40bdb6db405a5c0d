//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dash

import "strings"

//
// TEXT PROCESSING PAGE: which step is on display
//

type Stage int

const (
	StageRaw Stage = iota
	StageToken
	StageStopwords
	StageStem
	StageConversion
)

var stagenames = [...]string{"raw", "token", "stopwords", "stem", "conversion"}

var stagelabels = [...]string{
	"View Raw Text",
	"Step 1: Tokenization",
	"Step 2: Remove Stopwords",
	"Step 3: Stemming",
	"Step 4: TF-IDF Conversion",
}

// ParseStage - anything unknown (including "") is the raw text
func ParseStage(s string) Stage {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range stagenames {
		if n == s {
			return Stage(i)
		}
	}
	return StageRaw
}

func (s Stage) String() string {
	if s < StageRaw || s > StageConversion {
		return stagenames[StageRaw]
	}
	return stagenames[s]
}

func (s Stage) Label() string {
	if s < StageRaw || s > StageConversion {
		return stagelabels[StageRaw]
	}
	return stagelabels[s]
}

// Stages - every step in page order
func Stages() []Stage {
	return []Stage{StageRaw, StageToken, StageStopwords, StageStem, StageConversion}
}

// SampleName etc. - the description that the text processing page walks through
const (
	SampleName  = "Le Bernardin"
	SamplePlace = "New York City"
	SamplePrice = "$$$$"
	SampleStars = 3
	SampleText  = `Maguy Le Coze and Eric Ripert’s icon has been entertaining the city’s movers and shakers for close to 30 years and its popularity remains undimmed. Seafood restaurants have no hiding place when it comes to cooking fish or crustaceans and this kitchen always hits its marks—whether that’s lusciously sweet, seared langoustine in a truffled broth or golden-brown fluke with a bouillabaisse enriched with sea urchin. While seafood remains Ripert's passion, his vegetarian tasting menu makes waves with dishes like the Himalayan morel, spring pea and fava bean casserole or the warm artichoke panaché with vegetable risotto and Périgord black truffle vinaigrette. Finish with purple sweet potato baba au whisky cloaked with caramelized pecan whipped cream.`
)
