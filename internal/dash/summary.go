//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dash

import (
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/fc9399/ForksAndWords/internal/vec"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"gonum.org/v1/gonum/stat"
)

// TopicRow - one line of the topics summary
type TopicRow struct {
	TopicID int
	Docs    int
	Share   float64
	Words   string
	Type    string
	Scene   string
}

// TopicSummary - how the documents spread over the topics
type TopicSummary struct {
	Rows       []TopicRow
	Documents  int
	Unassigned int
	MeanShare  float64
	SdShare    float64
}

// Summarize - one row per keyword record; documents whose topic has no record count as unassigned
func Summarize(kw []str.TopicKeywords, dominant []int) TopicSummary {
	k := 0
	for _, t := range kw {
		if t.TopicID+1 > k {
			k = t.TopicID + 1
		}
	}

	counts := vec.DocsPerTopic(k, dominant)
	ts := TopicSummary{Documents: len(dominant)}

	assigned := 0
	shares := make([]float64, 0, len(kw))
	for _, t := range kw {
		row := TopicRow{
			TopicID: t.TopicID,
			Words:   t.JoinedWords(vv.TOPWORDSEP),
			Type:    t.ConsumerType,
			Scene:   t.ConsumerScene,
		}
		if t.TopicID >= 0 {
			row.Docs = counts[t.TopicID]
		}
		if ts.Documents > 0 {
			row.Share = float64(row.Docs) / float64(ts.Documents)
		}
		assigned += row.Docs
		shares = append(shares, row.Share)
		ts.Rows = append(ts.Rows, row)
	}
	ts.Unassigned = ts.Documents - assigned

	switch len(shares) {
	case 0:
	case 1:
		ts.MeanShare = shares[0]
	default:
		ts.MeanShare, ts.SdShare = stat.MeanStdDev(shares, nil)
	}
	return ts
}
