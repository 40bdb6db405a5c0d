//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package scn

import (
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/fc9399/ForksAndWords/internal/tbl"
	"github.com/fc9399/ForksAndWords/internal/vv"
)

//
// SCENE MERGE
//

var (
	ErrDuplicateTopic = tbl.ErrDuplicateTopic
)

// Merge - validate both tables and then left join the hand-edited labels onto the documents
func Merge(docs *tbl.Table, docfile string, topics *tbl.Table, topicfile string) (*tbl.Table, error) {
	kw, err := tbl.TopicKeywordsFrom(topics, topicfile)
	if err != nil {
		return nil, err
	}

	dominant, err := tbl.DominantTopics(docs, docfile)
	if err != nil {
		return nil, err
	}

	return Join(docs, dominant, kw)
}

// Join - every document row comes out exactly once and in order; a topic with no label row leaves both label cells empty
func Join(docs *tbl.Table, dominant []int, kw []str.TopicKeywords) (*tbl.Table, error) {
	const (
		FAIL1 = "%d dominant topics for %d documents"
	)

	if len(dominant) != docs.Len() {
		return nil, fmt.Errorf(FAIL1, len(dominant), docs.Len())
	}

	bytopic := make(map[int]str.TopicKeywords, len(kw))
	for _, k := range kw {
		if _, dup := bytopic[k.TopicID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateTopic, k.TopicID)
		}
		bytopic[k.TopicID] = k
	}

	out := docs.Clone()
	out.DropColumn(vv.COLTOPICID)

	types := make([]string, out.Len())
	scenes := make([]string, out.Len())
	for i, d := range dominant {
		if k, ok := bytopic[d]; ok {
			types[i] = k.ConsumerType
			scenes[i] = k.ConsumerScene
		}
	}

	// rerunning the merge replaces the old labels instead of adding a second pair of columns
	if err := out.SetColumn(vv.COLCONSTYPE, types); err != nil {
		return nil, err
	}
	if err := out.SetColumn(vv.COLCONSSCENE, scenes); err != nil {
		return nil, err
	}
	return out, nil
}

// Unmatched - how many documents point at a topic that has no label row
func Unmatched(dominant []int, kw []str.TopicKeywords) int {
	known := make(map[int]struct{}, len(kw))
	for _, k := range kw {
		known[k.TopicID] = struct{}{}
	}
	n := 0
	for _, d := range dominant {
		if _, ok := known[d]; !ok {
			n++
		}
	}
	return n
}
