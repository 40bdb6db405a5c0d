//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pipe

import (
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/mm"
	"github.com/fc9399/ForksAndWords/internal/scn"
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/fc9399/ForksAndWords/internal/tbl"
)

//
// STAGE 2: hand-edited keyword table + document table ==> labeled document table
//

// SceneMerge - run stage 2; returns the merged table after writing it
func SceneMerge(cfg str.CurrentConfiguration, msg *mm.MessageMaker) (*tbl.Table, error) {
	const (
		MSG1  = "merged scene labels into C3%sC0 documents"
		MSG2  = "%s documents point at a topic without a label row"
		MSG3  = "wrote %s"
		FAIL1 = "scene merge aborted: %w"
	)

	fail := func(err error) (*tbl.Table, error) {
		return nil, fmt.Errorf(FAIL1, err)
	}

	topics, err := tbl.Read(cfg.KeywordsPath())
	if err != nil {
		return fail(err)
	}

	docs, err := tbl.Read(cfg.DocTopicsPath())
	if err != nil {
		return fail(err)
	}

	merged, err := scn.Merge(docs, cfg.DocTopicsPath(), topics, cfg.KeywordsPath())
	if err != nil {
		return fail(err)
	}

	if err = tbl.Write(cfg.ScenePath(), merged); err != nil {
		return fail(err)
	}

	msg.NOTE(msg.Color(fmt.Sprintf(MSG1, msg.Count(merged.Len()))))

	// both were validated by scn.Merge
	kw, _ := tbl.TopicKeywordsFrom(topics, cfg.KeywordsPath())
	dominant, _ := tbl.DominantTopics(docs, cfg.DocTopicsPath())
	if u := scn.Unmatched(dominant, kw); u > 0 {
		msg.WARN(fmt.Sprintf(MSG2, msg.Count(u)))
	}
	msg.FYI(fmt.Sprintf(MSG3, cfg.ScenePath()))

	return merged, nil
}
