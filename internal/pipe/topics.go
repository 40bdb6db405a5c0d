//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pipe

import (
	"encoding/json"
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/mm"
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/fc9399/ForksAndWords/internal/tbl"
	"github.com/fc9399/ForksAndWords/internal/txt"
	"github.com/fc9399/ForksAndWords/internal/vec"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

//
// STAGE 1: corpus ==> tokens ==> tf-idf ==> topics ==> dominant topic + keyword skeleton
//

// TopicResult - what stage 1 computed; nothing here is written until every step has succeeded
type TopicResult struct {
	Manifest     str.RunManifest
	Keywords     []str.TopicKeywords
	DocsPerTopic []int
	WeightShare  []float64
	Confidence   float64
}

// TopicModeling - run stage 1 and write the document table, the keyword table, and the run manifest
func TopicModeling(cfg str.CurrentConfiguration, lda vec.LDAConfig, msg *mm.MessageMaker) (*TopicResult, error) {
	const (
		MSG1 = "read C3%sC0 documents from %s"
		MSG2 = "%s documents normalized; %s of them are empty"
		MSG3 = "vocabulary: C3%sC0 terms"
		MSG4 = "fitted C3%dC0 topics with '%s' (seed %d)"
		MSG5 = "topic C1%dC0: %s docs (%.1f%%) weight %.1f%% C6%sC0"
		MSG6 = "wrote %s"
		MSG7 = "mean weight of the dominant topic: %.3f (sd %.3f)"
		FAIL1 = "topic modeling aborted: %w"
	)

	start := time.Now()
	previous := start

	fail := func(err error) (*TopicResult, error) {
		return nil, fmt.Errorf(FAIL1, err)
	}

	// [A] read

	corpus, err := tbl.Read(cfg.CorpusPath())
	if err != nil {
		return fail(err)
	}

	docs, err := tbl.Documents(corpus, cfg.CorpusPath(), cfg.TextColumn)
	if err != nil {
		return fail(err)
	}

	stops, err := txt.LoadStopwords(cfg.StopwordPath())
	if err != nil {
		return fail(err)
	}

	msg.NOTE(msg.Color(fmt.Sprintf(MSG1, msg.Count(len(docs)), cfg.CorpusPath())))
	msg.Timer("A1", "corpus and stopwords loaded", start, previous)
	previous = time.Now()

	// [B] normalize

	texts := make([]string, len(docs))
	for i := range docs {
		texts[i] = docs[i].Text
	}

	empty := 0
	for i, tt := range txt.NewNormalizer(stops).NormalizeAll(texts) {
		docs[i].Tokens = tt
		if len(tt) == 0 {
			empty++
		}
	}
	msg.FYI(fmt.Sprintf(MSG2, msg.Count(len(docs)), msg.Count(empty)))

	// [C] vectorize

	bags := make([][]string, len(docs))
	for i := range docs {
		bags[i] = docs[i].Tokens
	}

	w, err := vec.Vectorize(bags)
	if err != nil {
		return fail(err)
	}
	msg.FYI(msg.Color(fmt.Sprintf(MSG3, msg.Count(w.Vocab.Len()))))
	msg.Timer("B1", "tf-idf matrix built", start, previous)
	previous = time.Now()

	// [D] fit

	ctor, err := vec.GetFitter(cfg.Fitter)
	if err != nil {
		return fail(err)
	}

	topicTerm, docTopic, err := ctor(lda).Fit(w.TFIDF, cfg.LdaTopics, cfg.LdaSeed)
	if err != nil {
		return fail(err)
	}
	msg.NOTE(msg.Color(fmt.Sprintf(MSG4, cfg.LdaTopics, cfg.Fitter, cfg.LdaSeed)))
	msg.Timer("C1", "topic model fitted", start, previous)

	// [E] assign

	dominant := vec.DominantTopics(docTopic)
	for i := range docs {
		docs[i].Topic = dominant[i]
		docs[i].Assigned = true
	}

	res := &TopicResult{
		Keywords:     vec.TopicKeywords(topicTerm, w.Vocab.Terms, cfg.LdaTopWords),
		DocsPerTopic: vec.DocsPerTopic(cfg.LdaTopics, dominant),
		WeightShare:  vec.WeightPerTopic(docTopic),
	}

	var sd float64
	res.Confidence, sd = confidence(docTopic, dominant)
	msg.FYI(fmt.Sprintf(MSG7, res.Confidence, sd))

	for _, k := range res.Keywords {
		share := 100 * float64(res.DocsPerTopic[k.TopicID]) / float64(len(docs))
		msg.PEEK(msg.Color(fmt.Sprintf(MSG5, k.TopicID, msg.Count(res.DocsPerTopic[k.TopicID]), share,
			100*res.WeightShare[k.TopicID], k.JoinedWords(vv.TOPWORDSEP))))
	}

	// [F] write: everything goes to partial files first and is renamed into place only when all of them exist

	out, err := DocTopicTable(corpus, docs)
	if err != nil {
		return fail(err)
	}

	res.Manifest = str.RunManifest{
		RunID:      uuid.New().String(),
		Started:    start,
		Finished:   time.Now(),
		Fitter:     cfg.Fitter,
		Topics:     cfg.LdaTopics,
		Seed:       cfg.LdaSeed,
		Documents:  len(docs),
		Vocabulary: w.Vocab.Len(),
		Empty:      empty,
		Corpus:     cfg.CorpusPath(),
		DocTopics:  cfg.DocTopicsPath(),
		Keywords:   cfg.KeywordsPath(),
	}

	kwt := tbl.KeywordTable(res.Keywords)
	outputs := []output{
		{cfg.DocTopicsPath(), func(fn string) error { return tbl.Write(fn, out) }},
		{cfg.KeywordsPath(), func(fn string) error { return tbl.Write(fn, kwt) }},
		{filepath.Join(cfg.DataDir, vv.MANIFESTFILE), func(fn string) error { return WriteManifest(fn, res.Manifest) }},
	}

	if err = writeall(outputs); err != nil {
		return fail(err)
	}
	for _, o := range outputs {
		msg.FYI(fmt.Sprintf(MSG6, o.fn))
	}
	msg.Timer("D1", "stage complete: run "+res.Manifest.RunID, start, previous)

	return res, nil
}

// DocTopicTable - the corpus columns plus the tokens and the dominant topic of each document
func DocTopicTable(corpus *tbl.Table, docs []str.Document) (*tbl.Table, error) {
	out := corpus.Clone()
	tokens := make([]string, len(docs))
	topics := make([]string, len(docs))
	for i, d := range docs {
		tokens[i] = strings.Join(d.Tokens, " ")
		if d.Assigned {
			topics[i] = strconv.Itoa(d.Topic)
		}
	}
	if err := out.SetColumn(vv.COLTOKENS, tokens); err != nil {
		return nil, err
	}
	if err := out.SetColumn(vv.COLDOMINANT, topics); err != nil {
		return nil, err
	}
	return out, nil
}

// output - a file that a stage produces and the function that writes it to a given name
type output struct {
	fn    string
	write func(fn string) error
}

// partialname - "data/x.xlsx" ==> "data/.partial-x.xlsx"; the extension survives because the writers pick a format by it
func partialname(fn string) string {
	return filepath.Join(filepath.Dir(fn), vv.PARTIALPREFIX+filepath.Base(fn))
}

// writeall - write every output under its partial name and then rename them all into place;
// if any write fails no final file has been touched and the partial files are removed
func writeall(oo []output) error {
	partial := make([]string, len(oo))
	cleanup := func() {
		for _, p := range partial {
			if p != "" {
				_ = os.Remove(p)
			}
		}
	}

	for i, o := range oo {
		partial[i] = partialname(o.fn)
		if err := o.write(partial[i]); err != nil {
			cleanup()
			return err
		}
	}

	for i, o := range oo {
		if err := os.Rename(partial[i], o.fn); err != nil {
			cleanup()
			return err
		}
	}
	return nil
}

// WriteManifest - JSON, indented
func WriteManifest(fn string, m str.RunManifest) error {
	content, err := json.MarshalIndent(m, "", vv.JSONINDENT)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(fn), vv.DIRPERMS); err != nil {
		return err
	}
	return os.WriteFile(fn, content, vv.WRITEPERMS)
}

// confidence - mean and standard deviation of the weight that each document gives its dominant topic
func confidence(docTopic mat.Matrix, dominant []int) (float64, float64) {
	if len(dominant) == 0 {
		return 0, 0
	}
	w := make([]float64, len(dominant))
	for i, d := range dominant {
		w[i] = docTopic.At(i, d)
	}
	if len(w) == 1 {
		return w[0], 0
	}
	return stat.MeanStdDev(w, nil)
}
