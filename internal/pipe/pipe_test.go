//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pipe

import (
	"encoding/json"
	"errors"
	"github.com/fc9399/ForksAndWords/internal/mm"
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/fc9399/ForksAndWords/internal/tbl"
	"github.com/fc9399/ForksAndWords/internal/vec"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type roundrobin struct{}

// Fit - document d goes to topic d mod k; term j weighs most in topic j mod k
func (roundrobin) Fit(weights mat.Matrix, k int, seed uint64) (*mat.Dense, *mat.Dense, error) {
	nd, nt := weights.Dims()
	tt := mat.NewDense(k, nt, nil)
	for j := 0; j < nt; j++ {
		tt.Set(j%k, j, float64(nt-j))
	}
	dt := mat.NewDense(nd, k, nil)
	for d := 0; d < nd; d++ {
		dt.Set(d, d%k, 1)
	}
	return tt, dt, nil
}

func init() {
	vec.RegisterFitter("roundrobin", func(cfg vec.LDAConfig) vec.Fitter { return roundrobin{} })
}

func quiet() *mm.MessageMaker {
	m := mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION, 0)
	m.Out = io.Discard
	return m
}

func testconfig(t *testing.T) str.CurrentConfiguration {
	dir := t.TempDir()
	cfg := str.CurrentConfiguration{
		CorpusFile:    "michelin.csv",
		DataDir:       dir,
		DocTopicsFile: "michelin_with_topics.csv",
		Fitter:        "roundrobin",
		KeywordsFile:  vv.KEYWORDSFILE,
		LdaSeed:       vv.LDASEED,
		LdaTopics:     2,
		LdaTopWords:   3,
		SceneFile:     "michelin_with_scene.csv",
		StopwordFile:  vv.STOPWORDFILE,
		TextColumn:    vv.COLTEXT,
	}

	corpus := tbl.New(vv.COLNAME, vv.COLTEXT)
	corpus.Append([]string{"Le Poisson", "The fish is fresh and the oysters are briny."})
	corpus.Append([]string{"Steak Palace", "Steaks, burgers, and a serious wine list!"})
	corpus.Append([]string{"Nothing", "the and of"})
	require.NoError(t, tbl.Write(cfg.CorpusPath(), corpus))
	require.NoError(t, os.WriteFile(cfg.StopwordPath(), []byte("the\nand\nof\nis\nare\na\n"), vv.WRITEPERMS))
	return cfg
}

func TestTopicModeling(t *testing.T) {
	cfg := testconfig(t)

	res, err := TopicModeling(cfg, vec.DefaultLDAConfig, quiet())
	require.NoError(t, err)

	assert.Equal(t, []int{2, 1}, res.DocsPerTopic)
	assert.Len(t, res.Keywords, 2)
	assert.Equal(t, 3, res.Manifest.Documents)
	assert.Equal(t, 1, res.Manifest.Empty)
	assert.NotEmpty(t, res.Manifest.RunID)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)

	docs, err := tbl.Read(cfg.DocTopicsPath())
	require.NoError(t, err)
	assert.Equal(t, []string{vv.COLNAME, vv.COLTEXT, vv.COLTOKENS, vv.COLDOMINANT}, docs.Header)
	assert.Equal(t, []string{"0", "1", "0"}, docs.Column(vv.COLDOMINANT))
	assert.Contains(t, strings.Fields(docs.Get(0, vv.COLTOKENS)), "fish")
	assert.Equal(t, "", docs.Get(2, vv.COLTOKENS))

	kt, err := tbl.Read(cfg.KeywordsPath())
	require.NoError(t, err)
	kw, err := tbl.TopicKeywordsFrom(kt, cfg.KeywordsPath())
	require.NoError(t, err)
	require.Len(t, kw, 2)
	assert.Equal(t, "0", kw[0].ConsumerType)
	assert.Equal(t, "", kw[0].ConsumerScene)
	assert.Len(t, kw[0].TopWords, 3)

	content, err := os.ReadFile(filepath.Join(cfg.DataDir, vv.MANIFESTFILE))
	require.NoError(t, err)
	var m str.RunManifest
	require.NoError(t, json.Unmarshal(content, &m))
	assert.Equal(t, res.Manifest.RunID, m.RunID)
	assert.Equal(t, "roundrobin", m.Fitter)
}

func TestTopicModelingWritesNothingOnFailure(t *testing.T) {
	cfg := testconfig(t)
	cfg.Fitter = "nosuchfitter"

	_, err := TopicModeling(cfg, vec.DefaultLDAConfig, quiet())
	require.Error(t, err)
	assert.NoFileExists(t, cfg.DocTopicsPath())
	assert.NoFileExists(t, cfg.KeywordsPath())

	cfg = testconfig(t)
	cfg.TextColumn = "blurb"
	_, err = TopicModeling(cfg, vec.DefaultLDAConfig, quiet())
	var mc *tbl.MissingColumnError
	assert.True(t, errors.As(err, &mc))
	assert.NoFileExists(t, cfg.DocTopicsPath())

	cfg = testconfig(t)
	require.NoError(t, os.Remove(cfg.StopwordPath()))
	_, err = TopicModeling(cfg, vec.DefaultLDAConfig, quiet())
	assert.Error(t, err)
}

func TestTopicModelingKeepsOldOutputsWhenAWriteFails(t *testing.T) {
	cfg := testconfig(t)
	_, err := TopicModeling(cfg, vec.DefaultLDAConfig, quiet())
	require.NoError(t, err)

	olddocs, err := os.ReadFile(cfg.DocTopicsPath())
	require.NoError(t, err)
	oldkw, err := os.ReadFile(cfg.KeywordsPath())
	require.NoError(t, err)

	// the manifest is written last; a directory in the way of its partial file makes that write fail
	manifest := filepath.Join(cfg.DataDir, vv.MANIFESTFILE)
	blocker := partialname(manifest)
	require.NoError(t, os.MkdirAll(filepath.Join(blocker, "occupied"), vv.DIRPERMS))

	corpus := tbl.New(vv.COLNAME, vv.COLTEXT)
	corpus.Append([]string{"Noodle Bar", "Hand pulled noodles in a fiery broth"})
	corpus.Append([]string{"Bakery", "Croissants and sourdough baked at dawn"})
	require.NoError(t, tbl.Write(cfg.CorpusPath(), corpus))

	_, err = TopicModeling(cfg, vec.DefaultLDAConfig, quiet())
	require.Error(t, err)

	newdocs, err := os.ReadFile(cfg.DocTopicsPath())
	require.NoError(t, err)
	newkw, err := os.ReadFile(cfg.KeywordsPath())
	require.NoError(t, err)
	assert.Equal(t, olddocs, newdocs)
	assert.Equal(t, oldkw, newkw)

	assert.NoFileExists(t, partialname(cfg.DocTopicsPath()))
	assert.NoFileExists(t, partialname(cfg.KeywordsPath()))
}

func TestPartialName(t *testing.T) {
	assert.Equal(t, filepath.Join("data", ".partial-michelin_with_topics.xlsx"), partialname(filepath.Join("data", "michelin_with_topics.xlsx")))
}

func TestTopicModelingEmptyVocabulary(t *testing.T) {
	cfg := testconfig(t)
	corpus := tbl.New(vv.COLTEXT)
	corpus.Append([]string{"the and of"})
	corpus.Append([]string{""})
	require.NoError(t, tbl.Write(cfg.CorpusPath(), corpus))

	_, err := TopicModeling(cfg, vec.DefaultLDAConfig, quiet())
	assert.True(t, errors.Is(err, vec.ErrEmptyVocabulary) || errors.Is(err, vec.ErrEmptyCorpus))
	assert.NoFileExists(t, cfg.DocTopicsPath())
}

func TestSceneMerge(t *testing.T) {
	cfg := testconfig(t)
	_, err := TopicModeling(cfg, vec.DefaultLDAConfig, quiet())
	require.NoError(t, err)

	// a human labels topic 0 and leaves topic 1 alone
	labels := tbl.New(vv.COLTOPICID, vv.COLTOPWORDS, vv.COLCONSTYPE, vv.COLCONSSCENE)
	labels.Append([]string{"0", "fish, oyster", "Seafood Lovers", "Coastal Dining (seafood)"})
	labels.Append([]string{"1", "steak, wine", "", ""})
	require.NoError(t, tbl.Write(cfg.KeywordsPath(), labels))

	merged, err := SceneMerge(cfg, quiet())
	require.NoError(t, err)
	assert.Equal(t, 3, merged.Len())
	assert.Equal(t, []string{"Seafood Lovers", "1", "Seafood Lovers"}, merged.Column(vv.COLCONSTYPE))
	assert.Equal(t, []string{"Coastal Dining (seafood)", "", "Coastal Dining (seafood)"}, merged.Column(vv.COLCONSSCENE))
	assert.FileExists(t, cfg.ScenePath())

	again, err := SceneMerge(cfg, quiet())
	require.NoError(t, err)
	assert.Equal(t, merged.Header, again.Header)
}

func TestSceneMergeMissingColumns(t *testing.T) {
	cfg := testconfig(t)
	_, err := TopicModeling(cfg, vec.DefaultLDAConfig, quiet())
	require.NoError(t, err)

	labels := tbl.New(vv.COLTOPICID, vv.COLTOPWORDS)
	labels.Append([]string{"0", "fish"})
	require.NoError(t, tbl.Write(cfg.KeywordsPath(), labels))

	_, err = SceneMerge(cfg, quiet())
	var mc *tbl.MissingColumnError
	require.True(t, errors.As(err, &mc))
	assert.ElementsMatch(t, []string{vv.COLCONSTYPE, vv.COLCONSSCENE}, mc.Columns)
	assert.NoFileExists(t, cfg.ScenePath())
}
