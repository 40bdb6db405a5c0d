//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package scn

import (
	"errors"
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/fc9399/ForksAndWords/internal/tbl"
	"github.com/fc9399/ForksAndWords/internal/vec"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"strconv"
	"testing"
)

func doctable(topics ...int) *tbl.Table {
	t := tbl.New("restaurant", vv.COLTOKENS, vv.COLDOMINANT)
	for i, d := range topics {
		t.Append([]string{fmt.Sprintf("r%d", i), "cook fish", strconv.Itoa(d)})
	}
	return t
}

func keywordtable(labels map[int]string) *tbl.Table {
	t := tbl.New(vv.COLTOPICID, vv.COLTOPWORDS, vv.COLCONSTYPE, vv.COLCONSSCENE)
	for id := 0; id < 10; id++ {
		if s, ok := labels[id]; ok {
			t.Append([]string{strconv.Itoa(id), "a, b", "", s})
		}
	}
	return t
}

func TestMergeKeepsEveryRow(t *testing.T) {
	out, err := Merge(doctable(0, 1, 2), "docs", keywordtable(map[int]string{0: "A", 1: "B"}), "kw")
	require.NoError(t, err)

	require.Equal(t, 3, out.Len())
	assert.Equal(t, []string{"A", "B", ""}, out.Column(vv.COLCONSSCENE))
	// blank consumer_type is filled with the topic id; unmatched stays empty
	assert.Equal(t, []string{"0", "1", ""}, out.Column(vv.COLCONSTYPE))
	assert.Equal(t, []string{"r0", "r1", "r2"}, out.Column("restaurant"))
	assert.False(t, out.Has(vv.COLTOPICID))
	assert.Equal(t, []string{"restaurant", vv.COLTOKENS, vv.COLDOMINANT, vv.COLCONSTYPE, vv.COLCONSSCENE}, out.Header)
}

func TestMergeMissingSceneColumn(t *testing.T) {
	kw := tbl.New(vv.COLTOPICID, vv.COLTOPWORDS, vv.COLCONSTYPE)
	kw.Append([]string{"0", "a", ""})

	_, err := Merge(doctable(0), "docs", kw, "kw.csv")
	require.Error(t, err)
	var mce *tbl.MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, []string{vv.COLCONSSCENE}, mce.Columns)

	kw = tbl.New(vv.COLTOPICID, vv.COLCONSSCENE)
	_, err = Merge(doctable(0), "docs", kw, "kw.csv")
	assert.True(t, errors.As(err, &mce))
	assert.Equal(t, []string{vv.COLCONSTYPE}, mce.Columns)
}

func TestMergeMissingDominantColumn(t *testing.T) {
	docs := tbl.New("restaurant")
	docs.Append([]string{"x"})
	_, err := Merge(docs, "docs", keywordtable(map[int]string{0: "A"}), "kw")
	var mce *tbl.MissingColumnError
	assert.True(t, errors.As(err, &mce))
}

func TestMergeRejectsDuplicateTopics(t *testing.T) {
	kw := keywordtable(map[int]string{0: "A"})
	kw.Append([]string{"0", "", "", "B"})
	_, err := Merge(doctable(0), "docs", kw, "kw")
	assert.ErrorIs(t, err, ErrDuplicateTopic)
}

func TestMergeTwiceReplacesLabels(t *testing.T) {
	first, err := Merge(doctable(0, 1), "docs", keywordtable(map[int]string{0: "A", 1: "B"}), "kw")
	require.NoError(t, err)
	second, err := Merge(first, "docs", keywordtable(map[int]string{0: "C"}), "kw")
	require.NoError(t, err)
	assert.Equal(t, len(first.Header), len(second.Header))
	assert.Equal(t, []string{"C", ""}, second.Column(vv.COLCONSSCENE))
}

func TestAssignThenMergeRoundTrip(t *testing.T) {
	dt := mat.NewDense(5, 3, []float64{
		0.1, 0.7, 0.2,
		0.5, 0.5, 0.0,
		0.0, 0.1, 0.9,
		0.2, 0.6, 0.2,
		0.9, 0.05, 0.05,
	})
	tt := mat.NewDense(3, 2, []float64{1, 0, 0, 1, 0.5, 0.5})

	dominant := vec.DominantTopics(dt)
	kw := vec.TopicKeywords(tt, []string{"fish", "wine"}, vv.LDATOPWORDS)

	// the hand edit
	scenes := map[int]string{0: "Business Fine Dining", 1: "Romantic & Intimate Dining", 2: "Gourmet Exploration"}
	for i := range kw {
		kw[i].ConsumerScene = scenes[kw[i].TopicID]
	}

	docs := tbl.New("restaurant")
	for i := 0; i < 5; i++ {
		docs.Append([]string{strconv.Itoa(i)})
	}
	col := make([]string, len(dominant))
	for i, d := range dominant {
		col[i] = strconv.Itoa(d)
	}
	require.NoError(t, docs.SetColumn(vv.COLDOMINANT, col))

	out, err := Merge(docs, "docs", tbl.KeywordTable(kw), "kw")
	require.NoError(t, err)

	got := out.Column(vv.COLCONSSCENE)
	for i, d := range dominant {
		assert.Equal(t, scenes[d], got[i])
	}
	assert.Zero(t, Unmatched(dominant, kw))
}

func TestJoinLengthMismatch(t *testing.T) {
	_, err := Join(doctable(0, 1), []int{0}, []str.TopicKeywords{{TopicID: 0}})
	assert.Error(t, err)
}

func TestUnmatched(t *testing.T) {
	assert.Equal(t, 2, Unmatched([]int{0, 2, -1}, []str.TopicKeywords{{TopicID: 0}, {TopicID: 1}}))
}
