//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"fmt"
	"github.com/e-gun/nlp"
	"github.com/e-gun/sparse"
	"gonum.org/v1/gonum/mat"
	"math"
	"strings"
)

//
// TF-IDF
//

var (
	ErrEmptyCorpus     = errors.New("the corpus holds no documents")
	ErrEmptyVocabulary = errors.New("no term survived normalization")
)

// Vocabulary - terms in order of first appearance; DF[i] >= 1 for every term
type Vocabulary struct {
	Terms []string
	Index map[string]int
	DF    []int
}

func (v Vocabulary) Len() int {
	return len(v.Terms)
}

// Weights - everything the vectorizer derives from a corpus; all matrices are documents × terms except TermDoc
type Weights struct {
	Vocab   Vocabulary
	TermDoc mat.Matrix // the raw count matrix as nlp.CountVectoriser hands it over: terms × documents
	Counts  *mat.Dense
	Totals  []float64
	IDF     []float64
	TFIDF   *sparse.CSR
	Empty   int
}

// Vectorize - count terms and weight them: tf(t,d) = count(t,d) / total(d); idf(t) = ln(N / df(t))
func Vectorize(docs [][]string) (*Weights, error) {
	const (
		FAIL1 = "counting terms: %w"
	)

	nd := len(docs)
	if nd == 0 {
		return nil, ErrEmptyCorpus
	}

	// the vectoriser wants whitespace separated strings
	joined := make([]string, nd)
	seen := 0
	for i := range docs {
		joined[i] = strings.Join(docs[i], " ")
		seen += len(docs[i])
	}

	if seen == 0 {
		return nil, ErrEmptyVocabulary
	}

	vectoriser := nlp.NewCountVectoriser()
	termdoc, err := vectoriser.FitTransform(joined...)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}

	nt := len(vectoriser.Vocabulary)
	if nt == 0 {
		return nil, ErrEmptyVocabulary
	}

	w := &Weights{
		Vocab:   invertvocabulary(vectoriser.Vocabulary),
		TermDoc: termdoc,
		Counts:  mat.NewDense(nd, nt, nil),
		Totals:  make([]float64, nd),
		IDF:     make([]float64, nt),
	}
	w.Vocab.DF = make([]int, nt)

	eachnonzero(termdoc, func(term, doc int, v float64) {
		w.Counts.Set(doc, term, v)
		w.Totals[doc] += v
		w.Vocab.DF[term]++
	})

	for i := range w.Totals {
		if w.Totals[i] == 0 {
			w.Empty++
		}
	}

	for t := 0; t < nt; t++ {
		// a term that is in every document gets log(1) == 0
		w.IDF[t] = math.Log(float64(nd) / float64(w.Vocab.DF[t]))
	}

	dok := sparse.NewDOK(nd, nt)
	eachnonzero(w.Counts, func(doc, term int, v float64) {
		tfidf := v / w.Totals[doc] * w.IDF[term]
		if tfidf != 0 {
			dok.Set(doc, term, tfidf)
		}
	})
	w.TFIDF = dok.ToCSR()

	return w, nil
}

// TF - the term frequency matrix (documents × terms); an empty document is a zero row
func (w *Weights) TF() *mat.Dense {
	tf := mat.DenseCopyOf(w.Counts)
	tf.Apply(func(i, j int, v float64) float64 {
		if w.Totals[i] == 0 {
			return 0
		}
		return v / w.Totals[i]
	}, tf)
	return tf
}

// Smoothed - the library's smoothed tf-idf as documents × terms; the lab page shows it next to the plain formula
func (w *Weights) Smoothed() (*mat.Dense, error) {
	transformer := nlp.NewTfidfTransformer()
	m, err := transformer.FitTransform(w.TermDoc)
	if err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(m.T()), nil
}

func invertvocabulary(vmap map[string]int) Vocabulary {
	v := Vocabulary{
		Terms: make([]string, len(vmap)),
		Index: make(map[string]int, len(vmap)),
	}
	for k, i := range vmap {
		v.Terms[i] = k
		v.Index[k] = i
	}
	return v
}

// eachnonzero - visit the non-zero cells; sparse matrices can do this without touching every cell
func eachnonzero(m mat.Matrix, fn func(i, j int, v float64)) {
	if nz, ok := m.(mat.NonZeroDoer); ok {
		nz.DoNonZero(fn)
		return
	}
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v != 0 {
				fn(i, j, v)
			}
		}
	}
}
