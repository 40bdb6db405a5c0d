//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dash

import (
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/vec"
	"gonum.org/v1/gonum/mat"
	"slices"
	"strings"
)

//
// TF-IDF WALKTHROUGH: three tiny documents that are already normalized
//

var MiniDocs = []string{
	"taste new york course mix food receiv famili great super",
	"taste taste mix mix mix mix food food food food food receiv",
	"york course course food famili famili famili great",
}

// Conversion - the tables of the walkthrough; every matrix is documents × Terms
type Conversion struct {
	Docs     []string
	Terms    []string
	TDM      [][]float64
	TF       [][]float64
	IDF      []float64
	TFIDF    [][]float64
	Smoothed [][]float64
}

// BuildConversion - run the real vectorizer on the docs and lay the results out with terms in alphabetical order
func BuildConversion(docs []string) (*Conversion, error) {
	bags := make([][]string, len(docs))
	for i := range docs {
		bags[i] = strings.Fields(docs[i])
	}

	w, err := vec.Vectorize(bags)
	if err != nil {
		return nil, err
	}

	sm, err := w.Smoothed()
	if err != nil {
		return nil, err
	}

	terms := slices.Clone(w.Vocab.Terms)
	slices.Sort(terms)
	order := make([]int, len(terms))
	for i, t := range terms {
		order[i] = w.Vocab.Index[t]
	}

	c := &Conversion{
		Terms:    terms,
		Docs:     make([]string, len(docs)),
		IDF:      make([]float64, len(terms)),
		TDM:      reorder(w.Counts, order),
		TF:       reorder(w.TF(), order),
		TFIDF:    reorder(w.TFIDF, order),
		Smoothed: reorder(sm, order),
	}
	for i := range docs {
		c.Docs[i] = fmt.Sprintf("Doc %d", i+1)
	}
	for i, j := range order {
		c.IDF[i] = w.IDF[j]
	}
	return c, nil
}

func reorder(m mat.Matrix, order []int) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, len(order))
		for k, j := range order {
			out[i][k] = m.At(i, j)
		}
	}
	return out
}
