//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"github.com/e-gun/nlp"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"math"
	"slices"
)

//
// TOPIC FITTING
//

// Fitter - fit k topics over a documents × terms weight matrix; the same input and seed must yield the same output
type Fitter interface {
	// Fit returns topicTerm (k × terms) and docTopic (documents × k, every row summing to 1)
	Fit(weights mat.Matrix, k int, seed uint64) (topicTerm, docTopic *mat.Dense, err error)
}

type FitterCtor func(cfg LDAConfig) Fitter

var constructors = make(map[string]FitterCtor)

func init() {
	RegisterFitter(vv.DEFAULTFITTER, func(cfg LDAConfig) Fitter { return &LDAFitter{Cfg: cfg} })
}

// RegisterFitter - a new topic model should register itself using this function
func RegisterFitter(name string, f FitterCtor) {
	constructors[name] = f
}

func GetFitter(name string) (FitterCtor, error) {
	if _, ok := constructors[name]; !ok {
		return nil, fmt.Errorf("topic model %s not registered", name)
	}
	return constructors[name], nil
}

func FitterNames() []string {
	names := make([]string, 0, len(constructors))
	for k := range constructors {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// LDAFitter - variational LDA from nlp run on a single goroutine so that a fixed seed is reproducible
type LDAFitter struct {
	Cfg LDAConfig
}

func (f *LDAFitter) Fit(weights mat.Matrix, k int, seed uint64) (*mat.Dense, *mat.Dense, error) {
	const (
		FAIL1 = "need at least one topic; got %d"
		FAIL2 = "fitting %d topics: %w"
	)

	if k < 1 {
		return nil, nil, fmt.Errorf(FAIL1, k)
	}

	nd, nt := weights.Dims()
	if nd == 0 {
		return nil, nil, ErrEmptyCorpus
	}
	if nt == 0 {
		return nil, nil, ErrEmptyVocabulary
	}

	lda := nlp.NewLatentDirichletAllocation(k)
	lda.Processes = 1
	lda.Rnd = rand.New(rand.NewSource(seed))
	lda.Iterations = f.Cfg.LDAIterations
	lda.TransformationPasses = f.Cfg.LDAXformPasses
	lda.BurnInPasses = f.Cfg.BurnInPasses
	lda.ChangeEvaluationFrequency = f.Cfg.ChangeEvalFrq
	lda.PerplexityEvaluationFrequency = f.Cfg.PerplexEvalFrq
	lda.PerplexityTolerance = f.Cfg.PerplexTol

	// nlp wants terms × documents
	docsOverTopics, err := lda.FitTransform(termsbydocs(weights))
	if err != nil {
		return nil, nil, fmt.Errorf(FAIL2, k, err)
	}

	topicTerm := mat.DenseCopyOf(lda.Components())
	docTopic := mat.DenseCopyOf(docsOverTopics.T())
	NormalizeRows(docTopic)

	return topicTerm, docTopic, nil
}

// termsbydocs - a dense transpose; the fitter updates its counts in the order it meets the cells,
// so the cells must come in row and column order every time (a DOK's map order does not)
func termsbydocs(weights mat.Matrix) *mat.Dense {
	return mat.DenseCopyOf(weights.T())
}

// NormalizeRows - make every row a probability distribution; a row with no mass becomes uniform
func NormalizeRows(m *mat.Dense) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		sum := 0.0
		for j := range row {
			if row[j] < 0 || math.IsNaN(row[j]) {
				row[j] = 0
			}
			sum += row[j]
		}
		for j := range row {
			if sum == 0 {
				row[j] = 1 / float64(c)
			} else {
				row[j] /= sum
			}
		}
	}
}
