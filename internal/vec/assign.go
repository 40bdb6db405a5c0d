//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/fc9399/ForksAndWords/internal/str"
	"gonum.org/v1/gonum/mat"
	"sort"
	"strconv"
)

//
// TOPIC ASSIGNMENT
//

// DominantTopics - the argmax of each documents × topics row; a tie goes to the lower topic
func DominantTopics(docTopic mat.Matrix) []int {
	// [[0.1, 0.7, 0.2], [0.5, 0.5, 0.0]] ==> [1, 0]
	r, c := docTopic.Dims()
	winners := make([]int, r)
	for doc := 0; doc < r; doc++ {
		best := 0
		for topic := 1; topic < c; topic++ {
			// strictly greater: equality keeps the earlier topic
			if docTopic.At(doc, topic) > docTopic.At(doc, best) {
				best = topic
			}
		}
		winners[doc] = best
	}
	return winners
}

type topicsorter struct {
	W string
	I int
	V float64
}

// TopicKeywords - the n heaviest terms of each topic; equal weights fall back to vocabulary order
func TopicKeywords(topicTerm mat.Matrix, vocab []string, n int) []str.TopicKeywords {
	tr, tc := topicTerm.Dims()
	if n > tc {
		n = tc
	}

	kw := make([]str.TopicKeywords, tr)
	for topic := 0; topic < tr; topic++ {
		tss := make([]topicsorter, tc)
		for word := 0; word < tc; word++ {
			tss[word] = topicsorter{W: vocab[word], I: word, V: topicTerm.At(topic, word)}
		}
		sort.SliceStable(tss, func(i, j int) bool {
			if tss[i].V != tss[j].V {
				return tss[i].V > tss[j].V
			}
			return tss[i].I < tss[j].I
		})

		words := make([]string, n)
		for i := 0; i < n; i++ {
			words[i] = tss[i].W
		}

		kw[topic] = str.TopicKeywords{
			TopicID:       topic,
			TopWords:      words,
			ConsumerType:  strconv.Itoa(topic),
			ConsumerScene: "",
		}
	}
	return kw
}

// DocsPerTopic - N documents have topic X as their dominant topic; out of range topics are ignored
func DocsPerTopic(k int, dominant []int) []int {
	counter := make([]int, k)
	for _, t := range dominant {
		if t >= 0 && t < k {
			counter[t]++
		}
	}
	return counter
}

// WeightPerTopic - share of the total accumulated weight held by each topic
func WeightPerTopic(docTopic mat.Matrix) []float64 {
	r, c := docTopic.Dims()
	counter := make([]float64, c)
	total := 0.0
	for doc := 0; doc < r; doc++ {
		for topic := 0; topic < c; topic++ {
			counter[topic] += docTopic.At(doc, topic)
			total += docTopic.At(doc, topic)
		}
	}
	if total == 0 {
		return counter
	}
	for i := range counter {
		counter[i] /= total
	}
	return counter
}
