//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"strconv"
	"strings"
	"time"
)

// Document - one restaurant description; Topic is meaningless until Assigned is true
type Document struct {
	Row      int
	Text     string
	Tokens   []string
	Topic    int
	Assigned bool
}

// TopicKeywords - one row of the keyword table; the hook for hand labeling
type TopicKeywords struct {
	TopicID       int
	TopWords      []string
	ConsumerType  string
	ConsumerScene string
}

func (t TopicKeywords) JoinedWords(sep string) string {
	return strings.Join(t.TopWords, sep)
}

// Row - topic_id, top_words, consumer_type, consumer_scene
func (t TopicKeywords) Row(sep string) []string {
	return []string{strconv.Itoa(t.TopicID), t.JoinedWords(sep), t.ConsumerType, t.ConsumerScene}
}

// Restaurant - a dashboard row
type Restaurant struct {
	Name          string   `json:"restaurant"`
	Star          int      `json:"star"`
	Price         int      `json:"price"`
	PriceDisplay  string   `json:"price_display"`
	Tags          []string `json:"tags"`
	Lat           float64  `json:"lat"`
	Lon           float64  `json:"lon"`
	Description   string   `json:"description,omitempty"`
	ConsumerType  string   `json:"consumer_type,omitempty"`
	ConsumerScene string   `json:"consumer_scene,omitempty"`
}

// RunManifest - what a topic modeling run produced and how
type RunManifest struct {
	RunID      string    `json:"run_id"`
	Started    time.Time `json:"started"`
	Finished   time.Time `json:"finished"`
	Fitter     string    `json:"fitter"`
	Topics     int       `json:"topics"`
	Seed       uint64    `json:"seed"`
	Documents  int       `json:"documents"`
	Vocabulary int       `json:"vocabulary"`
	Empty      int       `json:"empty_documents"`
	Corpus     string    `json:"corpus"`
	DocTopics  string    `json:"doc_topics"`
	Keywords   string    `json:"keywords"`
}
