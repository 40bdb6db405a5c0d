//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tbl

import (
	"errors"
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/gen"
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"math"
	"strconv"
	"strings"
)

//
// TYPED RECORDS: columns are checked here and nowhere deeper
//

var (
	ErrDuplicateTopic = errors.New("topic id appears more than once")
)

// Documents - one Document per row; the text column is required, a blank cell is an empty description
func Documents(t *Table, file string, textcol string) ([]str.Document, error) {
	if err := t.Require(file, textcol); err != nil {
		return nil, err
	}
	c := t.Col(textcol)
	docs := make([]str.Document, t.Len())
	for i := range t.Rows {
		docs[i] = str.Document{Row: i, Text: t.Rows[i][c]}
	}
	return docs, nil
}

// TopicKeywordsFrom - the label columns are required; a blank consumer_type becomes the topic id
func TopicKeywordsFrom(t *Table, file string) ([]str.TopicKeywords, error) {
	const (
		FAIL1 = "%s row %d: bad %s '%s'"
		FAIL2 = "%s: %w: %d"
	)

	if err := t.Require(file, vv.COLTOPICID, vv.COLCONSTYPE, vv.COLCONSSCENE); err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, t.Len())
	kw := make([]str.TopicKeywords, t.Len())
	for i := range t.Rows {
		raw := strings.TrimSpace(t.Get(i, vv.COLTOPICID))
		id, err := parseint(raw)
		if err != nil {
			return nil, fmt.Errorf(FAIL1, file, i+1, vv.COLTOPICID, raw)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf(FAIL2, file, ErrDuplicateTopic, id)
		}
		seen[id] = struct{}{}

		ct := strings.TrimSpace(t.Get(i, vv.COLCONSTYPE))
		if ct == "" {
			ct = strconv.Itoa(id)
		}
		kw[i] = str.TopicKeywords{
			TopicID:       id,
			TopWords:      gen.SplitAndTrim(t.Get(i, vv.COLTOPWORDS), vv.TAGSEP),
			ConsumerType:  ct,
			ConsumerScene: strings.TrimSpace(t.Get(i, vv.COLCONSSCENE)),
		}
	}
	return kw, nil
}

// KeywordTable - topic_id, top_words, consumer_type, consumer_scene
func KeywordTable(kw []str.TopicKeywords) *Table {
	t := New(vv.COLTOPICID, vv.COLTOPWORDS, vv.COLCONSTYPE, vv.COLCONSSCENE)
	for _, k := range kw {
		t.Append(k.Row(vv.TOPWORDSEP))
	}
	return t
}

// DominantTopics - the dominant_topic column as ints; a blank or unreadable cell is reported as -1
func DominantTopics(t *Table, file string) ([]int, error) {
	if err := t.Require(file, vv.COLDOMINANT); err != nil {
		return nil, err
	}
	out := make([]int, t.Len())
	for i, v := range t.Column(vv.COLDOMINANT) {
		d, err := parseint(strings.TrimSpace(v))
		if err != nil {
			d = -1
		}
		out[i] = d
	}
	return out, nil
}

// Restaurants - dashboard rows; rows whose numbers do not parse are skipped and counted
func Restaurants(t *Table, file string) ([]str.Restaurant, int, error) {
	if err := t.Require(file, vv.COLNAME, vv.COLSTAR, vv.COLPRICE, vv.COLTAG, vv.COLLAT, vv.COLLON); err != nil {
		return nil, 0, err
	}

	var rr []str.Restaurant
	skipped := 0
	for i := range t.Rows {
		star, e1 := parseint(t.Get(i, vv.COLSTAR))
		price, e2 := parseint(t.Get(i, vv.COLPRICE))
		lat, e3 := strconv.ParseFloat(strings.TrimSpace(t.Get(i, vv.COLLAT)), 64)
		lon, e4 := strconv.ParseFloat(strings.TrimSpace(t.Get(i, vv.COLLON)), 64)
		if err := errors.Join(e1, e2, e3, e4); err != nil {
			skipped++
			continue
		}
		rr = append(rr, str.Restaurant{
			Name:          t.Get(i, vv.COLNAME),
			Star:          star,
			Price:         price,
			Tags:          gen.SplitAndTrim(t.Get(i, vv.COLTAG), vv.TAGSEP),
			Lat:           lat,
			Lon:           lon,
			Description:   t.Get(i, vv.COLTEXT),
			ConsumerType:  t.Get(i, vv.COLCONSTYPE),
			ConsumerScene: t.Get(i, vv.COLCONSSCENE),
		})
	}
	return rr, skipped, nil
}

// parseint - "3", " 3 ", and "3.0" are all 3; "3.5" is an error
func parseint(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s is not an integer", s)
	}
	return int(f), nil
}
