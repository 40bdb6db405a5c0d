//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed efs
var efs embed.FS

//
// STOPWORDS
//

// LoadStopwords - one word per line, whitespace-trimmed; the file must exist
func LoadStopwords(fn string) (map[string]struct{}, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stops, err := ReadStopwords(f)
	if err != nil {
		return nil, fmt.Errorf("reading stopwords from %s: %w", fn, err)
	}
	return stops, nil
}

// ReadStopwords - see LoadStopwords
func ReadStopwords(r io.Reader) (map[string]struct{}, error) {
	stops := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		stops[w] = struct{}{}
	}
	return stops, sc.Err()
}

// EnglishStops - the stock english list that ships inside the binary
func EnglishStops() map[string]struct{} {
	f, err := efs.Open("efs/english.txt")
	if err != nil {
		// only possible if the embed directive is broken
		panic(err)
	}
	defer f.Close()
	stops, _ := ReadStopwords(f)
	return stops
}

// MergeStops - the union of several stopword sets
func MergeStops(sets ...map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for _, s := range sets {
		for k := range s {
			out[k] = struct{}{}
		}
	}
	return out
}
