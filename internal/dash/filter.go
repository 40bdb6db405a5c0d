//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dash

import (
	"github.com/fc9399/ForksAndWords/internal/gen"
	"github.com/fc9399/ForksAndWords/internal/str"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

//
// STAR MAP FILTERS
//

const (
	ALLCUISINES = "ALL"
	FLTSTAR     = "star"
	FLTPRICE    = "price"
	FLTCUISINE  = "cuisine"
	FLTSCENE    = "scene"
)

var (
	StarOptions  = []int{1, 2, 3}
	PriceOptions = []int{1, 2, 3, 4}
)

// Filter - an empty Stars or Prices slice means "do not filter on this"
type Filter struct {
	Stars    []int
	Prices   []int
	Cuisines []string
}

// DefaultFilter - every star level, the two upper price bands, all cuisines
func DefaultFilter() Filter {
	return Filter{
		Stars:    []int{1, 2, 3},
		Prices:   []int{3, 4},
		Cuisines: []string{ALLCUISINES},
	}
}

// ParseFilter - a missing parameter keeps its default; a parameter that is present but empty clears it;
// values can be repeated ("star=1&star=2") or comma separated ("star=1,2")
func ParseFilter(q url.Values) Filter {
	f := DefaultFilter()
	if vals, ok := q[FLTSTAR]; ok {
		f.Stars = intvalues(vals, StarOptions)
	}
	if vals, ok := q[FLTPRICE]; ok {
		f.Prices = intvalues(vals, PriceOptions)
	}
	if vals, ok := q[FLTCUISINE]; ok {
		f.Cuisines = stringvalues(vals)
		if len(f.Cuisines) == 0 {
			f.Cuisines = []string{ALLCUISINES}
		}
	}
	return f
}

// AllCuisines - true when the cuisine filter is off
func (f Filter) AllCuisines() bool {
	return len(f.Cuisines) == 0 || slices.Contains(f.Cuisines, ALLCUISINES)
}

// Match - star and price must be among the selected ones; one shared cuisine tag is enough
func (f Filter) Match(r str.Restaurant) bool {
	if len(f.Stars) > 0 && !slices.Contains(f.Stars, r.Star) {
		return false
	}
	if len(f.Prices) > 0 && !slices.Contains(f.Prices, r.Price) {
		return false
	}
	if !f.AllCuisines() && !gen.ContainsAny(r.Tags, f.Cuisines) {
		return false
	}
	return true
}

// Apply - the matching rows in their original order, with PriceDisplay filled in
func (f Filter) Apply(rr []str.Restaurant) []str.Restaurant {
	out := make([]str.Restaurant, 0, len(rr))
	for _, r := range rr {
		if f.Match(r) {
			r.PriceDisplay = PriceDisplay(r.Price)
			out = append(out, r)
		}
	}
	return out
}

// Query - the inverse of ParseFilter
func (f Filter) Query() url.Values {
	q := url.Values{}
	q.Set(FLTSTAR, joinints(f.Stars))
	q.Set(FLTPRICE, joinints(f.Prices))
	q.Set(FLTCUISINE, strings.Join(f.Cuisines, ","))
	return q
}

// Cuisines - every tag in the data, sorted, with "ALL" in front
func Cuisines(rr []str.Restaurant) []string {
	var tags []string
	for _, r := range rr {
		tags = append(tags, r.Tags...)
	}
	return append([]string{ALLCUISINES}, gen.SortedUnique(tags)...)
}

// PriceDisplay - the price band as a guide reader would print it
func PriceDisplay(p int) string {
	switch p {
	case 1:
		return "Under $25"
	case 2:
		return "$25–49"
	case 3:
		return "$50–99"
	case 4:
		return "$100+"
	default:
		return "N/A"
	}
}

// intvalues - parse, drop anything outside the allowed options, dedupe, sort
func intvalues(vals []string, allowed []int) []int {
	var out []int
	for _, s := range stringvalues(vals) {
		i, err := strconv.Atoi(s)
		if err != nil || !slices.Contains(allowed, i) {
			continue
		}
		out = append(out, i)
	}
	return gen.SortedUnique(out)
}

func stringvalues(vals []string) []string {
	var out []string
	for _, v := range vals {
		out = append(out, gen.SplitAndTrim(v, ",")...)
	}
	return out
}

func joinints(ii []int) string {
	ss := make([]string, len(ii))
	for i := range ii {
		ss[i] = strconv.Itoa(ii[i])
	}
	return strings.Join(ss, ",")
}
