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
	"strings"
	"unicode"
)

//
// CONSUMER SCENES
//

// SceneStyle - marker color on the map and row background in the label table
type SceneStyle struct {
	Marker string
	Row    string
}

// the four scenes the guide editors settled on; anything else gets a color from the rotation
var knownscenes = []struct {
	Scene string
	Style SceneStyle
}{
	{"Business Fine Dining", SceneStyle{"#4bc0c0", "#c6f0f0"}},
	{"Romantic & Intimate Dining", SceneStyle{"#ff6384", "#ffd6dd"}},
	{"Gourmet Exploration", SceneStyle{"#36a2eb", "#cce6ff"}},
	{"Social Dining with Friends", SceneStyle{"#ffcd56", "#fff4cc"}},
}

var rotation = []SceneStyle{
	{"#9966ff", "#e5dbff"},
	{"#ff9f40", "#ffe5cc"},
	{"#8bc34a", "#e3f2d0"},
	{"#795548", "#e8dcd7"},
	{"#607d8b", "#dde5e9"},
}

// CleanScene - "Business Fine Dining (Elegant, Secure)" ==> "Business Fine Dining"; no parenthesis, no change
func CleanScene(s string) string {
	i := strings.Index(s, "(")
	if i < 0 {
		return s
	}
	return strings.TrimRightFunc(s[:i], unicode.IsSpace)
}

// Palette - a style for every clean scene; known scenes keep their colors
func Palette(scenes []string) map[string]SceneStyle {
	p := make(map[string]SceneStyle, len(scenes))
	for _, k := range knownscenes {
		p[k.Scene] = k.Style
	}
	next := 0
	for _, s := range gen.SortedUnique(scenes) {
		if _, ok := p[s]; ok || s == "" {
			continue
		}
		p[s] = rotation[next%len(rotation)]
		next++
	}
	return p
}

// Scenes - the clean scenes present in the rows: known ones first in their fixed order, then the rest sorted
func Scenes(rr []str.Restaurant) []string {
	present := make(map[string]struct{})
	for _, r := range rr {
		if c := CleanScene(r.ConsumerScene); c != "" {
			present[c] = struct{}{}
		}
	}
	var out []string
	for _, k := range knownscenes {
		if _, ok := present[k.Scene]; ok {
			out = append(out, k.Scene)
			delete(present, k.Scene)
		}
	}
	return append(out, gen.StringMapKeysIntoSlice(present)...)
}

// ParseScenes - no "scene" parameter selects every scene in the data
func ParseScenes(q url.Values, available []string) []string {
	vals, ok := q[FLTSCENE]
	if !ok {
		return slices.Clone(available)
	}
	var out []string
	for _, v := range vals {
		for _, s := range strings.Split(v, "|") {
			s = strings.TrimSpace(s)
			if slices.Contains(available, s) && !slices.Contains(out, s) {
				out = append(out, s)
			}
		}
	}
	return out
}

// ByScene - rows with a labeled scene among the selection; PriceDisplay is filled in
func ByScene(rr []str.Restaurant, selected []string) []str.Restaurant {
	var out []str.Restaurant
	for _, r := range rr {
		c := CleanScene(r.ConsumerScene)
		if c == "" || !slices.Contains(selected, c) {
			continue
		}
		r.PriceDisplay = PriceDisplay(r.Price)
		out = append(out, r)
	}
	return out
}

// Center - mean position of the rows or the fallback when there are none
func Center(rr []str.Restaurant, lat, lon float64) (float64, float64) {
	if len(rr) == 0 {
		return lat, lon
	}
	var a, o float64
	for _, r := range rr {
		a += r.Lat
		o += r.Lon
	}
	return a / float64(len(rr)), o / float64(len(rr))
}
