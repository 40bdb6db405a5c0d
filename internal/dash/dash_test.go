//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dash

import (
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"net/url"
	"testing"
)

func TestParseStage(t *testing.T) {
	tests := []struct {
		in   string
		want Stage
	}{
		{"", StageRaw},
		{"raw", StageRaw},
		{"token", StageToken},
		{"Stopwords", StageStopwords},
		{" stem ", StageStem},
		{"conversion", StageConversion},
		{"lemmatize", StageRaw},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseStage(tt.in), tt.in)
	}
	for _, s := range Stages() {
		assert.Equal(t, s, ParseStage(s.String()))
		assert.NotEmpty(t, s.Label())
	}
}

func restaurants() []str.Restaurant {
	return []str.Restaurant{
		{Name: "Le Bernardin", Star: 3, Price: 4, Tags: []string{"Seafood", "French"}, Lat: 40.76, Lon: -73.98},
		{Name: "Casa Mono", Star: 1, Price: 3, Tags: []string{"Spanish"}, Lat: 40.73, Lon: -73.98},
		{Name: "Cheap Eats", Star: 1, Price: 1, Tags: []string{"Thai"}, Lat: 40.70, Lon: -73.90},
		{Name: "Oyster Bar", Star: 2, Price: 4, Tags: []string{"Seafood"}, Lat: 40.75, Lon: -73.97},
	}
}

func names(rr []str.Restaurant) []string {
	out := make([]string, len(rr))
	for i := range rr {
		out[i] = rr[i].Name
	}
	return out
}

func TestFilterDefaults(t *testing.T) {
	f := ParseFilter(url.Values{})
	assert.Equal(t, DefaultFilter(), f)
	got := f.Apply(restaurants())
	assert.Equal(t, []string{"Le Bernardin", "Casa Mono", "Oyster Bar"}, names(got))
	assert.Equal(t, "$100+", got[0].PriceDisplay)
	assert.Equal(t, "$50–99", got[1].PriceDisplay)
}

func TestFilterSelections(t *testing.T) {
	q, err := url.ParseQuery("star=1&star=2&price=1,4,9&cuisine=Seafood,Thai")
	require.NoError(t, err)
	f := ParseFilter(q)
	assert.Equal(t, []int{1, 2}, f.Stars)
	assert.Equal(t, []int{1, 4}, f.Prices)
	assert.Equal(t, []string{"Seafood", "Thai"}, f.Cuisines)
	assert.Equal(t, []string{"Cheap Eats", "Oyster Bar"}, names(f.Apply(restaurants())))

	// present but empty switches a filter off
	q, err = url.ParseQuery("star=&price=&cuisine=")
	require.NoError(t, err)
	f = ParseFilter(q)
	assert.True(t, f.AllCuisines())
	assert.Len(t, f.Apply(restaurants()), 4)

	back := ParseFilter(DefaultFilter().Query())
	assert.Equal(t, DefaultFilter(), back)
}

func TestCuisinesAndPrices(t *testing.T) {
	assert.Equal(t, []string{"ALL", "French", "Seafood", "Spanish", "Thai"}, Cuisines(restaurants()))
	assert.Equal(t, "Under $25", PriceDisplay(1))
	assert.Equal(t, "$25–49", PriceDisplay(2))
	assert.Equal(t, "N/A", PriceDisplay(0))
	assert.Equal(t, "N/A", PriceDisplay(7))
}

func TestScenes(t *testing.T) {
	assert.Equal(t, "Business Fine Dining", CleanScene("Business Fine Dining (Elegant, Secure, Executive Atmosphere)"))
	assert.Equal(t, "Late Night", CleanScene("Late Night"))
	assert.Equal(t, "", CleanScene(""))

	rr := restaurants()
	rr[0].ConsumerScene = "Business Fine Dining (Elegant, Secure, Executive Atmosphere)"
	rr[1].ConsumerScene = "Late Night"
	rr[3].ConsumerScene = "Social Dining with Friends (Lively, Relaxed, Fun)"

	scenes := Scenes(rr)
	assert.Equal(t, []string{"Business Fine Dining", "Social Dining with Friends", "Late Night"}, scenes)

	p := Palette(scenes)
	assert.Equal(t, "#4bc0c0", p["Business Fine Dining"].Marker)
	assert.Equal(t, rotation[0], p["Late Night"])

	all := ParseScenes(url.Values{}, scenes)
	assert.Equal(t, []string{"Le Bernardin", "Casa Mono", "Oyster Bar"}, names(ByScene(rr, all)))

	one := ParseScenes(url.Values{FLTSCENE: {"Late Night|Nowhere"}}, scenes)
	assert.Equal(t, []string{"Late Night"}, one)
	got := ByScene(rr, one)
	require.Len(t, got, 1)
	assert.Equal(t, "$50–99", got[0].PriceDisplay)

	lat, lon := Center(nil, 40.73, -73.93)
	assert.Equal(t, 40.73, lat)
	assert.Equal(t, -73.93, lon)
	lat, _ = Center(got, 0, 0)
	assert.Equal(t, 40.73, lat)
}

func TestBuildConversion(t *testing.T) {
	c, err := BuildConversion(MiniDocs)
	require.NoError(t, err)

	assert.Equal(t, []string{"course", "famili", "food", "great", "mix", "new", "receiv", "super", "taste", "york"}, c.Terms)
	assert.Equal(t, []string{"Doc 1", "Doc 2", "Doc 3"}, c.Docs)

	col := func(term string) int {
		for i := range c.Terms {
			if c.Terms[i] == term {
				return i
			}
		}
		t.Fatalf("no term %s", term)
		return -1
	}

	food, mix, taste, super := col("food"), col("mix"), col("taste"), col("super")
	assert.Equal(t, 5.0, c.TDM[1][food])
	assert.Equal(t, 4.0, c.TDM[1][mix])
	assert.InDelta(t, 5.0/12.0, c.TF[1][food], 1e-9)
	assert.InDelta(t, 0.0, c.IDF[food], 1e-12)
	assert.InDelta(t, math.Log(1.5), c.IDF[taste], 1e-9)
	assert.InDelta(t, math.Log(3), c.IDF[super], 1e-9)
	assert.InDelta(t, 0.1*math.Log(3), c.TFIDF[0][super], 1e-9)
	assert.Equal(t, 0.0, c.TFIDF[2][super])
	assert.Greater(t, c.Smoothed[0][super], 0.0)
}

func TestSummarize(t *testing.T) {
	kw := []str.TopicKeywords{
		{TopicID: 0, TopWords: []string{"fish", "oyster"}, ConsumerType: "Seafood", ConsumerScene: "Coastal"},
		{TopicID: 1, TopWords: []string{"steak"}, ConsumerType: "1"},
	}
	s := Summarize(kw, []int{0, 0, 1, 2})
	assert.Equal(t, 4, s.Documents)
	assert.Equal(t, 1, s.Unassigned)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, 2, s.Rows[0].Docs)
	assert.Equal(t, "fish, oyster", s.Rows[0].Words)
	assert.InDelta(t, 0.5, s.Rows[0].Share, 1e-12)
	assert.InDelta(t, 0.375, s.MeanShare, 1e-12)
	assert.Greater(t, s.SdShare, 0.0)

	empty := Summarize(nil, nil)
	assert.Equal(t, 0, empty.Documents)
	assert.Empty(t, empty.Rows)
}
