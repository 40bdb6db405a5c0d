//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"github.com/fc9399/ForksAndWords/internal/dash"
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/fc9399/ForksAndWords/internal/tbl"
	"github.com/labstack/echo/v4"
)

type starbody struct {
	Filter   dash.Filter
	Stars    []int
	Prices   []int
	Cuisines []string
	Rows     []str.Restaurant
}

// RtStarMap - the corpus on a map, filtered by star, price, and cuisine
func (s *Server) RtStarMap(c echo.Context) error {
	const (
		TITLE = "Michelin-Starred Restaurants in NYC"
		NONE  = "No restaurants match your filters. Try adjusting the options."
	)

	p := page{Title: TITLE}
	f := dash.ParseFilter(c.QueryParams())
	body := starbody{Filter: f, Stars: dash.StarOptions, Prices: dash.PriceOptions}

	all, _, err := s.loadrestaurants(s.Cfg.CorpusPath())
	if err != nil {
		p.Notice = notice(err)
		p.Body = body
		return s.render(c, "starmap", p)
	}

	body.Cuisines = dash.Cuisines(all)
	body.Rows = f.Apply(all)

	if len(body.Rows) == 0 {
		p.Notice = NONE
	} else {
		rc, err := renderchart(starmap(body.Rows))
		if err != nil {
			p.Notice = err.Error()
		}
		p.Chart = rc.HTML
		p.Scripts = rc.Scripts
	}

	p.Body = body
	return s.render(c, "starmap", p)
}

type scenerow struct {
	str.TopicKeywords
	Color string
}

type scenebody struct {
	Summary  dash.TopicSummary
	Labels   []scenerow
	Scenes   []string
	Selected []string
	Colors   map[string]dash.SceneStyle
	Rows     []str.Restaurant
}

// RtScenes - topics summary, the hand-made scene labels, and the labeled restaurants on a map
func (s *Server) RtScenes(c echo.Context) error {
	const (
		TITLE = "Scene-Based Map of Michelin Restaurants"
		NONE  = "No labeled restaurants in the selected scenes."
	)

	p := page{Title: TITLE}
	body := scenebody{}

	fail := func(err error) error {
		p.Notice = notice(err)
		p.Body = body
		return s.render(c, "scenes", p)
	}

	kw, err := s.loadkeywords()
	if err != nil {
		return fail(err)
	}

	all, merged, err := s.loadrestaurants(s.Cfg.ScenePath())
	if err != nil {
		return fail(err)
	}

	if dominant, derr := tbl.DominantTopics(merged, s.Cfg.ScenePath()); derr == nil {
		body.Summary = dash.Summarize(kw, dominant)
	} else {
		body.Summary = dash.Summarize(kw, nil)
	}

	body.Scenes = dash.Scenes(all)
	body.Colors = dash.Palette(body.Scenes)
	for _, k := range kw {
		body.Labels = append(body.Labels, scenerow{TopicKeywords: k, Color: body.Colors[dash.CleanScene(k.ConsumerScene)].Row})
	}

	body.Selected = dash.ParseScenes(c.QueryParams(), body.Scenes)
	body.Rows = dash.ByScene(all, body.Selected)

	if len(body.Rows) == 0 {
		p.Notice = NONE
	} else {
		rc, err := renderchart(scenemap(body.Rows, body.Selected, body.Colors))
		if err != nil {
			p.Notice = err.Error()
		}
		p.Chart = rc.HTML
		p.Scripts = rc.Scripts
	}

	p.Body = body
	return s.render(c, "scenes", p)
}
