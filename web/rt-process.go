//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"github.com/fc9399/ForksAndWords/internal/dash"
	"github.com/fc9399/ForksAndWords/internal/txt"
	"github.com/labstack/echo/v4"
	"strings"
)

type processbody struct {
	Step   string
	Label  string
	Stages []dash.Stage
	Name   string
	Place  string
	Price  string
	Stars  int
	Text   string
	Tokens []string
	Lab    []txt.LabToken
	Conv   *dash.Conversion
}

// RtProcess - the text processing walkthrough; "?step=" picks the stage and nothing is remembered between requests
func (s *Server) RtProcess(c echo.Context) error {
	const (
		TITLE = "Text Processing Journey"
	)

	st := dash.ParseStage(c.QueryParam("step"))

	body := processbody{
		Step:   st.String(),
		Label:  st.Label(),
		Stages: dash.Stages(),
		Name:   dash.SampleName,
		Place:  dash.SamplePlace,
		Price:  dash.SamplePrice,
		Stars:  dash.SampleStars,
		Text:   dash.SampleText,
	}

	p := page{Title: TITLE}

	switch st {
	case dash.StageToken:
		body.Tokens = strings.Fields(dash.SampleText)
	case dash.StageStopwords, dash.StageStem:
		body.Lab = txt.LabTokens(dash.SampleText, s.labstops())
	case dash.StageConversion:
		conv, err := dash.BuildConversion(dash.MiniDocs)
		if err != nil {
			p.Notice = err.Error()
		}
		body.Conv = conv
	default:
		// the raw text is always there
	}

	p.Body = body
	return s.render(c, "process", p)
}

// labstops - the embedded english list plus the custom stopwords if the data folder has them
func (s *Server) labstops() map[string]struct{} {
	custom, err := txt.LoadStopwords(s.Cfg.StopwordPath())
	if err != nil {
		return txt.EnglishStops()
	}
	return txt.MergeStops(txt.EnglishStops(), custom)
}
