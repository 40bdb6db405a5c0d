//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"github.com/fc9399/ForksAndWords/internal/dash"
	"github.com/fc9399/ForksAndWords/internal/tbl"
	"github.com/labstack/echo/v4"
)

type topicsbody struct {
	Summary dash.TopicSummary
}

// RtTopics - how the documents spread over the topics of the last run
func (s *Server) RtTopics(c echo.Context) error {
	const (
		TITLE = "LDA Topics Summary"
	)

	p := page{Title: TITLE}

	kw, err := s.loadkeywords()
	if err != nil {
		p.Notice = notice(err)
		return s.render(c, "topics", p)
	}

	t, err := tbl.Read(s.Cfg.DocTopicsPath())
	if err != nil {
		p.Notice = notice(err)
		return s.render(c, "topics", p)
	}

	dominant, err := tbl.DominantTopics(t, s.Cfg.DocTopicsPath())
	if err != nil {
		p.Notice = notice(err)
		return s.render(c, "topics", p)
	}

	body := topicsbody{Summary: dash.Summarize(kw, dominant)}

	rc, err := renderchart(topicbars(body.Summary))
	if err != nil {
		p.Notice = err.Error()
	}
	p.Chart = rc.HTML
	p.Scripts = rc.Scripts

	p.Body = body
	return s.render(c, "topics", p)
}
