//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/labstack/echo/v4"
	"os"
	"path/filepath"
	"runtime"
)

// artifact - one of the files the pipeline reads or writes and whether it is there yet
type artifact struct {
	Role  string
	Path  string
	Ready bool
}

type frontbody struct {
	Env       string
	Topics    int
	Seed      uint64
	Fitter    string
	Artifacts []artifact
}

// RtFrontpage - send the html for "/"
func (s *Server) RtFrontpage(c echo.Context) error {
	const (
		TITLE = "ForksAndWords"
	)

	env := fmt.Sprintf("%s: %s - %s", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	files := []artifact{
		{Role: "corpus", Path: s.Cfg.CorpusPath()},
		{Role: "stopwords", Path: s.Cfg.StopwordPath()},
		{Role: "documents with topics", Path: s.Cfg.DocTopicsPath()},
		{Role: "topic keywords", Path: s.Cfg.KeywordsPath()},
		{Role: "documents with scenes", Path: s.Cfg.ScenePath()},
		{Role: "run manifest", Path: filepath.Join(s.Cfg.DataDir, vv.MANIFESTFILE)},
	}
	for i := range files {
		_, err := os.Stat(files[i].Path)
		files[i].Ready = err == nil
	}

	body := frontbody{
		Env:       env,
		Topics:    s.Cfg.LdaTopics,
		Seed:      s.Cfg.LdaSeed,
		Fitter:    s.Cfg.Fitter,
		Artifacts: files,
	}

	return s.render(c, "frontpage", page{Title: TITLE, Body: body})
}
