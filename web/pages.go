//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/lnch"
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/fc9399/ForksAndWords/internal/tbl"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/labstack/echo/v4"
	"html/template"
	"io/fs"
	"net/http"
	"slices"
)

//go:embed emb
var efs embed.FS

var pagefuncs = template.FuncMap{
	"f4":     func(f float64) string { return fmt.Sprintf("%.4f", f) },
	"pct":    func(f float64) string { return fmt.Sprintf("%.1f%%", 100*f) },
	"hasint": func(ii []int, i int) bool { return slices.Contains(ii, i) },
	"hasstr": func(ss []string, s string) bool { return slices.Contains(ss, s) },
}

// every page is layout.html plus its own file
var pages = func() map[string]*template.Template {
	names := []string{"frontpage", "process", "starmap", "scenes", "topics"}
	pp := make(map[string]*template.Template, len(names))
	for _, n := range names {
		pp[n] = template.Must(template.New(n).Funcs(pagefuncs).ParseFS(efs, "emb/layout.html", "emb/"+n+".html"))
	}
	return pp
}()

// page - what layout.html needs; Body is whatever the page's own template wants
type page struct {
	Title   string
	Active  string
	Version string
	Scripts []string
	Notice  string
	Chart   template.HTML
	Body    any
}

// render - execute the page template and send it
func (s *Server) render(c echo.Context, name string, p page) error {
	const (
		FAIL1 = "render(): template %s failed: %s"
	)

	p.Active = name
	p.Version = version()

	var b bytes.Buffer
	if err := pages[name].ExecuteTemplate(&b, "layout", p); err != nil {
		s.Msg.WARN(fmt.Sprintf(FAIL1, name, err.Error()))
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.HTML(http.StatusOK, b.String())
}

// notice - turn a loading error into something a reader can act on
func notice(err error) string {
	const (
		NOFILE  = "%s is not there yet: run the pipeline from the menu first."
		COLUMNS = "The data is not in the expected shape: %s"
	)

	var pe *fs.PathError
	var mc *tbl.MissingColumnError
	switch {
	case errors.As(err, &pe) && errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf(NOFILE, pe.Path)
	case errors.As(err, &mc):
		return fmt.Sprintf(COLUMNS, mc.Error())
	default:
		return err.Error()
	}
}

// loadrestaurants - typed rows from one of the data files
func (s *Server) loadrestaurants(fn string) ([]str.Restaurant, *tbl.Table, error) {
	const (
		MSG1 = "%s: skipped %d rows with unreadable numbers"
	)

	t, err := tbl.Read(fn)
	if err != nil {
		return nil, nil, err
	}
	rr, skipped, err := tbl.Restaurants(t, fn)
	if err != nil {
		return nil, nil, err
	}
	if skipped > 0 {
		s.Msg.PEEK(fmt.Sprintf(MSG1, fn, skipped))
	}
	return rr, t, nil
}

// loadkeywords - the (possibly hand-edited) topic keyword table
func (s *Server) loadkeywords() ([]str.TopicKeywords, error) {
	t, err := tbl.Read(s.Cfg.KeywordsPath())
	if err != nil {
		return nil, err
	}
	return tbl.TopicKeywordsFrom(t, s.Cfg.KeywordsPath())
}

func version() string {
	gc := lnch.GitCommit
	if gc == "" {
		gc = "UNKNOWN"
	}
	return fmt.Sprintf("%s %s [git: %s]", vv.MYNAME, vv.VERSION+lnch.VersSuppl, gc)
}
