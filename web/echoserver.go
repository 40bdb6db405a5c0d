//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/mm"
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"net/http"
	"strings"
)

// Server - the dashboard; every page is built from the files in the data folder and the query string
type Server struct {
	Cfg str.CurrentConfiguration
	Msg *mm.MessageMaker
	e   *echo.Echo
}

// NewServer - set up echo with the middleware and the routes; nothing is listening yet
func NewServer(cfg str.CurrentConfiguration, msg *mm.MessageMaker) *Server {
	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "${remote_ip}\t${custom}\t${status}\t${bytes_out}\t${uri}\n"
	)

	// ctf - a CustomTagFunc return a short user agent
	ctf := func(c echo.Context, buf *bytes.Buffer) (int, error) {
		ua := strings.Split(c.Request().UserAgent(), " ")
		if len(ua) == 0 {
			return 0, nil
		} else {
			last := ua[len(ua)-1]
			buf.Write([]byte(last))
			return 1, nil
		}
	}

	//
	// SETUP
	//

	s := &Server{Cfg: cfg, Msg: msg, e: echo.New()}
	e := s.e

	e.Server.ReadTimeout = vv.TIMEOUTRD
	e.Server.WriteTimeout = vv.TIMEOUTWR

	switch cfg.EchoLog {
	case 3:
		e.Use(middleware.Logger())
	case 2:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT, CustomTagFunc: ctf}))
	case 1:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	default:
		// do nothing
	}

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(vv.MAXECHOREQPERSECONDPERIP)))

	e.Use(middleware.Recover())

	if cfg.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	}

	//
	// ROUTES
	//

	// [a] css ("rt-embcss.go")

	e.GET("/emb/css/faw.css", s.RtEmbCSS)

	// [b] frontpage ("rt-frontpage.go")

	e.GET("/", s.RtFrontpage)

	// [c] getters ("rt-getters.go")

	e.GET("/get/json/restaurants", s.RtGetJSRestaurants) // "u: /get/json/restaurants?star=3&price=4"

	// [d] maps ("rt-maps.go")

	e.GET("/map", s.RtStarMap)  // "u: /map?star=2,3&price=4&cuisine=Seafood"
	e.GET("/scenes", s.RtScenes) // "u: /scenes?scene=Gourmet Exploration|Business Fine Dining"

	// [e] text processing ("rt-process.go")

	e.GET("/process", s.RtProcess) // "u: /process?step=stem"

	// [f] topics ("rt-topics.go")

	e.GET("/topics", s.RtTopics)

	e.HideBanner = true
	e.HidePort = false
	e.Debug = false
	e.DisableHTTP2 = true

	return s
}

// Handler - for httptest
func (s *Server) Handler() http.Handler {
	return s.e
}

// Addr - "host:port"
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Cfg.HostIP, s.Cfg.HostPort)
}

// Start - serve until Shutdown is called; a clean shutdown is not an error
func (s *Server) Start() error {
	err := s.e.Start(s.Addr())
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown - stop accepting requests and wait for the ones in flight
func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
