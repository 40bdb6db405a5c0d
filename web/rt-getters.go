//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"github.com/fc9399/ForksAndWords/internal/dash"
	"github.com/fc9399/ForksAndWords/internal/gen"
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/labstack/echo/v4"
	"net/http"
)

// JSRestaurants - the filtered star map rows
type JSRestaurants struct {
	Count       int              `json:"count"`
	Filter      dash.Filter      `json:"filter"`
	Restaurants []str.Restaurant `json:"restaurants"`
}

// RtGetJSRestaurants - the same rows the star map would show for this query string
func (s *Server) RtGetJSRestaurants(c echo.Context) error {
	all, _, err := s.loadrestaurants(s.Cfg.CorpusPath())
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": notice(err)})
	}

	f := dash.ParseFilter(c.QueryParams())
	rr := f.Apply(all)
	if rr == nil {
		rr = []str.Restaurant{}
	}

	return gen.JSONresponse(c, JSRestaurants{Count: len(rr), Filter: f, Restaurants: rr})
}
