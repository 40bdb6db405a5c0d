//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/labstack/echo/v4"
	"net/http"
	"os"
	"path/filepath"
	"text/template"
)

const (
	CSSMIME = "text/css; charset=utf-8"
)

// RtEmbCSS - send "faw.css" after filling in the colors; a custom file in the config folder wins
func (s *Server) RtEmbCSS(c echo.Context) error {
	const (
		ECSS  = "emb/css/faw.css"
		FAIL1 = "RtEmbCSS() can't find %s"
		FAIL2 = "RtEmbCSS() template failure: %s"
	)

	if css, ok := s.customcss(); ok {
		return c.Blob(http.StatusOK, CSSMIME, []byte(css))
	}

	j, e := efs.ReadFile(ECSS)
	if e != nil {
		s.Msg.WARN(fmt.Sprintf(FAIL1, ECSS))
		return c.String(http.StatusNotFound, "")
	}

	subs := map[string]interface{}{
		"token":  vv.CSSTOKEN,
		"stop":   vv.CSSSTOP,
		"accent": vv.CSSACCENT,
		"paper":  vv.CSSPAPER,
	}

	tmpl, e := template.New("css").Parse(string(j))
	if e != nil {
		s.Msg.WARN(fmt.Sprintf(FAIL2, e.Error()))
		return c.String(http.StatusInternalServerError, "")
	}

	var b bytes.Buffer
	if err := tmpl.Execute(&b, subs); err != nil {
		s.Msg.WARN(fmt.Sprintf(FAIL2, err.Error()))
		return c.String(http.StatusInternalServerError, "")
	}

	return c.Blob(http.StatusOK, CSSMIME, b.Bytes())
}

// customcss - "~/.config/faw-custom.css" if it is there and readable
func (s *Server) customcss() (string, bool) {
	const (
		FAIL1 = "could not read CSS file '%s'; using default instead"
	)

	uh, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	f := filepath.Join(fmt.Sprintf(vv.CONFIGALTAPTH, uh), vv.CUSTOMCSSFILENAME)

	if _, err = os.Stat(f); err != nil {
		return "", false
	}

	b, err := os.ReadFile(f)
	if err != nil {
		s.Msg.CRIT(fmt.Sprintf(FAIL1, f))
		return "", false
	}
	return string(b), true
}
