//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/dash"
	"github.com/fc9399/ForksAndWords/internal/str"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"html/template"
	"io"
	"regexp"
	"strings"
)

//
// GRAPHING
//

// renderedcharts - html+js for the charts and the scripts that the page head has to load first
type renderedcharts struct {
	HTML    template.HTML
	Scripts []string
}

// renderchart - go-echarts wants to build a whole page; we only want the div and the script for each chart
func renderchart(cc ...components.Charter) (renderedcharts, error) {
	// [a] we are building a page by hand
	p := components.NewPage()
	p.Renderer = NewCustomPageRender(p, p.Validate)

	for _, g := range cc {
		g.Validate()

		// [b] add assets to the page
		assets := g.GetAssets()
		for _, v := range assets.JSAssets.Values {
			p.JSAssets.Add(v)
		}

		for _, v := range assets.CSSAssets.Values {
			p.CSSAssets.Add(v)
		}

		// [c] add the chart to the page
		p.Charts = append(p.Charts, g)
	}
	p.Validate()

	// [d] render the charts and get the html+js for them
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return renderedcharts{}, err
	}

	return renderedcharts{
		HTML:    template.HTML(buf.String()),
		Scripts: append([]string{}, p.JSAssets.Values...),
	}, nil
}

// mapchart - a scatter of lon/lat; one series per group so the legend can toggle them
func mapchart(title string, subtitle string, groups []string, colors map[string]string, rows map[string][]str.Restaurant) *charts.Scatter {
	const (
		SYMSIZE = 9
		XNAME   = "longitude"
		YNAME   = "latitude"
		AXTYPE  = "value"
		AXMIN   = "dataMin"
		AXMAX   = "dataMax"
		TRIGGER = "item"
	)

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHT}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: TRIGGER}),
		charts.WithXAxisOpts(opts.XAxis{Name: XNAME, Type: AXTYPE, Min: AXMIN, Max: AXMAX}),
		charts.WithYAxisOpts(opts.YAxis{Name: YNAME, Type: AXTYPE, Min: AXMIN, Max: AXMAX}),
	)

	for _, g := range groups {
		var data []opts.ScatterData
		for _, r := range rows[g] {
			data = append(data, opts.ScatterData{
				Name:       markerlabel(r),
				Value:      []interface{}{r.Lon, r.Lat},
				SymbolSize: SYMSIZE,
			})
		}
		if c, ok := colors[g]; ok {
			sc.AddSeries(g, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: c}))
		} else {
			sc.AddSeries(g, data)
		}
	}
	return sc
}

// starmap - the filtered restaurants grouped by star count
func starmap(rr []str.Restaurant) *charts.Scatter {
	const (
		TITLE = "Michelin-starred restaurants"
		SUB   = "%d restaurants match your selection"
	)
	colors := map[string]string{"1 star": "#f4a259", "2 stars": "#e4572e", "3 stars": "#a01a58"}

	groups := []string{"1 star", "2 stars", "3 stars"}
	rows := make(map[string][]str.Restaurant)
	for _, r := range rr {
		g := fmt.Sprintf("%d stars", r.Star)
		if r.Star == 1 {
			g = "1 star"
		}
		rows[g] = append(rows[g], r)
	}
	return mapchart(TITLE, fmt.Sprintf(SUB, len(rr)), groups, colors, rows)
}

// scenemap - the labeled restaurants grouped by clean scene in the palette colors
func scenemap(rr []str.Restaurant, scenes []string, palette map[string]dash.SceneStyle) *charts.Scatter {
	const (
		TITLE = "Restaurants by consumer scene"
		SUB   = "showing %d restaurants"
	)
	colors := make(map[string]string, len(palette))
	for k, v := range palette {
		colors[k] = v.Marker
	}
	rows := make(map[string][]str.Restaurant)
	for _, r := range rr {
		c := dash.CleanScene(r.ConsumerScene)
		rows[c] = append(rows[c], r)
	}
	return mapchart(TITLE, fmt.Sprintf(SUB, len(rr)), scenes, colors, rows)
}

// topicbars - documents per topic
func topicbars(ts dash.TopicSummary) *charts.Bar {
	const (
		TITLE  = "Documents per dominant topic"
		SUB    = "%d documents; mean share %.1f%% (sd %.1f%%)"
		SERIES = "documents"
		COLOR  = "#5470c6"
	)

	labels := make([]string, len(ts.Rows))
	data := make([]opts.BarData, len(ts.Rows))
	for i, r := range ts.Rows {
		labels[i] = fmt.Sprintf("topic %d", r.TopicID)
		data[i] = opts.BarData{Name: r.Type, Value: r.Docs}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLE, Subtitle: fmt.Sprintf(SUB, ts.Documents, 100*ts.MeanShare, 100*ts.SdShare)}),
	)
	bar.SetXAxis(labels).AddSeries(SERIES, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: COLOR}))
	return bar
}

// markerlabel - "Le Bernardin · $100+ · 3★ · Seafood, French"
func markerlabel(r str.Restaurant) string {
	pd := r.PriceDisplay
	if pd == "" {
		pd = dash.PriceDisplay(r.Price)
	}
	parts := []string{r.Name, pd, fmt.Sprintf("%d★", r.Star)}
	if len(r.Tags) > 0 {
		parts = append(parts, strings.Join(r.Tags, vv.TOPWORDSEP))
	}
	if s := dash.CleanScene(r.ConsumerScene); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " · ")
}

//
// OVERRIDE GO-ECHARTS [original code at https://github.com/go-echarts/go-echarts]
//

// ModRenderer etc modified from https://github.com/go-echarts/go-echarts/render/engine.go
type ModRenderer interface {
	Render(w io.Writer) error
}

type CustomPageRender struct {
	c      interface{}
	before []func()
}

// NewCustomPageRender returns a render implementation for Page.
func NewCustomPageRender(c interface{}, before ...func()) ModRenderer {
	return &CustomPageRender{c: c, before: before}
}

// Render renders the page into the given io.Writer.
func (r *CustomPageRender) Render(w io.Writer) error {
	const (
		TEMPLNAME = "chart"
		PATTERN   = `(__f__")|("__f__)|(__f__)`
	)

	for _, fn := range r.before {
		fn()
	}

	contents := []string{CustomBaseTpl, CustomPageTpl}
	tpl := ModMustTemplate(TEMPLNAME, contents)

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, TEMPLNAME, r.c); err != nil {
		return err
	}

	pat := regexp.MustCompile(PATTERN)
	content := pat.ReplaceAll(buf.Bytes(), []byte(""))

	_, err := w.Write(content)
	return err
}

// ModMustTemplate creates a new template with the given name and parsed contents.
func ModMustTemplate(name string, contents []string) *template.Template {
	const (
		JSNAME = "safeJS"
	)

	tpl := template.Must(template.New(name).Funcs(template.FuncMap{
		JSNAME: func(s interface{}) template.JS {
			return template.JS(fmt.Sprint(s))
		},
	}).Parse(contents[0]))

	for _, cont := range contents[1:] {
		tpl = template.Must(tpl.Parse(cont))
	}
	return tpl
}

// CustomBaseTpl etc. adapted from https://github.com/go-echarts/go-echarts/templates/; the page head is ours
var CustomBaseTpl = `
{{- define "base" }}
<div class="container">
    <div class="item" id="{{ .ChartID }}" style="width:{{ .Initialization.Width }};height:{{ .Initialization.Height }};"></div>
</div>
<script type="text/javascript">
    "use strict";
    let goecharts_{{ .ChartID | safeJS }} = echarts.init(document.getElementById('{{ .ChartID | safeJS }}'), "{{ .Theme }}");
    let option_{{ .ChartID | safeJS }} = {{ .JSONNotEscaped | safeJS }};
	let action_{{ .ChartID | safeJS }} = {{ .JSONNotEscapedAction | safeJS }};
    goecharts_{{ .ChartID | safeJS }}.setOption(option_{{ .ChartID | safeJS }});
 	goecharts_{{ .ChartID | safeJS }}.dispatchAction(action_{{ .ChartID | safeJS }});

    {{- range .JSFunctions.Fns }}
    {{ . | safeJS }}
    {{- end }}
</script>
{{ end }}
`

var CustomPageTpl = `
{{- define "chart" }}
	{{ if eq .Layout "flex" }}
		<div class="box"> {{- range .Charts }} {{ template "base" . }} {{- end }} </div>
	{{ else }}
		{{- range .Charts }} {{ template "base" . }} {{- end }}
	{{ end }}
{{ end }}
`
