package render

import (
	"github.com/0x0FACED/go-crease/pkg/planar"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		// Y в рисунке направлен вниз
		charts.WithYAxisOpts(opts.YAxis{
			Type:    "value",
			Name:    "Y",
			Inverse: opts.Bool(true),
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Chart рисует граф для echarts: вершины точками, ребра линиями цвета своего сгиба
func Chart(g *planar.Graph, title string) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, title)

	points := make([]opts.ScatterData, 0, len(g.Vertices))
	for _, v := range g.Vertices {
		points = append(points, opts.ScatterData{
			Value: []float64{v.Coords.X, v.Coords.Y},
		})
	}

	scatter.AddSeries("Вершины", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for i, e := range g.Edges {
		a, b := g.EdgePoints(i)

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)

		line.AddSeries(edgeSeries(e.Assignment), []opts.LineData{
			{Value: []float64{a.X, a.Y}},
			{Value: []float64{b.X, b.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
				Color: edgeColor(e.Assignment),
			}),
		)

		scatter.Overlap(line)
	}

	return scatter
}
