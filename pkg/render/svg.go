package render

import (
	"fmt"
	"io"

	"github.com/0x0FACED/go-crease/pkg/geom"
	"github.com/0x0FACED/go-crease/pkg/planar"
	svg "github.com/ajstarks/svgo/float"
)

const svgPadding = 10.0

// WriteSVG рисует граф в SVG: грани заливкой, ребра цветом сгиба, вершины точками.
// scale - во сколько раз увеличить координаты рисунка.
// Возвращает первую ошибку записи в w.
func WriteSVG(w io.Writer, g *planar.Graph, scale float64) error {
	if scale <= 0 {
		scale = 1
	}

	bounds := geom.Bounds(g.Points())
	width := bounds.X.Length()*scale + 2*svgPadding
	height := bounds.Y.Length()*scale + 2*svgPadding

	tx := func(x float64) float64 { return (x-bounds.X.Lo)*scale + svgPadding }
	ty := func(y float64) float64 { return (y-bounds.Y.Lo)*scale + svgPadding }

	// svgo ошибки записи не возвращает, ловим их сами
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1F1F1F")

	for _, f := range g.Faces {
		xs := make([]float64, len(f.Vertices))
		ys := make([]float64, len(f.Vertices))
		for k, v := range f.Vertices {
			p := g.Coords(v)
			xs[k], ys[k] = tx(p.X), ty(p.Y)
		}
		canvas.Polygon(xs, ys, "fill:#2b2b2b;stroke:none")
	}

	for i, e := range g.Edges {
		a, b := g.EdgePoints(i)
		canvas.Line(tx(a.X), ty(a.Y), tx(b.X), ty(b.Y),
			fmt.Sprintf("stroke:%s;stroke-width:2", edgeColor(e.Assignment)))
	}

	for _, v := range g.Vertices {
		canvas.Circle(tx(v.Coords.X), ty(v.Coords.Y), 2, "fill:lightgreen")
	}

	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("render: write svg: %w", ew.err)
	}
	return nil
}

// errWriter запоминает первую ошибку и дальше ничего не пишет
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
