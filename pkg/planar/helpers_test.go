package planar

import (
	"testing"

	"github.com/cheekybits/is"
	"github.com/golang/geo/r2"

	"github.com/0x0FACED/go-crease/pkg/geom"
)

// segmentsGraph строит граф "как из рисунка": две вершины на отрезок
func segmentsGraph(segs [][4]float64, labels ...string) *Graph {
	g := New()
	for i, s := range segs {
		v1 := g.AddVertex(r2.Point{X: s[0], Y: s[1]})
		v2 := g.AddVertex(r2.Point{X: s[2], Y: s[3]})
		var label string
		if i < len(labels) {
			label = labels[i]
		}
		g.AddEdge(v1, v2, label, 0)
	}
	g.HasAssignment = len(labels) == len(segs)
	return g
}

// rawGraph строит граф из явных вершин и ребер
func rawGraph(coords [][2]float64, edges [][2]int) *Graph {
	g := New()
	for _, c := range coords {
		g.AddVertex(r2.Point{X: c[0], Y: c[1]})
	}
	for _, e := range edges {
		g.AddEdge(e[0], e[1], "", 0)
	}
	return g
}

var unitSquare = [][4]float64{
	{0, 0, 10, 0},
	{10, 0, 10, 10},
	{10, 10, 0, 10},
	{0, 10, 0, 0},
}

func findVertex(g *Graph, x, y float64) int {
	for i, v := range g.Vertices {
		if geom.Equivalent(v.Coords, r2.Point{X: x, Y: y}, 1e-9) {
			return i
		}
	}
	return NoIndex
}

// checkClean - нет петель, дублей ребер и совпадающих вершин
func checkClean(t *testing.T, g *Graph, eps float64) {
	t.Helper()
	is := is.New(t)

	is.Equal(len(g.SelfLoops()), 0)
	is.Equal(len(g.DuplicateEdges()), 0)
	for i := 0; i < len(g.Vertices); i++ {
		for j := i + 1; j < len(g.Vertices); j++ {
			is.False(geom.Equivalent(g.Vertices[i].Coords, g.Vertices[j].Coords, eps))
		}
	}
	is.NoErr(g.Validate())
}

// checkFacesClosed - каждая сторона каждой грани - существующее ребро
func checkFacesClosed(t *testing.T, g *Graph) {
	t.Helper()
	is := is.New(t)

	for _, f := range g.Faces {
		is.Equal(len(f.Edges), len(f.Vertices))
		for k, e := range f.Edges {
			is.True(e != NoIndex)
			a, b := f.Vertices[k], f.Vertices[(k+1)%len(f.Vertices)]
			is.True(g.Edges[e].Has(a))
			is.True(g.Edges[e].Has(b))
		}
	}
}
