package planar

import (
	"testing"

	"github.com/cheekybits/is"
)

func TestDerive(t *testing.T) {
	is := is.New(t)

	g := rawGraph(
		[][2]float64{{0, 0}, {3, 0}, {3, 4}, {9, 9}},
		[][2]int{{0, 1}, {1, 2}, {2, 0}},
	)
	g.Faces = []Face{{Vertices: []int{0, 1, 2}, Edges: []int{0, 1, NoIndex}}}

	Derive(g)

	is.Equal(g.Edges[0].Length, 3.0)
	is.Equal(g.Edges[1].Length, 4.0)
	is.Equal(g.Edges[2].Length, 5.0)

	is.Equal(g.Vertices[0].Faces, []int{0})
	// вершина без граней получает пустой, а не nil список
	is.Equal(g.Vertices[3].Faces, []int{})
	is.Equal(g.Edges[0].Faces, []int{0})
	is.Equal(g.Edges[2].Faces, []int{})
}

func TestDeriveSquareEdgeFaces(t *testing.T) {
	is := is.New(t)

	g, _ := BuildFaces(squareGraph())
	Derive(g)

	for _, e := range g.Edges {
		is.Equal(e.Faces, []int{0})
		is.Equal(e.Length, 10.0)
	}
	for _, v := range g.Vertices {
		is.Equal(v.Faces, []int{0})
	}
}
