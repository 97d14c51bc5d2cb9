package planar

import (
	"errors"
	"testing"

	"github.com/cheekybits/is"
)

func TestRemoveVertices(t *testing.T) {
	is := is.New(t)

	g := rawGraph(
		[][2]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}},
		[][2]int{{0, 2}, {2, 4}, {4, 0}},
	)
	g.Faces = []Face{{Vertices: []int{0, 2, 4}, Edges: []int{0, 1, 2}}}
	g.Vertices[0].Neighbors = []int{2, 4}
	g.Vertices[4].Neighbors = []int{0, 3, 2}

	is.NoErr(g.Remove(KindVertex, []int{1, 3}))

	is.Equal(len(g.Vertices), 3)
	is.Equal(g.Vertices[1].Coords.X, 2.0)
	is.Equal(g.Vertices[2].Coords.X, 4.0)
	is.Equal(g.Edges[0].Vertices, [2]int{0, 1})
	is.Equal(g.Edges[1].Vertices, [2]int{1, 2})
	is.Equal(g.Edges[2].Vertices, [2]int{2, 0})
	is.Equal(g.Faces[0].Vertices, []int{0, 1, 2})
	is.Equal(g.Vertices[0].Neighbors, []int{1, 2})
	// ссылка на удаленную вершину 3 выброшена
	is.Equal(g.Vertices[2].Neighbors, []int{0, 1})
}

func TestRemoveEdges(t *testing.T) {
	is := is.New(t)

	g := rawGraph(
		[][2]float64{{0, 0}, {1, 0}, {1, 1}},
		[][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 1}},
	)
	g.Faces = []Face{{Vertices: []int{0, 1, 2}, Edges: []int{3, 1, 2}}}

	is.NoErr(g.Remove(KindEdge, []int{0, 0}))

	is.Equal(len(g.Edges), 3)
	is.Equal(g.Faces[0].Edges, []int{2, 0, 1})
}

func TestRemoveEdgeReferencedByFace(t *testing.T) {
	is := is.New(t)

	g := rawGraph(
		[][2]float64{{0, 0}, {1, 0}, {1, 1}},
		[][2]int{{0, 1}, {1, 2}, {2, 0}},
	)
	g.Faces = []Face{{Vertices: []int{0, 1, 2}, Edges: []int{0, 1, 2}}}

	is.NoErr(g.Remove(KindEdge, []int{1}))
	is.Equal(g.Faces[0].Edges, []int{0, NoIndex, 1})
}

func TestRemoveFaces(t *testing.T) {
	is := is.New(t)

	g := rawGraph(
		[][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		[][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 0}},
	)
	g.Faces = []Face{
		{Vertices: []int{0, 1, 2}, Edges: []int{0, 1, 2}},
		{Vertices: []int{0, 2, 3}, Edges: []int{2, 3, 4}},
	}
	Derive(g)
	is.Equal(g.Edges[2].Faces, []int{0, 1})

	is.NoErr(g.Remove(KindFace, []int{0}))

	is.Equal(len(g.Faces), 1)
	is.Equal(g.Edges[2].Faces, []int{0})
	is.Equal(g.Edges[0].Faces, []int{})
	is.Equal(g.Vertices[3].Faces, []int{0})
}

func TestRemoveOutOfRange(t *testing.T) {
	is := is.New(t)

	g := rawGraph([][2]float64{{0, 0}, {1, 0}}, [][2]int{{0, 1}})

	err := g.Remove(KindVertex, []int{0, 2})
	is.Err(err)
	is.True(errors.Is(err, ErrIndexOutOfRange))
	// граф не тронут
	is.Equal(len(g.Vertices), 2)
	is.Equal(g.Edges[0].Vertices, [2]int{0, 1})

	is.True(errors.Is(g.Remove(KindEdge, []int{-1}), ErrIndexOutOfRange))
	is.True(errors.Is(g.Remove(KindFace, []int{0}), ErrIndexOutOfRange))
}

func TestRemoveNothing(t *testing.T) {
	is := is.New(t)

	g := rawGraph([][2]float64{{0, 0}, {1, 0}}, [][2]int{{0, 1}})
	is.NoErr(g.Remove(KindVertex, nil))
	is.Equal(len(g.Vertices), 2)
}

func TestRemoveUnusedVertices(t *testing.T) {
	is := is.New(t)

	g := rawGraph([][2]float64{{0, 0}, {5, 5}, {1, 0}}, [][2]int{{0, 2}})
	is.Equal(g.RemoveUnusedVertices(), 1)
	is.Equal(len(g.Vertices), 2)
	is.Equal(g.Edges[0].Vertices, [2]int{0, 1})
}
