package planar

import (
	"testing"

	"github.com/cheekybits/is"
	"github.com/golang/geo/r2"
)

func TestUnionFindLowestRepresentative(t *testing.T) {
	is := is.New(t)

	uf := newUnionFind(6)
	uf.union(uf.find(5), uf.find(3))
	uf.union(uf.find(3), uf.find(4))
	uf.union(uf.find(4), uf.find(1))

	is.Equal(uf.find(5), 1)
	is.Equal(uf.find(3), 1)
	is.Equal(uf.find(4), 1)
	is.Equal(uf.find(0), 0)
	is.Equal(uf.find(2), 2)
}

func TestMergeNearbyVertices(t *testing.T) {
	is := is.New(t)

	g := rawGraph(
		[][2]float64{{0, 0}, {5, 5}, {5.4, 5.3}, {10, 0}},
		[][2]int{{0, 1}, {1, 2}, {2, 3}},
	)

	g = MergeNearbyVertices(g, 1.0)

	is.Equal(len(g.Vertices), 3)
	is.Equal(g.Vertices[1].Coords, r2.Point{X: 5, Y: 5})
	// ребро между склеенными вершинами стало петлей и удалено
	is.Equal(len(g.Edges), 2)
	is.Equal(g.Edges[0].Vertices, [2]int{0, 1})
	is.Equal(g.Edges[1].Vertices, [2]int{1, 2})
	is.Equal(len(g.SelfLoops()), 0)
}

func TestMergeNearbyVerticesDuplicates(t *testing.T) {
	is := is.New(t)

	g := rawGraph(
		[][2]float64{{0, 0}, {10, 0}, {10.2, 0.1}},
		[][2]int{{0, 1}, {0, 2}},
	)
	g.HasAssignment = true
	g.Edges[0].Assignment = "M"
	g.Edges[1].Assignment = "V"

	g = MergeNearbyVertices(g, 1.0)

	is.Equal(len(g.Vertices), 2)
	is.Equal(len(g.Edges), 1)
	is.Equal(g.Edges[0].Assignment, "V")
}

func TestMergeNearbyVerticesNoop(t *testing.T) {
	is := is.New(t)

	coords := [][2]float64{{0, 0}, {0.5, 0}, {10, 0}}
	edges := [][2]int{{0, 1}, {1, 2}}

	g := MergeNearbyVertices(rawGraph(coords, edges), 0)
	is.Equal(len(g.Vertices), 3)

	g = MergeNearbyVertices(rawGraph(coords, edges), 0.1)
	is.Equal(len(g.Vertices), 3)
	is.Equal(len(g.Edges), 2)
}

func TestRemoveShortEdges(t *testing.T) {
	is := is.New(t)

	g := rawGraph(
		[][2]float64{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {50, 0}, {50, 0.5}},
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}},
	)

	g = RemoveShortEdges(g, ShortEdgeRatio)

	is.Equal(len(g.Edges), 4)
	is.Equal(len(g.Vertices), 4)
	checkClean(t, g, 1e-6)
}

func TestRemoveShortEdgesKeepsLong(t *testing.T) {
	is := is.New(t)

	g := rawGraph([][2]float64{{0, 0}, {1, 0}}, [][2]int{{0, 1}})
	g = RemoveShortEdges(g, ShortEdgeRatio)
	is.Equal(len(g.Edges), 1)

	single := rawGraph([][2]float64{{0, 0}}, nil)
	is.Equal(len(RemoveShortEdges(single, ShortEdgeRatio).Vertices), 1)
}

func TestSplitPendantEdges(t *testing.T) {
	is := is.New(t)

	g := rawGraph(
		[][2]float64{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {50, 50}, {50, 0.4}},
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}},
	)
	g.HasAssignment = true
	for i := range g.Edges {
		g.Edges[i].Assignment = "V"
	}
	g.Edges[0].Assignment = "M"
	g.Edges[0].FoldAngle = -180

	g = SplitPendantEdges(g, 1.0)

	is.Equal(len(g.Edges), 6)
	is.Equal(g.Edges[0].Vertices, [2]int{0, 5})
	is.Equal(g.Edges[1].Vertices, [2]int{5, 1})
	is.Equal(g.Edges[0].Assignment, "M")
	is.Equal(g.Edges[1].Assignment, "M")
	is.Equal(g.Edges[1].FoldAngle, -180.0)
	is.Equal(g.Edges[2].Vertices, [2]int{1, 2})
	is.Equal(g.Edges[5].Vertices, [2]int{4, 5})
}

func TestSplitPendantEdgesChainOrder(t *testing.T) {
	is := is.New(t)

	// два висячих конца на одном ребре, порядок по удаленности от первого конца
	g := rawGraph(
		[][2]float64{{0, 0}, {100, 0}, {70, 0.3}, {70, 40}, {20, 0.2}, {20, 40}},
		[][2]int{{0, 1}, {2, 3}, {4, 5}},
	)

	g = SplitPendantEdges(g, 1.0)

	is.Equal(len(g.Edges), 5)
	is.Equal(g.Edges[0].Vertices, [2]int{0, 4})
	is.Equal(g.Edges[1].Vertices, [2]int{4, 2})
	is.Equal(g.Edges[2].Vertices, [2]int{2, 1})
}

func TestSplitPendantEdgesNothingToDo(t *testing.T) {
	is := is.New(t)

	g := rawGraph(
		[][2]float64{{0, 0}, {100, 0}, {100, 100}},
		[][2]int{{0, 1}, {1, 2}, {2, 0}},
	)
	g = SplitPendantEdges(g, 1.0)
	is.Equal(len(g.Edges), 3)

	spoke := rawGraph(
		[][2]float64{{0, 0}, {100, 0}, {50, 10}, {50, 50}},
		[][2]int{{0, 1}, {2, 3}},
	)
	spoke = SplitPendantEdges(spoke, 1.0)
	is.Equal(len(spoke.Edges), 2)
}
