package planar

import (
	"sort"

	"github.com/0x0FACED/go-crease/pkg/geom"
)

// Доля диагонали ограничивающего прямоугольника, короче которой ребро считается мусором
const ShortEdgeRatio = 0.01

// unionFind - система непересекающихся множеств на массиве родителей.
// find итеративный, со сжатием путей.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(i int) int {
	root := i
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[i] != root {
		next := u.parent[i]
		u.parent[i] = root
		i = next
	}
	return root
}

// union подвешивает больший корень к меньшему, так что представитель
// множества - всегда вершина с наименьшим индексом
func (u *unionFind) union(a, b int) {
	if a > b {
		a, b = b, a
	}
	u.parent[b] = a
}

// MergeNearbyVertices склеивает вершины, расстояние между представителями
// которых не больше tol. Ребра, ставшие петлями, удаляются, из дублей
// остается последнее. При tol <= 0 граф не меняется.
func MergeNearbyVertices(g *Graph, tol float64) *Graph {
	if tol <= 0 {
		return g
	}

	n := len(g.Vertices)
	uf := newUnionFind(n)
	merged := false
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			ri, rj := uf.find(i), uf.find(j)
			if ri == rj {
				continue
			}
			if geom.Distance(g.Vertices[ri].Coords, g.Vertices[rj].Coords) <= tol {
				uf.union(ri, rj)
				merged = true
			}
		}
	}
	if !merged {
		return g
	}

	var gone []int
	for i := 0; i < n; i++ {
		if uf.find(i) != i {
			gone = append(gone, i)
		}
	}
	for i := range g.Edges {
		ev := &g.Edges[i].Vertices
		ev[0], ev[1] = uf.find(ev[0]), uf.find(ev[1])
	}
	for i := range g.Faces {
		for k, v := range g.Faces[i].Vertices {
			g.Faces[i].Vertices[k] = uf.find(v)
		}
	}
	for i := range g.Vertices {
		g.Vertices[i].Neighbors = nil
	}
	_ = g.Remove(KindVertex, gone)

	_ = g.Remove(KindEdge, g.SelfLoops())
	dups := g.DuplicateEdges()
	sort.Ints(dups)
	_ = g.Remove(KindEdge, dups)

	return g
}

// RemoveShortEdges удаляет ребра короче ratio от диагонали ограничивающего
// прямоугольника, а затем вершины, оставшиеся без ребер.
func RemoveShortEdges(g *Graph, ratio float64) *Graph {
	if len(g.Vertices) < 2 {
		return g
	}
	minLength := geom.Diagonal(geom.Bounds(g.Points())) * ratio

	var short []int
	for i := range g.Edges {
		a, b := g.EdgePoints(i)
		if geom.Distance(a, b) < minLength {
			short = append(short, i)
		}
	}
	if len(short) == 0 {
		return g
	}
	_ = g.Remove(KindEdge, short)
	g.RemoveUnusedVertices()
	return g
}

// SplitPendantEdges разбивает ребра, на которых (с допуском tol) лежит висячая
// вершина, не являющаяся их концом. Такое бывает, когда округление координат
// оставило конец луча рядом с ребром, но дальше eps фрагментации.
// Под-ребра наследуют метку и угол исходного ребра.
func SplitPendantEdges(g *Graph, tol float64) *Graph {
	var pendants []int
	for v, d := range g.Degrees() {
		if d == 1 {
			pendants = append(pendants, v)
		}
	}
	if len(pendants) == 0 {
		return g
	}

	idx := newEdgeIndex(g, tol)
	splits := make(map[int][]int)
	for _, pv := range pendants {
		p := g.Vertices[pv].Coords
		for _, ei := range idx.search(pointBox(p, 0)) {
			e := g.Edges[ei]
			if e.Has(pv) {
				continue
			}
			e0, e1 := g.EdgePoints(ei)
			if geom.PointOnSegmentWithin(p, e0, e1, tol) {
				splits[ei] = append(splits[ei], pv)
			}
		}
	}
	if len(splits) == 0 {
		return g
	}

	order := make([]int, 0, len(splits))
	for ei := range splits {
		order = append(order, ei)
	}
	// с конца, чтобы индексы еще не обработанных ребер не съезжали
	sort.Sort(sort.Reverse(sort.IntSlice(order)))

	edges := g.Edges
	for _, ei := range order {
		src := edges[ei]
		start := g.Vertices[src.Vertices[0]].Coords
		verts := splits[ei]
		sort.SliceStable(verts, func(a, b int) bool {
			da := g.Vertices[verts[a]].Coords.Sub(start)
			db := g.Vertices[verts[b]].Coords.Sub(start)
			return da.Dot(da) < db.Dot(db)
		})

		chain := append([]int{src.Vertices[0]}, verts...)
		chain = append(chain, src.Vertices[1])
		sub := make([]Edge, 0, len(chain)-1)
		for k := 0; k+1 < len(chain); k++ {
			sub = append(sub, Edge{
				Vertices:   [2]int{chain[k], chain[k+1]},
				Assignment: src.Assignment,
				FoldAngle:  src.FoldAngle,
			})
		}

		spliced := make([]Edge, 0, len(edges)+len(sub)-1)
		spliced = append(spliced, edges[:ei]...)
		spliced = append(spliced, sub...)
		spliced = append(spliced, edges[ei+1:]...)
		edges = spliced
	}
	g.Edges = edges
	return g
}
