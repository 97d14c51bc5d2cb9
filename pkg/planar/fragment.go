package planar

import (
	"math"
	"sort"

	"github.com/0x0FACED/go-crease/pkg/geom"
	"github.com/golang/geo/r2"
)

// Fragment разбивает каждое ребро в точках пересечения с другими ребрами
// и в вершинах, лежащих на нем, после чего склеивает совпадающие вершины
// и одинаковые ребра. Грани в результате отсутствуют.
// Метки ребер переносятся с исходного ребра, если они были заполнены.
func Fragment(g *Graph, eps float64) *Graph {
	ne := len(g.Edges)

	// по какой оси сортировать точки разбиения ребра
	horizontal := make([]bool, ne)
	for i := range g.Edges {
		a, b := g.EdgePoints(i)
		horizontal[i] = geom.HorizontalDominant(a, b)
	}

	// точки разбиения: сначала пересечения, потом вершины на ребре
	splits := edgesIntersections(g, eps)
	collinear := edgesCollinearVertices(g, eps)
	for i := range splits {
		splits[i] = append(splits[i], collinear[i]...)
		pts := splits[i]
		if horizontal[i] {
			sort.SliceStable(pts, func(a, b int) bool { return pts[a].X < pts[b].X })
		} else {
			sort.SliceStable(pts, func(a, b int) bool { return pts[a].Y < pts[b].Y })
		}
	}

	// каждое под-ребро получает две новые вершины, склеим их позже
	out := &Graph{
		HasAssignment: g.HasAssignment,
		HasFoldAngle:  g.HasFoldAngle,
	}
	for i, pts := range splits {
		var assignment string
		var foldAngle float64
		if g.HasAssignment {
			assignment = g.Edges[i].Assignment
		}
		if g.HasFoldAngle {
			foldAngle = g.Edges[i].FoldAngle
		}
		for k := 0; k+1 < len(pts); k++ {
			a, b := pts[k], pts[k+1]
			if degenerate(a, b, eps) {
				continue
			}
			va := out.AddVertex(a)
			vb := out.AddVertex(b)
			out.AddEdge(va, vb, assignment, foldAngle)
		}
	}

	canonical, duplicates := dedupVertices(out.Points(), eps)
	for i := range out.Edges {
		ev := &out.Edges[i].Vertices
		ev[0], ev[1] = canonical[ev[0]], canonical[ev[1]]
	}

	// петли могут появиться при цепочечной склейке
	drop := append(out.SelfLoops(), out.DuplicateEdges()...)
	sort.Ints(drop)
	// индексы получены из самого графа
	_ = out.Remove(KindEdge, drop)
	_ = out.Remove(KindVertex, duplicates)
	out.RemoveUnusedVertices()

	return out
}

// degenerate - под-ребро нулевой длины по обеим осям
func degenerate(a, b r2.Point, eps float64) bool {
	d := a.Sub(b)
	return math.Abs(d.X) < eps && math.Abs(d.Y) < eps
}

// edgesIntersections - попарные внутренние пересечения ребер
func edgesIntersections(g *Graph, eps float64) [][]r2.Point {
	ne := len(g.Edges)
	result := make([][]r2.Point, ne)
	for i := 0; i < ne-1; i++ {
		a0, a1 := g.EdgePoints(i)
		for j := i + 1; j < ne; j++ {
			b0, b1 := g.EdgePoints(j)
			p, ok := geom.SegmentIntersectionExclusive(a0, a1, b0, b1, eps)
			if !ok {
				continue
			}
			result[i] = append(result[i], p)
			result[j] = append(result[j], p)
		}
	}
	return result
}

// edgesCollinearVertices - для каждого ребра все вершины графа, лежащие на нем,
// включая его собственные концы
func edgesCollinearVertices(g *Graph, eps float64) [][]r2.Point {
	points := g.Points()
	idx := newPointIndex(points)

	result := make([][]r2.Point, len(g.Edges))
	for i := range g.Edges {
		e0, e1 := g.EdgePoints(i)
		box := segmentBox(e0, e1, edgeMargin(e0, e1, eps))
		for _, v := range idx.search(box) {
			if geom.PointOnSegmentExclusive(points[v], e0, e1, eps) {
				result[i] = append(result[i], points[v])
			}
		}
	}
	return result
}

// dedupVertices склеивает точки, совпадающие с точностью eps.
// Точка j уходит в каноническую вершину последней совпавшей с ней точки i < j,
// канонической считается выжившая вершина с меньшим индексом.
// Возвращает отображение в канонические индексы и список удаленных точек.
func dedupVertices(points []r2.Point, eps float64) ([]int, []int) {
	canonical := make([]int, len(points))
	var removed []int

	idx := newPointIndex(points)
	for j, p := range points {
		canonical[j] = j
		// запас 2*eps на погрешность построения прямоугольника, дальше точная проверка
		last := NoIndex
		for _, i := range idx.search(pointBox(p, 2*eps)) {
			if i >= j {
				break
			}
			if geom.Equivalent(points[i], p, eps) {
				last = i
			}
		}
		if last != NoIndex {
			canonical[j] = canonical[last]
			removed = append(removed, j)
		}
	}
	return canonical, removed
}
