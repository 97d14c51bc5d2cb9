package planar

import (
	"github.com/0x0FACED/go-crease/pkg/geom"
)

// FindBoundary возвращает ребра внешней границы графа по порядку обхода,
// каждое ребро один раз.
// Старт - самая верхняя вершина (минимальный Y в координатах SVG), первый шаг -
// к соседу, направление на которого ближе всего к +X. Дальше каждый раз берется
// сосед, стоящий сразу после предыдущей вершины в отсортированном списке.
// Требует SortNeighbors. Пустой результат, если вершин нет, у стартовой
// вершины нет соседей или обход не замкнулся.
func FindBoundary(g *Graph) []int {
	walk := boundaryWalk(g)
	if len(walk) == 0 {
		return nil
	}

	lookup := g.edgeLookup()
	edges := make([]int, 0, len(walk))
	// висячие ветки снаружи обходятся туда и обратно, ребро берется один раз
	seen := make(map[int]bool, len(walk))
	for i := range walk {
		e, ok := lookup[makeEdgeKey(walk[i], walk[(i+1)%len(walk)])]
		if !ok || seen[e] {
			continue
		}
		seen[e] = true
		edges = append(edges, e)
	}
	return edges
}

// BoundaryVertices - вершины внешней границы в порядке обхода
func BoundaryVertices(g *Graph) []int {
	return boundaryWalk(g)
}

func boundaryWalk(g *Graph) []int {
	if len(g.Vertices) == 0 {
		return nil
	}

	start := 0
	for i, v := range g.Vertices {
		if v.Coords.Y < g.Vertices[start].Coords.Y {
			start = i
		}
	}

	adjacent := g.Vertices[start].Neighbors
	if len(adjacent) == 0 {
		return nil
	}

	origin := g.Vertices[start].Coords
	best := adjacent[0]
	bestX := geom.Normalize(g.Vertices[best].Coords.Sub(origin)).X
	for _, nb := range adjacent[1:] {
		x := geom.Normalize(g.Vertices[nb].Coords.Sub(origin)).X
		if x > bestX {
			best, bestX = nb, x
		}
	}

	walk := []int{start, best}
	// каждое полуребро проходится не больше одного раза
	limit := 2*len(g.Edges) + 1
	for walk[0] != walk[len(walk)-1] {
		if len(walk) > limit {
			return nil
		}
		current := walk[len(walk)-1]
		prev := walk[len(walk)-2]
		nbrs := g.Vertices[current].Neighbors
		pos := indexOf(nbrs, prev)
		if pos < 0 {
			return nil
		}
		walk = append(walk, nbrs[(pos+1)%len(nbrs)])
	}
	// последняя вершина повторяет стартовую
	return walk[:len(walk)-1]
}
