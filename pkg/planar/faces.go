package planar

import (
	"math"
	"sort"

	"github.com/0x0FACED/go-crease/pkg/geom"
	"github.com/golang/geo/r2"
)

// halfEdge - направленная пара вершин u -> v
type halfEdge struct {
	u, v int
}

// BuildFaces строит соседей вершин, обходит грани и связывает их с ребрами.
// Возвращает количество пар вершин граней, для которых ребро не нашлось.
func BuildFaces(g *Graph) (*Graph, int) {
	SortNeighbors(g)
	TraceFaces(g)
	FixDegenerateFaces(g)
	missing := LinkFaceEdges(g)
	return g, missing
}

// SortNeighbors заполняет Neighbors каждой вершины, отсортировав соседей
// по возрастанию полярного угла (atan2) относительно самой вершины
func SortNeighbors(g *Graph) {
	for i := range g.Vertices {
		g.Vertices[i].Neighbors = nil
	}
	for _, e := range g.Edges {
		v1, v2 := e.Vertices[0], e.Vertices[1]
		g.Vertices[v1].Neighbors = append(g.Vertices[v1].Neighbors, v2)
		g.Vertices[v2].Neighbors = append(g.Vertices[v2].Neighbors, v1)
	}

	for i := range g.Vertices {
		center := g.Vertices[i].Coords
		nbrs := g.Vertices[i].Neighbors
		angles := make(map[int]float64, len(nbrs))
		for _, nb := range nbrs {
			d := g.Vertices[nb].Coords.Sub(center)
			angles[nb] = math.Atan2(d.Y, d.X)
		}
		sort.SliceStable(nbrs, func(a, b int) bool {
			return angles[nbrs[a]] < angles[nbrs[b]]
		})
	}
}

// TraceFaces обходит все грани по полуребрам. Для полуребра u -> v следующее
// полуребро v -> w, где w стоит в списке соседей v прямо перед u.
// Грани меньше чем из трех вершин и грани с неположительной площадью
// (внешняя, бесконечная грань) отбрасываются. Требует SortNeighbors.
func TraceFaces(g *Graph) {
	visited := make(map[halfEdge]bool)
	var faces []Face

	for startU := range g.Vertices {
		for _, startV := range g.Vertices[startU].Neighbors {
			if visited[halfEdge{startU, startV}] {
				continue
			}

			var cycle []int
			u, v := startU, startV
			for {
				he := halfEdge{u, v}
				if visited[he] {
					break
				}
				visited[he] = true
				cycle = append(cycle, u)

				nbrs := g.Vertices[v].Neighbors
				pos := indexOf(nbrs, u)
				if pos < 0 {
					break
				}
				w := nbrs[(pos-1+len(nbrs))%len(nbrs)]
				u, v = v, w
			}

			if len(cycle) >= 3 && faceArea(g, cycle) > 0 {
				faces = append(faces, Face{Vertices: cycle})
			}
		}
	}

	g.Faces = faces
	for i := range g.Vertices {
		g.Vertices[i].Faces = nil
	}
	for i := range g.Edges {
		g.Edges[i].Faces = nil
	}
}

// FixDegenerateFaces разрезает грани, которые проходят через вершину дважды
// (обход отразился от висячей вершины), на части по первой повторившейся
// вершине. Остаются части из трех и более вершин с положительной площадью.
func FixDegenerateFaces(g *Graph) {
	var fixed []Face
	for _, f := range g.Faces {
		for _, part := range splitAtRepeat(f.Vertices) {
			if len(part) == len(f.Vertices) {
				fixed = append(fixed, f)
				continue
			}
			if len(part) >= 3 && faceArea(g, part) > 0 {
				fixed = append(fixed, Face{Vertices: part})
			}
		}
	}
	g.Faces = fixed
}

// splitAtRepeat делит замкнутый обход A..X..A..Z на два обхода A..X и A..Z
// рекурсивно, пока в частях есть повторы
func splitAtRepeat(cycle []int) [][]int {
	seen := make(map[int]int, len(cycle))
	for i, v := range cycle {
		j, ok := seen[v]
		if !ok {
			seen[v] = i
			continue
		}
		loop := append([]int(nil), cycle[j:i]...)
		rest := append(append([]int(nil), cycle[:j]...), cycle[i:]...)
		return append(splitAtRepeat(loop), splitAtRepeat(rest)...)
	}
	return [][]int{cycle}
}

// LinkFaceEdges заполняет Edges у граней. Пара вершин без ребра получает NoIndex,
// их количество возвращается.
func LinkFaceEdges(g *Graph) int {
	lookup := g.edgeLookup()
	missing := 0
	for i := range g.Faces {
		fv := g.Faces[i].Vertices
		fe := make([]int, len(fv))
		for k := range fv {
			e, ok := lookup[makeEdgeKey(fv[k], fv[(k+1)%len(fv)])]
			if !ok {
				e = NoIndex
				missing++
			}
			fe[k] = e
		}
		g.Faces[i].Edges = fe
	}
	return missing
}

// FaceArea - знаковая площадь грани
func (g *Graph) FaceArea(f int) float64 {
	return faceArea(g, g.Faces[f].Vertices)
}

func faceArea(g *Graph, cycle []int) float64 {
	points := make([]r2.Point, len(cycle))
	for i, v := range cycle {
		points[i] = g.Vertices[v].Coords
	}
	return geom.SignedArea(points)
}

func indexOf(s []int, x int) int {
	for i, v := range s {
		if v == x {
			return i
		}
	}
	return -1
}
