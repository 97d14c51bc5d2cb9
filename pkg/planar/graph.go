package planar

import (
	"github.com/golang/geo/r2"
)

// Нет ребра / нет вершины
const NoIndex = -1

// Kind - тип сущности графа, по нему работает удаление с переиндексацией
type Kind int

const (
	KindVertex Kind = iota
	KindEdge
	KindFace
)

func (k Kind) String() string {
	switch k {
	case KindVertex:
		return "vertices"
	case KindEdge:
		return "edges"
	case KindFace:
		return "faces"
	}
	return "unknown"
}

type Vertex struct {
	Coords r2.Point
	// соседние вершины, отсортированные по полярному углу
	Neighbors []int
	Faces     []int
}

type Edge struct {
	Vertices   [2]int
	Assignment string
	FoldAngle  float64
	Length     float64
	Faces      []int
}

// Other возвращает второй конец ребра
func (e Edge) Other(v int) int {
	if e.Vertices[0] == v {
		return e.Vertices[1]
	}
	return e.Vertices[0]
}

func (e Edge) Has(v int) bool {
	return e.Vertices[0] == v || e.Vertices[1] == v
}

type Face struct {
	Vertices []int
	Edges    []int
}

// Graph - плоский граф развертки.
// Каждый этап конвейера забирает граф и возвращает новый (или тот же) граф,
// после передачи старым указателем пользоваться нельзя.
type Graph struct {
	Vertices []Vertex
	Edges    []Edge
	Faces    []Face

	// заполнены ли у ребер Assignment / FoldAngle
	HasAssignment bool
	HasFoldAngle  bool
}

func New() *Graph {
	return &Graph{}
}

// AddVertex добавляет вершину и возвращает ее индекс
func (g *Graph) AddVertex(p r2.Point) int {
	g.Vertices = append(g.Vertices, Vertex{Coords: p})
	return len(g.Vertices) - 1
}

// AddEdge добавляет ребро и возвращает его индекс
func (g *Graph) AddEdge(v1, v2 int, assignment string, foldAngle float64) int {
	g.Edges = append(g.Edges, Edge{
		Vertices:   [2]int{v1, v2},
		Assignment: assignment,
		FoldAngle:  foldAngle,
	})
	return len(g.Edges) - 1
}

func (g *Graph) Count(kind Kind) int {
	switch kind {
	case KindVertex:
		return len(g.Vertices)
	case KindEdge:
		return len(g.Edges)
	case KindFace:
		return len(g.Faces)
	}
	return 0
}

func (g *Graph) Coords(v int) r2.Point {
	return g.Vertices[v].Coords
}

// EdgePoints - координаты концов ребра
func (g *Graph) EdgePoints(e int) (r2.Point, r2.Point) {
	ev := g.Edges[e].Vertices
	return g.Vertices[ev[0]].Coords, g.Vertices[ev[1]].Coords
}

func (g *Graph) Points() []r2.Point {
	points := make([]r2.Point, len(g.Vertices))
	for i, v := range g.Vertices {
		points[i] = v.Coords
	}
	return points
}

// Degrees - количество ребер у каждой вершины
func (g *Graph) Degrees() []int {
	degree := make([]int, len(g.Vertices))
	for _, e := range g.Edges {
		degree[e.Vertices[0]]++
		degree[e.Vertices[1]]++
	}
	return degree
}

// Clone - глубокая копия графа
func (g *Graph) Clone() *Graph {
	c := &Graph{
		Vertices:      make([]Vertex, len(g.Vertices)),
		Edges:         make([]Edge, len(g.Edges)),
		Faces:         make([]Face, len(g.Faces)),
		HasAssignment: g.HasAssignment,
		HasFoldAngle:  g.HasFoldAngle,
	}
	for i, v := range g.Vertices {
		c.Vertices[i] = Vertex{
			Coords:    v.Coords,
			Neighbors: cloneInts(v.Neighbors),
			Faces:     cloneInts(v.Faces),
		}
	}
	for i, e := range g.Edges {
		e.Faces = cloneInts(e.Faces)
		c.Edges[i] = e
	}
	for i, f := range g.Faces {
		c.Faces[i] = Face{
			Vertices: cloneInts(f.Vertices),
			Edges:    cloneInts(f.Edges),
		}
	}
	return c
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	return append([]int(nil), s...)
}

// edgeKey - неупорядоченная пара вершин
type edgeKey struct {
	a, b int
}

func makeEdgeKey(v1, v2 int) edgeKey {
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	return edgeKey{v1, v2}
}

// edgeLookup - пара вершин -> индекс ребра. При дублях побеждает последнее ребро.
func (g *Graph) edgeLookup() map[edgeKey]int {
	lookup := make(map[edgeKey]int, len(g.Edges))
	for i, e := range g.Edges {
		lookup[makeEdgeKey(e.Vertices[0], e.Vertices[1])] = i
	}
	return lookup
}

// FindEdge ищет ребро между двумя вершинами (последнее, как и edgeLookup)
func (g *Graph) FindEdge(v1, v2 int) int {
	key := makeEdgeKey(v1, v2)
	for i := len(g.Edges) - 1; i >= 0; i-- {
		e := g.Edges[i]
		if makeEdgeKey(e.Vertices[0], e.Vertices[1]) == key {
			return i
		}
	}
	return NoIndex
}
