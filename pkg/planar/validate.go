package planar

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"go.uber.org/multierr"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidEdge     = errors.New("invalid edge")
	ErrArrayLength     = errors.New("parallel array length mismatch")
	ErrInvalidCoords   = errors.New("invalid coordinates")
)

// FromArrays собирает граф из параллельных массивов в стиле FOLD.
// assignment и foldAngle могут быть пустыми, иначе их длина должна совпадать
// с количеством ребер.
func FromArrays(coords [][2]float64, edgesVertices [][2]int, assignment []string, foldAngle []float64) (*Graph, error) {
	g := &Graph{
		Vertices: make([]Vertex, len(coords)),
		Edges:    make([]Edge, len(edgesVertices)),
	}
	for i, c := range coords {
		g.Vertices[i].Coords = r2.Point{X: c[0], Y: c[1]}
	}
	for i, ev := range edgesVertices {
		g.Edges[i].Vertices = ev
	}

	var err error
	if len(assignment) != 0 {
		if len(assignment) != len(edgesVertices) {
			err = multierr.Append(err, fmt.Errorf("%w: edges_assignment has %d entries, edges_vertices has %d",
				ErrArrayLength, len(assignment), len(edgesVertices)))
		} else {
			g.HasAssignment = true
			for i, a := range assignment {
				g.Edges[i].Assignment = a
			}
		}
	}
	if len(foldAngle) != 0 {
		if len(foldAngle) != len(edgesVertices) {
			err = multierr.Append(err, fmt.Errorf("%w: edges_foldAngle has %d entries, edges_vertices has %d",
				ErrArrayLength, len(foldAngle), len(edgesVertices)))
		} else {
			g.HasFoldAngle = true
			for i, a := range foldAngle {
				g.Edges[i].FoldAngle = a
			}
		}
	}

	err = multierr.Append(err, g.Validate())
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Validate проверяет структуру графа: координаты конечны, ребра и грани
// ссылаются на существующие вершины. Возвращает все найденные ошибки сразу.
func (g *Graph) Validate() error {
	var err error
	nv := len(g.Vertices)

	for i, v := range g.Vertices {
		if math.IsNaN(v.Coords.X) || math.IsNaN(v.Coords.Y) ||
			math.IsInf(v.Coords.X, 0) || math.IsInf(v.Coords.Y, 0) {
			err = multierr.Append(err, fmt.Errorf("%w: vertex %d has %v", ErrInvalidCoords, i, v.Coords))
		}
	}

	for i, e := range g.Edges {
		for _, v := range e.Vertices {
			if v < 0 || v >= nv {
				err = multierr.Append(err, fmt.Errorf("%w: edge %d references vertex %d of %d",
					ErrInvalidEdge, i, v, nv))
			}
		}
	}

	for i, f := range g.Faces {
		for _, v := range f.Vertices {
			if v < 0 || v >= nv {
				err = multierr.Append(err, fmt.Errorf("%w: face %d references vertex %d of %d",
					ErrIndexOutOfRange, i, v, nv))
			}
		}
		for _, e := range f.Edges {
			if e != NoIndex && (e < 0 || e >= len(g.Edges)) {
				err = multierr.Append(err, fmt.Errorf("%w: face %d references edge %d of %d",
					ErrIndexOutOfRange, i, e, len(g.Edges)))
			}
		}
	}
	return err
}

// SelfLoops - индексы ребер, у которых оба конца совпадают
func (g *Graph) SelfLoops() []int {
	var loops []int
	for i, e := range g.Edges {
		if e.Vertices[0] == e.Vertices[1] {
			loops = append(loops, i)
		}
	}
	return loops
}

// DuplicateEdges - индексы ребер, повторяющих пару вершин более позднего ребра
func (g *Graph) DuplicateEdges() []int {
	var dups []int
	seen := make(map[edgeKey]int, len(g.Edges))
	for i, e := range g.Edges {
		key := makeEdgeKey(e.Vertices[0], e.Vertices[1])
		if prev, ok := seen[key]; ok {
			dups = append(dups, prev)
		}
		seen[key] = i
	}
	return dups
}
