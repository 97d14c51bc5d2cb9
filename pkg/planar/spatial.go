package planar

import (
	"math"
	"sort"

	"github.com/0x0FACED/go-crease/pkg/geom"
	"github.com/golang/geo/r2"
	"github.com/peterstace/simplefeatures/rtree"
)

// spatialIndex - R-дерево над точками или отрезками графа, строится один раз.
// Поиск возвращает кандидатов по возрастанию индекса, чтобы результат
// совпадал с полным перебором.
type spatialIndex struct {
	tree *rtree.RTree
}

func newSpatialIndex(items []rtree.BulkItem) *spatialIndex {
	return &spatialIndex{tree: rtree.BulkLoad(items)}
}

func pointBox(p r2.Point, margin float64) rtree.Box {
	return rtree.Box{
		MinX: p.X - margin,
		MinY: p.Y - margin,
		MaxX: p.X + margin,
		MaxY: p.Y + margin,
	}
}

func segmentBox(a, b r2.Point, margin float64) rtree.Box {
	return rtree.Box{
		MinX: math.Min(a.X, b.X) - margin,
		MinY: math.Min(a.Y, b.Y) - margin,
		MaxX: math.Max(a.X, b.X) + margin,
		MaxY: math.Max(a.Y, b.Y) + margin,
	}
}

// search - все записи, чьи прямоугольники пересекаются с box
func (s *spatialIndex) search(box rtree.Box) []int {
	var ids []int
	// колбэк ошибок не возвращает
	_ = s.tree.RangeSearch(box, func(id int) error {
		ids = append(ids, id)
		return nil
	})
	sort.Ints(ids)
	return ids
}

// newPointIndex индексирует вершины графа
func newPointIndex(points []r2.Point) *spatialIndex {
	items := make([]rtree.BulkItem, len(points))
	for i, p := range points {
		items[i] = rtree.BulkItem{Box: pointBox(p, 0), RecordID: i}
	}
	return newSpatialIndex(items)
}

// newEdgeIndex индексирует ребра графа, расширяя их на допуск tol
// теста принадлежности точки отрезку
func newEdgeIndex(g *Graph, tol float64) *spatialIndex {
	items := make([]rtree.BulkItem, len(g.Edges))
	for i := range g.Edges {
		a, b := g.EdgePoints(i)
		items[i] = rtree.BulkItem{Box: segmentBox(a, b, edgeMargin(a, b, tol)), RecordID: i}
	}
	return newSpatialIndex(items)
}

func edgeMargin(a, b r2.Point, tol float64) float64 {
	return geom.SegmentMargin(geom.Distance(a, b), tol)
}
