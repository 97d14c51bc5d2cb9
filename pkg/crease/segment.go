package crease

import (
	"github.com/0x0FACED/go-crease/pkg/planar"
	"github.com/golang/geo/r2"
)

// Метки типа сгиба
const (
	Mountain   = "M"
	Valley     = "V"
	Unassigned = "U"
	Boundary   = "B"
	Flat       = "F"
)

// Segment - отрезок из векторного рисунка с меткой сгиба.
// NoStroke помечает отрезки без обводки, они в граф не попадают.
type Segment struct {
	X1, Y1   float64
	X2, Y2   float64
	Label    string
	NoStroke bool
}

func (s Segment) Start() r2.Point {
	return r2.Point{X: s.X1, Y: s.Y1}
}

func (s Segment) End() r2.Point {
	return r2.Point{X: s.X2, Y: s.Y2}
}

func (s Segment) ZeroLength() bool {
	return s.X1 == s.X2 && s.Y1 == s.Y2
}

// FilterSegments убирает отрезки нулевой длины и без обводки
func FilterSegments(segments []Segment) []Segment {
	out := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if s.NoStroke || s.ZeroLength() {
			continue
		}
		out = append(out, s)
	}
	return out
}

// SegmentsGraph строит исходный граф: по две новые вершины на каждый отрезок
func SegmentsGraph(segments []Segment) *planar.Graph {
	g := planar.New()
	g.HasAssignment = true
	for _, s := range segments {
		v1 := g.AddVertex(s.Start())
		v2 := g.AddVertex(s.End())
		label := s.Label
		if label == "" {
			label = Unassigned
		}
		g.AddEdge(v1, v2, label, 0)
	}
	return g
}
