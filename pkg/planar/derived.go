package planar

import (
	"github.com/0x0FACED/go-crease/pkg/geom"
)

// Derive пересчитывает длины ребер и инцидентность вершин/ребер с гранями
func Derive(g *Graph) *Graph {
	ComputeEdgeLengths(g)
	ComputeVertexFaces(g)
	ComputeEdgeFaces(g)
	return g
}

func ComputeEdgeLengths(g *Graph) {
	for i := range g.Edges {
		a, b := g.EdgePoints(i)
		g.Edges[i].Length = geom.Distance(a, b)
	}
}

func ComputeVertexFaces(g *Graph) {
	for i := range g.Vertices {
		g.Vertices[i].Faces = []int{}
	}
	for fi, f := range g.Faces {
		for _, v := range f.Vertices {
			g.Vertices[v].Faces = append(g.Vertices[v].Faces, fi)
		}
	}
}

// ComputeEdgeFaces - грани по обе стороны ребра, NoIndex в гранях пропускается
func ComputeEdgeFaces(g *Graph) {
	for i := range g.Edges {
		g.Edges[i].Faces = []int{}
	}
	for fi, f := range g.Faces {
		for _, e := range f.Edges {
			if e == NoIndex {
				continue
			}
			g.Edges[e].Faces = append(g.Edges[e].Faces, fi)
		}
	}
}
