package fold

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/0x0FACED/go-crease/pkg/planar"
)

const (
	FileSpec    = 1.1
	FileCreator = "go-crease"
)

// Document - файл FOLD. Все массивы присутствуют, даже пустые.
type Document struct {
	FileSpec        float64  `json:"file_spec"`
	FileCreator     string   `json:"file_creator"`
	FileClasses     []string `json:"file_classes"`
	FrameTitle      string   `json:"frame_title"`
	FrameClasses    []string `json:"frame_classes"`
	FrameAttributes []string `json:"frame_attributes"`

	VerticesCoords   [][2]float64 `json:"vertices_coords"`
	VerticesVertices [][]int      `json:"vertices_vertices"`
	VerticesFaces    [][]int      `json:"vertices_faces"`
	EdgesVertices    [][2]int     `json:"edges_vertices"`
	EdgesFaces       [][]int      `json:"edges_faces"`
	EdgesAssignment  []string     `json:"edges_assignment"`
	EdgesFoldAngle   []float64    `json:"edges_foldAngle"`
	EdgesLength      []float64    `json:"edges_length"`
	FacesVertices    [][]int      `json:"faces_vertices"`
	FacesEdges       [][]int      `json:"faces_edges"`
}

// FromGraph раскладывает граф в параллельные массивы FOLD
func FromGraph(g *planar.Graph, title string) *Document {
	doc := &Document{
		FileSpec:        FileSpec,
		FileCreator:     FileCreator,
		FileClasses:     []string{"singleModel"},
		FrameTitle:      title,
		FrameClasses:    []string{"creasePattern"},
		FrameAttributes: []string{"2D"},

		VerticesCoords:   make([][2]float64, len(g.Vertices)),
		VerticesVertices: make([][]int, len(g.Vertices)),
		VerticesFaces:    make([][]int, len(g.Vertices)),
		EdgesVertices:    make([][2]int, len(g.Edges)),
		EdgesFaces:       make([][]int, len(g.Edges)),
		EdgesAssignment:  make([]string, 0, len(g.Edges)),
		EdgesFoldAngle:   make([]float64, 0, len(g.Edges)),
		EdgesLength:      make([]float64, len(g.Edges)),
		FacesVertices:    make([][]int, len(g.Faces)),
		FacesEdges:       make([][]int, len(g.Faces)),
	}

	for i, v := range g.Vertices {
		doc.VerticesCoords[i] = [2]float64{v.Coords.X, v.Coords.Y}
		doc.VerticesVertices[i] = nonNil(v.Neighbors)
		doc.VerticesFaces[i] = nonNil(v.Faces)
	}
	for i, e := range g.Edges {
		doc.EdgesVertices[i] = e.Vertices
		doc.EdgesFaces[i] = nonNil(e.Faces)
		doc.EdgesLength[i] = e.Length
		if g.HasAssignment {
			doc.EdgesAssignment = append(doc.EdgesAssignment, e.Assignment)
		}
		if g.HasFoldAngle {
			doc.EdgesFoldAngle = append(doc.EdgesFoldAngle, e.FoldAngle)
		}
	}
	for i, f := range g.Faces {
		doc.FacesVertices[i] = nonNil(f.Vertices)
		doc.FacesEdges[i] = nonNil(f.Edges)
	}
	return doc
}

// Graph собирает граф из документа. Грани и производные массивы не переносятся,
// их пересчитывает конвейер.
func (d *Document) Graph() (*planar.Graph, error) {
	g, err := planar.FromArrays(d.VerticesCoords, d.EdgesVertices, d.EdgesAssignment, d.EdgesFoldAngle)
	if err != nil {
		return nil, fmt.Errorf("fold: %w", err)
	}
	return g, nil
}

func Encode(w io.Writer, doc *Document, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("fold: encode: %w", err)
	}
	return nil
}

func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("fold: decode: %w", err)
	}
	return &doc, nil
}

func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
