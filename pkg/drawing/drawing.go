// Отрезки из SVG рисунка развертки: line, polyline, polygon, rect и path
// (кривые заменяются хордами), с учетом transform и наследования stroke.
package drawing

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"

	"github.com/0x0FACED/go-crease/pkg/crease"
	"github.com/0x0FACED/go-crease/pkg/stroke"
)

var ErrMalformed = errors.New("malformed svg")

// обводка корня, если нигде не задана
const defaultStroke = "black"

// state - то, что элемент передает детям
type state struct {
	matrix affine
	stroke string
	// внутри фигуры дети не рисуются
	inShape bool
}

// Read разбирает SVG и возвращает отрезки в координатах рисунка в порядке документа.
// Метка берется из цвета обводки, отрезки с stroke="none" помечаются NoStroke
// и отбрасываются при конвертации.
func Read(r io.Reader) ([]crease.Segment, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	var segments []crease.Segment
	stack := []state{{matrix: identity, stroke: defaultStroke}}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			parent := stack[len(stack)-1]
			if parent.inShape {
				stack = append(stack, parent)
				continue
			}

			local, err := parseTransform(attr(t, "transform"))
			if err != nil {
				return nil, err
			}
			st := state{
				matrix: parent.matrix.then(local),
				stroke: resolveStroke(t, parent.stroke),
			}

			chords, shape, err := shapeChords(t)
			if err != nil {
				return nil, err
			}
			st.inShape = shape
			for _, c := range chords {
				segments = append(segments, makeSegment(st, c[0], c[1]))
			}
			stack = append(stack, st)

		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return segments, nil
}

func makeSegment(st state, a, b r2.Point) crease.Segment {
	p1 := st.matrix.apply(a.X, a.Y)
	p2 := st.matrix.apply(b.X, b.Y)
	return crease.Segment{
		X1: p1.X, Y1: p1.Y,
		X2: p2.X, Y2: p2.Y,
		Label:    stroke.Assignment(st.stroke),
		NoStroke: stroke.IsNone(st.stroke),
	}
}

// shapeChords - отрезки фигуры в ее локальных координатах.
// Второе значение - является ли элемент фигурой.
func shapeChords(t xml.StartElement) ([][2]r2.Point, bool, error) {
	switch t.Name.Local {
	case "line":
		a := r2.Point{X: number(t, "x1"), Y: number(t, "y1")}
		b := r2.Point{X: number(t, "x2"), Y: number(t, "y2")}
		return [][2]r2.Point{{a, b}}, true, nil
	case "polyline", "polygon":
		chords, err := polyChords(attr(t, "points"), t.Name.Local == "polygon")
		return chords, true, err
	case "rect":
		return rectChords(number(t, "x"), number(t, "y"), number(t, "width"), number(t, "height")), true, nil
	case "path":
		return pathChords(attr(t, "d")), true, nil
	}
	return nil, false, nil
}

func polyChords(points string, closed bool) ([][2]r2.Point, error) {
	nums, err := parseNumbers(points)
	if err != nil {
		return nil, fmt.Errorf("%w: points %q: %v", ErrMalformed, points, err)
	}
	if len(nums) < 4 {
		return nil, nil
	}
	pts := make([]r2.Point, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		pts = append(pts, r2.Point{X: nums[i], Y: nums[i+1]})
	}

	var chords [][2]r2.Point
	for i := 0; i+1 < len(pts); i++ {
		chords = append(chords, [2]r2.Point{pts[i], pts[i+1]})
	}
	if closed && len(pts) >= 3 {
		chords = append(chords, [2]r2.Point{pts[len(pts)-1], pts[0]})
	}
	return chords, nil
}

func rectChords(x, y, w, h float64) [][2]r2.Point {
	if w == 0 || h == 0 {
		return nil
	}
	corners := []r2.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
	chords := make([][2]r2.Point, 4)
	for i := range corners {
		chords[i] = [2]r2.Point{corners[i], corners[(i+1)%4]}
	}
	return chords
}

// resolveStroke - style важнее атрибута stroke, inherit и отсутствие берут цвет родителя
func resolveStroke(t xml.StartElement, inherited string) string {
	if v, ok := styleProperty(attr(t, "style"), "stroke"); ok {
		if s := pickStroke(v, inherited); s != "" {
			return s
		}
	}
	if s := pickStroke(attr(t, "stroke"), inherited); s != "" {
		return s
	}
	return inherited
}

func pickStroke(v, inherited string) string {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "":
		return ""
	case "none":
		return "none"
	case "inherit":
		return inherited
	}
	return v
}

func styleProperty(style, name string) (string, bool) {
	for _, item := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(item, ":")
		if !ok {
			continue
		}
		if strings.ToLower(strings.TrimSpace(k)) == name {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// attr ищет атрибут по локальному имени, пространство имен не важно
func attr(t xml.StartElement, name string) string {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// number - числовой атрибут, 0 если его нет или он не разбирается
func number(t xml.StartElement, name string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(attr(t, name)), 64)
	if err != nil {
		return 0
	}
	return v
}
