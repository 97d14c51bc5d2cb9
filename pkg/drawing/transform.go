package drawing

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/golang/geo/r2"
)

// affine - матрица SVG [a b c d e f]:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
type affine [6]float64

var identity = affine{1, 0, 0, 1, 0, 0}

// then возвращает m * child: сначала child, потом m
func (m affine) then(child affine) affine {
	return affine{
		m[0]*child[0] + m[2]*child[1],
		m[1]*child[0] + m[3]*child[1],
		m[0]*child[2] + m[2]*child[3],
		m[1]*child[2] + m[3]*child[3],
		m[0]*child[4] + m[2]*child[5] + m[4],
		m[1]*child[4] + m[3]*child[5] + m[5],
	}
}

func (m affine) apply(x, y float64) r2.Point {
	return r2.Point{
		X: m[0]*x + m[2]*y + m[4],
		Y: m[1]*x + m[3]*y + m[5],
	}
}

var transformRe = regexp.MustCompile(`(\w+)\s*\(([^)]*)\)`)

// parseTransform разбирает атрибут transform, функции применяются слева направо.
// Неизвестные функции пропускаются.
func parseTransform(s string) (affine, error) {
	result := identity
	for _, m := range transformRe.FindAllStringSubmatch(s, -1) {
		args, err := parseNumbers(m[2])
		if err != nil {
			return identity, fmt.Errorf("%w: transform %q: %v", ErrMalformed, m[0], err)
		}
		arg := func(i int, def float64) float64 {
			if i < len(args) {
				return args[i]
			}
			return def
		}

		var local affine
		switch strings.ToLower(m[1]) {
		case "matrix":
			if len(args) < 6 {
				continue
			}
			copy(local[:], args[:6])
		case "translate":
			local = affine{1, 0, 0, 1, arg(0, 0), arg(1, 0)}
		case "scale":
			sx := arg(0, 1)
			local = affine{sx, 0, 0, arg(1, sx), 0, 0}
		case "rotate":
			a := arg(0, 0) * math.Pi / 180
			cx, cy := arg(1, 0), arg(2, 0)
			cos, sin := math.Cos(a), math.Sin(a)
			local = affine{
				cos, sin,
				-sin, cos,
				cx - cx*cos + cy*sin,
				cy - cx*sin - cy*cos,
			}
		case "skewx":
			local = affine{1, 0, math.Tan(arg(0, 0) * math.Pi / 180), 1, 0, 0}
		case "skewy":
			local = affine{1, math.Tan(arg(0, 0) * math.Pi / 180), 0, 1, 0, 0}
		default:
			continue
		}
		result = result.then(local)
	}
	return result, nil
}
