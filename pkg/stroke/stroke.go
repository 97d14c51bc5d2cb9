// Тип сгиба по цвету обводки: красный - гора, синий - долина, остальное U
package stroke

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

const threshold = 0.05

// компоненты цвета в [0, 1]
type rgba struct {
	r, g, b, a float64
}

var black = rgba{0, 0, 0, 1}

// IsNone - обводка явно выключена
func IsNone(color string) bool {
	return strings.EqualFold(strings.TrimSpace(color), "none")
}

// Assignment возвращает M, V или U для CSS цвета
func Assignment(color string) string {
	c := parse(color)

	if c.r < threshold && c.g < threshold && c.b < threshold {
		return "U"
	}
	if c.r > c.g && c.r-c.b > threshold {
		return "M"
	}
	if c.b > c.g && c.b-c.r > threshold {
		return "V"
	}
	return "U"
}

func parse(color string) rgba {
	color = strings.ToLower(strings.TrimSpace(color))
	if strings.HasPrefix(color, "#") {
		return parseHex(color[1:])
	}
	if named, ok := colornames.Map[color]; ok {
		return rgba{
			r: float64(named.R) / 255,
			g: float64(named.G) / 255,
			b: float64(named.B) / 255,
			a: float64(named.A) / 255,
		}
	}
	// неизвестные имена считаем черным
	return black
}

func parseHex(body string) rgba {
	var digits []string
	switch len(body) {
	case 3, 4:
		for _, ch := range body {
			digits = append(digits, strings.Repeat(string(ch), 2))
		}
	case 6, 8:
		for i := 0; i < len(body); i += 2 {
			digits = append(digits, body[i:i+2])
		}
	default:
		return black
	}

	comps := []float64{0, 0, 0, 1}
	for i, d := range digits {
		v, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return black
		}
		comps[i] = float64(v) / 255
	}
	return rgba{comps[0], comps[1], comps[2], comps[3]}
}
