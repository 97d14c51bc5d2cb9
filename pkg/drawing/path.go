package drawing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
)

var (
	pathTokenRe = regexp.MustCompile(`([MmZzLlHhVvCcSsQqTtAa])|([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)`)
	separatorRe = regexp.MustCompile(`[,\s]+`)
)

type pathToken struct {
	cmd   byte
	num   float64
	isCmd bool
}

func tokenizePath(d string) []pathToken {
	var tokens []pathToken
	for _, m := range pathTokenRe.FindAllStringSubmatch(d, -1) {
		if m[1] != "" {
			tokens = append(tokens, pathToken{cmd: m[1][0], isCmd: true})
			continue
		}
		// регулярка пропускает только корректные числа
		v, _ := strconv.ParseFloat(m[2], 64)
		tokens = append(tokens, pathToken{num: v})
	}
	return tokens
}

// количество чисел у команды пути
var pathArity = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'Z': 0,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7,
}

// pathChords переводит атрибут d в отрезки. Кривые и дуги заменяются хордой
// от текущей точки до конечной.
func pathChords(d string) [][2]r2.Point {
	tokens := tokenizePath(d)
	var chords [][2]r2.Point

	var cur, start r2.Point
	cmd := byte('M')
	i := 0
	for i < len(tokens) {
		if tokens[i].isCmd {
			cmd = tokens[i].cmd
			i++
		}
		upper := cmd &^ 0x20
		relative := cmd != upper

		n, ok := pathArity[upper]
		if !ok {
			i++
			continue
		}
		if upper == 'Z' {
			if cur != start {
				chords = append(chords, [2]r2.Point{cur, start})
			}
			cur = start
			// число сразу после Z не относится ни к одной команде
			for i < len(tokens) && !tokens[i].isCmd {
				i++
			}
			continue
		}

		args := make([]float64, 0, n)
		for len(args) < n && i < len(tokens) && !tokens[i].isCmd {
			args = append(args, tokens[i].num)
			i++
		}
		if len(args) < n {
			// обрезанная команда, дальше разбирать нечего
			if i < len(tokens) && tokens[i].isCmd {
				continue
			}
			break
		}

		var next r2.Point
		switch upper {
		case 'H':
			next = r2.Point{X: args[0], Y: cur.Y}
			if relative {
				next.X += cur.X
			}
		case 'V':
			next = r2.Point{X: cur.X, Y: args[0]}
			if relative {
				next.Y += cur.Y
			}
		default:
			// конечная точка - последние два числа
			next = r2.Point{X: args[n-2], Y: args[n-1]}
			if relative {
				next = next.Add(cur)
			}
		}

		if upper == 'M' {
			cur, start = next, next
			// следующие пары после M - это L
			if relative {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
			continue
		}
		chords = append(chords, [2]r2.Point{cur, next})
		cur = next
	}
	return chords
}

func parseNumbers(s string) ([]float64, error) {
	var nums []float64
	for _, f := range separatorRe.Split(strings.TrimSpace(s), -1) {
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		nums = append(nums, v)
	}
	return nums, nil
}
