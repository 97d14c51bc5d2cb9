package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-crease/pkg/crease"
	"github.com/0x0FACED/go-crease/pkg/stroke"
)

// parseSegments читает отрезки по одному на строку: "x1 y1 x2 y2 [цвет]".
// Пустые строки и строки с # пропускаются. Цвет "none" - отрезок без обводки.
func parseSegments(text string) ([]crease.Segment, error) {
	var segments []crease.Segment

	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 4 || len(fields) > 5 {
			return nil, fmt.Errorf("line %d: expected x1 y1 x2 y2 [color], got %d fields", line, len(fields))
		}

		var coords [4]float64
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			coords[i] = v
		}

		seg := crease.Segment{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3], Label: crease.Unassigned}
		if len(fields) == 5 {
			color := fields[4]
			seg.NoStroke = stroke.IsNone(color)
			seg.Label = stroke.Assignment(color)
		}
		segments = append(segments, seg)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return segments, nil
}
