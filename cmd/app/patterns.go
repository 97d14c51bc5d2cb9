package main

import (
	"math/rand"

	"github.com/0x0FACED/go-crease/pkg/crease"
)

// square - граница листа size x size
func square(size float64) []crease.Segment {
	return []crease.Segment{
		{X1: 0, Y1: 0, X2: size, Y2: 0, Label: crease.Unassigned},
		{X1: size, Y1: 0, X2: size, Y2: size, Label: crease.Unassigned},
		{X1: size, Y1: size, X2: 0, Y2: size, Label: crease.Unassigned},
		{X1: 0, Y1: size, X2: 0, Y2: 0, Label: crease.Unassigned},
	}
}

// waterbombPattern - диагонали долинами, средние линии горами
func waterbombPattern(size float64) []crease.Segment {
	half := size / 2
	return append(square(size),
		crease.Segment{X1: 0, Y1: 0, X2: size, Y2: size, Label: crease.Valley},
		crease.Segment{X1: size, Y1: 0, X2: 0, Y2: size, Label: crease.Valley},
		crease.Segment{X1: half, Y1: 0, X2: half, Y2: size, Label: crease.Mountain},
		crease.Segment{X1: 0, Y1: half, X2: size, Y2: half, Label: crease.Mountain},
	)
}

// gridPattern - n делений по каждой оси, горы и долины чередуются
func gridPattern(size float64, n int) []crease.Segment {
	segments := square(size)
	step := size / float64(n)
	for i := 1; i < n; i++ {
		label := crease.Mountain
		if i%2 == 0 {
			label = crease.Valley
		}
		pos := step * float64(i)
		segments = append(segments,
			crease.Segment{X1: pos, Y1: 0, X2: pos, Y2: size, Label: label},
			crease.Segment{X1: 0, Y1: pos, X2: size, Y2: pos, Label: label},
		)
	}
	return segments
}

// randomPattern - n хорд между случайными точками на сторонах листа
func randomPattern(size float64, n int, rnd *rand.Rand) []crease.Segment {
	// точка на стороне side (0..3) на расстоянии t от ее начала
	onSide := func(side int, t float64) (float64, float64) {
		switch side {
		case 0:
			return t, 0
		case 1:
			return size, t
		case 2:
			return size - t, size
		default:
			return 0, size - t
		}
	}

	segments := square(size)
	for i := 0; i < n; i++ {
		s1 := rnd.Intn(4)
		s2 := (s1 + 1 + rnd.Intn(3)) % 4
		x1, y1 := onSide(s1, rnd.Float64()*size)
		x2, y2 := onSide(s2, rnd.Float64()*size)

		label := crease.Mountain
		if i%2 == 1 {
			label = crease.Valley
		}
		segments = append(segments, crease.Segment{X1: x1, Y1: y1, X2: x2, Y2: y2, Label: label})
	}
	return segments
}
