package geom

import (
	"math"
	"testing"

	"github.com/cheekybits/is"
	"github.com/golang/geo/r2"
)

func TestEquivalent(t *testing.T) {
	is := is.New(t)

	is.True(Equivalent(r2.Point{X: 1, Y: 1}, r2.Point{X: 1 + 1e-7, Y: 1 - 1e-7}, Epsilon))
	is.False(Equivalent(r2.Point{X: 1, Y: 1}, r2.Point{X: 1 + 1e-5, Y: 1}, Epsilon))
	is.False(Equivalent(r2.Point{X: 1, Y: 1}, r2.Point{X: 1, Y: 2}, Epsilon))
}

func TestSegmentIntersectionExclusive(t *testing.T) {
	tests := []struct {
		name           string
		a0, a1, b0, b1 r2.Point
		want           r2.Point
		ok             bool
	}{
		{
			name: "cross",
			a0:   r2.Point{X: 0, Y: 0}, a1: r2.Point{X: 10, Y: 10},
			b0: r2.Point{X: 0, Y: 10}, b1: r2.Point{X: 10, Y: 0},
			want: r2.Point{X: 5, Y: 5}, ok: true,
		},
		{
			name: "shared endpoint",
			a0:   r2.Point{X: 0, Y: 0}, a1: r2.Point{X: 10, Y: 0},
			b0: r2.Point{X: 10, Y: 0}, b1: r2.Point{X: 10, Y: 10},
		},
		{
			name: "t junction",
			a0:   r2.Point{X: 0, Y: 0}, a1: r2.Point{X: 10, Y: 0},
			b0: r2.Point{X: 5, Y: 0}, b1: r2.Point{X: 5, Y: 10},
		},
		{
			name: "parallel",
			a0:   r2.Point{X: 0, Y: 0}, a1: r2.Point{X: 10, Y: 0},
			b0: r2.Point{X: 0, Y: 1}, b1: r2.Point{X: 10, Y: 1},
		},
		{
			name: "collinear overlap",
			a0:   r2.Point{X: 0, Y: 0}, a1: r2.Point{X: 10, Y: 0},
			b0: r2.Point{X: 5, Y: 0}, b1: r2.Point{X: 15, Y: 0},
		},
		{
			name: "disjoint",
			a0:   r2.Point{X: 0, Y: 0}, a1: r2.Point{X: 1, Y: 1},
			b0: r2.Point{X: 5, Y: 0}, b1: r2.Point{X: 4, Y: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			p, ok := SegmentIntersectionExclusive(tt.a0, tt.a1, tt.b0, tt.b1, Epsilon)
			is.Equal(ok, tt.ok)
			if tt.ok {
				is.True(Equivalent(p, tt.want, Epsilon))
			}
		})
	}
}

func TestPointOnSegment(t *testing.T) {
	is := is.New(t)

	e0 := r2.Point{X: 0, Y: 0}
	e1 := r2.Point{X: 10, Y: 0}

	is.True(PointOnSegmentExclusive(r2.Point{X: 5, Y: 0}, e0, e1, Epsilon))
	is.True(PointOnSegmentExclusive(e0, e0, e1, Epsilon))
	is.True(PointOnSegmentExclusive(e1, e0, e1, Epsilon))
	is.False(PointOnSegmentExclusive(r2.Point{X: 5, Y: 0.1}, e0, e1, Epsilon))
	is.False(PointOnSegmentExclusive(r2.Point{X: 11, Y: 0}, e0, e1, Epsilon))

	// 5,0.5 -> slack = 2*sqrt(25.25) - 10 ~ 0.05
	is.False(PointOnSegmentWithin(r2.Point{X: 5, Y: 0.5}, e0, e1, 0.01))
	is.True(PointOnSegmentWithin(r2.Point{X: 5, Y: 0.5}, e0, e1, 1))
}

func TestSegmentMarginCoversEllipse(t *testing.T) {
	is := is.New(t)

	e0 := r2.Point{X: 0, Y: 0}
	e1 := r2.Point{X: 100, Y: 0}
	tol := 0.5
	m := SegmentMargin(100, tol)

	// самая удаленная точка эллипса - на малой полуоси
	b := math.Sqrt(math.Pow((100+tol)/2, 2)-50*50) * 0.999
	is.True(PointOnSegmentWithin(r2.Point{X: 50, Y: b}, e0, e1, tol))
	is.True(b < m)
}

func TestSignedArea(t *testing.T) {
	is := is.New(t)

	square := []r2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	is.Equal(SignedArea(square), 100.0)

	reversed := []r2.Point{{X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}}
	is.Equal(SignedArea(reversed), -100.0)
}

func TestNormalizeAndDominance(t *testing.T) {
	is := is.New(t)

	is.Equal(Normalize(r2.Point{}), r2.Point{})
	n := Normalize(r2.Point{X: 3, Y: 4})
	is.True(math.Abs(n.X-0.6) < 1e-12)
	is.True(math.Abs(n.Y-0.8) < 1e-12)

	is.True(HorizontalDominant(r2.Point{X: 0, Y: 0}, r2.Point{X: 10, Y: 1}))
	is.False(HorizontalDominant(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 10}))
	is.True(HorizontalDominant(r2.Point{X: 3, Y: 3}, r2.Point{X: 3, Y: 3}))
}

func TestBoundsDiagonal(t *testing.T) {
	is := is.New(t)

	b := Bounds([]r2.Point{{X: 0, Y: 0}, {X: 3, Y: 1}, {X: 1, Y: 4}})
	is.Equal(Diagonal(b), 5.0)
}
