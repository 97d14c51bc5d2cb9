package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Стандартная точность для сравнения координат
const Epsilon = 1e-6

// Порог для определения доминирующей оси ребра (~cos 45°)
const DominantRatio = 0.707

// Длина вектора
func Magnitude(v r2.Point) float64 {
	return v.Norm()
}

// Нормализация вектора. Нулевой вектор возвращается как есть.
func Normalize(v r2.Point) r2.Point {
	m := v.Norm()
	if m == 0 {
		return v
	}
	return v.Mul(1 / m)
}

// Расстояние между двумя точками
func Distance(a, b r2.Point) float64 {
	return a.Sub(b).Norm()
}

// Equivalent сообщает, совпадают ли точки с точностью eps по каждой координате.
func Equivalent(a, b r2.Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// SegmentIntersectionExclusive ищет точку пересечения отрезков a0-a1 и b0-b1.
// Касание в концах (или рядом с ними) пересечением не считается,
// параллельные отрезки (|det| < eps) тоже не пересекаются.
func SegmentIntersectionExclusive(a0, a1, b0, b1 r2.Point, eps float64) (r2.Point, bool) {
	aVec := a1.Sub(a0)
	bVec := b1.Sub(b0)

	den := aVec.Cross(bVec)
	if math.Abs(den) < eps {
		return r2.Point{}, false
	}

	t0 := b0.Sub(a0).Cross(bVec) / den
	t1 := a0.Sub(b0).Cross(aVec) / -den

	if t0 > eps && t0 < 1-eps && t1 > eps && t1 < 1-eps {
		return a0.Add(aVec.Mul(t0)), true
	}
	return r2.Point{}, false
}

// PointOnSegmentExclusive проверяет лежит ли точка на отрезке через
// равенство треугольника: |e0e1| == |e0p| + |pe1|. Концы отрезка тоже подходят.
func PointOnSegmentExclusive(p, e0, e1 r2.Point, eps float64) bool {
	return segmentSlack(p, e0, e1) < eps
}

// PointOnSegmentWithin то же самое, но с нестрогим сравнением (для допуска слияния).
func PointOnSegmentWithin(p, e0, e1 r2.Point, tol float64) bool {
	return segmentSlack(p, e0, e1) <= tol
}

func segmentSlack(p, e0, e1 r2.Point) float64 {
	return math.Abs(Distance(e0, e1) - Distance(e0, p) - Distance(p, e1))
}

// SegmentMargin - наибольшее удаление от отрезка длины length точки,
// которая проходит тест треугольника с допуском tol.
// Это малая полуось эллипса с фокусами в концах отрезка.
func SegmentMargin(length, tol float64) float64 {
	return math.Sqrt(2*length*tol+tol*tol)/2 + tol
}

// SignedArea - площадь многоугольника по формуле шнурков.
// В системе координат SVG (Y вниз) положительна для обхода по часовой стрелке.
func SignedArea(points []r2.Point) float64 {
	var area float64
	n := len(points)
	for i := 0; i < n; i++ {
		p := points[i]
		q := points[(i+1)%n]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

// Bounds - ограничивающий прямоугольник набора точек
func Bounds(points []r2.Point) r2.Rect {
	return r2.RectFromPoints(points...)
}

// Diagonal - длина диагонали прямоугольника, 0 для пустого
func Diagonal(r r2.Rect) float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Size().Norm()
}

// HorizontalDominant сообщает, что ребро скорее горизонтальное, чем вертикальное.
// Точки разбиения такого ребра сортируются по X, иначе по Y.
// Вырожденное ребро считается горизонтальным.
func HorizontalDominant(a, b r2.Point) bool {
	d := b.Sub(a)
	length := d.Norm()
	if length == 0 {
		return true
	}
	return math.Abs(d.X/length) > DominantRatio
}
