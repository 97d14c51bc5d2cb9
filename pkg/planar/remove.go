package planar

import (
	"fmt"
)

// Remove удаляет сущности вида kind с указанными индексами и переписывает
// все ссылки на них. Выжившая сущность получает индекс old - (удаленных до нее).
// Ссылки на удаленные сущности становятся NoIndex в ребрах и гранях
// и выбрасываются из списков инцидентности.
// Индекс вне [0, Count(kind)) - ошибка, граф при этом не меняется.
func (g *Graph) Remove(kind Kind, indices []int) error {
	count := g.Count(kind)

	removed := make([]bool, count)
	for _, i := range indices {
		if i < 0 || i >= count {
			return fmt.Errorf("%w: remove %s %d of %d", ErrIndexOutOfRange, kind, i, count)
		}
		removed[i] = true
	}
	if len(indices) == 0 {
		return nil
	}

	// сдвиг для каждого индекса
	shift := make([]int, count)
	s := 0
	for i, rm := range removed {
		if rm {
			s--
			shift[i] = NoIndex
			continue
		}
		shift[i] = i + s
	}

	remap := func(i int) int {
		if i < 0 || i >= count {
			return i
		}
		return shift[i]
	}

	switch kind {
	case KindVertex:
		for i := range g.Edges {
			ev := &g.Edges[i].Vertices
			ev[0], ev[1] = remap(ev[0]), remap(ev[1])
		}
		for i := range g.Faces {
			remapInPlace(g.Faces[i].Vertices, remap)
		}
		for i := range g.Vertices {
			g.Vertices[i].Neighbors = remapList(g.Vertices[i].Neighbors, remap)
		}
		g.Vertices = filter(g.Vertices, removed)

	case KindEdge:
		for i := range g.Faces {
			remapInPlace(g.Faces[i].Edges, remap)
		}
		g.Edges = filter(g.Edges, removed)

	case KindFace:
		for i := range g.Vertices {
			g.Vertices[i].Faces = remapList(g.Vertices[i].Faces, remap)
		}
		for i := range g.Edges {
			g.Edges[i].Faces = remapList(g.Edges[i].Faces, remap)
		}
		g.Faces = filter(g.Faces, removed)
	}
	return nil
}

// RemoveUnusedVertices удаляет вершины без ребер и возвращает их количество
func (g *Graph) RemoveUnusedVertices() int {
	used := make([]bool, len(g.Vertices))
	for _, e := range g.Edges {
		used[e.Vertices[0]] = true
		used[e.Vertices[1]] = true
	}
	var isolated []int
	for i, u := range used {
		if !u {
			isolated = append(isolated, i)
		}
	}
	// индексы заведомо валидны
	_ = g.Remove(KindVertex, isolated)
	return len(isolated)
}

func remapInPlace(s []int, remap func(int) int) {
	for i, v := range s {
		s[i] = remap(v)
	}
}

func remapList(s []int, remap func(int) int) []int {
	if s == nil {
		return nil
	}
	out := s[:0]
	for _, v := range s {
		if nv := remap(v); nv != NoIndex {
			out = append(out, nv)
		}
	}
	return out
}

func filter[T any](s []T, removed []bool) []T {
	out := s[:0]
	for i, item := range s {
		if !removed[i] {
			out = append(out, item)
		}
	}
	return out
}
