package crease

import (
	"fmt"

	"github.com/0x0FACED/go-crease/pkg/logger"
	"github.com/0x0FACED/go-crease/pkg/planar"
	"go.uber.org/zap"
)

// Converter превращает набор отрезков в плоский граф развертки:
// фрагментация -> склейка близких вершин -> удаление коротких ребер ->
// починка висячих вершин -> грани -> углы сгиба -> граница -> производные массивы.
type Converter struct {
	cfg Config
	log *logger.ZapLogger
}

func NewConverter(cfg Config, log *logger.ZapLogger) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Angles == nil {
		cfg.Angles = DefaultAngles()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Converter{cfg: cfg, log: log}, nil
}

func (c *Converter) Config() Config {
	return c.cfg
}

// Convert строит граф из отрезков. Отрезки нулевой длины и без обводки пропускаются.
func (c *Converter) Convert(segments []Segment) (*planar.Graph, error) {
	c.log.Info("[convert] Конвертация запущена", zap.Int("segments", len(segments)))

	filtered := FilterSegments(segments)
	if skipped := len(segments) - len(filtered); skipped > 0 {
		c.log.Debug("[convert] Пропущены пустые отрезки", zap.Int("skipped", skipped))
	}

	return c.ConvertGraph(SegmentsGraph(filtered))
}

// ConvertGraph прогоняет конвейер на готовом графе (например, из FOLD файла).
// Граф передается во владение конвертеру.
func (c *Converter) ConvertGraph(g *planar.Graph) (*planar.Graph, error) {
	if err := g.Validate(); err != nil {
		c.log.Error("[convert] Некорректный граф", zap.Error(err))
		return nil, fmt.Errorf("convert: %w", err)
	}

	if !g.HasAssignment {
		for i := range g.Edges {
			g.Edges[i].Assignment = Unassigned
		}
		g.HasAssignment = true
	}

	if len(g.Edges) == 0 {
		c.log.Info("[convert] Пустой граф, конвертировать нечего")
		g.Faces = nil
		return planar.Derive(g), nil
	}

	g = planar.Fragment(g, c.cfg.Epsilon)
	c.log.Debug("[fragment] Ребра разбиты",
		zap.Int("vertices", len(g.Vertices)), zap.Int("edges", len(g.Edges)))

	g = planar.MergeNearbyVertices(g, c.cfg.MergeTolerance)
	c.log.Debug("[merge] Близкие вершины склеены",
		zap.Float64("tolerance", c.cfg.MergeTolerance),
		zap.Int("vertices", len(g.Vertices)), zap.Int("edges", len(g.Edges)))

	g = planar.RemoveShortEdges(g, c.cfg.ShortEdgeRatio)
	c.log.Debug("[short] Короткие ребра удалены",
		zap.Int("vertices", len(g.Vertices)), zap.Int("edges", len(g.Edges)))

	g = planar.SplitPendantEdges(g, c.cfg.MergeTolerance)
	c.log.Debug("[pendant] Висячие вершины обработаны", zap.Int("edges", len(g.Edges)))

	g, missing := planar.BuildFaces(g)
	c.log.Debug("[faces] Грани построены", zap.Int("faces", len(g.Faces)))
	if missing > 0 {
		// граф все равно пригоден, в faces_edges стоит NoIndex
		c.log.Warn("[faces] У граней есть стороны без ребер", zap.Int("missing", missing))
	}

	c.assignFoldAngles(g)

	if c.cfg.DetectBoundary {
		c.markBoundary(g)
	}

	planar.Derive(g)
	c.log.Info("[convert] Конвертация завершена",
		zap.Int("vertices", len(g.Vertices)),
		zap.Int("edges", len(g.Edges)),
		zap.Int("faces", len(g.Faces)))

	return g, nil
}

func (c *Converter) assignFoldAngles(g *planar.Graph) {
	for i := range g.Edges {
		g.Edges[i].FoldAngle = c.cfg.Angles.Angle(g.Edges[i].Assignment)
	}
	g.HasFoldAngle = true
}

// markBoundary помечает ребра внешней границы как B и, если нужно, убирает
// грани, все стороны которых - граница (например, рамка вокруг рисунка)
func (c *Converter) markBoundary(g *planar.Graph) {
	boundary := planar.FindBoundary(g)
	if len(boundary) == 0 {
		c.log.Warn("[boundary] Граница не найдена")
		return
	}

	onBoundary := make(map[int]bool, len(boundary))
	for _, e := range boundary {
		g.Edges[e].Assignment = Boundary
		g.Edges[e].FoldAngle = 0
		onBoundary[e] = true
	}
	c.log.Debug("[boundary] Граница найдена", zap.Int("edges", len(boundary)))

	if !c.cfg.DropBoundaryFaces {
		return
	}

	var drop []int
	for fi, f := range g.Faces {
		all := true
		for _, e := range f.Edges {
			if !onBoundary[e] {
				all = false
				break
			}
		}
		if all {
			drop = append(drop, fi)
		}
	}
	if len(drop) == 0 {
		return
	}
	// индексы граней взяты из самого графа
	_ = g.Remove(planar.KindFace, drop)
	c.log.Debug("[boundary] Убраны грани из одной границы", zap.Int("faces", len(drop)))
}
