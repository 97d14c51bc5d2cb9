package crease

import (
	"errors"
	"fmt"
	"math"

	"github.com/0x0FACED/go-crease/pkg/geom"
	"github.com/0x0FACED/go-crease/pkg/planar"
	"go.uber.org/multierr"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// точность геометрических проверок
	Epsilon float64
	// расстояние склейки вершин в единицах рисунка, 0 отключает склейку
	MergeTolerance float64
	// доля диагонали рисунка, короче которой ребра выбрасываются
	ShortEdgeRatio float64
	// искать внешнюю границу и помечать ее ребра как B
	DetectBoundary bool
	// убирать грани, все ребра которых лежат на границе
	DropBoundaryFaces bool
	Angles            AngleTable
}

func DefaultConfig() Config {
	return Config{
		Epsilon:           geom.Epsilon,
		MergeTolerance:    1.0,
		ShortEdgeRatio:    planar.ShortEdgeRatio,
		DetectBoundary:    true,
		DropBoundaryFaces: true,
		Angles:            DefaultAngles(),
	}
}

func (c Config) Validate() error {
	var err error
	// при eps = 0 ни одна точка не лежит на ребре и фрагментация теряет все ребра
	if !(c.Epsilon > 0) {
		err = multierr.Append(err, fmt.Errorf("%w: epsilon %g must be positive", ErrInvalidConfig, c.Epsilon))
	}
	if c.MergeTolerance < 0 || math.IsNaN(c.MergeTolerance) {
		err = multierr.Append(err, fmt.Errorf("%w: merge tolerance %g must be non-negative", ErrInvalidConfig, c.MergeTolerance))
	}
	if c.ShortEdgeRatio < 0 || math.IsNaN(c.ShortEdgeRatio) {
		err = multierr.Append(err, fmt.Errorf("%w: short edge ratio %g must be non-negative", ErrInvalidConfig, c.ShortEdgeRatio))
	}
	return err
}
