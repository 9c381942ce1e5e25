// Package builder provides internal helper functions shared by the
// constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/alpha3/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// builderErrorf wraps sentinel with the given method context:
// "<Method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}

// emit places p in the configured frame and appends it with the next weight.
func emit(dst *[]geom.WeightedPoint, cfg builderConfig, p r3.Vec) {
	*dst = append(*dst, geom.WeightedPoint{P: cfg.place(p), W: cfg.weight()})
}
