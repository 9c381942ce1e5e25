// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
package builder

// validateMin ensures that got ≥ min, reporting ErrTooFewPoints otherwise.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewPoints, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateRand ensures a stochastic constructor has an RNG.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "set WithSeed or WithRand")
	}

	return nil
}
