package alphashape

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/alpha3/triangulation"
)

// noGroup marks a breakpoint at +Inf; it is never reached.
const noGroup = math.MaxInt

// Spectrum is the sorted sequence of distinct critical α values of a shape.
//
// Breakpoints are clamped to [0, +Inf) and merged: a group starts at its
// smallest value a and absorbs every value within Tolerance·max(1, |a|) of it.
// The group's largest value represents it, so at every representative the
// spectrum agrees exactly with Shape.Classify.
//
// Each value carries the classification changes it causes, ordered by
// (dimension, key, class). A simplex crossing several breakpoints of one group
// contributes only its final class.
type Spectrum struct {
	shape   *Shape
	alphas  []float64 // representatives, ascending
	firsts  []float64 // smallest member of each group
	offsets []int     // events of group g: events[offsets[g]:offsets[g+1]]
	events  []Event
}

// buildSpectrum groups the breakpoints of recs and emits their events.
func buildSpectrum(recs *[triangulation.NumDims][]Record, tol float64) *Spectrum {
	sp := &Spectrum{}

	var vals []float64
	for d := range recs {
		for _, r := range recs[d] {
			for _, t := range [...]float64{r.Interval.Entry, r.Interval.Mid, r.Interval.Max} {
				if !math.IsInf(t, 1) {
					vals = append(vals, clamp(t))
				}
			}
		}
	}
	sort.Float64s(vals)
	for i := 0; i < len(vals); {
		first := vals[i]
		limit := first + tol*math.Max(1, math.Abs(first))
		j := i + 1
		for j < len(vals) && vals[j] <= limit {
			j++
		}
		sp.firsts = append(sp.firsts, first)
		sp.alphas = append(sp.alphas, vals[j-1])
		i = j
	}

	// Counting pass, then a stable fill in (dim, id, class) order.
	// marks[d][id] holds the group of Entry, Mid and Max (noGroup for +Inf).
	var marks [triangulation.NumDims][][3]int
	counts := make([]int, len(sp.alphas)+1)
	for d := range recs {
		marks[d] = make([][3]int, len(recs[d]))
		for id, r := range recs[d] {
			m := &marks[d][id]
			for k, t := range [...]float64{r.Interval.Entry, r.Interval.Mid, r.Interval.Max} {
				m[k] = noGroup
				if !math.IsInf(t, 1) {
					m[k] = sp.groupOf(clamp(t))
				}
			}
			forEachChange(*m, func(g int, _ Class) { counts[g+1]++ })
		}
	}
	sp.offsets = counts
	for g := 1; g < len(sp.offsets); g++ {
		sp.offsets[g] += sp.offsets[g-1]
	}
	sp.events = make([]Event, sp.offsets[len(sp.offsets)-1])
	cursor := append([]int(nil), sp.offsets[:len(sp.alphas)]...)
	for d := range recs {
		for id, r := range recs[d] {
			forEachChange(marks[d][id], func(g int, c Class) {
				sp.events[cursor[g]] = Event{Alpha: sp.alphas[g], Simplex: r.Simplex, Class: c}
				cursor[g]++
			})
		}
	}

	return sp
}

// forEachChange calls fn for every class change of a simplex whose breakpoints
// fall in groups m, skipping classes superseded within the same group.
func forEachChange(m [3]int, fn func(g int, c Class)) {
	for k := 0; k < 3; k++ {
		if m[k] == noGroup {
			return
		}
		if k < 2 && m[k+1] == m[k] {
			continue
		}
		fn(m[k], Class(k+1))
	}
}

func clamp(t float64) float64 { return math.Max(t, 0) }

// groupOf returns the group containing a clamped breakpoint.
func (sp *Spectrum) groupOf(v float64) int {
	return sort.Search(len(sp.firsts), func(i int) bool { return sp.firsts[i] > v }) - 1
}

// floor returns the last group whose representative is ≤ alpha, or -1.
func (sp *Spectrum) floor(alpha float64) int {
	return sort.Search(len(sp.alphas), func(i int) bool { return sp.alphas[i] > alpha }) - 1
}

// Len returns the number of critical values.
func (sp *Spectrum) Len() int { return len(sp.alphas) }

// Alphas returns a copy of the critical values, ascending.
func (sp *Spectrum) Alphas() []float64 {
	return append([]float64(nil), sp.alphas...)
}

// NthAlpha returns the n-th critical value (0-based).
func (sp *Spectrum) NthAlpha(n int) (float64, error) {
	if n < 0 || n >= len(sp.alphas) {
		return 0, fmt.Errorf("NthAlpha(%d) of %d: %w", n, len(sp.alphas), ErrOutOfRange)
	}

	return sp.alphas[n], nil
}

// Events returns a copy of the changes at the i-th critical value.
func (sp *Spectrum) Events(i int) ([]Event, error) {
	if i < 0 || i >= len(sp.alphas) {
		return nil, fmt.Errorf("Events(%d) of %d: %w", i, len(sp.alphas), ErrOutOfRange)
	}

	return append([]Event(nil), sp.events[sp.offsets[i]:sp.offsets[i+1]]...), nil
}

// LowerBound returns the largest critical value ≤ alpha; false if none.
func (sp *Spectrum) LowerBound(alpha float64) (float64, bool) {
	g := sp.floor(alpha)
	if g < 0 {
		return 0, false
	}

	return sp.alphas[g], true
}

// UpperBound returns the smallest critical value > alpha; false if none.
func (sp *Spectrum) UpperBound(alpha float64) (float64, bool) {
	g := sp.floor(alpha) + 1
	if g >= len(sp.alphas) {
		return 0, false
	}

	return sp.alphas[g], true
}

// Snapshot locates alpha in the spectrum in O(log T). Its answers equal
// Shape.Classify and Shape.Complex at alpha, also when alpha falls inside a
// merged group.
func (sp *Spectrum) Snapshot(alpha float64) (*Snapshot, error) {
	if err := validAlpha("Snapshot", alpha); err != nil {
		return nil, err
	}

	return &Snapshot{shape: sp.shape, alpha: alpha, index: sp.floor(alpha)}, nil
}

// Snapshot is the complex at one α, resolved against the spectrum.
type Snapshot struct {
	shape *Shape
	alpha float64
	index int
}

// Alpha returns the queried α.
func (sn *Snapshot) Alpha() float64 { return sn.alpha }

// Index returns the active spectrum index, -1 before the first critical value.
func (sn *Snapshot) Index() int { return sn.index }

// Classify returns the class of s at the snapshot's α in O(1).
func (sn *Snapshot) Classify(s triangulation.Simplex) (Class, error) {
	if !sn.shape.tri.Contains(s) {
		return Exterior, fmt.Errorf("Snapshot.Classify(%s): %w", s, ErrSimplexNotFound)
	}

	return sn.shape.recs[s.Dim][s.ID].Interval.Classify(sn.alpha), nil
}

// Complex replays the events of every group up to the snapshot index and
// returns every simplex that is not EXTERIOR, by dimension then arena order.
// When α lies past the first member of the next group, the events of that
// group are admitted by their raw interval.
func (sn *Snapshot) Complex() []triangulation.Simplex {
	sp := sn.shape.spectrum
	var in [triangulation.NumDims][]bool
	for d := range in {
		in[d] = make([]bool, sn.shape.tri.NumSimplices(triangulation.Dim(d)))
	}
	if sn.index >= 0 {
		for _, ev := range sp.events[:sp.offsets[sn.index+1]] {
			in[ev.Simplex.Dim][ev.Simplex.ID] = true
		}
	}
	if next := sn.index + 1; next < len(sp.alphas) && sp.firsts[next] <= sn.alpha {
		for _, ev := range sp.events[sp.offsets[next]:sp.offsets[next+1]] {
			smp := ev.Simplex
			if sn.shape.recs[smp.Dim][smp.ID].Interval.Classify(sn.alpha) != Exterior {
				in[smp.Dim][smp.ID] = true
			}
		}
	}

	var out []triangulation.Simplex
	for d := range in {
		for id, ok := range in[d] {
			if ok {
				out = append(out, triangulation.Simplex{Dim: triangulation.Dim(d), ID: id})
			}
		}
	}

	return out
}
