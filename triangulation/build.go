package triangulation

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/alpha3/geom"
	"github.com/katalvlaran/alpha3/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// infinite is the symbolic vertex closing the triangulation of R³.
const infinite = -1

// bwCell is a working cell of the incremental builder.
//
// Every cell, finite or not, is positively oriented: for an infinite cell,
// substituting for the infinite vertex any point strictly outside the hull
// facet yields a positive orientation.
type bwCell struct {
	v    [4]int // point indices, infinite allowed once
	n    [4]int // n[i] is the neighbour across the face opposite v[i]
	dead bool
}

func (c *bwCell) infIndex() int {
	for i, v := range c.v {
		if v == infinite {
			return i
		}
	}

	return -1
}

// indexOf returns the position of neighbour cell id in c.n, or -1.
func (c *bwCell) indexOf(id int) int {
	for i, n := range c.n {
		if n == id {
			return i
		}
	}

	return -1
}

type bwBuilder struct {
	pts   []geom.WeightedPoint
	k     kernel.Kernel
	cells []bwCell
	mark  []int // per-cell stamp: +stamp in cavity, −stamp tested outside
	stamp int
	hint  int // a live finite cell near the last insertion
}

// Build computes the regular triangulation of points.
//
// Algorithm (incremental Bowyer–Watson with an infinite vertex):
//  1. Validate points; pick four affinely independent points (ErrDegenerateInput
//     if they do not exist) and create one positive cell plus its four infinite
//     neighbours.
//  2. Insert the remaining points in input order. A visibility walk from the last
//     created cell locates the point (linear scan fallback on degenerate walks).
//  3. The conflict region is grown by BFS over neighbours: finite cells whose
//     orthogonal sphere has negative power w.r.t. the point; infinite cells whose
//     hull facet the point sees strictly, or, when coplanar, whose facet
//     orthogonal circle it encroaches.
//  4. A point in conflict with nothing is hidden. Otherwise every boundary face of
//     the region is joined to the point; vertices strictly inside the region
//     become hidden.
//  5. Surviving finite cells are assembled into the canonical arena.
//
// Complexity: expected O(n log n)-ish walks on well-spread inputs, O(n²) worst case.
func Build(points []geom.WeightedPoint, opts ...Option) (*Triangulation, error) {
	o := gatherOptions(opts...)
	start := time.Now()
	if err := geom.ValidateAll(points); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if len(points) < 4 {
		return nil, fmt.Errorf("Build: %d points: %w", len(points), ErrDegenerateInput)
	}

	b := &bwBuilder{pts: points, k: o.Kernel}
	seed, err := b.initialSimplex()
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for p := range points {
		if p == seed[0] || p == seed[1] || p == seed[2] || p == seed[3] {
			continue
		}
		b.insert(p)
	}

	finite := make([][4]int, 0, len(b.cells))
	for i := range b.cells {
		c := &b.cells[i]
		if c.dead || c.infIndex() >= 0 {
			continue
		}
		finite = append(finite, c.v)
	}
	t, err := assemble(points, finite, o)
	if err != nil {
		// The builder only emits valid cells; reaching this is a kernel failure.
		return nil, fmt.Errorf("Build: %w", err)
	}
	t.logger.Debug("regular triangulation built",
		slog.String("kernel", o.Kernel.Name()),
		slog.Int("points", len(points)),
		slog.Int("hidden", len(t.hidden)),
		slog.Int("cells", len(t.cells)),
		slog.Duration("duration", time.Since(start)),
	)

	return t, nil
}

// initialSimplex picks the first four affinely independent points (input
// order) and creates the starting cell and its infinite neighbours.
func (b *bwBuilder) initialSimplex() ([4]int, error) {
	var seed [4]int
	n := len(b.pts)

	// Second point: first location differing from the first.
	i1 := -1
	for i := 1; i < n; i++ {
		if b.pts[i].P != b.pts[0].P {
			i1 = i
			break
		}
	}
	if i1 < 0 {
		return seed, fmt.Errorf("all points coincide: %w", ErrDegenerateInput)
	}

	// Third point: first one not collinear with the first two.
	i2 := -1
	for i := i1 + 1; i < n && i2 < 0; i++ {
		if !b.collinear(b.pts[0].P, b.pts[i1].P, b.pts[i].P) {
			i2 = i
		}
	}
	if i2 < 0 {
		return seed, fmt.Errorf("all points collinear: %w", ErrDegenerateInput)
	}

	// Fourth point: first one off the plane of the first three.
	i3 := -1
	for i := i1 + 1; i < n && i3 < 0; i++ {
		if i == i2 {
			continue
		}
		if b.k.Orientation(b.pts[0].P, b.pts[i1].P, b.pts[i2].P, b.pts[i].P) != kernel.Zero {
			i3 = i
		}
	}
	if i3 < 0 {
		return seed, fmt.Errorf("all points coplanar: %w", ErrDegenerateInput)
	}

	seed = [4]int{0, i1, i2, i3}
	if b.orient(seed) == kernel.Negative {
		seed[0], seed[1] = seed[1], seed[0]
	}

	// Cell 0 is finite; cell i+1 is the infinite cell across the face opposite seed[i].
	b.cells = make([]bwCell, 5)
	b.cells[0] = bwCell{v: seed, n: [4]int{1, 2, 3, 4}}
	for i := 0; i < 4; i++ {
		v := seed
		v[i] = infinite
		// Swap two finite entries so that the infinite side is the positive side.
		j, k := (i+1)%4, (i+2)%4
		v[j], v[k] = v[k], v[j]
		b.cells[i+1] = bwCell{v: v}
	}
	b.linkByFaces([]int{0, 1, 2, 3, 4})
	b.mark = make([]int, len(b.cells))
	b.hint = 0

	return seed, nil
}

// collinear reports whether a, b, c lie on one line. Non-collinear triples span
// a plane that cannot contain all three axis offsets of a.
func (b *bwBuilder) collinear(a, p, q r3.Vec) bool {
	for _, e := range [...]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}} {
		if b.k.Orientation(a, p, q, r3.Add(a, e)) != kernel.Zero {
			return false
		}
	}

	return true
}

// orient evaluates the orientation of four finite point indices.
func (b *bwBuilder) orient(v [4]int) kernel.Sign {
	return b.k.Orientation(b.pts[v[0]].P, b.pts[v[1]].P, b.pts[v[2]].P, b.pts[v[3]].P)
}

// linkByFaces sets neighbour pointers among the given cells by matching faces.
func (b *bwBuilder) linkByFaces(ids []int) {
	type slot struct{ cell, idx int }
	open := make(map[[3]int]slot, 2*len(ids))
	for _, id := range ids {
		for i := 0; i < 4; i++ {
			f := drop4(b.cells[id].v, i)
			sortInts3(&f)
			if other, ok := open[f]; ok {
				b.cells[id].n[i] = other.cell
				b.cells[other.cell].n[other.idx] = id
				delete(open, f)
				continue
			}
			open[f] = slot{id, i}
		}
	}
}

// conflict reports whether point p lies in the conflict zone of cell id.
func (b *bwBuilder) conflict(id, p int) bool {
	c := &b.cells[id]
	q := b.pts[p]
	inf := c.infIndex()
	if inf < 0 {
		pts := []geom.WeightedPoint{b.pts[c.v[0]], b.pts[c.v[1]], b.pts[c.v[2]], b.pts[c.v[3]]}
		return b.k.PowerTest(pts, q) == kernel.Negative
	}

	v := c.v
	v[inf] = p
	switch b.orient(v) {
	case kernel.Positive:
		return true
	case kernel.Negative:
		return false
	}
	// Coplanar with the hull facet: test against the facet's orthogonal circle.
	face := make([]geom.WeightedPoint, 0, 3)
	for i, x := range c.v {
		if i != inf {
			face = append(face, b.pts[x])
		}
	}

	return b.k.PowerTest(face, q) == kernel.Negative
}

// locate walks from the hint towards p. It returns the finite cell containing
// p, the infinite cell through which p leaves the hull, or -1 if the walk
// exceeded its step budget.
func (b *bwBuilder) locate(p int) int {
	c := b.hint
	if c < 0 || c >= len(b.cells) || b.cells[c].dead || b.cells[c].infIndex() >= 0 {
		return -1
	}
	for steps := 0; steps <= len(b.cells); steps++ {
		cell := &b.cells[c]
		if cell.infIndex() >= 0 {
			return c
		}
		moved := false
		for i := 0; i < 4; i++ {
			v := cell.v
			v[i] = p
			if b.orient(v) == kernel.Negative {
				c = cell.n[i]
				moved = true
				break
			}
		}
		if !moved {
			return c
		}
	}

	return -1
}

// findConflict returns some cell in conflict with p, or -1 when p is hidden.
func (b *bwBuilder) findConflict(p int) int {
	if c := b.locate(p); c >= 0 {
		if b.conflict(c, p) {
			return c
		}
		if b.cells[c].infIndex() < 0 {
			// The containing cell is the only candidate for an interior point.
			return -1
		}
	}
	for id := range b.cells {
		if !b.cells[id].dead && b.conflict(id, p) {
			return id
		}
	}

	return -1
}

// insert adds point p, or leaves it hidden.
func (b *bwBuilder) insert(p int) {
	start := b.findConflict(p)
	if start < 0 {
		return
	}

	// Grow the conflict region.
	b.stamp++
	stamp := b.stamp
	cavity := []int{start}
	b.mark[start] = stamp
	for i := 0; i < len(cavity); i++ {
		for _, nb := range b.cells[cavity[i]].n {
			if b.mark[nb] == stamp || b.mark[nb] == -stamp {
				continue
			}
			if b.conflict(nb, p) {
				b.mark[nb] = stamp
				cavity = append(cavity, nb)
			} else {
				b.mark[nb] = -stamp
			}
		}
	}

	// Star the boundary from p.
	type edgeSlot struct{ cell, idx int }
	open := make(map[[2]int]edgeSlot)
	created := make([]int, 0, 2*len(cavity))
	for _, cid := range cavity {
		for i := 0; i < 4; i++ {
			out := b.cells[cid].n[i]
			if b.mark[out] == stamp {
				continue
			}
			nc := bwCell{v: b.cells[cid].v}
			nc.v[i] = p
			nc.n[i] = out
			id := len(b.cells)
			b.cells = append(b.cells, nc)
			b.mark = append(b.mark, 0)
			created = append(created, id)
			b.cells[out].n[b.cells[out].indexOf(cid)] = id

			for k := 0; k < 4; k++ {
				if k == i {
					continue
				}
				// The face opposite v[k] holds p plus the two remaining vertices.
				var key [2]int
				n := 0
				for j := 0; j < 4; j++ {
					if j != i && j != k {
						key[n] = nc.v[j]
						n++
					}
				}
				if key[0] > key[1] {
					key[0], key[1] = key[1], key[0]
				}
				if other, ok := open[key]; ok {
					b.cells[id].n[k] = other.cell
					b.cells[other.cell].n[other.idx] = id
					delete(open, key)
					continue
				}
				open[key] = edgeSlot{id, k}
			}
		}
	}
	for _, cid := range cavity {
		b.cells[cid].dead = true
	}

	b.hint = -1
	for _, id := range created {
		if b.cells[id].infIndex() < 0 {
			b.hint = id
			break
		}
	}
	if b.hint < 0 {
		b.hint = b.anyFinite()
	}
}

// anyFinite returns some live finite cell.
func (b *bwBuilder) anyFinite() int {
	for id := len(b.cells) - 1; id >= 0; id-- {
		if !b.cells[id].dead && b.cells[id].infIndex() < 0 {
			return id
		}
	}

	return -1
}

func sortInts3(v *[3]int) {
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	if v[1] > v[2] {
		v[1], v[2] = v[2], v[1]
	}
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
}
