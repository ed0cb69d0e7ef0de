package solver

// resolvePair applies one non-penetration correction between particles
// i and j if they overlap. Same-body pairs and fixed-fixed pairs are
// skipped (bodies hold themselves together via their own constraints;
// two fixed particles can never move relative to each other anyway).
func resolvePair(particles []Particle, i, j ParticleID) {
	if i == j {
		return
	}
	a := &particles[i]
	b := &particles[j]

	if a.Body != NoBody && a.Body == b.Body {
		return
	}
	if a.Fixed && b.Fixed {
		return
	}

	d := a.Position.Sub(b.Position)
	dSq := d.LengthSq()
	r := a.Radius + b.Radius
	if dSq >= r*r {
		return
	}

	length := d.Length()
	if length < 1e-9 {
		return
	}
	n := d.Scale(1.0 / length)
	// A naive cell sweep visits each unordered pair twice (once from
	// each endpoint's cell) and tunes ResponseCoef against that double
	// correction. sweepCell instead visits each pair once (idx<nIdx), so
	// the coefficient is doubled here to match the tuned behaviour.
	delta := 2 * ResponseCoef * (length - r) // negative: particles overlap

	massA := massProxy(a)
	massB := massProxy(b)
	total := massA + massB
	muA := massB / total
	muB := massA / total

	// n points from b to a and delta is negative, so a moves along -delta·n
	// and b along +delta·n: the pair is pushed apart.
	switch {
	case a.Fixed:
		b.Position = b.Position.Add(n.Scale(muB * delta))
	case b.Fixed:
		a.Position = a.Position.Sub(n.Scale(muA * delta))
	default:
		a.Position = a.Position.Sub(n.Scale(0.5 * muA * delta))
		b.Position = b.Position.Add(n.Scale(0.5 * muB * delta))
	}
}

// massProxy is the collision mass stand-in r³, with body members
// treated at a uniform radius so a single free particle cannot fling an
// entire dense body.
func massProxy(p *Particle) float32 {
	r := p.Radius
	if p.Body != NoBody {
		r = BodyMassRadius
	}
	return r * r * r
}

// sweepCell resolves every pair within cell idx and between it and its
// up-to-8 neighbours, visiting each unordered cell pair exactly once
// (via idx<nIdx) rather than from both endpoints — see resolvePair's
// doubled response coefficient.
func sweepCell(particles []Particle, g *Grid, idx int, neighbourScratch []int) {
	ids := g.CellIDs(idx)
	if len(ids) == 0 {
		return
	}

	for a := 0; a < len(ids); a++ {
		for b := a + 1; b < len(ids); b++ {
			resolvePair(particles, ids[a], ids[b])
		}
	}

	cx, cy := idx/g.Height, idx%g.Height
	neighbourScratch = g.NeighbourIndices(cx, cy, neighbourScratch[:0])
	for _, nIdx := range neighbourScratch {
		if nIdx <= idx {
			continue // each unordered cell pair visited once via the larger index
		}
		nIds := g.CellIDs(nIdx)
		for _, a := range ids {
			for _, b := range nIds {
				resolvePair(particles, a, b)
			}
		}
	}
}

// resolveCollisionsStriped partitions the grid's columns into vertical
// stripes of width floor(Width/(2*workers)) (at least 1) and dispatches two disjoint
// batches — even stripes, then a barrier, then odd stripes — so that no
// two workers in the same batch can ever touch the same particle: a
// cell's neighbourhood spans at most one column either side, and
// non-adjacent stripes never share a neighbourhood.
func resolveCollisionsStriped(particles []Particle, g *Grid, pool *TaskPool) {
	workers := pool.Workers()
	stripeWidth := g.Width / (2 * workers)
	if stripeWidth < 1 {
		stripeWidth = 1
	}

	sweepColumns := func(colStart, colEnd int) {
		var scratch []int
		for cx := colStart; cx < colEnd && cx < g.Width; cx++ {
			for cy := 0; cy < g.Height; cy++ {
				sweepCell(particles, g, g.index(cx, cy), scratch)
			}
		}
	}

	dispatchParity := func(parity int) {
		n := workers
		pool.Dispatch(n, func(wStart, wEnd int) {
			for w := wStart; w < wEnd; w++ {
				stripe := 2*w + parity
				colStart := stripe * stripeWidth
				colEnd := colStart + stripeWidth
				if colStart >= g.Width {
					continue
				}
				sweepColumns(colStart, colEnd)
			}
		})
	}

	dispatchParity(0) // even stripes, then implicit barrier inside Dispatch
	dispatchParity(1) // odd stripes

	// Trailing columns beyond 2*workers*stripeWidth (if Width doesn't
	// divide evenly) are swept on the calling goroutine.
	leading := 2 * workers * stripeWidth
	if leading < g.Width {
		sweepColumns(leading, g.Width)
	}
}

// resolveCollisionsSerial sweeps every cell on the calling goroutine,
// used by the "cellular" (single-threaded) resolver configuration.
func resolveCollisionsSerial(particles []Particle, g *Grid) {
	var scratch []int
	g.ForEachCell(func(idx int, ids []ParticleID) {
		sweepCell(particles, g, idx, scratch)
	})
}

// resolveCollisionsNaive is the O(N²) reference resolver used only for
// benchmarking against the grid-based resolvers, sharing resolvePair
// with them.
func resolveCollisionsNaive(particles []Particle) {
	for i := range particles {
		for j := i + 1; j < len(particles); j++ {
			resolvePair(particles, ParticleID(i), ParticleID(j))
		}
	}
}
