package palette

import (
	"math"
	"sort"

	"github.com/kovidgoyal/go-parallel"
)

// Closest returns the thread nearest to c under method m. ok is false only
// when the palette is empty.
func (p Palette) Closest(c RGB, m Method) (t Thread, ok bool) {
	return p.closest(newQuery(c, m), m, nil)
}

// MatchBatch matches every color in colors against the palette and returns the
// threads in input order.
//
// Without preferUnique each color simply gets its closest thread. With it,
// colors are assigned greedily, most isolated first, each taking the nearest
// thread not already taken. Colors left over once every thread is taken fall
// back to their closest thread, so threads repeat only when there are more
// colors than threads. The assignment is greedy and not a minimum-cost one.
func (p Palette) MatchBatch(colors []RGB, preferUnique bool, m Method) []Thread {
	if len(p) == 0 || len(colors) == 0 {
		return []Thread{}
	}

	qs := make([]query, len(colors))
	each(len(colors), func(i int) {
		qs[i] = query{rgb: colors[i], lab: RGB2Lab(colors[i])}
	})

	out := make([]Thread, len(colors))
	if !preferUnique {
		each(len(qs), func(i int) {
			out[i], _ = p.closest(qs[i], m, nil)
		})
		return out
	}

	scores := distinctiveness(qs)
	order := make([]int, len(qs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	used := make(map[string]bool, len(p))
	for _, i := range order {
		t, ok := p.closest(qs[i], m, used)
		if !ok {
			t, ok = p.closest(qs[i], m, nil)
		}
		if ok {
			used[t.ID] = true
		}
		out[i] = t
	}
	return out
}

// closest scans the palette in order, skipping IDs in used, and keeps the
// first thread with a strictly smaller distance than the best so far.
func (p Palette) closest(q query, m Method, used map[string]bool) (Thread, bool) {
	best, bestDist := -1, math.Inf(1)
	for i, t := range p {
		if used[t.ID] {
			continue
		}
		if d := q.distance(t, m); best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Thread{}, false
	}
	return p[best], true
}

// distinctiveness returns, for each color, the CIE76 distance to its nearest
// neighbour in the batch. A lone color scores +Inf.
func distinctiveness(qs []query) []float64 {
	scores := make([]float64, len(qs))
	each(len(qs), func(i int) {
		s := math.Inf(1)
		for j := range qs {
			if j == i {
				continue
			}
			if d := CIE76(qs[i].lab, qs[j].lab); d < s {
				s = d
			}
		}
		scores[i] = s
	})
	return scores
}

// each calls f(i) for i in [0, n), spread across CPUs. f must only write
// state owned by index i.
func each(n int, f func(i int)) {
	if n == 0 {
		return
	}
	e := parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			f(i)
		}
	}, 0, n)
	if e != nil {
		// only a panic inside f gets here
		panic(e)
	}
}
