// Package shrine implements the stat-redistribution algorithm triggered by
// a shrine (an in-game power gate partitioning acquisition into pre- and
// post-gate phases). Order takes a desired allocation and the character's
// racial baselines and returns a rebalanced allocation bounded by a
// per-stat divergence cap and a stat ceiling.
package shrine

import (
	"math"

	"github.com/pocamind/deep-go/stat"
	"github.com/pocamind/deep-go/statmap"
)

// DiffCap is the built-in per-stat divergence bound, used by DefaultCaps.
const DiffCap = 25.0

// StatCap is the built-in absolute stat ceiling, used by DefaultCaps.
const StatCap = 100

// Caps bounds a single call to Order. DiffCap limits how far any
// non-attunement stat may drop below its pre-redistribution value; StatCap
// is the maximum value any single stat may hold afterward. A settings
// document can override both; callers with no overriding settings should
// pass DefaultCaps.
type Caps struct {
	DiffCap float64
	StatCap int
}

// DefaultCaps returns the engine's built-in caps.
func DefaultCaps() Caps {
	return Caps{DiffCap: DiffCap, StatCap: StatCap}
}

// Order rebalances pre toward an even spread across the stats it
// allocates, with caps as the per-stat divergence bound and the top-up
// ceiling. A stat whose pre value does not exceed its positive racial value
// is left as it is; for every other allocated stat only the points above
// its racial value enter the average, and the redistributed value is not
// held at or above the racial value. The result's cost never
// exceeds pre's; any leftover points from flooring are handed back one
// point at a time to non-bottlenecked stats.
func Order(pre, racial statmap.StatMap, caps Caps) statmap.StatMap {
	pointsStart := pre.Cost()

	work := make(map[stat.Stat]float64, len(pre.Stats()))
	for _, s := range pre.Stats() {
		work[s] = float64(pre.Get(s))
	}

	var total float64
	divideBy := 0
	var affected []stat.Stat

	for _, s := range pre.Stats() {
		value := pre.Get(s)
		if value <= 0 {
			continue
		}

		racialVal := racial.Get(s)
		if racialVal > 0 && value-racialVal <= 0 {
			continue
		}

		floor := racialVal
		if floor < 0 {
			floor = 0
		}
		total += float64(value - floor)
		affected = append(affected, s)
		divideBy++
	}

	if divideBy == 0 {
		return pre.Clone()
	}

	average := total / float64(divideBy)
	for _, s := range affected {
		work[s] = average
	}

	bottleneckedDivideBy := divideBy
	bottlenecked := make(map[stat.Stat]struct{})
	prev := cloneWork(work)

	for {
		var bottleneckedPoints float64
		bottleneckedStats := false

		for _, s := range affected {
			if s.IsAttunement() {
				continue
			}

			prevVal := prev[s]
			shrineVal := float64(pre.Get(s))
			current := work[s]

			if shrineVal-current > caps.DiffCap {
				newVal := shrineVal - caps.DiffCap
				work[s] = newVal
				bottleneckedPoints += newVal - prevVal

				if _, already := bottlenecked[s]; !already {
					bottlenecked[s] = struct{}{}
					bottleneckedDivideBy--
				}
			}
		}

		if bottleneckedDivideBy <= 0 {
			break
		}

		spread := bottleneckedPoints / float64(bottleneckedDivideBy)

		for _, s := range affected {
			if _, ok := bottlenecked[s]; ok {
				continue
			}

			next := work[s] - spread
			work[s] = next

			if !s.IsAttunement() {
				shrineVal := float64(pre.Get(s))
				if shrineVal-next > caps.DiffCap {
					bottleneckedStats = true
				}
			}
		}

		prev = cloneWork(work)

		if !bottleneckedStats {
			break
		}
	}

	result := pre.Clone()
	for s, v := range work {
		result.Set(s, int(math.Floor(v)))
	}

	sparePoints := pointsStart - result.Cost()

	for bottleneckedDivideBy > 0 && sparePoints >= bottleneckedDivideBy {
		changed := false

		for _, s := range affected {
			if _, ok := bottlenecked[s]; ok {
				continue
			}
			if result.Get(s) >= caps.StatCap {
				continue
			}

			result.Set(s, result.Get(s)+1)
			sparePoints--
			changed = true
		}

		if !changed {
			break
		}
	}

	return result
}

func cloneWork(work map[stat.Stat]float64) map[stat.Stat]float64 {
	out := make(map[stat.Stat]float64, len(work))
	for s, v := range work {
		out[s] = v
	}
	return out
}
