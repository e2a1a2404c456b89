package reqfile

import (
	"github.com/pocamind/deep-go/req"
	"github.com/pocamind/deep-go/stat"
	"github.com/pocamind/deep-go/statmap"
)

// MaxStatMap returns, for each stat referenced across reqs (excluding
// Total), the highest single atom threshold that names it. This is a
// per-stat ceiling helper, not a build solver: it does not account for
// atoms that sum several stats together.
func MaxStatMap(reqs []req.Requirement) statmap.StatMap {
	maxes := statmap.New()

	for _, r := range reqs {
		for _, c := range r.Clauses {
			for _, a := range c.Atoms {
				for _, s := range a.Stats {
					if s == stat.Total {
						continue
					}
					if a.Value > maxes.Get(s) {
						maxes.Set(s, a.Value)
					}
				}
			}
		}
	}

	return maxes
}

// MaxTotalRequirement returns the highest Total-stat atom threshold named
// across reqs, or 0 if none reference Total.
func MaxTotalRequirement(reqs []req.Requirement) int {
	max := 0
	for _, r := range reqs {
		for _, c := range r.Clauses {
			for _, a := range c.Atoms {
				if a.Stats.Contains(stat.Total) && a.Value > max {
					max = a.Value
				}
			}
		}
	}
	return max
}
