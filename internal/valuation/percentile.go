package valuation

import (
	"sort"

	"github.com/jstittsworth/auction-valuator/internal/models"
)

// PercentileTable holds each player's 0..1 percentile rank per category,
// computed once per pool build. Ranks are comparable across categories
// regardless of raw stat scale, which is what the scorer's fit computation
// needs.
type PercentileTable struct {
	ranks map[string]map[string]float64 // player key -> category -> 0..1
}

// Rank returns the percentile rank for a player and category, or false
// when the category was skipped for that role (sample too small) or the
// player did not contribute a value.
func (t *PercentileTable) Rank(playerKey, category string) (float64, bool) {
	if t == nil || t.ranks == nil {
		return 0, false
	}
	byCat, ok := t.ranks[playerKey]
	if !ok {
		return 0, false
	}
	rank, ok := byCat[category]
	return rank, ok
}

// BuildPercentiles computes per-role, per-category percentile ranks across
// the pool. Categories with fewer than params.PercentileMinSample values
// are skipped as too small a sample to normalize meaningfully. Ranks are
// fractional positions in the sorted value list (0.5 for a single-value
// list); lower-is-better categories are inverted.
func BuildPercentiles(pool *models.Pool, params Params) *PercentileTable {
	table := &PercentileTable{ranks: make(map[string]map[string]float64)}
	if pool == nil || !pool.HasCategoryStats {
		return table
	}

	for _, role := range []models.Role{models.RoleHitter, models.RolePitcher} {
		for _, cat := range models.CategoriesForRole(role) {
			type sample struct {
				key   string
				value float64
			}
			var samples []sample
			for i := range pool.Players {
				p := &pool.Players[i]
				if p.Role != role {
					continue
				}
				if v, ok := p.CategoryStats[cat]; ok {
					samples = append(samples, sample{key: p.Key, value: v})
				}
			}
			if len(samples) < params.PercentileMinSample {
				continue
			}

			sorted := make([]float64, len(samples))
			for i, s := range samples {
				sorted[i] = s.value
			}
			sort.Float64s(sorted)

			n := len(sorted)
			for _, s := range samples {
				var rank float64
				if n <= 1 {
					rank = 0.5
				} else {
					// First index of the value in the sorted list.
					idx := sort.SearchFloat64s(sorted, s.value)
					rank = float64(idx) / float64(n-1)
				}
				if models.LowerIsBetter(cat) {
					rank = 1 - rank
				}
				if table.ranks[s.key] == nil {
					table.ranks[s.key] = make(map[string]float64)
				}
				table.ranks[s.key][cat] = rank
			}
		}
	}

	return table
}

// StrategyFit averages a player's percentile ranks over the categories the
// caller actually weights, scaled by those weights. Players with no ranked
// category report false so callers can fall back to raw-stat fit.
func (t *PercentileTable) StrategyFit(playerKey string, role models.Role, weights models.CategoryWeights) (float64, bool) {
	total := 0.0
	weightSum := 0.0
	for _, cat := range models.CategoriesForRole(role) {
		weight := weights.WeightFor(cat)
		if weight == 0 {
			continue
		}
		rank, ok := t.Rank(playerKey, cat)
		if !ok {
			continue
		}
		total += rank * weight
		weightSum += weight
	}
	if weightSum == 0 {
		return 0, false
	}
	return total / weightSum, true
}
