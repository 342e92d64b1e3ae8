package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/auction-valuator/internal/models"
	"github.com/jstittsworth/auction-valuator/internal/valuation"
)

func floatPtr(v float64) *float64 {
	return &v
}

func buildPool(players ...models.PlayerRecord) *models.Pool {
	pool := &models.Pool{ByKey: make(map[string]*models.PlayerRecord)}
	for _, p := range players {
		pool.Players = append(pool.Players, p)
		if p.StatCount() > 0 {
			pool.HasCategoryStats = true
		}
	}
	for i := range pool.Players {
		pool.ByKey[pool.Players[i].Key] = &pool.Players[i]
	}
	return pool
}

func opsOnlyWeights() models.CategoryWeights {
	return models.CategoryWeights{
		"OPS": 1.0, "AVG": 0, "HR": 0, "R": 0, "RBI": 0, "SB": 0,
	}
}

func threeHitterPool() *models.Pool {
	return buildPool(
		models.PlayerRecord{
			Key: "hit:a", DisplayName: "A", Role: models.RoleHitter,
			Positions:     map[string]bool{"OF": true},
			CategoryStats: map[string]float64{"OPS": 0.900},
			Anchors:       models.Anchors{Projection: floatPtr(20)},
		},
		models.PlayerRecord{
			Key: "hit:b", DisplayName: "B", Role: models.RoleHitter,
			Positions:     map[string]bool{"2B": true},
			CategoryStats: map[string]float64{"OPS": 0.800},
			Anchors:       models.Anchors{Projection: floatPtr(15)},
		},
		models.PlayerRecord{
			Key: "hit:c", DisplayName: "C", Role: models.RoleHitter,
			Positions:     map[string]bool{"1B": true},
			CategoryStats: map[string]float64{"OPS": 0.700},
			Anchors:       models.Anchors{Projection: floatPtr(10)},
		},
	)
}

func score(pool *models.Pool, snap *models.Snapshot, maxPrice float64) Result {
	return Score(pool, nil, snap, Options{Mode: valuation.ModeProjection, MaxPrice: maxPrice},
		valuation.DefaultParams(), DefaultParams())
}

func TestScore_ExcludesRosteredAndTargeted(t *testing.T) {
	snap := &models.Snapshot{
		RosteredKeys: map[string]bool{"hit:a": true},
		Targets:      map[string]models.Target{"hit:b": {PlayerKey: "hit:b", Plan: 14}},
		Weights:      opsOnlyWeights(),
	}

	result := score(threeHitterPool(), snap, 0)

	require.Len(t, result.Ranked, 1)
	assert.Equal(t, "hit:c", result.Ranked[0].Key)
}

func TestScore_FitNormDegeneratePool(t *testing.T) {
	pool := buildPool(
		models.PlayerRecord{
			Key: "hit:x", DisplayName: "X", Role: models.RoleHitter,
			CategoryStats: map[string]float64{"OPS": 0.800},
		},
		models.PlayerRecord{
			Key: "hit:y", DisplayName: "Y", Role: models.RoleHitter,
			CategoryStats: map[string]float64{"OPS": 0.800},
		},
	)
	snap := &models.Snapshot{Weights: opsOnlyWeights()}

	result := score(pool, snap, 0)

	require.Len(t, result.Ranked, 2)
	for _, sp := range result.Ranked {
		assert.Equal(t, 0.0, sp.FitNorm, "equal fitRaw must normalize to 0, not NaN")
	}
}

func TestScore_NeedBoostUsesScarcestEligibleSlot(t *testing.T) {
	snap := &models.Snapshot{
		Weights:    opsOnlyWeights(),
		EmptySlots: []string{"MI", "OF1"},
	}
	params := DefaultParams()

	result := score(threeHitterPool(), snap, 0)
	require.Len(t, result.Ranked, 3)

	byKey := make(map[string]ScoredPlayer)
	for _, sp := range result.Ranked {
		byKey[sp.Key] = sp
	}

	// B (2B) is eligible only for MI; the boost is the MI tier constant.
	assert.Equal(t, params.TierBoosts[models.TierScarce], byKey["hit:b"].NeedBoost)
	assert.Equal(t, "MI", byKey["hit:b"].EligibleSlotHint)

	// A (OF) gets the OF1 boost.
	assert.Equal(t, params.TierBoosts[models.TierScarce], byKey["hit:a"].NeedBoost)
	assert.Equal(t, "OF1", byKey["hit:a"].EligibleSlotHint)

	// C (1B) fits neither empty slot.
	assert.Equal(t, 0.0, byKey["hit:c"].NeedBoost)
	assert.Empty(t, byKey["hit:c"].EligibleSlotHint)
}

func TestScore_ValueEdgeClamped(t *testing.T) {
	pool := buildPool(
		models.PlayerRecord{
			Key: "hit:bargain", DisplayName: "Bargain", Role: models.RoleHitter,
			Anchors: models.Anchors{Projection: floatPtr(40)},
		},
		models.PlayerRecord{
			Key: "hit:ripoff", DisplayName: "Ripoff", Role: models.RoleHitter,
			Anchors: models.Anchors{Projection: floatPtr(5)},
		},
	)
	snap := &models.Snapshot{
		Weights: opsOnlyWeights(),
		LivePrices: map[string]float64{
			"hit:bargain": 1,  // edge raw +39
			"hit:ripoff":  60, // edge raw -55
		},
	}

	result := score(pool, snap, 0)
	require.Len(t, result.Ranked, 2)

	byKey := make(map[string]ScoredPlayer)
	for _, sp := range result.Ranked {
		byKey[sp.Key] = sp
	}
	assert.Equal(t, 15.0, byKey["hit:bargain"].ValueEdge)
	assert.Equal(t, -15.0, byKey["hit:ripoff"].ValueEdge)
}

func TestScore_ReferencePricePreference(t *testing.T) {
	pool := buildPool(
		models.PlayerRecord{
			Key: "hit:live", DisplayName: "Live", Role: models.RoleHitter,
			Anchors: models.Anchors{Projection: floatPtr(20), Market: floatPtr(25)},
		},
		models.PlayerRecord{
			Key: "hit:market", DisplayName: "Market", Role: models.RoleHitter,
			Anchors: models.Anchors{Projection: floatPtr(20), Market: floatPtr(25)},
		},
		models.PlayerRecord{
			Key: "hit:proj", DisplayName: "Proj", Role: models.RoleHitter,
			Anchors: models.Anchors{Projection: floatPtr(20)},
		},
	)
	snap := &models.Snapshot{
		Weights:    opsOnlyWeights(),
		LivePrices: map[string]float64{"hit:live": 31},
	}

	result := score(pool, snap, 0)
	byKey := make(map[string]ScoredPlayer)
	for _, sp := range result.Ranked {
		byKey[sp.Key] = sp
	}

	assert.Equal(t, 31.0, byKey["hit:live"].ReferencePrice, "live price wins")
	assert.Equal(t, 25.0, byKey["hit:market"].ReferencePrice, "market estimate next")
	assert.Equal(t, 20.0, byKey["hit:proj"].ReferencePrice, "projection baseline last")
}

func TestScore_AffordabilityCeiling(t *testing.T) {
	snap := &models.Snapshot{
		Weights:    opsOnlyWeights(),
		LivePrices: map[string]float64{"hit:a": 30},
	}

	result := score(threeHitterPool(), snap, 16)

	for _, sp := range result.Ranked {
		assert.NotEqual(t, "hit:a", sp.Key, "candidates above the ceiling are filtered")
	}
	require.Len(t, result.Ranked, 2)
}

func TestScore_Views(t *testing.T) {
	snap := &models.Snapshot{
		Weights:    opsOnlyWeights(),
		EmptySlots: []string{"MI"},
	}

	result := score(threeHitterPool(), snap, 0)
	require.Len(t, result.Ranked, 3)

	// Needs view keeps only boosted candidates, in composite order.
	require.Len(t, result.Needs, 1)
	assert.Equal(t, "hit:b", result.Needs[0].Key)

	// Fit view is fitNorm descending: A has the best OPS.
	require.Len(t, result.Fit, 3)
	assert.Equal(t, "hit:a", result.Fit[0].Key)
	assert.Equal(t, "hit:c", result.Fit[2].Key)

	// Value view sorts by raw baseline-minus-reference.
	require.Len(t, result.Value, 3)
	for i := 1; i < len(result.Value); i++ {
		prev := result.Value[i-1].BaselineValue - result.Value[i-1].ReferencePrice
		cur := result.Value[i].BaselineValue - result.Value[i].ReferencePrice
		assert.GreaterOrEqual(t, prev, cur)
	}
}

func TestScore_Deterministic(t *testing.T) {
	snap := &models.Snapshot{
		Weights:    opsOnlyWeights(),
		EmptySlots: []string{"MI", "OF1"},
	}

	first := score(threeHitterPool(), snap, 0)
	second := score(threeHitterPool(), snap, 0)
	assert.Equal(t, first, second, "identical inputs must produce identical output")
}

func TestScore_EmptyPool(t *testing.T) {
	result := score(buildPool(), &models.Snapshot{Weights: opsOnlyWeights()}, 0)
	assert.Empty(t, result.Ranked)
	assert.Empty(t, result.Needs)

	result = Score(nil, nil, nil, Options{}, valuation.DefaultParams(), DefaultParams())
	assert.Empty(t, result.Ranked)
}
