package engine

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/auction-valuator/internal/ingest"
	"github.com/jstittsworth/auction-valuator/internal/models"
)

func testEngine() *Engine {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return New(log)
}

func opsOnlyWeights() models.CategoryWeights {
	return models.CategoryWeights{
		"OPS": 1.0, "AVG": 0, "HR": 0, "R": 0, "RBI": 0, "SB": 0,
	}
}

func threeHitterSheets() []SourceSheet {
	return []SourceSheet{
		{
			Name: "projections",
			Rows: []ingest.SourceRow{
				{"Player": "A", "Pos": "OF", "OPS": "0.900", "Dollars": "20"},
				{"Player": "B", "Pos": "2B", "OPS": "0.800", "Dollars": "15"},
				{"Player": "C", "Pos": "1B", "OPS": "0.700", "Dollars": "10"},
			},
		},
	}
}

func TestBuildPool(t *testing.T) {
	e := testEngine()
	build := e.BuildPool(threeHitterSheets())

	require.NotNil(t, build.Pool)
	assert.Equal(t, 3, build.Pool.Size())
	assert.Equal(t, 3, build.RowCount)
	assert.True(t, build.Pool.HasCategoryStats)

	rec, ok := e.Find("B")
	require.True(t, ok)
	assert.Equal(t, "hit:b", rec.Key)
}

func TestBuildPool_CrossSourceDedupe(t *testing.T) {
	e := testEngine()
	sheets := []SourceSheet{
		{
			Name: "projections",
			Rows: []ingest.SourceRow{
				{"Player": "Jose Ramirez", "Pos": "3B", "Dollars": "36"},
			},
		},
		{
			Name: "market",
			Rows: []ingest.SourceRow{
				{"Player": "José Ramírez", "Pos": "3B", "Market": "34"},
			},
		},
	}

	build := e.BuildPool(sheets)
	require.Equal(t, 1, build.Pool.Size())

	merged := build.Pool.Players[0]
	require.NotNil(t, merged.Anchors.Projection)
	require.NotNil(t, merged.Anchors.Market)
	assert.Equal(t, 36.0, *merged.Anchors.Projection)
	assert.Equal(t, 34.0, *merged.Anchors.Market)
}

func TestValuations_EndToEnd(t *testing.T) {
	e := testEngine()
	build := e.BuildPool(threeHitterSheets())

	snap := &models.Snapshot{
		Weights: opsOnlyWeights(),
		Targets: map[string]models.Target{
			"hit:a": {PlayerKey: "hit:a", Plan: 18},
		},
	}

	valuations := e.Valuations(build.Pool, snap)
	require.Len(t, valuations, 3)

	byKey := make(map[string]PlayerValuation)
	for _, v := range valuations {
		byKey[v.Key] = v
	}

	// One contributing category: weighted equals baseline, so only the
	// market delta (20 - 18 = 2) moves A's price.
	a := byKey["hit:a"]
	assert.Equal(t, 20.0, a.BaselineValue)
	assert.Equal(t, 2.0, a.TotalDelta)
	assert.Equal(t, 22.0, a.AdjustedPrice)

	// Untargeted players carry no market delta.
	assert.Equal(t, 15.0, byKey["hit:b"].AdjustedPrice)
	assert.Equal(t, 10.0, byKey["hit:c"].AdjustedPrice)
}

func TestRecommend_EndToEnd(t *testing.T) {
	e := testEngine()
	build := e.BuildPool(threeHitterSheets())

	snap := &models.Snapshot{
		Weights:    opsOnlyWeights(),
		EmptySlots: []string{"MI"},
	}

	result := e.Recommend(build, snap, 0)
	require.Len(t, result.Ranked, 3)

	byKey := make(map[string]float64)
	for _, sp := range result.Ranked {
		byKey[sp.Key] = sp.NeedBoost
	}
	assert.Greater(t, byKey["hit:b"], 0.0, "2B fills the empty MI slot")
	assert.Equal(t, 0.0, byKey["hit:a"])

	require.Len(t, result.Needs, 1)
	assert.Equal(t, "hit:b", result.Needs[0].Key)
}

func TestBuildPool_DeterministicAcrossRebuilds(t *testing.T) {
	e := testEngine()
	first := e.BuildPool(threeHitterSheets())
	second := e.BuildPool(threeHitterSheets())
	assert.Equal(t, first, second)
}

func TestRecommend_Idempotent(t *testing.T) {
	e := testEngine()
	build := e.BuildPool(threeHitterSheets())
	snap := &models.Snapshot{Weights: opsOnlyWeights(), EmptySlots: []string{"MI", "OF1"}}

	first := e.Recommend(build, snap, 0)
	second := e.Recommend(build, snap, 0)
	assert.Equal(t, first, second)
}

func TestFind_NoMatchIsNotAnError(t *testing.T) {
	e := testEngine()
	e.BuildPool(threeHitterSheets())

	rec, ok := e.Find("Nobody Home")
	assert.False(t, ok)
	assert.Nil(t, rec)
}
