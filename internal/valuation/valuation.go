package valuation

import (
	"github.com/jstittsworth/auction-valuator/internal/models"
	"github.com/jstittsworth/auction-valuator/pkg/config"
)

// BaselineMode selects which anchor chain produces the baseline value.
type BaselineMode string

const (
	ModeProjection BaselineMode = "projection"
	ModeMarket     BaselineMode = "market"
)

// Params holds the tunable valuation constants. The caps and the
// percentile sample floor are deliberately configuration, not hard
// constants.
type Params struct {
	StrategyCap         float64
	DeltaCap            float64
	PercentileMinSample int
}

// DefaultParams returns the stock auction tuning.
func DefaultParams() Params {
	return Params{
		StrategyCap:         6,
		DeltaCap:            15,
		PercentileMinSample: 25,
	}
}

// ParamsFromConfig lifts the loaded configuration into valuation params.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		StrategyCap:         cfg.StrategyCap,
		DeltaCap:            cfg.DeltaCap,
		PercentileMinSample: cfg.PercentileMinSample,
	}
}

// Baseline selects the anchor dollar value for a record. Market mode uses
// the market estimate when positive and otherwise falls through to the
// projection chain; projection mode takes the projection anchor when
// present (a $0 projection is a real value, not a gap), then prior-year
// price, then 0. Never negative.
func Baseline(rec *models.PlayerRecord, mode BaselineMode) float64 {
	if mode == ModeMarket {
		if rec.Anchors.Market != nil && *rec.Anchors.Market > 0 {
			return *rec.Anchors.Market
		}
	}
	if rec.Anchors.Projection != nil {
		return nonNegative(*rec.Anchors.Projection)
	}
	if rec.Anchors.PriorYear != nil {
		return nonNegative(*rec.Anchors.PriorYear)
	}
	return 0
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// WeightedValue applies the caller's category weights to a baseline. The
// record's role decides which category list contributes; categories absent
// from the record or zero-weighted are skipped. With no contributing
// category (or a zero raw sum) there is no comparison base, so the
// baseline passes through unchanged.
func WeightedValue(rec *models.PlayerRecord, weights models.CategoryWeights, baseline float64) float64 {
	rawSum := 0.0
	weightedSum := 0.0

	for _, cat := range models.CategoriesForRole(rec.Role) {
		value, ok := rec.CategoryStats[cat]
		if !ok {
			continue
		}
		weight := weights.WeightFor(cat)
		if weight == 0 {
			continue
		}
		rawSum += value
		weightedSum += value * weight
	}

	if rawSum == 0 {
		return baseline
	}
	weighted := baseline * weightedSum / rawSum
	if weighted < 0 {
		return 0
	}
	return weighted
}

// PriceResult is the delta-model output for one player.
type PriceResult struct {
	Baseline      float64 `json:"baseline"`
	WeightedValue float64 `json:"weighted_value"`
	MarketDelta   float64 `json:"market_delta"`
	StrategyDelta float64 `json:"strategy_delta"`
	TotalDelta    float64 `json:"total_delta"`
	AdjustedPrice float64 `json:"adjusted_price"`
}

// ComputeAdjustedPrice runs the capped delta model. A zero baseline with a
// plan in hand falls back to the plan as the baseline, so an anchor-less
// targeted player still prices sanely instead of collapsing to $0. The
// engine never applies a hard-max ceiling; callers that want one take
// min(AdjustedPrice, hardMax) themselves.
func ComputeAdjustedPrice(baseline, weightedValue, plan float64, params Params) PriceResult {
	if baseline == 0 && plan > 0 {
		baseline = plan
		weightedValue = plan
	}

	marketDelta := baseline - plan
	if plan == 0 {
		marketDelta = 0
	}
	strategyDelta := clamp(weightedValue-baseline, -params.StrategyCap, params.StrategyCap)
	totalDelta := clamp(marketDelta+strategyDelta, -params.DeltaCap, params.DeltaCap)

	return PriceResult{
		Baseline:      baseline,
		WeightedValue: weightedValue,
		MarketDelta:   marketDelta,
		StrategyDelta: strategyDelta,
		TotalDelta:    totalDelta,
		AdjustedPrice: baseline + totalDelta,
	}
}

// ValuePlayer is the per-player valuation entry point: baseline, weighted
// adjustment, then the delta model against the caller's target plan (zero
// when the player is untargeted).
func ValuePlayer(rec *models.PlayerRecord, weights models.CategoryWeights, plan float64, mode BaselineMode, params Params) PriceResult {
	baseline := Baseline(rec, mode)
	weighted := WeightedValue(rec, weights, baseline)
	return ComputeAdjustedPrice(baseline, weighted, plan, params)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
