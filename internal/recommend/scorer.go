package recommend

import (
	"sort"

	"github.com/jstittsworth/auction-valuator/internal/eligibility"
	"github.com/jstittsworth/auction-valuator/internal/models"
	"github.com/jstittsworth/auction-valuator/internal/valuation"
	"github.com/jstittsworth/auction-valuator/pkg/config"
)

// Params holds the scorer's tunable constants.
type Params struct {
	ValueEdgeCap    float64
	ValueEdgeWeight float64
	FitScale        float64
	TierBoosts      map[models.SlotTier]float64
}

// DefaultParams returns the stock scoring tuning.
func DefaultParams() Params {
	return Params{
		ValueEdgeCap:    15,
		ValueEdgeWeight: 0.9,
		FitScale:        100,
		TierBoosts: map[models.SlotTier]float64{
			models.TierScarce:   12,
			models.TierStandard: 8,
			models.TierUtility:  4,
			models.TierPitching: 2,
		},
	}
}

// ParamsFromConfig lifts the loaded configuration into scorer params.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		ValueEdgeCap:    cfg.ValueEdgeCap,
		ValueEdgeWeight: cfg.ValueEdgeWeight,
		FitScale:        cfg.FitScale,
		TierBoosts: map[models.SlotTier]float64{
			models.TierScarce:   cfg.BoostScarce,
			models.TierStandard: cfg.BoostStandard,
			models.TierUtility:  cfg.BoostUtility,
			models.TierPitching: cfg.BoostPitching,
		},
	}
}

// Options narrows a scoring run. MaxPrice == 0 means no affordability
// ceiling.
type Options struct {
	Mode     valuation.BaselineMode
	MaxPrice float64
}

// ScoredPlayer is one ranked candidate. EligibleSlotHint names the
// empty slot whose boost won, empty when no empty slot is eligible.
type ScoredPlayer struct {
	Key              string      `json:"key"`
	DisplayName      string      `json:"display_name"`
	Role             models.Role `json:"role"`
	BaselineValue    float64     `json:"baseline_value"`
	AdjustedPrice    float64     `json:"adjusted_price"`
	TotalDelta       float64     `json:"total_delta"`
	ReferencePrice   float64     `json:"reference_price"`
	FitRaw           float64     `json:"fit_raw"`
	FitNorm          float64     `json:"fit_norm"`
	StrategyFit      float64     `json:"strategy_fit"`
	ValueEdge        float64     `json:"value_edge"`
	NeedBoost        float64     `json:"need_boost"`
	Composite        float64     `json:"composite"`
	EligibleSlotHint string      `json:"eligible_slot_hint,omitempty"`
}

// Result partitions one scored set into its three presentation views.
type Result struct {
	Ranked []ScoredPlayer `json:"ranked"`
	Needs  []ScoredPlayer `json:"needs"`
	Value  []ScoredPlayer `json:"value"`
	Fit    []ScoredPlayer `json:"fit"`
}

// Score ranks the candidate pool against the caller's roster state.
// Candidates already rostered or targeted are excluded up front; survivors
// get a fit, a value edge against their reference price, and a need boost
// for the scarcest empty slot they can fill. Identical inputs always
// produce identical output.
func Score(pool *models.Pool, percentiles *valuation.PercentileTable, snap *models.Snapshot, opts Options, vparams valuation.Params, params Params) Result {
	if pool == nil {
		return Result{}
	}
	var weights models.CategoryWeights
	if snap != nil {
		weights = snap.Weights
	}

	scored := make([]ScoredPlayer, 0, len(pool.Players))
	for i := range pool.Players {
		p := &pool.Players[i]
		if snap.IsRostered(p.Key) || snap.IsTargeted(p.Key) {
			continue
		}

		price := valuation.ValuePlayer(p, weights, 0, opts.Mode, vparams)
		ref := referencePrice(p, snap)
		if opts.MaxPrice > 0 && ref > opts.MaxPrice {
			continue
		}

		sp := ScoredPlayer{
			Key:            p.Key,
			DisplayName:    p.DisplayName,
			Role:           p.Role,
			BaselineValue:  price.Baseline,
			AdjustedPrice:  price.AdjustedPrice,
			TotalDelta:     price.TotalDelta,
			ReferencePrice: ref,
			FitRaw:         fitRaw(p, weights),
			ValueEdge:      clamp(price.Baseline-ref, -params.ValueEdgeCap, params.ValueEdgeCap),
		}
		if fit, ok := percentiles.StrategyFit(p.Key, p.Role, weights); ok {
			sp.StrategyFit = fit
		}
		sp.NeedBoost, sp.EligibleSlotHint = needBoost(p, snap, params)

		scored = append(scored, sp)
	}

	normalizeFit(scored, params.FitScale)
	for i := range scored {
		scored[i].Composite = scored[i].FitNorm + params.ValueEdgeWeight*scored[i].ValueEdge + scored[i].NeedBoost
	}

	// Stable input order breaks composite ties; the canonical key makes
	// the order permutation-independent on top of that.
	ranked := make([]ScoredPlayer, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Composite != ranked[j].Composite {
			return ranked[i].Composite > ranked[j].Composite
		}
		return ranked[i].Key < ranked[j].Key
	})

	return Result{
		Ranked: ranked,
		Needs:  needsView(ranked),
		Value:  valueView(scored),
		Fit:    fitView(scored),
	}
}

// fitRaw sums weight-scaled raw category stats over the player's
// role-specific categories. Zero-weight categories are skipped; a player
// with no contributing category yields 0.
func fitRaw(p *models.PlayerRecord, weights models.CategoryWeights) float64 {
	sum := 0.0
	for _, cat := range models.CategoriesForRole(p.Role) {
		value, ok := p.CategoryStats[cat]
		if !ok {
			continue
		}
		weight := weights.WeightFor(cat)
		if weight == 0 {
			continue
		}
		sum += weight * value
	}
	return sum
}

// referencePrice picks what the player would cost right now: the live
// auction price when one is known, else the market estimate when positive,
// else the projection baseline.
func referencePrice(p *models.PlayerRecord, snap *models.Snapshot) float64 {
	if live, ok := snap.LivePriceFor(p.Key); ok {
		return live
	}
	if p.Anchors.Market != nil && *p.Anchors.Market > 0 {
		return *p.Anchors.Market
	}
	return valuation.Baseline(p, valuation.ModeProjection)
}

// needBoost returns the largest per-tier boost over the empty slots the
// player can fill, plus the winning slot id. No eligible empty slot means
// no boost.
func needBoost(p *models.PlayerRecord, snap *models.Snapshot, params Params) (float64, string) {
	if snap == nil {
		return 0, ""
	}
	best := 0.0
	hint := ""
	for _, slot := range eligibility.EligibleSlots(p, snap.EmptySlots) {
		boost := params.TierBoosts[slot.Tier]
		if boost > best {
			best = boost
			hint = slot.ID
		}
	}
	return best, hint
}

// normalizeFit min–max scales FitRaw across the surviving set onto
// [0, scale]. A degenerate set (max == min) scores 0 for everyone rather
// than dividing by zero.
func normalizeFit(scored []ScoredPlayer, scale float64) {
	if len(scored) == 0 {
		return
	}
	min, max := scored[0].FitRaw, scored[0].FitRaw
	for _, sp := range scored[1:] {
		if sp.FitRaw < min {
			min = sp.FitRaw
		}
		if sp.FitRaw > max {
			max = sp.FitRaw
		}
	}
	if max == min {
		return
	}
	for i := range scored {
		scored[i].FitNorm = scale * (scored[i].FitRaw - min) / (max - min)
	}
}

func needsView(ranked []ScoredPlayer) []ScoredPlayer {
	var needs []ScoredPlayer
	for _, sp := range ranked {
		if sp.NeedBoost > 0 {
			needs = append(needs, sp)
		}
	}
	return needs
}

func valueView(scored []ScoredPlayer) []ScoredPlayer {
	view := make([]ScoredPlayer, len(scored))
	copy(view, scored)
	sort.SliceStable(view, func(i, j int) bool {
		ei := view[i].BaselineValue - view[i].ReferencePrice
		ej := view[j].BaselineValue - view[j].ReferencePrice
		if ei != ej {
			return ei > ej
		}
		return view[i].Key < view[j].Key
	})
	return view
}

func fitView(scored []ScoredPlayer) []ScoredPlayer {
	view := make([]ScoredPlayer, len(scored))
	copy(view, scored)
	sort.SliceStable(view, func(i, j int) bool {
		if view[i].FitNorm != view[j].FitNorm {
			return view[i].FitNorm > view[j].FitNorm
		}
		return view[i].Key < view[j].Key
	})
	return view
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
