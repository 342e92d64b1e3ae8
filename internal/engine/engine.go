package engine

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/auction-valuator/internal/identity"
	"github.com/jstittsworth/auction-valuator/internal/ingest"
	"github.com/jstittsworth/auction-valuator/internal/models"
	"github.com/jstittsworth/auction-valuator/internal/recommend"
	"github.com/jstittsworth/auction-valuator/internal/valuation"
	"github.com/jstittsworth/auction-valuator/pkg/config"
	"github.com/jstittsworth/auction-valuator/pkg/logger"
)

// Engine bundles the valuation pipeline behind one surface. Every
// operation is a pure function of its explicit inputs plus the snapshot
// the caller hands in; the engine holds no state that could go stale
// between calls.
type Engine struct {
	log      *logrus.Logger
	mode     valuation.BaselineMode
	vparams  valuation.Params
	sparams  recommend.Params
	resolver identity.Resolver
}

// New builds an engine with stock tuning.
func New(log *logrus.Logger) *Engine {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Engine{
		log:     log,
		mode:    valuation.ModeProjection,
		vparams: valuation.DefaultParams(),
		sparams: recommend.DefaultParams(),
	}
}

// NewFromConfig builds an engine tuned by the loaded configuration.
func NewFromConfig(cfg *config.Config, log *logrus.Logger) *Engine {
	e := New(log)
	e.vparams = valuation.ParamsFromConfig(cfg)
	e.sparams = recommend.ParamsFromConfig(cfg)
	if cfg.BaselineMode == string(valuation.ModeMarket) {
		e.mode = valuation.ModeMarket
	}
	return e
}

// PoolBuild is a built pool plus its percentile table and build metadata.
// It is a pure function of the input sheets; the load id correlating a
// build's log lines stays out of it so identical inputs compare equal.
type PoolBuild struct {
	Pool        *models.Pool
	Percentiles *valuation.PercentileTable
	RowCount    int
}

// SourceSheet is one tabular source: a name for log context plus its rows.
type SourceSheet struct {
	Name string
	Rows []ingest.SourceRow
}

// BuildPool parses every sheet, resolves identities across them, and
// computes the pool's percentile table. A reload is a full rebuild and a
// full dedupe; nothing is incremental.
func (e *Engine) BuildPool(sheets []SourceSheet) PoolBuild {
	var records []models.PlayerRecord
	rowCount := 0
	for _, sheet := range sheets {
		rowCount += len(sheet.Rows)
		records = append(records, ingest.ParseRows(sheet.Rows, sheet.Name)...)
	}

	pool := e.resolver.BuildPool(records)
	percentiles := valuation.BuildPercentiles(pool, e.vparams)

	e.log.WithFields(logrus.Fields{
		"load_id":   uuid.New().String(),
		"sources":   len(sheets),
		"rows":      rowCount,
		"players":   pool.Size(),
		"has_stats": pool.HasCategoryStats,
	}).Info("player pool built")

	return PoolBuild{
		Pool:        pool,
		Percentiles: percentiles,
		RowCount:    rowCount,
	}
}

// Find matches free-text input against the last built pool. A miss is a
// "no match" result, not an error.
func (e *Engine) Find(freeText string) (*models.PlayerRecord, bool) {
	return e.resolver.Find(freeText)
}

// PlayerValuation is the priced output for one player.
type PlayerValuation struct {
	Key           string  `json:"key"`
	DisplayName   string  `json:"display_name"`
	BaselineValue float64 `json:"baseline_value"`
	AdjustedPrice float64 `json:"adjusted_price"`
	TotalDelta    float64 `json:"total_delta"`
}

// Valuations prices every pool member against the caller's weights and
// targets. Target plans feed the market delta; untargeted players price on
// strategy delta alone.
func (e *Engine) Valuations(pool *models.Pool, snap *models.Snapshot) []PlayerValuation {
	if pool == nil {
		return nil
	}
	var weights models.CategoryWeights
	if snap != nil {
		weights = snap.Weights
	}
	out := make([]PlayerValuation, 0, len(pool.Players))
	for i := range pool.Players {
		p := &pool.Players[i]
		price := valuation.ValuePlayer(p, weights, snap.PlanFor(p.Key), e.mode, e.vparams)
		out = append(out, PlayerValuation{
			Key:           p.Key,
			DisplayName:   p.DisplayName,
			BaselineValue: price.Baseline,
			AdjustedPrice: price.AdjustedPrice,
			TotalDelta:    price.TotalDelta,
		})
	}
	return out
}

// Value prices a single player against the caller's weights and plan.
func (e *Engine) Value(p *models.PlayerRecord, weights models.CategoryWeights, plan float64) valuation.PriceResult {
	return valuation.ValuePlayer(p, weights, plan, e.mode, e.vparams)
}

// Recommend scores and ranks a candidate pool against the snapshot's
// roster state, returning the ranked set and its needs/value/fit views.
func (e *Engine) Recommend(build PoolBuild, snap *models.Snapshot, maxPrice float64) recommend.Result {
	return recommend.Score(build.Pool, build.Percentiles, snap, recommend.Options{
		Mode:     e.mode,
		MaxPrice: maxPrice,
	}, e.vparams, e.sparams)
}
