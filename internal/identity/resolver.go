package identity

import (
	"sort"

	"github.com/jstittsworth/auction-valuator/internal/models"
	"github.com/jstittsworth/auction-valuator/pkg/logger"
)

// Key returns the canonical identity for a record. Records carrying an
// explicit external identifier key on it; everything else keys on role code
// plus normalized display name so the same name never collides across
// roles.
func Key(rec *models.PlayerRecord) string {
	if rec.ExternalID != "" {
		return "id:" + rec.ExternalID
	}
	return rec.Role.Code() + ":" + Normalize(rec.DisplayName)
}

// Resolver matches free-text names against a built pool and owns the
// dedupe that produces it.
type Resolver struct {
	byName map[string][]*models.PlayerRecord
}

// BuildPool assigns canonical keys, collapses duplicate rows, and computes
// the pool's category-stat capability flag. Pool order is first-appearance
// order of each key, so repeated builds from the same rows are identical.
func (r *Resolver) BuildPool(records []models.PlayerRecord) *models.Pool {
	byKey := make(map[string][]models.PlayerRecord)
	var order []string

	for _, rec := range records {
		if rec.Key == "" {
			rec.Key = Key(&rec)
		}
		if _, seen := byKey[rec.Key]; !seen {
			order = append(order, rec.Key)
		}
		byKey[rec.Key] = append(byKey[rec.Key], rec)
	}

	pool := &models.Pool{
		Players: make([]models.PlayerRecord, 0, len(order)),
		ByKey:   make(map[string]*models.PlayerRecord, len(order)),
	}

	for _, key := range order {
		dupes := byKey[key]
		merged := mergeDuplicates(dupes)
		if len(dupes) > 1 {
			logger.WithPlayerContext(key, merged.DisplayName).
				Debugf("merged %d duplicate rows", len(dupes))
		}
		pool.Players = append(pool.Players, merged)
		if merged.StatCount() > 0 {
			pool.HasCategoryStats = true
		}
	}

	for i := range pool.Players {
		pool.ByKey[pool.Players[i].Key] = &pool.Players[i]
	}

	r.byName = make(map[string][]*models.PlayerRecord, len(pool.Players))
	for i := range pool.Players {
		name := Normalize(pool.Players[i].DisplayName)
		r.byName[name] = append(r.byName[name], &pool.Players[i])
	}

	return pool
}

// lookupCandidates produces the normalized name forms tried in order:
// the input as given, then the comma-inverted reading. Normalize already
// strips diacritics, so accented and unaccented input land on the same
// candidates.
func lookupCandidates(freeText string) []string {
	return []string{
		Normalize(freeText),
		Normalize(InvertCommaName(freeText)),
	}
}

// Find matches free-text input against the built pool. A miss is an
// expected interactive-search outcome, not an error.
func (r *Resolver) Find(freeText string) (*models.PlayerRecord, bool) {
	if r.byName == nil {
		return nil, false
	}
	for _, name := range lookupCandidates(freeText) {
		if name == "" {
			continue
		}
		if matches := r.byName[name]; len(matches) > 0 {
			return matches[0], true
		}
	}
	return nil, false
}

// FindByRole is Find restricted to one role, for callers that already know
// which half of the pool they are searching.
func (r *Resolver) FindByRole(freeText string, role models.Role) (*models.PlayerRecord, bool) {
	if r.byName == nil {
		return nil, false
	}
	for _, name := range lookupCandidates(freeText) {
		for _, match := range r.byName[name] {
			if match.Role == role {
				return match, true
			}
		}
	}
	return nil, false
}

// mergeDuplicates collapses rows sharing a canonical key into one record.
// The winner is chosen by a total order so the result is independent of
// input order; loser fields backfill the winner's gaps without overwriting
// anything the winner already has.
func mergeDuplicates(dupes []models.PlayerRecord) models.PlayerRecord {
	if len(dupes) == 1 {
		return dupes[0]
	}

	sorted := make([]models.PlayerRecord, len(dupes))
	copy(sorted, dupes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return recordLess(&sorted[j], &sorted[i])
	})

	winner := sorted[0]
	// Copy maps and slices so backfill never aliases a source row.
	winner.Positions = copyBoolSet(winner.Positions)
	winner.CategoryStats = copyStats(winner.CategoryStats)
	winner.Flags = append([]string(nil), winner.Flags...)

	for _, loser := range sorted[1:] {
		backfill(&winner, &loser)
	}
	return winner
}

// recordLess orders a strictly below b for dedupe purposes: lower anchor,
// then fewer populated stats, then unaccented display name, then not
// draftable. Display name and team break any remaining tie so the order is
// total.
func recordLess(a, b *models.PlayerRecord) bool {
	if a.BestAnchor() != b.BestAnchor() {
		return a.BestAnchor() < b.BestAnchor()
	}
	if a.StatCount() != b.StatCount() {
		return a.StatCount() < b.StatCount()
	}
	aAccent, bAccent := HasDiacritics(a.DisplayName), HasDiacritics(b.DisplayName)
	if aAccent != bAccent {
		return !aAccent
	}
	if a.Draftable != b.Draftable {
		return !a.Draftable
	}
	if a.DisplayName != b.DisplayName {
		return a.DisplayName < b.DisplayName
	}
	return a.Team < b.Team
}

func backfill(winner, loser *models.PlayerRecord) {
	if winner.Team == "" {
		winner.Team = loser.Team
	}
	if winner.ExternalID == "" {
		winner.ExternalID = loser.ExternalID
	}
	if len(winner.Positions) == 0 && len(loser.Positions) > 0 {
		winner.Positions = copyBoolSet(loser.Positions)
	}
	for cat, v := range loser.CategoryStats {
		if _, ok := winner.CategoryStats[cat]; !ok {
			if winner.CategoryStats == nil {
				winner.CategoryStats = make(map[string]float64)
			}
			winner.CategoryStats[cat] = v
		}
	}
	if winner.Anchors.Projection == nil {
		winner.Anchors.Projection = loser.Anchors.Projection
	}
	if winner.Anchors.Market == nil {
		winner.Anchors.Market = loser.Anchors.Market
	}
	if winner.Anchors.PriorYear == nil {
		winner.Anchors.PriorYear = loser.Anchors.PriorYear
	}
	for _, flag := range loser.Flags {
		if !containsFlag(winner.Flags, flag) {
			winner.Flags = append(winner.Flags, flag)
		}
	}
	winner.Draftable = winner.Draftable || loser.Draftable
}

func containsFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}

func copyBoolSet(in map[string]bool) map[string]bool {
	if in == nil {
		return nil
	}
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyStats(in map[string]float64) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
