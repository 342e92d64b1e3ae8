package models

// Role identifies which half of the player pool a record belongs to.
type Role string

const (
	RoleHitter  Role = "hitter"
	RolePitcher Role = "pitcher"
	RoleUnknown Role = "unknown"
)

// Code returns the short role code used inside canonical keys.
func (r Role) Code() string {
	switch r {
	case RoleHitter:
		return "hit"
	case RolePitcher:
		return "pit"
	default:
		return "unk"
	}
}

// ParseRole maps free-text role indicators onto a Role. Anything that is
// not recognizably a hitter or pitcher resolves to RoleUnknown.
func ParseRole(s string) Role {
	switch s {
	case "hitter", "hit", "h", "batter", "b":
		return RoleHitter
	case "pitcher", "pit", "p", "sp", "rp":
		return RolePitcher
	default:
		return RoleUnknown
	}
}

// Anchors holds the candidate baseline dollar values for a player. Any of
// the three may be absent.
type Anchors struct {
	Projection *float64 `json:"projection,omitempty"`
	Market     *float64 `json:"market,omitempty"`
	PriorYear  *float64 `json:"prior_year,omitempty"`
}

// PlayerRecord is one real-world player as known to the engine. Key and
// Role are immutable after creation; the resolver backfills other fields
// during dedupe but never rewrites these two.
type PlayerRecord struct {
	Key           string             `json:"key"`
	DisplayName   string             `json:"display_name"`
	Team          string             `json:"team"`
	Positions     map[string]bool    `json:"positions"`
	Role          Role               `json:"role"`
	CategoryStats map[string]float64 `json:"category_stats"`
	Anchors       Anchors            `json:"anchors"`
	Flags         []string           `json:"flags,omitempty"`
	ExternalID    string             `json:"external_id,omitempty"`
	Draftable     bool               `json:"draftable"`
}

// HasPosition reports whether the record's parsed position set contains pos.
func (p *PlayerRecord) HasPosition(pos string) bool {
	return p.Positions[pos]
}

// StatCount returns the number of populated category-stat fields. Used by
// the resolver's dedupe ordering.
func (p *PlayerRecord) StatCount() int {
	return len(p.CategoryStats)
}

// BestAnchor returns the largest populated anchor value, or 0 when no
// anchor is populated. Used by the resolver's dedupe ordering.
func (p *PlayerRecord) BestAnchor() float64 {
	best := 0.0
	for _, v := range []*float64{p.Anchors.Projection, p.Anchors.Market, p.Anchors.PriorYear} {
		if v != nil && *v > best {
			best = *v
		}
	}
	return best
}

// Pool is a deduplicated, keyed player pool produced by the resolver.
// HasCategoryStats is computed once at build time so downstream consumers
// never re-scan the pool to find out.
type Pool struct {
	Players          []PlayerRecord
	ByKey            map[string]*PlayerRecord
	HasCategoryStats bool
}

// Get returns the record for a canonical key, or nil.
func (p *Pool) Get(key string) *PlayerRecord {
	if p == nil || p.ByKey == nil {
		return nil
	}
	return p.ByKey[key]
}

// Size returns the number of distinct players in the pool.
func (p *Pool) Size() int {
	if p == nil {
		return 0
	}
	return len(p.Players)
}
