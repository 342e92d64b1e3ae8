package models

// Scoring category sets are role-specific and disjoint. Each role only
// ever iterates its own list.
var (
	HitterCategories  = []string{"AVG", "OPS", "HR", "R", "RBI", "SB"}
	PitcherCategories = []string{"W", "SV", "SO", "ERA", "WHIP"}
)

// lowerIsBetter marks categories where a smaller raw value is the better
// one, so percentile ranks get inverted.
var lowerIsBetter = map[string]bool{
	"ERA":  true,
	"WHIP": true,
}

// CategoriesForRole returns the category list for a role. Unknown roles
// have no categories.
func CategoriesForRole(role Role) []string {
	switch role {
	case RoleHitter:
		return HitterCategories
	case RolePitcher:
		return PitcherCategories
	default:
		return nil
	}
}

// LowerIsBetter reports whether a category ranks inversely (ERA, WHIP).
func LowerIsBetter(category string) bool {
	return lowerIsBetter[category]
}

// CategoryWeights is a user-chosen multiplier per stat category. Unknown
// categories default to the neutral weight 1.0.
type CategoryWeights map[string]float64

// WeightFor returns the configured weight for a category, defaulting to
// 1.0 when the category is not present in the set.
func (w CategoryWeights) WeightFor(category string) float64 {
	if w == nil {
		return 1.0
	}
	if v, ok := w[category]; ok {
		return v
	}
	return 1.0
}
