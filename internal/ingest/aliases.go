package ingest

// Source sheets expose the same logical value under many column spellings.
// Each logical field carries an ordered alias list, resolved once per row
// at ingestion; nothing downstream ever re-guesses column names.

// fieldAliases maps each identity/anchor field to its accepted column
// names, in lookup order.
var fieldAliases = map[string][]string{
	"name":       {"Player", "Name", "PLAYER", "player_name", "PlayerName"},
	"team":       {"Team", "Tm", "TEAM", "team_abbr"},
	"role":       {"Role", "Type", "PlayerType", "pos_type"},
	"positions":  {"Pos", "Position", "Positions", "Elig", "eligible_positions"},
	"id":         {"PlayerId", "player_id", "ID", "MLBID", "FangraphsId"},
	"projection": {"Dollars", "Proj$", "ProjValue", "projected_value", "AuctionValue"},
	"market":     {"Market", "ADP$", "AvgPrice", "avg_auction_price", "MarketValue"},
	"prioryear":  {"LastYr$", "PrevValue", "prior_price", "2024$"},
	"flags":      {"Notes", "Flags", "Injury", "notes"},
	"draftable":  {"Draftable", "InPool", "draft_eligible"},
}

// statAliases maps each engine category to its accepted column names, in
// lookup order. Category sets are role-specific; parsing tries both and
// keeps whatever resolves, since hitter and pitcher sheets never share
// column names for these.
var statAliases = map[string][]string{
	"AVG":  {"AVG", "BA", "avg"},
	"OPS":  {"OPS", "ops"},
	"HR":   {"HR", "HomeRuns", "hr"},
	"R":    {"R", "Runs", "runs"},
	"RBI":  {"RBI", "rbi"},
	"SB":   {"SB", "StolenBases", "sb"},
	"W":    {"W", "Wins", "wins"},
	"SV":   {"SV", "Saves", "saves"},
	"SO":   {"SO", "K", "Strikeouts", "strikeouts"},
	"ERA":  {"ERA", "era"},
	"WHIP": {"WHIP", "whip"},
}

// lookup returns the first populated alias value for a logical field.
func lookup(row SourceRow, field string) (string, bool) {
	for _, alias := range fieldAliases[field] {
		if v, ok := row[alias]; ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// lookupStat returns the first populated alias value for a category.
func lookupStat(row SourceRow, category string) (string, bool) {
	for _, alias := range statAliases[category] {
		if v, ok := row[alias]; ok && v != "" {
			return v, true
		}
	}
	return "", false
}
