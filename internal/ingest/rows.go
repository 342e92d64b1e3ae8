package ingest

import (
	"strconv"
	"strings"

	"github.com/jstittsworth/auction-valuator/internal/models"
	"github.com/jstittsworth/auction-valuator/pkg/logger"
)

// SourceRow is one raw row from a tabular source: column name -> cell text.
type SourceRow map[string]string

// ParseRow resolves a source row into a PlayerRecord through the alias
// tables. Malformed numeric cells are treated as absent, never as zero, so
// they cannot leak into category aggregates. Returns false when the row
// carries no usable player name.
func ParseRow(row SourceRow, source string) (models.PlayerRecord, bool) {
	name, ok := lookup(row, "name")
	if !ok {
		return models.PlayerRecord{}, false
	}

	rec := models.PlayerRecord{
		DisplayName: strings.TrimSpace(name),
		Draftable:   true,
	}

	if team, ok := lookup(row, "team"); ok {
		rec.Team = strings.ToUpper(strings.TrimSpace(team))
	}
	if id, ok := lookup(row, "id"); ok {
		rec.ExternalID = strings.TrimSpace(id)
	}

	roleText, _ := lookup(row, "role")
	posText, _ := lookup(row, "positions")
	rec.Role = resolveRole(roleText, posText)
	rec.Positions = ParsePositions(posText)

	if v, ok := parseNumber(row, "projection", source, rec.DisplayName); ok {
		rec.Anchors.Projection = &v
	}
	if v, ok := parseNumber(row, "market", source, rec.DisplayName); ok {
		rec.Anchors.Market = &v
	}
	if v, ok := parseNumber(row, "prioryear", source, rec.DisplayName); ok {
		rec.Anchors.PriorYear = &v
	}

	for _, cat := range models.CategoriesForRole(rec.Role) {
		raw, ok := lookupStat(row, cat)
		if !ok {
			continue
		}
		v, ok := ParseNumeric(raw)
		if !ok {
			logger.WithSource(source).WithField("category", cat).
				Debugf("skipping malformed stat cell %q for %s", raw, rec.DisplayName)
			continue
		}
		if rec.CategoryStats == nil {
			rec.CategoryStats = make(map[string]float64)
		}
		rec.CategoryStats[cat] = v
	}

	if flags, ok := lookup(row, "flags"); ok {
		for _, f := range strings.Split(flags, ";") {
			if f = strings.TrimSpace(f); f != "" {
				rec.Flags = append(rec.Flags, f)
			}
		}
	}
	if d, ok := lookup(row, "draftable"); ok {
		rec.Draftable = parseBool(d)
	}

	return rec, true
}

// ParseRows parses a batch of rows, dropping the unusable ones.
func ParseRows(rows []SourceRow, source string) []models.PlayerRecord {
	records := make([]models.PlayerRecord, 0, len(rows))
	for _, row := range rows {
		if rec, ok := ParseRow(row, source); ok {
			records = append(records, rec)
		}
	}
	return records
}

// ParsePositions splits a free-text position field ("1B/3B", "OF, SS")
// into a position set.
func ParsePositions(text string) map[string]bool {
	if text == "" {
		return nil
	}
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '/' || r == ',' || r == '|' || r == ' '
	})
	if len(fields) == 0 {
		return nil
	}
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[strings.ToUpper(strings.TrimSpace(f))] = true
	}
	return set
}

// resolveRole picks a role from the role column when present, else infers
// it from the position text. Pitcher-looking positions mean pitcher;
// anything else with positions is a hitter.
func resolveRole(roleText, posText string) models.Role {
	if role := models.ParseRole(strings.ToLower(strings.TrimSpace(roleText))); role != models.RoleUnknown {
		return role
	}
	positions := ParsePositions(posText)
	if len(positions) == 0 {
		return models.RoleUnknown
	}
	if positions["P"] || positions["SP"] || positions["RP"] {
		return models.RolePitcher
	}
	return models.RoleHitter
}

// ParseNumeric coerces a cell into a float, tolerating currency and
// thousands formatting. Non-numeric cells report !ok rather than zero.
func ParseNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	if s == "" || s == "-" || strings.EqualFold(s, "na") || strings.EqualFold(s, "n/a") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseNumber(row SourceRow, field, source, player string) (float64, bool) {
	raw, ok := lookup(row, field)
	if !ok {
		return 0, false
	}
	v, ok := ParseNumeric(raw)
	if !ok {
		logger.WithSource(source).WithField("field", field).
			Debugf("skipping malformed cell %q for %s", raw, player)
		return 0, false
	}
	return v, true
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}
