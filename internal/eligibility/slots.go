package eligibility

import (
	"github.com/jstittsworth/auction-valuator/internal/models"
)

// outfieldPositions is the acceptance set shared by the outfield slots.
var outfieldPositions = []string{"OF", "LF", "CF", "RF"}

// DefaultSlots is the static roster slot table for a standard auction
// roster. Kind and Tier are fixed at table-definition time; eligibility
// never inspects slot id strings.
var DefaultSlots = []models.RosterSlot{
	{ID: "C", Role: models.RoleHitter, Kind: models.SlotStandard, Positions: []string{"C"}, Tier: models.TierStandard},
	{ID: "1B", Role: models.RoleHitter, Kind: models.SlotStandard, Positions: []string{"1B"}, Tier: models.TierStandard},
	{ID: "2B", Role: models.RoleHitter, Kind: models.SlotStandard, Positions: []string{"2B"}, Tier: models.TierStandard},
	{ID: "3B", Role: models.RoleHitter, Kind: models.SlotStandard, Positions: []string{"3B"}, Tier: models.TierStandard},
	{ID: "SS", Role: models.RoleHitter, Kind: models.SlotStandard, Positions: []string{"SS"}, Tier: models.TierStandard},
	{ID: "CI", Role: models.RoleHitter, Kind: models.SlotComposite, Positions: []string{"1B", "3B"}, Tier: models.TierScarce},
	{ID: "MI", Role: models.RoleHitter, Kind: models.SlotComposite, Positions: []string{"2B", "SS"}, Tier: models.TierScarce},
	{ID: "OF1", Role: models.RoleHitter, Kind: models.SlotOutfield, Positions: outfieldPositions, Tier: models.TierScarce},
	{ID: "OF2", Role: models.RoleHitter, Kind: models.SlotOutfield, Positions: outfieldPositions, Tier: models.TierScarce},
	{ID: "UTIL", Role: models.RoleHitter, Kind: models.SlotUtility, Tier: models.TierUtility},
	{ID: "P1", Role: models.RolePitcher, Kind: models.SlotPitching, Tier: models.TierPitching},
	{ID: "P2", Role: models.RolePitcher, Kind: models.SlotPitching, Tier: models.TierPitching},
	{ID: "P3", Role: models.RolePitcher, Kind: models.SlotPitching, Tier: models.TierPitching},
	{ID: "P4", Role: models.RolePitcher, Kind: models.SlotPitching, Tier: models.TierPitching},
	{ID: "P5", Role: models.RolePitcher, Kind: models.SlotPitching, Tier: models.TierPitching},
	{ID: "P6", Role: models.RolePitcher, Kind: models.SlotPitching, Tier: models.TierPitching},
	{ID: "P7", Role: models.RolePitcher, Kind: models.SlotPitching, Tier: models.TierPitching},
	{ID: "P8", Role: models.RolePitcher, Kind: models.SlotPitching, Tier: models.TierPitching},
	{ID: "P9", Role: models.RolePitcher, Kind: models.SlotPitching, Tier: models.TierPitching},
}

// SlotByID returns the slot definition for an id, or false when the id is
// not in the table.
func SlotByID(id string) (models.RosterSlot, bool) {
	for _, slot := range DefaultSlots {
		if slot.ID == id {
			return slot, true
		}
	}
	return models.RosterSlot{}, false
}

// CanFill reports whether a player satisfies a slot's eligibility
// predicate.
func CanFill(player *models.PlayerRecord, slot models.RosterSlot) bool {
	switch slot.Kind {
	case models.SlotPitching:
		return player.Role == models.RolePitcher
	case models.SlotUtility:
		return player.Role == models.RoleHitter
	case models.SlotOutfield, models.SlotComposite:
		if player.Role != models.RoleHitter {
			return false
		}
		for _, pos := range slot.Positions {
			if player.HasPosition(pos) {
				return true
			}
		}
		return false
	case models.SlotStandard:
		if player.Role != models.RoleHitter {
			return false
		}
		for _, pos := range slot.Positions {
			if player.HasPosition(pos) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// EligibleSlots returns every currently-empty slot the player could fill,
// in the order the empty slot ids were given. Unknown slot ids are
// skipped.
func EligibleSlots(player *models.PlayerRecord, emptySlotIDs []string) []models.RosterSlot {
	var eligible []models.RosterSlot
	for _, id := range emptySlotIDs {
		slot, ok := SlotByID(id)
		if !ok {
			continue
		}
		if CanFill(player, slot) {
			eligible = append(eligible, slot)
		}
	}
	return eligible
}
