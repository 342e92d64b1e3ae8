package models

// SlotKind is the eligibility rule family a roster slot belongs to.
// Replaces slot-key prefix checks with an explicit tag.
type SlotKind int

const (
	SlotPitching SlotKind = iota
	SlotUtility
	SlotOutfield
	SlotComposite
	SlotStandard
)

func (k SlotKind) String() string {
	switch k {
	case SlotPitching:
		return "pitching"
	case SlotUtility:
		return "utility"
	case SlotOutfield:
		return "outfield"
	case SlotComposite:
		return "composite"
	case SlotStandard:
		return "standard"
	default:
		return "unknown"
	}
}

// SlotTier ranks how hard a slot is to fill. Harder slots earn a larger
// recommendation boost.
type SlotTier int

const (
	TierPitching SlotTier = iota
	TierUtility
	TierStandard
	TierScarce // composite and outfield slots
)

// RosterSlot is one slot in the auction roster. Kind and Positions together
// define the eligibility predicate; Tier drives need-boost magnitude.
type RosterSlot struct {
	ID        string   `json:"id"`
	Role      Role     `json:"role"`
	Kind      SlotKind `json:"kind"`
	Positions []string `json:"positions,omitempty"` // standard/composite acceptance set
	Tier      SlotTier `json:"tier"`
}
