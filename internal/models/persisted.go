package models

import (
	"time"

	"gorm.io/datatypes"
)

// Persisted state lives in the caller-owned local store. The engine core
// reads snapshots of these and never writes them.

// RosterEntry is a player the user has already bought.
type RosterEntry struct {
	PlayerKey string         `gorm:"primaryKey;size:120" json:"player_key"`
	Role      Role           `gorm:"size:10;not null" json:"role"`
	Positions datatypes.JSON `json:"positions"`
	SlotID    string         `gorm:"size:10" json:"slot_id"`
	Price     float64        `json:"price"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (RosterEntry) TableName() string {
	return "roster_entries"
}

// Target is a user's planned bid for a player. Consumed read-only by the
// valuation engine; the engine never mutates it.
type Target struct {
	PlayerKey string    `gorm:"primaryKey;size:120" json:"player_key"`
	Plan      float64   `json:"plan"`
	HardMax   float64   `json:"hard_max"`
	Tier      int       `json:"tier"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Target) TableName() string {
	return "targets"
}

// WeightSetting is one persisted category weight.
type WeightSetting struct {
	Category  string    `gorm:"primaryKey;size:20" json:"category"`
	Weight    float64   `gorm:"default:1" json:"weight"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WeightSetting) TableName() string {
	return "weight_settings"
}

// LivePrice is the latest observed auction price for a player.
type LivePrice struct {
	PlayerKey string    `gorm:"primaryKey;size:120" json:"player_key"`
	Price     float64   `json:"price"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LivePrice) TableName() string {
	return "live_prices"
}
