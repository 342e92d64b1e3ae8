package store

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"

	"github.com/jstittsworth/auction-valuator/internal/models"
	"github.com/jstittsworth/auction-valuator/pkg/database"
)

// Store persists the caller-owned draft state: roster entries, targets,
// category weights, and live prices. The valuation core never imports this
// package; callers load a Snapshot here and pass it in.
type Store struct {
	db     *database.DB
	logger *logrus.Logger
}

// New wires a store on an open connection and migrates its tables.
func New(db *database.DB, logger *logrus.Logger) (*Store, error) {
	if err := db.AutoMigrate(
		&models.RosterEntry{},
		&models.Target{},
		&models.WeightSetting{},
		&models.LivePrice{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate store tables: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// AddRosterEntry records a bought player. Positions are stored as a JSON
// array.
func (s *Store) AddRosterEntry(playerKey string, role models.Role, positions []string, slotID string, price float64) error {
	posJSON, err := json.Marshal(positions)
	if err != nil {
		return fmt.Errorf("failed to encode positions: %w", err)
	}
	entry := models.RosterEntry{
		PlayerKey: playerKey,
		Role:      role,
		Positions: datatypes.JSON(posJSON),
		SlotID:    slotID,
		Price:     price,
	}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to save roster entry: %w", err)
	}
	return nil
}

// RemoveRosterEntry drops a roster entry by player key.
func (s *Store) RemoveRosterEntry(playerKey string) error {
	return s.db.Delete(&models.RosterEntry{}, "player_key = ?", playerKey).Error
}

// Roster returns every roster entry.
func (s *Store) Roster() ([]models.RosterEntry, error) {
	var entries []models.RosterEntry
	if err := s.db.Order("created_at").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	return entries, nil
}

// SetTarget saves or updates a planned bid.
func (s *Store) SetTarget(target models.Target) error {
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&target).Error; err != nil {
		return fmt.Errorf("failed to save target: %w", err)
	}
	return nil
}

// RemoveTarget drops a target by player key.
func (s *Store) RemoveTarget(playerKey string) error {
	return s.db.Delete(&models.Target{}, "player_key = ?", playerKey).Error
}

// Targets returns every saved target.
func (s *Store) Targets() ([]models.Target, error) {
	var targets []models.Target
	if err := s.db.Order("player_key").Find(&targets).Error; err != nil {
		return nil, fmt.Errorf("failed to load targets: %w", err)
	}
	return targets, nil
}

// SetWeight saves a category weight.
func (s *Store) SetWeight(category string, weight float64) error {
	setting := models.WeightSetting{Category: category, Weight: weight}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&setting).Error; err != nil {
		return fmt.Errorf("failed to save weight: %w", err)
	}
	return nil
}

// SetLivePrice records the latest observed auction price for a player.
func (s *Store) SetLivePrice(playerKey string, price float64) error {
	lp := models.LivePrice{PlayerKey: playerKey, Price: price}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&lp).Error; err != nil {
		return fmt.Errorf("failed to save live price: %w", err)
	}
	return nil
}

// LoadSnapshot assembles the read-only view the scorer consumes. Empty
// slots are the default slot table minus slots already filled by roster
// entries.
func (s *Store) LoadSnapshot(allSlotIDs []string) (*models.Snapshot, error) {
	snap := &models.Snapshot{
		RosteredKeys: make(map[string]bool),
		Targets:      make(map[string]models.Target),
		Weights:      make(models.CategoryWeights),
		LivePrices:   make(map[string]float64),
	}

	entries, err := s.Roster()
	if err != nil {
		return nil, err
	}
	filled := make(map[string]bool)
	for _, entry := range entries {
		snap.RosteredKeys[entry.PlayerKey] = true
		if entry.SlotID != "" {
			filled[entry.SlotID] = true
		}
	}
	for _, id := range allSlotIDs {
		if !filled[id] {
			snap.EmptySlots = append(snap.EmptySlots, id)
		}
	}

	targets, err := s.Targets()
	if err != nil {
		return nil, err
	}
	for _, t := range targets {
		snap.Targets[t.PlayerKey] = t
	}

	var weights []models.WeightSetting
	if err := s.db.Find(&weights).Error; err != nil {
		return nil, fmt.Errorf("failed to load weights: %w", err)
	}
	for _, w := range weights {
		snap.Weights[w.Category] = w.Weight
	}

	var prices []models.LivePrice
	if err := s.db.Find(&prices).Error; err != nil {
		return nil, fmt.Errorf("failed to load live prices: %w", err)
	}
	for _, p := range prices {
		snap.LivePrices[p.PlayerKey] = p.Price
	}

	s.logger.WithFields(logrus.Fields{
		"roster":      len(entries),
		"targets":     len(targets),
		"empty_slots": len(snap.EmptySlots),
	}).Debug("snapshot loaded")

	return snap, nil
}
