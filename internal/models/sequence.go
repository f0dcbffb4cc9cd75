package models

import (
	"sync/atomic"

	"gorm.io/gorm"
)

// Identifiers are unique across every entity type, not per table. A single
// process-wide counter hands them out; PrimeSequence seats it above any id
// already present so re-seeded or imported data never collides.
var idSequence atomic.Uint64

// NextID returns the next marketplace-wide identifier.
func NextID() uint {
	return uint(idSequence.Add(1))
}

// PrimeSequence advances the shared counter past the highest id stored in any
// table. Called after migration and after bulk seeding.
func PrimeSequence(db *gorm.DB) error {
	tables := []string{
		"users",
		"vendors",
		"categories",
		"products",
		"orders",
		"order_items",
		"reviews",
		"cart_items",
		"favorites",
		"messages",
		"suppliers",
	}

	var highest uint64
	for _, table := range tables {
		var maxID *uint64
		if err := db.Table(table).Select("MAX(id)").Scan(&maxID).Error; err != nil {
			return err
		}
		if maxID != nil && *maxID > highest {
			highest = *maxID
		}
	}

	for {
		current := idSequence.Load()
		if current >= highest {
			return nil
		}
		if idSequence.CompareAndSwap(current, highest) {
			return nil
		}
	}
}
