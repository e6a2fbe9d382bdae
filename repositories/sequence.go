package repositories

import (
	"fmt"

	"github.com/teamtrack-simple/models"
	"gorm.io/gorm"
)

// NextID mints the next sequential display id for a prefix, e.g.
// NextID(tx, "Task") -> "Task-00042". Must be called inside the transaction
// that creates the entity so an aborted create does not burn the number.
func NextID(tx *gorm.DB, prefix string) (string, error) {
	// Upsert-increment works on both postgres and sqlite
	err := tx.Exec(
		"INSERT INTO sequences (name, value) VALUES (?, 1) ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1",
		prefix,
	).Error
	if err != nil {
		return "", err
	}

	var seq models.Sequence
	if err := tx.Where("name = ?", prefix).First(&seq).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%05d", prefix, seq.Value), nil
}
