package models

// Sequence backs the sequential display ids (User-00001, Task-00042, ...).
// One row per entity prefix, incremented inside the minting transaction.
type Sequence struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}
