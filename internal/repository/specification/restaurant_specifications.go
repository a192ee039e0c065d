package specification

import "gorm.io/gorm"

// ActiveOnly keeps restaurants that are still eligible for display.
// Deactivated restaurants stay in the table but drop out of list/detail reads.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
