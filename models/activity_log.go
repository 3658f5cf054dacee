package models

import "time"

const (
	ActivityMealLogged  = "meal.logged"
	ActivityMealUpdated = "meal.updated"
	ActivityMealDeleted = "meal.deleted"
)

// ActivityEntry is one row in a family's activity feed.
type ActivityEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FamilyID  string    `gorm:"type:uuid;index;not null" json:"family_id"`
	Type      string    `gorm:"size:32" json:"type"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
