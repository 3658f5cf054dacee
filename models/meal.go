package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealType is a closed set; anything else fails validation.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// MealTypes lists the valid meal types in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// ResponseType records how a child responded to a meal.
// The empty string means "not yet recorded".
type ResponseType string

const (
	ResponseEaten   ResponseType = "eaten"
	ResponsePartial ResponseType = "partial"
	ResponseRefused ResponseType = "refused"
	ResponseUnset   ResponseType = ""
)

var ResponseTypes = []ResponseType{ResponseEaten, ResponsePartial, ResponseRefused}

// One logged eating event for a family: a food, a meal slot, a date,
// and one response per child.
type MealRecord struct {
	ID       string    `gorm:"type:uuid;primaryKey" json:"id"`
	FamilyID string    `gorm:"type:uuid;index;not null" json:"family_id"`
	FoodName string    `gorm:"not null" json:"food_name"`
	MealType MealType  `gorm:"type:varchar(16);not null" json:"meal_type"`
	Date     time.Time `gorm:"index" json:"date"`
	Notes    string    `gorm:"type:text" json:"notes,omitempty"`
	LoggedBy string    `json:"logged_by,omitempty"` // opaque caregiver handle

	ChildResponses []ChildResponse `json:"child_responses"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *MealRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ChildResponse is one child's outcome for one meal record.
type ChildResponse struct {
	ID           string       `gorm:"type:uuid;primaryKey" json:"id"`
	MealRecordID string       `gorm:"type:uuid;index;not null" json:"meal_record_id"`
	ChildID      string       `gorm:"type:uuid;index;not null" json:"child_id"`
	Response     ResponseType `gorm:"type:varchar(16)" json:"response"`
	Notes        string       `gorm:"type:text" json:"notes,omitempty"`
	Timestamp    *time.Time   `json:"timestamp,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *ChildResponse) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
