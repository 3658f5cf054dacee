package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Family struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Children []Child `json:"children,omitempty"`
}

func (f *Family) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type Child struct {
	ID        string     `gorm:"type:uuid;primaryKey" json:"id"`
	FamilyID  string     `gorm:"type:uuid;index;not null" json:"family_id"`
	Name      string     `gorm:"not null" json:"name"`
	Age       int        `json:"age"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *Child) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// AgeYears prefers the stored birthdate over the stored age.
func (c *Child) AgeYears(now time.Time) int {
	if c.Birthdate == nil || c.Birthdate.IsZero() {
		return c.Age
	}
	years := now.Year() - c.Birthdate.Year()
	anniversary := c.Birthdate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
