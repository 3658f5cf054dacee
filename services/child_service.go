// services/child_service.go
package services

import (
	"strings"
	"time"

	"littlemeals/config"
	"littlemeals/models"
	"littlemeals/utils"
)

type ChildService struct{}

func NewChildService() *ChildService {
	return &ChildService{}
}

type ChildRequest struct {
	Name      string     `json:"name"`
	Age       int        `json:"age"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
}

func (s *ChildService) AddChild(familyID string, req ChildRequest) (*models.Child, error) {
	name := utils.SanitizeInput(req.Name)
	if strings.TrimSpace(name) == "" {
		return nil, utils.ValidationError{
			Field:   "name",
			Message: "Child name is required",
			Code:    utils.CodeRequiredField,
		}
	}
	age := req.Age
	if age < 0 {
		age = 0
	}
	child := &models.Child{
		FamilyID:  familyID,
		Name:      name,
		Age:       age,
		Birthdate: req.Birthdate,
	}
	if err := config.DB.Create(child).Error; err != nil {
		return nil, err
	}
	return child, nil
}

// ListChildren returns the authoritative children collection for a
// family, in a stable order. This is the list the validation engine is
// handed for every meal candidate.
func (s *ChildService) ListChildren(familyID string) ([]models.Child, error) {
	var children []models.Child
	err := config.DB.
		Where("family_id = ?", familyID).
		Order("created_at ASC").
		Find(&children).Error
	return children, err
}

func (s *ChildService) GetChild(familyID, childID string) (*models.Child, error) {
	var child models.Child
	err := config.DB.
		Where("id = ? AND family_id = ?", childID, familyID).
		First(&child).Error
	if err != nil {
		return nil, err
	}
	return &child, nil
}

func (s *ChildService) UpdateChild(familyID, childID string, req ChildRequest) (*models.Child, error) {
	child, err := s.GetChild(familyID, childID)
	if err != nil {
		return nil, err
	}
	name := utils.SanitizeInput(req.Name)
	if strings.TrimSpace(name) == "" {
		return nil, utils.ValidationError{
			Field:   "name",
			Message: "Child name is required",
			Code:    utils.CodeRequiredField,
		}
	}
	child.Name = name
	if req.Age >= 0 {
		child.Age = req.Age
	}
	if req.Birthdate != nil {
		child.Birthdate = req.Birthdate
	}
	if err := config.DB.Save(child).Error; err != nil {
		return nil, err
	}
	return child, nil
}

func (s *ChildService) RemoveChild(familyID, childID string) error {
	return config.DB.
		Where("id = ? AND family_id = ?", childID, familyID).
		Delete(&models.Child{}).Error
}
