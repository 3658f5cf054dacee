// services/family_service.go
package services

import (
	"strings"

	"littlemeals/config"
	"littlemeals/models"
	"littlemeals/utils"
)

type FamilyService struct{}

func NewFamilyService() *FamilyService {
	return &FamilyService{}
}

func (s *FamilyService) CreateFamily(name string) (*models.Family, error) {
	name = utils.SanitizeInput(name)
	if strings.TrimSpace(name) == "" {
		return nil, utils.ValidationError{
			Field:   "name",
			Message: "Family name is required",
			Code:    utils.CodeRequiredField,
		}
	}
	family := &models.Family{Name: name}
	if err := config.DB.Create(family).Error; err != nil {
		return nil, err
	}
	return family, nil
}

func (s *FamilyService) GetFamily(familyID string) (*models.Family, error) {
	var family models.Family
	err := config.DB.
		Preload("Children").
		First(&family, "id = ?", familyID).Error
	if err != nil {
		return nil, err
	}
	return &family, nil
}
