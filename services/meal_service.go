// services/meal_service.go
package services

import (
	"fmt"
	"time"

	"littlemeals/config"
	"littlemeals/models"
	"littlemeals/utils"
)

type MealService struct {
	childSvc *ChildService
	activity *ActivityService
}

func NewMealService(cs *ChildService, as *ActivityService) *MealService {
	return &MealService{childSvc: cs, activity: as}
}

// ChildResponseRequest mirrors one child_responses entry in the request body.
type ChildResponseRequest struct {
	ChildID   string              `json:"child_id"`
	Response  models.ResponseType `json:"response"`
	Notes     string              `json:"notes,omitempty"`
	Timestamp *time.Time          `json:"timestamp,omitempty"`
}

type MealRequest struct {
	FoodName  string                 `json:"food_name"`
	MealType  models.MealType        `json:"meal_type"`
	Date      time.Time              `json:"date"`
	Notes     string                 `json:"notes,omitempty"`
	LoggedBy  string                 `json:"logged_by,omitempty"`
	Responses []ChildResponseRequest `json:"child_responses"`
}

// buildRecord assembles a candidate from the request, sanitizing every
// free-text field before it ever reaches validation or the database.
func (s *MealService) buildRecord(familyID string, req MealRequest) *models.MealRecord {
	rec := &models.MealRecord{
		FamilyID: familyID,
		FoodName: utils.SanitizeInput(req.FoodName),
		MealType: req.MealType,
		Date:     req.Date,
		Notes:    utils.SanitizeInput(req.Notes),
		LoggedBy: utils.SanitizeInput(req.LoggedBy),
	}
	for _, r := range req.Responses {
		rec.ChildResponses = append(rec.ChildResponses, models.ChildResponse{
			ChildID:   r.ChildID,
			Response:  r.Response,
			Notes:     utils.SanitizeInput(r.Notes),
			Timestamp: r.Timestamp,
		})
	}
	return rec
}

// Validate runs the engine against a candidate without touching storage.
// Screens call this for as-you-type feedback before submitting.
func (s *MealService) Validate(familyID string, req MealRequest) (utils.ValidationResult, error) {
	children, err := s.childSvc.ListChildren(familyID)
	if err != nil {
		return utils.ValidationResult{}, err
	}
	return utils.ValidateMealRecord(s.buildRecord(familyID, req), children), nil
}

// LogMeal validates the candidate against the family's children and
// persists it only when the result is clean. On a failed validation the
// returned error is an *utils.InvalidRecordError carrying every finding.
func (s *MealService) LogMeal(familyID string, req MealRequest) (*models.MealRecord, error) {
	children, err := s.childSvc.ListChildren(familyID)
	if err != nil {
		return nil, err
	}
	rec := s.buildRecord(familyID, req)
	if err := utils.ValidateMealRecord(rec, children).Err(); err != nil {
		return nil, err
	}
	rec.ChildResponses = dedupeResponses(rec.ChildResponses)

	if err := config.DB.Create(rec).Error; err != nil {
		return nil, err
	}

	// reload with responses
	var populated models.MealRecord
	if err := config.DB.Preload("ChildResponses").
		First(&populated, "id = ?", rec.ID).Error; err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Record(familyID, models.ActivityMealLogged,
			fmt.Sprintf("%s logged for %s", populated.FoodName, populated.MealType))
	}
	return &populated, nil
}

func (s *MealService) ListMeals(familyID string) ([]models.MealRecord, error) {
	var meals []models.MealRecord
	err := config.DB.
		Preload("ChildResponses").
		Where("family_id = ?", familyID).
		Order("date DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListMealsByDateRange(familyID string, from, to time.Time) ([]models.MealRecord, error) {
	var meals []models.MealRecord
	err := config.DB.
		Preload("ChildResponses").
		Where("family_id = ? AND date >= ? AND date < ?", familyID, from, to).
		Order("date DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(familyID, mealID string) (*models.MealRecord, error) {
	var meal models.MealRecord
	err := config.DB.
		Preload("ChildResponses").
		Where("id = ? AND family_id = ?", mealID, familyID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

// UpdateMeal re-validates the full candidate and replaces the stored
// record and its responses wholesale.
func (s *MealService) UpdateMeal(familyID, mealID string, req MealRequest) (*models.MealRecord, error) {
	var meal models.MealRecord
	if err := config.DB.
		Where("id = ? AND family_id = ?", mealID, familyID).
		First(&meal).Error; err != nil {
		return nil, err
	}

	children, err := s.childSvc.ListChildren(familyID)
	if err != nil {
		return nil, err
	}
	candidate := s.buildRecord(familyID, req)
	if err := utils.ValidateMealRecord(candidate, children).Err(); err != nil {
		return nil, err
	}

	meal.FoodName = candidate.FoodName
	meal.MealType = candidate.MealType
	meal.Date = candidate.Date
	meal.Notes = candidate.Notes
	if err := config.DB.Save(&meal).Error; err != nil {
		return nil, err
	}

	// delete old responses, then re-create from the validated candidate
	if err := config.DB.
		Where("meal_record_id = ?", meal.ID).
		Delete(&models.ChildResponse{}).Error; err != nil {
		return nil, err
	}
	for _, r := range dedupeResponses(candidate.ChildResponses) {
		r.MealRecordID = meal.ID
		if err := config.DB.Create(&r).Error; err != nil {
			return nil, err
		}
	}

	var updated models.MealRecord
	if err := config.DB.Preload("ChildResponses").
		First(&updated, "id = ?", meal.ID).Error; err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Record(familyID, models.ActivityMealUpdated,
			fmt.Sprintf("%s updated", updated.FoodName))
	}
	return &updated, nil
}

func (s *MealService) DeleteMeal(familyID, mealID string) error {
	meal, err := s.GetMeal(familyID, mealID)
	if err != nil {
		return err
	}
	if err := config.DB.
		Where("meal_record_id = ?", mealID).
		Delete(&models.ChildResponse{}).Error; err != nil {
		return err
	}
	if err := config.DB.
		Where("id = ? AND family_id = ?", mealID, familyID).
		Delete(&models.MealRecord{}).Error; err != nil {
		return err
	}
	if s.activity != nil {
		s.activity.Record(familyID, models.ActivityMealDeleted,
			fmt.Sprintf("%s removed", meal.FoodName))
	}
	return nil
}

// dedupeResponses keeps one entry per child, last write wins, preserving
// first-seen order. Validation has already accepted the duplicates.
func dedupeResponses(responses []models.ChildResponse) []models.ChildResponse {
	if len(responses) < 2 {
		return responses
	}
	index := make(map[string]int, len(responses))
	out := make([]models.ChildResponse, 0, len(responses))
	for _, r := range responses {
		if i, seen := index[r.ChildID]; seen {
			out[i] = r
			continue
		}
		index[r.ChildID] = len(out)
		out = append(out, r)
	}
	return out
}
