// services/meal_service_test.go
package services

import (
	"fmt"
	"testing"
	"time"

	"littlemeals/config"
	"littlemeals/models"
	"littlemeals/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.AutoMigrate(db))
	config.DB = db
}

func seedFamily(t *testing.T, childNames ...string) (*models.Family, []models.Child) {
	t.Helper()
	family, err := NewFamilyService().CreateFamily("The Tests")
	require.NoError(t, err)

	childSvc := NewChildService()
	children := make([]models.Child, 0, len(childNames))
	for _, name := range childNames {
		child, err := childSvc.AddChild(family.ID, ChildRequest{Name: name, Age: 4})
		require.NoError(t, err)
		children = append(children, *child)
	}
	return family, children
}

func newTestMealService() *MealService {
	return NewMealService(NewChildService(), NewActivityService(nil))
}

func validRequest(children []models.Child) MealRequest {
	req := MealRequest{
		FoodName: "Pancakes",
		MealType: models.MealBreakfast,
		Date:     time.Now(),
	}
	for _, c := range children {
		req.Responses = append(req.Responses, ChildResponseRequest{
			ChildID:  c.ID,
			Response: models.ResponseEaten,
		})
	}
	return req
}

func TestLogMealPersistsValidRecord(t *testing.T) {
	setupTestDB(t)
	family, children := seedFamily(t, "Sam", "Ada")
	svc := newTestMealService()

	meal, err := svc.LogMeal(family.ID, validRequest(children))
	require.NoError(t, err)
	assert.NotEmpty(t, meal.ID)
	assert.Equal(t, "Pancakes", meal.FoodName)
	assert.Len(t, meal.ChildResponses, 2)

	// activity feed picked it up
	entries, err := NewActivityService(nil).List(family.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActivityMealLogged, entries[0].Type)
}

func TestLogMealRejectsInvalidRecord(t *testing.T) {
	setupTestDB(t)
	family, children := seedFamily(t, "Sam")
	svc := newTestMealService()

	req := validRequest(children)
	req.FoodName = "P"
	req.MealType = "Brunch"

	_, err := svc.LogMeal(family.ID, req)
	require.Error(t, err)

	var invalid *utils.InvalidRecordError
	require.ErrorAs(t, err, &invalid)
	assert.Len(t, invalid.Errors, 2)

	// nothing was written
	var count int64
	require.NoError(t, config.DB.Model(&models.MealRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLogMealSanitizesFreeText(t *testing.T) {
	setupTestDB(t)
	family, children := seedFamily(t, "Sam")
	svc := newTestMealService()

	req := validRequest(children)
	req.FoodName = "  Pancakes<script>alert(1)</script>  "
	req.Notes = "javascript:left half on the plate"

	meal, err := svc.LogMeal(family.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", meal.FoodName)
	assert.Equal(t, "left half on the plate", meal.Notes)
}

func TestLogMealDuplicateResponsesLastWriteWins(t *testing.T) {
	setupTestDB(t)
	family, children := seedFamily(t, "Sam")
	svc := newTestMealService()

	req := validRequest(children)
	req.Responses = append(req.Responses, ChildResponseRequest{
		ChildID:  children[0].ID,
		Response: models.ResponseRefused,
	})

	meal, err := svc.LogMeal(family.ID, req)
	require.NoError(t, err)
	require.Len(t, meal.ChildResponses, 1)
	assert.Equal(t, models.ResponseRefused, meal.ChildResponses[0].Response)
}

func TestUpdateMealReplacesResponses(t *testing.T) {
	setupTestDB(t)
	family, children := seedFamily(t, "Sam")
	svc := newTestMealService()

	meal, err := svc.LogMeal(family.ID, validRequest(children))
	require.NoError(t, err)

	req := validRequest(children)
	req.FoodName = "French toast"
	req.Responses[0].Response = models.ResponsePartial

	updated, err := svc.UpdateMeal(family.ID, meal.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "French toast", updated.FoodName)
	require.Len(t, updated.ChildResponses, 1)
	assert.Equal(t, models.ResponsePartial, updated.ChildResponses[0].Response)

	var count int64
	require.NoError(t, config.DB.Model(&models.ChildResponse{}).
		Where("meal_record_id = ?", meal.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateMealRevalidates(t *testing.T) {
	setupTestDB(t)
	family, children := seedFamily(t, "Sam")
	svc := newTestMealService()

	meal, err := svc.LogMeal(family.ID, validRequest(children))
	require.NoError(t, err)

	req := validRequest(children)
	req.Responses = nil // Sam loses coverage

	_, err = svc.UpdateMeal(family.ID, meal.ID, req)
	var invalid *utils.InvalidRecordError
	require.ErrorAs(t, err, &invalid)
	require.Len(t, invalid.Errors, 1)
	assert.Equal(t, utils.CodeMissingChildResponse, invalid.Errors[0].Code)
}

func TestListMealsByDateRange(t *testing.T) {
	setupTestDB(t)
	family, children := seedFamily(t, "Sam")
	svc := newTestMealService()

	today := validRequest(children)
	_, err := svc.LogMeal(family.ID, today)
	require.NoError(t, err)

	lastWeek := validRequest(children)
	lastWeek.FoodName = "Old soup"
	lastWeek.Date = time.Now().AddDate(0, 0, -7)
	_, err = svc.LogMeal(family.ID, lastWeek)
	require.NoError(t, err)

	from := time.Now().AddDate(0, 0, -1)
	to := time.Now().AddDate(0, 0, 1)
	meals, err := svc.ListMealsByDateRange(family.ID, from, to)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Pancakes", meals[0].FoodName)

	all, err := svc.ListMeals(family.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteMealRemovesResponses(t *testing.T) {
	setupTestDB(t)
	family, children := seedFamily(t, "Sam")
	svc := newTestMealService()

	meal, err := svc.LogMeal(family.ID, validRequest(children))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMeal(family.ID, meal.ID))

	_, err = svc.GetMeal(family.ID, meal.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, config.DB.Model(&models.ChildResponse{}).
		Where("meal_record_id = ?", meal.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestValidateDryRunWritesNothing(t *testing.T) {
	setupTestDB(t)
	family, _ := seedFamily(t, "Sam")
	svc := newTestMealService()

	result, err := svc.Validate(family.ID, MealRequest{})
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.NotEmpty(t, result.Errors)

	var count int64
	require.NoError(t, config.DB.Model(&models.MealRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddChildRequiresName(t *testing.T) {
	setupTestDB(t)
	family, _ := seedFamily(t)

	_, err := NewChildService().AddChild(family.ID, ChildRequest{Name: "   "})
	var ve utils.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, utils.CodeRequiredField, ve.Code)
}
