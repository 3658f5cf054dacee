package controllers

import (
	"time"

	"littlemeals/services"

	"github.com/gin-gonic/gin"
)

func newMealService() (*services.MealService, error) {
	push, err := services.NewPushService()
	if err != nil {
		return nil, err
	}
	activity := services.NewActivityService(push)
	return services.NewMealService(services.NewChildService(), activity), nil
}

func LogMeal(c *gin.Context) {
	var body services.MealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	mealSvc, err := newMealService()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	meal, err := mealSvc.LogMeal(c.Param("familyId"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, meal)
}

// ValidateMeal is the dry-run endpoint: it runs the full validation
// engine against the candidate and reports the result without writing
// anything. Screens use it for pre-submit feedback.
func ValidateMeal(c *gin.Context) {
	var body services.MealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	mealSvc, err := newMealService()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	result, err := mealSvc.Validate(c.Param("familyId"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"is_valid": result.IsValid,
		"errors":   errorBody(result.Errors),
	})
}

func ListMeals(c *gin.Context) {
	mealSvc, err := newMealService()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	familyID := c.Param("familyId")

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" && toStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			c.JSON(400, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			c.JSON(400, gin.H{"error": "to must be YYYY-MM-DD"})
			return
		}
		meals, err := mealSvc.ListMealsByDateRange(familyID, from, to.AddDate(0, 0, 1))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, meals)
		return
	}

	meals, err := mealSvc.ListMeals(familyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, meals)
}

func GetMeal(c *gin.Context) {
	mealSvc, err := newMealService()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	meal, err := mealSvc.GetMeal(c.Param("familyId"), c.Param("mealId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, meal)
}

func UpdateMeal(c *gin.Context) {
	var body services.MealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	mealSvc, err := newMealService()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	meal, err := mealSvc.UpdateMeal(c.Param("familyId"), c.Param("mealId"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, meal)
}

func DeleteMeal(c *gin.Context) {
	mealSvc, err := newMealService()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if err := mealSvc.DeleteMeal(c.Param("familyId"), c.Param("mealId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"deleted": true})
}
