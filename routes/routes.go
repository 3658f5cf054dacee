package routes

import (
	"littlemeals/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	families := r.Group("/families")
	{
		families.POST("", controllers.CreateFamily)
		families.GET("/:familyId", controllers.GetFamily)
		families.GET("/:familyId/activity", controllers.ListActivity)

		children := families.Group("/:familyId/children")
		{
			children.POST("", controllers.AddChild)
			children.GET("", controllers.ListChildren)
			children.GET("/:childId", controllers.GetChild)
			children.PUT("/:childId", controllers.UpdateChild)
			children.DELETE("/:childId", controllers.RemoveChild)
		}

		meals := families.Group("/:familyId/meals")
		{
			meals.POST("", controllers.LogMeal)
			meals.POST("/validate", controllers.ValidateMeal)
			meals.GET("", controllers.ListMeals)
			meals.GET("/:mealId", controllers.GetMeal)
			meals.PUT("/:mealId", controllers.UpdateMeal)
			meals.DELETE("/:mealId", controllers.DeleteMeal)
		}
	}

	return r
}
