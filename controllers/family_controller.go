package controllers

import (
	"strconv"

	"littlemeals/services"

	"github.com/gin-gonic/gin"
)

func CreateFamily(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	family, err := services.NewFamilyService().CreateFamily(body.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, family)
}

func GetFamily(c *gin.Context) {
	family, err := services.NewFamilyService().GetFamily(c.Param("familyId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, family)
}

func ListActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	push, err := services.NewPushService()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	entries, err := services.NewActivityService(push).List(c.Param("familyId"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, entries)
}
