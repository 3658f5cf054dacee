package controllers

import (
	"littlemeals/services"

	"github.com/gin-gonic/gin"
)

func AddChild(c *gin.Context) {
	var body services.ChildRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	child, err := services.NewChildService().AddChild(c.Param("familyId"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, child)
}

func ListChildren(c *gin.Context) {
	children, err := services.NewChildService().ListChildren(c.Param("familyId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, children)
}

func GetChild(c *gin.Context) {
	child, err := services.NewChildService().GetChild(c.Param("familyId"), c.Param("childId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, child)
}

func UpdateChild(c *gin.Context) {
	var body services.ChildRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	child, err := services.NewChildService().UpdateChild(c.Param("familyId"), c.Param("childId"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, child)
}

func RemoveChild(c *gin.Context) {
	if err := services.NewChildService().RemoveChild(c.Param("familyId"), c.Param("childId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"deleted": true})
}
