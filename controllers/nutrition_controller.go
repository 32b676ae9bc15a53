package controllers

import (
	"net/http"

	"github.com/Brayern/bibo-health-hub/models"
	"github.com/Brayern/bibo-health-hub/services"

	"github.com/gin-gonic/gin"
)

type nutritionInput struct {
	FoodName    string  `json:"food_name" binding:"required"`
	MealType    string  `json:"meal_type"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
	ServingSize string  `json:"serving_size"`
}

func CreateNutritionEntry(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input nutritionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.NutritionEntry{
		UserID:      userID,
		FoodName:    input.FoodName,
		MealType:    input.MealType,
		Calories:    input.Calories,
		ProteinG:    input.ProteinG,
		CarbsG:      input.CarbsG,
		FatG:        input.FatG,
		ServingSize: input.ServingSize,
	}
	if err := services.CreateNutritionEntry(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func ListNutritionEntries(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	entries, err := services.ListRecentNutritionEntries(userID, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
