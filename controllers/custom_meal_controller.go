package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type CustomMealController struct {
	customMeals *services.CustomMealService
	stores      *services.StoreManager
}

func NewCustomMealController(customMeals *services.CustomMealService, stores *services.StoreManager) *CustomMealController {
	return &CustomMealController{customMeals: customMeals, stores: stores}
}

type CustomMealInput struct {
	Name     string          `json:"name" binding:"required"`
	MealType string          `json:"meal_type" binding:"required"`
	Foods    models.FoodList `json:"foods" binding:"required"`
}

// POST /custom-meals
func (cc *CustomMealController) Create(c *gin.Context) {
	var input CustomMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidMealType(input.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal_type"})
		return
	}
	if len(input.Foods) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one food is required"})
		return
	}

	meal := models.CustomMeal{
		UserID:   c.GetUint("userID"),
		Name:     input.Name,
		MealType: input.MealType,
		Foods:    input.Foods,
	}
	if err := cc.customMeals.Create(c.Request.Context(), &meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// GET /custom-meals?meal_type=lunch
func (cc *CustomMealController) List(c *gin.Context) {
	meals, err := cc.customMeals.List(c.Request.Context(), c.GetUint("userID"), c.Query("meal_type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// DELETE /custom-meals/:id
func (cc *CustomMealController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := cc.customMeals.Delete(c.Request.Context(), c.GetUint("userID"), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /custom-meals/:id/instantiate  { "date": "2025-01-20" }
func (cc *CustomMealController) Instantiate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	userID := c.GetUint("userID")
	store, err := cc.stores.ForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := cc.customMeals.InstantiateForDate(c.Request.Context(), store, userID, uint(id), input.Date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
