package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	stores *services.StoreManager
}

func NewMealController(stores *services.StoreManager) *MealController {
	return &MealController{stores: stores}
}

// store fetches the authenticated user's meal store, loading it on first
// access. Writes the error response itself when that fails.
func (mc *MealController) store(c *gin.Context) (*services.MealStore, bool) {
	store, err := mc.stores.ForUser(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return store, true
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// GET /meals
func (mc *MealController) List(c *gin.Context) {
	store, ok := mc.store(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, store.Meals())
}

type MealInput struct {
	Name     string          `json:"name" binding:"required"`
	MealType string          `json:"meal_type" binding:"required"`
	Date     string          `json:"date" binding:"required"`
	Foods    models.FoodList `json:"foods"`
}

// POST /meals
func (mc *MealController) Create(c *gin.Context) {
	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidMealType(input.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal_type"})
		return
	}
	if !validDate(input.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	store, ok := mc.store(c)
	if !ok {
		return
	}

	meal := models.Meal{
		Name:     input.Name,
		MealType: input.MealType,
		Date:     input.Date,
		Foods:    input.Foods,
	}
	if err := store.AddMeal(c.Request.Context(), &meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

type AddFoodInput struct {
	Date     string      `json:"date" binding:"required"`
	MealType string      `json:"meal_type" binding:"required"`
	Food     models.Food `json:"food" binding:"required"`
}

// POST /meals/food
func (mc *MealController) AddFood(c *gin.Context) {
	var input AddFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidMealType(input.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal_type"})
		return
	}
	if !validDate(input.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}
	// A food with no quantity would create a meal the store already
	// considers deleted, so reject it up front.
	if input.Food.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}

	store, ok := mc.store(c)
	if !ok {
		return
	}

	if err := store.AddFoodToMeal(c.Request.Context(), input.Date, input.MealType, input.Food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// PUT /meals/:id/foods
func (mc *MealController) UpdateFoods(c *gin.Context) {
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var input struct {
		Foods models.FoodList `json:"foods"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store, ok := mc.store(c)
	if !ok {
		return
	}

	if err := store.UpdateMealFoods(c.Request.Context(), uint(mealID), input.Foods); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// PUT /meals/:id/foods/:foodId
func (mc *MealController) UpdateFood(c *gin.Context) {
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var input struct {
		Quantity float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store, ok := mc.store(c)
	if !ok {
		return
	}

	if err := store.UpdateMealFood(c.Request.Context(), uint(mealID), c.Param("foodId"), input.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /meals/:id
func (mc *MealController) Delete(c *gin.Context) {
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	store, ok := mc.store(c)
	if !ok {
		return
	}

	if err := store.DeleteMeal(c.Request.Context(), uint(mealID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /meals/date/:date
func (mc *MealController) ByDate(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	store, ok := mc.store(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, store.GetMealsForDate(date))
}

// GET /totals/:date
func (mc *MealController) Totals(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	store, ok := mc.store(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, store.GetDailyTotals(date))
}

// GET /summary/:date
func (mc *MealController) Summary(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	store, ok := mc.store(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "progress": store.Summary(date)})
}

// GET /calendar/:month (YYYY-MM)
func (mc *MealController) Calendar(c *gin.Context) {
	month := c.Param("month")
	if _, err := time.Parse("2006-01", month); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month format. Use YYYY-MM"})
		return
	}

	store, ok := mc.store(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, store.MonthOverview(month))
}
