package controllers

import (
	"net/http"
	"strings"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// GET /food/search?q=apple
func (fc *FoodController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'q' query param"})
		return
	}

	out := fc.foods.Search(c.Request.Context(), query)
	c.JSON(http.StatusOK, out)
}
