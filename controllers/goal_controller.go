package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	stores *services.StoreManager
}

func NewGoalController(stores *services.StoreManager) *GoalController {
	return &GoalController{stores: stores}
}

// GET /goals
func (gc *GoalController) Get(c *gin.Context) {
	store, err := gc.stores.ForUser(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	goals := store.UserGoals()
	c.JSON(http.StatusOK, gin.H{
		"goals":        goals,
		"distribution": utils.MacroDistribution(goals),
	})
}

// PUT /goals
func (gc *GoalController) Update(c *gin.Context) {
	var goals models.UserGoals
	if err := c.ShouldBindJSON(&goals); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store, err := gc.stores.ForUser(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	store.SetUserGoals(goals)
	c.Status(http.StatusNoContent)
}

// GET /goals/recommended?activity_level=moderate&goal=maintain
func (gc *GoalController) Recommended(c *gin.Context) {
	goals := utils.RecommendedGoals(c.Query("activity_level"), c.Query("goal"))
	c.JSON(http.StatusOK, gin.H{
		"goals":        goals,
		"distribution": utils.MacroDistribution(goals),
	})
}
