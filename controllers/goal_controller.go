package controllers

import (
	"net/http"

	"github.com/Sahithi-Sritha/FSAD-Project/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	RT *services.RealtimeHub
}

func NewGoalController(rt *services.RealtimeHub) *GoalController {
	return &GoalController{RT: rt}
}

func (gc *GoalController) GetGoals(c *gin.Context) {
	goals, err := services.NewGoalService().GetGoals(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (gc *GoalController) UpsertGoals(c *gin.Context) {
	var input services.GoalRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	goals, err := services.NewGoalService().UpsertGoals(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gc.RT.Broadcast(uid, "goals.updated", goals)
	c.JSON(http.StatusOK, goals)
}

// SuggestGoals returns BMI-derived targets without saving them.
func (gc *GoalController) SuggestGoals(c *gin.Context) {
	goals, category, err := services.NewGoalService().SuggestGoals(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggested": goals, "bmiCategory": category})
}
