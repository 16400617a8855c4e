package controllers

import (
	"net/http"
	"strconv"

	"github.com/Sahithi-Sritha/FSAD-Project/services"

	"github.com/gin-gonic/gin"
)

func newAIService() *services.AIService {
	return services.NewAIService(newAnalysisService(), services.NewGoalService())
}

func Chat(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := newAIService().Chat(c.Request.Context(), c.GetUint("userID"), input.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reply)
}

func ChatHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	messages, err := newAIService().History(c.GetUint("userID"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}
