package controllers

import (
	"net/http"

	"github.com/Sahithi-Sritha/FSAD-Project/services"

	"github.com/gin-gonic/gin"
)

func newAnalysisService() *services.AnalysisService {
	return services.NewAnalysisService(services.NewEntryService(), services.NewGoalService())
}

func AnalyzeToday(c *gin.Context) {
	analysis, err := newAnalysisService().AnalyzeToday(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func AnalyzeWeek(c *gin.Context) {
	analysis, err := newAnalysisService().AnalyzeWeek(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analysis)
}
