package controllers

import (
	"net/http"
	"strconv"

	"github.com/Sahithi-Sritha/FSAD-Project/services"

	"github.com/gin-gonic/gin"
)

func DailyChart(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	svc := services.NewChartService(services.NewEntryService())
	points, warnings, err := svc.DailySeries(c.GetUint("userID"), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points, "warnings": warnings})
}

func MealBreakdownChart(c *gin.Context) {
	svc := services.NewChartService(services.NewEntryService())
	breakdown, warnings, err := svc.MealTypeBreakdown(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"byMealType": breakdown, "warnings": warnings})
}
