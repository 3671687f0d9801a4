package web

import (
	"net/http"
	"time"

	"assetman/handlers"
	"assetman/models"

	"github.com/gin-gonic/gin"
)

func Reports(c *gin.Context, employee *models.Employee) {
	byStatus, err := models.AssetCountsByStatus()
	if err != nil {
		handlers.ErrorPage(c, "Could not load reports")
		return
	}
	byType, err := models.AssetCountsByType()
	if err != nil {
		handlers.ErrorPage(c, "Could not load reports")
		return
	}
	byAssignee, err := models.AssetCountsByAssignee()
	if err != nil {
		handlers.ErrorPage(c, "Could not load reports")
		return
	}
	monthly, err := models.MonthlyIntake(time.Now())
	if err != nil {
		handlers.ErrorPage(c, "Could not load reports")
		return
	}
	c.HTML(http.StatusOK, "reports.tmpl", gin.H{
		"Employee":   employee,
		"ByStatus":   byStatus,
		"ByType":     byType,
		"ByAssignee": byAssignee,
		"Monthly":    monthly,
	})
}
