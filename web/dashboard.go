package web

import (
	"net/http"

	"assetman/db"
	"assetman/handlers"
	"assetman/models"

	"github.com/gin-gonic/gin"
)

func Dashboard(c *gin.Context, employee *models.Employee) {
	var totalAssets, inUseAssets, closedAssets int64
	var totalEmployees, activeEmployees, pendingEmployees, suspendedEmployees int64

	counts := []error{
		db.Instance.Model(&models.Asset{}).Count(&totalAssets).Error,
		db.Instance.Model(&models.Asset{}).Where("status = ?", models.AssetStatusInUse).Count(&inUseAssets).Error,
		db.Instance.Model(&models.Asset{}).Where("status = ?", models.AssetStatusClosed).Count(&closedAssets).Error,
		db.Instance.Model(&models.Employee{}).Count(&totalEmployees).Error,
		db.Instance.Model(&models.Employee{}).Where("status = ?", models.StatusActive).Count(&activeEmployees).Error,
		db.Instance.Model(&models.Employee{}).Where("status = ?", models.StatusPending).Count(&pendingEmployees).Error,
		db.Instance.Model(&models.Employee{}).Where("status = ?", models.StatusSuspended).Count(&suspendedEmployees).Error,
	}
	for _, err := range counts {
		if err != nil {
			handlers.ErrorPage(c, "Could not load dashboard")
			return
		}
	}

	recent := []models.Asset{}
	if err := db.Instance.Preload("AssignedTo").Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		handlers.ErrorPage(c, "Could not load dashboard")
		return
	}

	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{
		"Employee":           employee,
		"TotalAssets":        totalAssets,
		"InUseAssets":        inUseAssets,
		"ClosedAssets":       closedAssets,
		"TotalEmployees":     totalEmployees,
		"ActiveEmployees":    activeEmployees,
		"PendingEmployees":   pendingEmployees,
		"SuspendedEmployees": suspendedEmployees,
		"RecentAssets":       recent,
	})
}
