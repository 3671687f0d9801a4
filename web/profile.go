package web

import (
	"net/http"

	"assetman/models"

	"github.com/gin-gonic/gin"
)

func Profile(c *gin.Context, employee *models.Employee) {
	c.HTML(http.StatusOK, "profile.tmpl", gin.H{
		"Employee": employee,
	})
}

func Settings(c *gin.Context, employee *models.Employee) {
	c.HTML(http.StatusOK, "settings.tmpl", gin.H{
		"Employee": employee,
		"Settings": models.GetCompanySettings(),
	})
}
