package handlers

import (
	"log"
	"net/http"

	"assetman/models"
	"assetman/storage"
	"assetman/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type CompanySettingsRequest struct {
	CompanyName string `form:"company_name" binding:"required"`
	Address     string `form:"address"`
	Phone       string `form:"phone"`
	Email       string `form:"email"`
}

func CompanySettingsSave(c *gin.Context, employee *models.Employee) {
	req := CompanySettingsRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		settingsPage(c, employee, "Company name is required", "")
		return
	}
	if req.Email != "" && !utils.ValidEmail(req.Email) {
		settingsPage(c, employee, "Invalid email format", "")
		return
	}
	current := models.GetCompanySettings()
	settings := models.CompanySettings{
		CompanyName: req.CompanyName,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Logo:        current.Logo,
	}
	if file, err := c.FormFile("logo"); err == nil && file != nil {
		src, err := file.Open()
		if err == nil {
			name, err := storage.Instance.Save(file.Filename, src)
			src.Close()
			if err != nil {
				settingsPage(c, employee, err.Error(), "")
				return
			}
			if current.Logo != "" {
				_ = storage.Instance.Delete(current.Logo)
			}
			settings.Logo = name
		}
	}
	if err := models.SaveCompanySettings(&settings); err != nil {
		log.Printf("Company settings save error: %v", err)
		settingsPage(c, employee, "Could not save settings", "")
		return
	}
	settingsPage(c, employee, "", "Settings saved")
}

func settingsPage(c *gin.Context, employee *models.Employee, errMsg, okMsg string) {
	c.HTML(http.StatusOK, "settings.tmpl", gin.H{
		"Employee": employee,
		"Settings": models.GetCompanySettings(),
		"Error":    errMsg,
		"Message":  okMsg,
	})
}
