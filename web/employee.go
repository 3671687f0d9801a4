package web

import (
	"net/http"

	"assetman/db"
	"assetman/handlers"
	"assetman/models"

	"github.com/gin-gonic/gin"
)

var employeeStatuses = []string{models.StatusActive, models.StatusPending, models.StatusSuspended}

var employeeRoles = []string{
	models.RoleAdmin,
	models.RoleManager,
	models.RoleDispatcher,
	models.RoleTechnician,
	models.RoleAccounts,
	models.RoleITSupport,
	models.RoleEmployee,
}

func EmployeeList(c *gin.Context, employee *models.Employee) {
	tx := db.Instance.Order("created_at DESC")
	if status := c.Query("status"); status != "" && models.ValidStatus(status) {
		tx = tx.Where("status = ?", status)
	}
	employees := []models.Employee{}
	if err := tx.Find(&employees).Error; err != nil {
		handlers.ErrorPage(c, "Could not load employees")
		return
	}
	c.HTML(http.StatusOK, "employees.tmpl", gin.H{
		"Employee":  employee,
		"Employees": employees,
		"Statuses":  employeeStatuses,
		"Roles":     employeeRoles,
		"Status":    c.Query("status"),
	})
}
