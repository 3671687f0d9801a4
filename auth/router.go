package auth

import (
	"net/http"
	"strings"

	"assetman/models"

	"github.com/gin-gonic/gin"
)

// HandlerFunc runs with an authenticated employee that has the
// required role (when roles were given)
type HandlerFunc func(c *gin.Context, employee *models.Employee)

// Router is a wrapper that adds session checks + Employee pre-loading.
// Page routes redirect to /login; /api/ routes answer with JSON.
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc, required []string) {
	session := LoadSession(c)
	employee := session.Employee()
	if employee.ID == 0 || employee.Status != models.StatusActive {
		if isAPIRequest(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		} else {
			c.Redirect(http.StatusFound, "/login")
		}
		return
	}
	if !employee.HasAnyRole(required) {
		if isAPIRequest(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		} else {
			c.HTML(http.StatusForbidden, "error.tmpl", gin.H{
				"Detail": "You do not have permission to access this page",
			})
		}
		return
	}
	handler(c, &employee)
}

func isAPIRequest(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}

func (cr *Router) GET(path string, handler HandlerFunc, required ...string) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc, required ...string) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}
