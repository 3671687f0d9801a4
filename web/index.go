package web

import (
	"net/http"

	"assetman/auth"

	"github.com/gin-gonic/gin"
)

func Index(c *gin.Context) {
	session := auth.LoadSession(c)
	if session.Employee().ID != 0 {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{})
}

func SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{})
}

func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
