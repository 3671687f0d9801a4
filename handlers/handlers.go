package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	DBError1Response = Response{"DB Error 1"}
	DBError2Response = Response{"DB Error 2"}
)

// ErrorPage renders the generic failure page. Database errors end up
// here - the details stay in the log, not in the response.
func ErrorPage(c *gin.Context, message string) {
	c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{
		"Detail": message,
	})
}

func ParseID(s string) uint64 {
	id, _ := strconv.ParseUint(s, 10, 64)
	return id
}
