package auth

import (
	"assetman/db"
	"assetman/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const employeeIdKey = "id"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginEmployee(e *models.Employee) {
	s.Set(employeeIdKey, e.ID)
	_ = s.Save()
}

func (s *Session) LogoutEmployee() {
	s.Delete(employeeIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = s.Save()
}

// Employee returns the logged-in employee, or a zero-ID value when
// the session is not authenticated (or the account no longer exists).
func (s *Session) Employee() (employee models.Employee) {
	id := s.Get(employeeIdKey)
	if id == nil {
		return
	}
	employee.ID = id.(uint64)
	if db.Instance.First(&employee).Error != nil {
		employee.ID = 0
	}
	return
}
