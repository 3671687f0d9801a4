package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"assetman/db"
	"assetman/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnauthenticatedRedirects(t *testing.T) {
	router := newTestServer(t)

	for _, path := range []string{"/dashboard", "/assets", "/assets/new", "/reports", "/profile"} {
		w := get(router, path, "")
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
	// API routes answer JSON instead of redirecting
	w := get(router, "/api/serial-lookup?serial=ABC", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "access denied")
}

func TestLoginLogout(t *testing.T) {
	router := newTestServer(t)
	createEmployee(t, "alice", "correct-horse", models.StatusActive, models.RoleEmployee)

	cookie := login(t, router, "alice", "correct-horse")

	w := get(router, "/dashboard", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dashboard")
	assert.Contains(t, w.Body.String(), "alice")

	w = get(router, "/logout", cookie)
	assert.Equal(t, http.StatusFound, w.Code)

	w = get(router, "/dashboard", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoginFailures(t *testing.T) {
	router := newTestServer(t)
	createEmployee(t, "alice", "correct-horse", models.StatusActive, models.RoleEmployee)
	createEmployee(t, "pending", "secret123", models.StatusPending, models.RoleEmployee)
	createEmployee(t, "frozen", "secret123", models.StatusSuspended, models.RoleEmployee)

	tests := []struct {
		name     string
		username string
		password string
		want     string
	}{
		{"wrong password", "alice", "nope", "invalid username or password"},
		{"unknown user", "nobody", "nope", "invalid username or password"},
		{"pending account", "pending", "secret123", "pending approval"},
		{"suspended account", "frozen", "secret123", "suspended"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postForm(router, "/login", "", url.Values{
				"username": {tt.username},
				"password": {tt.password},
			})
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
			// No session is established on failure
			dash := get(router, "/dashboard", sessionCookieOf(w.Header().Get("Set-Cookie")))
			assert.Equal(t, http.StatusFound, dash.Code)
		})
	}
}

func sessionCookieOf(setCookie string) string {
	if setCookie == "" {
		return ""
	}
	return strings.Split(setCookie, ";")[0]
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func TestSignupApprovalFlow(t *testing.T) {
	router := newTestServer(t)
	createEmployee(t, "root", "adminpass", models.StatusActive, models.RoleAdmin)

	w := postForm(router, "/signup", "", url.Values{
		"full_name":         {"New Person"},
		"phone_number":      {"+359 88 123 4567"},
		"email":             {"new.person@example.com"},
		"verification_code": {"123456"},
		"password":          {"secret123"},
		"confirm_password":  {"secret123"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pending approval")

	var created models.Employee
	require.NoError(t, db.Instance.First(&created, "email = ?", "new.person@example.com").Error)
	assert.Equal(t, "new.person", created.Username)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, models.RoleEmployee, created.Role)

	// Cannot log in until approved
	w = postForm(router, "/login", "", url.Values{
		"username": {"new.person"},
		"password": {"secret123"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pending approval")

	// Admin approves
	adminCookie := login(t, router, "root", "adminpass")
	w = postForm(router, "/employees/update", adminCookie, url.Values{
		"employee_id": {itoa(created.ID)},
		"status":      {models.StatusActive},
	})
	require.Equal(t, http.StatusFound, w.Code)

	login(t, router, "new.person", "secret123")
}

func TestSignupValidation(t *testing.T) {
	router := newTestServer(t)
	createEmployee(t, "taken", "secret123", models.StatusActive, models.RoleEmployee)

	base := url.Values{
		"full_name":         {"New Person"},
		"phone_number":      {"+359881234567"},
		"email":             {"taken@example.com"},
		"verification_code": {"123456"},
		"password":          {"secret123"},
		"confirm_password":  {"secret123"},
	}
	w := postForm(router, "/signup", "", base)
	assert.Contains(t, w.Body.String(), "already exists")

	bad := cloneForm(base)
	bad.Set("email", "not-an-email")
	w = postForm(router, "/signup", "", bad)
	assert.Contains(t, w.Body.String(), "Invalid email format")

	bad = cloneForm(base)
	bad.Set("verification_code", "12ab56")
	w = postForm(router, "/signup", "", bad)
	assert.Contains(t, w.Body.String(), "exactly 6 digits")

	bad = cloneForm(base)
	bad.Set("confirm_password", "different")
	w = postForm(router, "/signup", "", bad)
	assert.Contains(t, w.Body.String(), "do not match")
}

func TestSignupUsernameCollision(t *testing.T) {
	router := newTestServer(t)
	createEmployee(t, "jane", "secret123", models.StatusActive, models.RoleEmployee)

	w := postForm(router, "/signup", "", url.Values{
		"full_name":         {"Jane Again"},
		"phone_number":      {"+359881234567"},
		"email":             {"jane@other.org"},
		"verification_code": {"654321"},
		"password":          {"secret123"},
		"confirm_password":  {"secret123"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created models.Employee
	require.NoError(t, db.Instance.First(&created, "email = ?", "jane@other.org").Error)
	assert.Equal(t, "jane1", created.Username)
}

func TestCheckUsernameAPI(t *testing.T) {
	router := newTestServer(t)
	createEmployee(t, "jane", "secret123", models.StatusActive, models.RoleEmployee)

	var result struct {
		Username string `json:"username"`
	}
	// Taken local part gets the next free suffix
	w := get(router, "/api/check-username?email=jane@other.org", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "jane1", result.Username)

	w = get(router, "/api/check-username?email=fresh@other.org", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "fresh", result.Username)

	w = get(router, "/api/check-username?email=not-an-email", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func cloneForm(in url.Values) url.Values {
	out := url.Values{}
	for k, v := range in {
		out[k] = append([]string{}, v...)
	}
	return out
}
