package handlers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"assetman/auth"
	"assetman/config"
	"assetman/db"
	"assetman/handlers"
	"assetman/models"
	"assetman/storage"
	"assetman/web"

	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer wires the same route table as main() against a fresh
// in-memory database.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	instance, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	db.Instance = instance
	require.NoError(t, db.Instance.AutoMigrate(&models.Employee{}, &models.Asset{}, &models.CompanySettings{}))

	config.UPLOAD_DIR = t.TempDir()
	storage.Init()

	router := gin.New()
	router.LoadHTMLGlob("../templates/*.tmpl")
	cookieStore := gormsessions.NewStore(db.Instance, true, []byte("test-secret"))
	router.Use(sessions.Sessions("token", cookieStore))

	router.GET("/", web.Index)
	router.GET("/login", web.LoginPage)
	router.POST("/login", handlers.Login)
	router.GET("/signup", web.SignupPage)
	router.POST("/signup", handlers.Signup)
	router.GET("/logout", handlers.Logout)
	router.GET("/api/check-username", handlers.CheckUsername)

	authRouter := &auth.Router{Base: router}
	authRouter.GET("/dashboard", web.Dashboard)
	authRouter.GET("/assets", web.AssetList)
	authRouter.GET("/assets/new", web.AssetForm)
	authRouter.POST("/assets/save", handlers.AssetSave)
	authRouter.POST("/assets/close", handlers.AssetClose, models.RoleAdmin, models.RoleManager)
	authRouter.GET("/api/serial-lookup", handlers.SerialLookup)
	authRouter.GET("/employees", web.EmployeeList, models.RoleAdmin, models.RoleManager)
	authRouter.POST("/employees/update", handlers.EmployeeUpdate, models.RoleAdmin)
	authRouter.GET("/api/search-employees", handlers.SearchEmployees, models.RoleAdmin, models.RoleManager, models.RoleDispatcher)
	authRouter.GET("/reports", web.Reports)
	authRouter.GET("/profile", web.Profile)
	authRouter.POST("/profile", handlers.ProfileSave)
	authRouter.GET("/settings/company", web.Settings, models.RoleAdmin)
	authRouter.POST("/settings/company", handlers.CompanySettingsSave, models.RoleAdmin)

	return router
}

func createEmployee(t *testing.T, username, password, status, role string) models.Employee {
	t.Helper()
	e := models.Employee{
		Username: username,
		FullName: "Test " + username,
		Email:    username + "@example.com",
		Status:   status,
		Role:     role,
	}
	require.NoError(t, models.EmployeeCreate(&e, password))
	return e
}

func postForm(router *gin.Engine, path, cookie string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// postMultipart submits form fields plus one optional file part.
func postMultipart(t *testing.T, router *gin.Engine, path, cookie string, fields map[string]string, fileField, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// login performs the form login and returns the session cookie.
func login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	w := postForm(router, "/login", "", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))
	cookie := w.Header().Get("Set-Cookie")
	require.NotEmpty(t, cookie)
	return strings.Split(cookie, ";")[0]
}
