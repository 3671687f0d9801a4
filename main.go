package main

import (
	"log"
	"strings"
	"time"

	"assetman/auth"
	"assetman/config"
	"assetman/db"
	"assetman/handlers"
	"assetman/models"
	"assetman/storage"
	"assetman/utils"
	"assetman/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 30 * 86400 // 30 days
)

func main() {
	if missing := config.MissingRequired(); len(missing) > 0 {
		log.Fatalf("Missing required environment variables: %s", strings.Join(missing, ", "))
	}
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(utils.LoadOrCreateSecretKey(config.SECRET_KEY)))
	cookieStore.Options(sessions.Options{
		Path:     config.APPLICATION_ROOT,
		MaxAge:   sessionExpirationTime,
		HttpOnly: true,
	})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}

	// Public pages
	router.GET("/", web.Index)
	router.GET("/login", web.LoginPage)
	router.POST("/login", handlers.Login)
	router.GET("/signup", web.SignupPage)
	router.POST("/signup", handlers.Signup)
	router.GET("/logout", handlers.Logout)
	router.GET("/api/check-username", handlers.CheckUsername)
	router.GET("/robots.txt", web.DisallowRobots)
	router.Static("/static/uploads", config.UPLOAD_DIR)

	// Custom Auth Router
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/dashboard", web.Dashboard)
	// Asset handlers
	authRouter.GET("/assets", web.AssetList)
	authRouter.GET("/assets/new", web.AssetForm)
	authRouter.POST("/assets/save", handlers.AssetSave)
	authRouter.POST("/assets/close", handlers.AssetClose, models.RoleAdmin, models.RoleManager)
	authRouter.GET("/api/serial-lookup", handlers.SerialLookup)
	// Employee handlers
	authRouter.GET("/employees", web.EmployeeList, models.RoleAdmin, models.RoleManager)
	authRouter.POST("/employees/update", handlers.EmployeeUpdate, models.RoleAdmin)
	authRouter.GET("/api/search-employees", handlers.SearchEmployees, models.RoleAdmin, models.RoleManager, models.RoleDispatcher)
	// Reports
	authRouter.GET("/reports", web.Reports)
	// Own profile
	authRouter.GET("/profile", web.Profile)
	authRouter.POST("/profile", handlers.ProfileSave)
	// Company settings
	authRouter.GET("/settings/company", web.Settings, models.RoleAdmin)
	authRouter.POST("/settings/company", handlers.CompanySettingsSave, models.RoleAdmin)

	err := router.Run(config.BindAddress())
	log.Fatalf("Server stopped: %v", err)
}
