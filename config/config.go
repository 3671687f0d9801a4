package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	DB_HOST          = "127.0.0.1"
	DB_PORT          = 3306
	DB_USER          = ""
	DB_PASSWORD      = ""
	DB_NAME          = ""
	SQLITE_FILE      = "" // SQLite will be used if this is set (DB_* ignored)
	SECRET_KEY       = "" // falls back to the .secret_key file if empty
	ADMIN_PASSWORD   = "" // if set, an Active "admin" account is created at startup
	HOST             = "0.0.0.0"
	PORT             = 8080
	DEBUG_MODE       = false
	APPLICATION_ROOT = "/" // path prefix when running behind a reverse proxy
	UPLOAD_DIR       = "static/uploads"
)

func init() {
	// Many hosts don't pass panel environment variables to the
	// service process, so a .env next to the binary is honoured too
	_ = godotenv.Load()

	readEnvString("DB_HOST", &DB_HOST)
	readEnvInt("DB_PORT", &DB_PORT)
	readEnvString("DB_USER", &DB_USER)
	readEnvString("DB_PASSWORD", &DB_PASSWORD)
	readEnvString("DB_NAME", &DB_NAME)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("SECRET_KEY", &SECRET_KEY)
	readEnvString("ADMIN_PASSWORD", &ADMIN_PASSWORD)
	readEnvString("HOST", &HOST)
	readEnvInt("PORT", &PORT)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("APPLICATION_ROOT", &APPLICATION_ROOT)
	readEnvString("UPLOAD_DIR", &UPLOAD_DIR)
}

// BindAddress returns the host:port the HTTP server listens on.
func BindAddress() string {
	return HOST + ":" + strconv.Itoa(PORT)
}

// MissingRequired reports which required variables are not set.
// DB_USER and DB_NAME are only required when MySQL is in use.
func MissingRequired() []string {
	if SQLITE_FILE != "" {
		return nil
	}
	missing := []string{}
	if DB_USER == "" {
		missing = append(missing, "DB_USER")
	}
	if DB_NAME == "" {
		missing = append(missing, "DB_NAME")
	}
	return missing
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
