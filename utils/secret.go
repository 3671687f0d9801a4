package utils

import (
	"crypto/rand"
	"encoding/base64"
	"os"
	"strings"
)

const secretKeyFile = ".secret_key"

// LoadOrCreateSecretKey returns the session store key. Order:
// configured value, the .secret_key file next to the binary, or a
// newly generated key persisted to that file (so sessions survive
// restarts on hosts where SECRET_KEY was never configured).
func LoadOrCreateSecretKey(configured string) string {
	if configured != "" {
		return configured
	}
	if data, err := os.ReadFile(secretKeyFile); err == nil {
		if key := strings.TrimSpace(string(data)); key != "" {
			return key
		}
	}
	key := RandKey(48)
	// Best effort - a read-only filesystem just means a new key per restart
	_ = os.WriteFile(secretKeyFile, []byte(key), 0600)
	return key
}

func RandKey(size int) string {
	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}
