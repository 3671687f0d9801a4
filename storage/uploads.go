package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"assetman/config"

	"github.com/google/uuid"
)

// Uploads is a single-directory store for profile pictures.
type Uploads struct {
	BaseDir string
}

var Instance *Uploads

var ErrBadFileType = errors.New("invalid file type, allowed: png, jpg, jpeg, gif")

func Init() {
	Instance = &Uploads{BaseDir: config.UPLOAD_DIR}
	if err := os.MkdirAll(Instance.BaseDir, 0755); err != nil {
		panic(err)
	}
}

func allowedExt(ext string) bool {
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}

// Save stores the file under a random name, keeping the original
// extension, and returns the name to persist on the employee record.
func (u *Uploads) Save(originalName string, reader io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExt(ext) {
		return "", ErrBadFileType
	}
	name := uuid.NewString() + ext
	file, err := os.Create(filepath.Join(u.BaseDir, name))
	if err != nil {
		return "", err
	}
	_, err = io.Copy(file, reader)
	file.Close()
	if err != nil {
		_ = os.Remove(filepath.Join(u.BaseDir, name))
		return "", err
	}
	return name, nil
}

func (u *Uploads) Delete(name string) error {
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return nil
	}
	return os.Remove(filepath.Join(u.BaseDir, name))
}
