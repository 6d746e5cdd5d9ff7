package utils

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaveUpload stores an uploaded image under dir with a uuid filename and
// returns the URL path it will be served from.
func SaveUpload(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filename := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

// DeleteUpload removes a previously stored file; missing files are ignored.
func DeleteUpload(dir, url string) {
	if !strings.HasPrefix(url, "/uploads/") {
		return
	}
	_ = os.Remove(filepath.Join(dir, filepath.Base(url)))
}
