package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"fisher-blog-api/internal/entity"

	"github.com/gin-gonic/gin"
)

const (
	maxImageSize = 5 * 1024 * 1024
	maxVideoSize = 25 * 1024 * 1024
)

var (
	imageExtensions = map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
		".webp": "image/webp",
	}
	videoExtensions = map[string]string{
		".mp4":  "video/mp4",
		".webm": "video/webm",
		".ogg":  "video/ogg",
	}
)

func statusFromError(err error) int {
	switch {
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"error": err.Error()})
}

func validateImage(file *multipart.FileHeader) (string, string, error) {
	return validateUpload(file, imageExtensions, maxImageSize, "Only jpeg, png, gif, webp images up to 5MB are allowed")
}

func validateVideo(file *multipart.FileHeader) (string, string, error) {
	return validateUpload(file, videoExtensions, maxVideoSize, "Only mp4, webm, ogg videos up to 25MB are allowed")
}

func validateUpload(file *multipart.FileHeader, allowed map[string]string, maxSize int64, message string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	fallback, ok := allowed[ext]
	if !ok || file.Size > maxSize {
		return "", "", fmt.Errorf("%s: %w", message, entity.ErrBadRequest)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = fallback
	}
	return ext, contentType, nil
}
