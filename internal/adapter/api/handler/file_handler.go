package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/infrastructure/storage"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/logger"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/response"
)

type FileHandler struct {
	storageClient *storage.CloudStorageClient
	maxFileSize   int64
}

var fileHandler *FileHandler

func NewFileHandler(storageClient *storage.CloudStorageClient) *FileHandler {
	return &FileHandler{
		storageClient: storageClient,
		maxFileSize:   5 * 1024 * 1024,
	}
}

func SetupFileHandler(storageClient *storage.CloudStorageClient) {
	fileHandler = NewFileHandler(storageClient)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func (h *FileHandler) UploadFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(
			fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !isAllowedFileType(contentType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	folder := sanitizeFolderName(c.FormValue("folder"))

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	url, err := h.storageClient.UploadFile(c.Request().Context(), src, contentType, folder)
	if err != nil {
		logger.Error("Failed to upload file: %v", err)
		return response.Error(c, errors.Internal("Failed to upload file", err))
	}

	return response.Success(c, map[string]interface{}{
		"url":      url,
		"filename": file.Filename,
		"size":     file.Size,
	})
}

// UploadJobImage forwards to the generic upload with the job images folder.
func (h *FileHandler) UploadJobImage(c echo.Context) error {
	if c.Request().Form == nil {
		c.Request().ParseMultipartForm(h.maxFileSize)
	}
	c.Request().Form.Set("folder", "job-images")
	return h.UploadFile(c)
}

func (h *FileHandler) UploadProfilePhoto(c echo.Context) error {
	if c.Request().Form == nil {
		c.Request().ParseMultipartForm(h.maxFileSize)
	}
	c.Request().Form.Set("folder", "profile-photos")
	return h.UploadFile(c)
}

func (h *FileHandler) DeleteFile(c echo.Context) error {
	var req struct {
		URL string `json:"url" validate:"required,url"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.storageClient.DeleteFile(c.Request().Context(), req.URL); err != nil {
		logger.Error("Failed to delete file %s: %v", req.URL, err)
		return response.Error(c, errors.Internal("Failed to delete file", err))
	}

	return response.Success(c, map[string]string{
		"message": "File deleted",
	})
}

func isAllowedFileType(fileType string) bool {
	allowedTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
	}

	for _, allowedType := range allowedTypes {
		if fileType == allowedType {
			return true
		}
	}

	return false
}

func sanitizeFolderName(folder string) string {
	validChars := []rune{}
	for _, char := range folder {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '-' || char == '_' {
			validChars = append(validChars, char)
		}
	}

	sanitized := string(validChars)
	if sanitized == "" {
		return "uploads"
	}

	return sanitized
}
