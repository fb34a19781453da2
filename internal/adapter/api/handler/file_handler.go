package handler

import (
	"github.com/labstack/echo/v4"

	"janaseva/internal/infrastructure/storage"
	"janaseva/pkg/errors"
	"janaseva/pkg/response"
)

type FileHandler struct {
	storageClient *storage.CloudStorageClient
	maxUploadMB   int64
}

func NewFileHandler(storageClient *storage.CloudStorageClient, maxUploadMB int64) *FileHandler {
	return &FileHandler{
		storageClient: storageClient,
		maxUploadMB:   maxUploadMB,
	}
}

// Upload accepts a multipart image and returns its public URL. The optional
// "folder" form field groups uploads (avatars, produce, chat).
func (h *FileHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("A file is required", err))
	}

	if fileHeader.Size > h.maxUploadMB*1024*1024 {
		return response.Error(c, errors.BadRequest("File is too large", nil))
	}

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "uploads"
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to open uploaded file", err))
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.storageClient.UploadImage(c.Request().Context(), src, contentType, folder)
	if err != nil {
		return response.Error(c, errors.BadRequest("Upload failed: only JPEG, PNG and WebP images are supported", err))
	}

	return response.Created(c, echo.Map{"url": url})
}

type deleteFileRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// Delete removes a previously uploaded file by its public URL, used when a
// profile avatar or produce image is replaced.
func (h *FileHandler) Delete(c echo.Context) error {
	var req deleteFileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.storageClient.DeleteFile(c.Request().Context(), req.URL); err != nil {
		return response.Error(c, errors.BadRequest("Failed to delete file", err))
	}

	return response.Success(c, echo.Map{"deleted": true})
}
