package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MEDWEDU/Lettera/domain"
)

// MediaHandlers handles media upload and lifecycle requests.
type MediaHandlers struct {
	mediaSvc domain.MediaService
}

// NewMediaHandlers creates new media handlers.
func NewMediaHandlers(mediaSvc domain.MediaService) *MediaHandlers {
	return &MediaHandlers{mediaSvc: mediaSvc}
}

// Upload handles POST /media (multipart form, field "file")
func (h *MediaHandlers) Upload(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, domain.ErrValidation.WithDetails("multipart field \"file\" is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, domain.ErrValidation.WithDetails("uploaded file could not be read"))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	media, url, err := h.mediaSvc.Upload(
		c.Request.Context(),
		user.ID,
		fileHeader.Filename,
		contentType,
		fileHeader.Size,
		file,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"media": gin.H{
			"id":          media.ID,
			"filename":    media.Filename,
			"contentType": media.ContentType,
			"size":        media.Size,
			"createdAt":   media.CreatedAt,
		},
		"url": url,
	})
}

// PresignGet handles GET /media/:id/url
func (h *MediaHandlers) PresignGet(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	url, err := h.mediaSvc.PresignGet(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"url": url})
}

// Delete handles DELETE /media/:id
func (h *MediaHandlers) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	if err := h.mediaSvc.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"success": true})
}
