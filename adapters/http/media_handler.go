package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	mediaUC "github.com/snapstream/snapstream-api/internal/application/usecase/media"
	"github.com/snapstream/snapstream-api/internal/domain/media"
	"github.com/snapstream/snapstream-api/pkg/apperror"
	"github.com/snapstream/snapstream-api/pkg/logger"
)

type MediaHandler struct {
	createMediaUC    *mediaUC.CreateMediaUseCase
	uploadMediaUC    *mediaUC.UploadMediaUseCase
	listMediaUC      *mediaUC.ListMediaUseCase
	attachAnalysisUC *mediaUC.AttachAnalysisUseCase
	deleteMediaUC    *mediaUC.DeleteMediaUseCase
	logger           logger.Logger
}

func NewMediaHandler(
	createUC *mediaUC.CreateMediaUseCase,
	uploadUC *mediaUC.UploadMediaUseCase,
	listUC *mediaUC.ListMediaUseCase,
	attachUC *mediaUC.AttachAnalysisUseCase,
	deleteUC *mediaUC.DeleteMediaUseCase,
	log logger.Logger,
) *MediaHandler {
	return &MediaHandler{
		createMediaUC:    createUC,
		uploadMediaUC:    uploadUC,
		listMediaUC:      listUC,
		attachAnalysisUC: attachUC,
		deleteMediaUC:    deleteUC,
		logger:           log,
	}
}

func (h *MediaHandler) CreateMedia(c *gin.Context) {
	var req CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid media data", err))
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid owner_id", err))
		return
	}

	input := mediaUC.CreateMediaInput{
		OwnerID:      ownerID,
		Name:         req.Name,
		Type:         req.Type,
		Size:         req.Size,
		Status:       media.MediaStatus(req.Status),
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
		Profile:      req.Profile,
	}
	if req.ID != nil {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			c.Error(apperror.NewInvalidInput("invalid media id", err))
			return
		}
		input.ID = &id
	}

	created, err := h.createMediaUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToMediaItemDTO(created))
}

func (h *MediaHandler) UploadMedia(c *gin.Context) {
	ownerID, err := uuid.Parse(c.PostForm("owner_id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("'owner_id' form field is required", err))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	mediaType := c.PostForm("type")
	if mediaType == "" {
		mediaType = fileHeader.Header.Get("Content-Type")
	}
	var profile *string
	if p := c.PostForm("profile"); p != "" {
		profile = &p
	}

	input := mediaUC.UploadMediaInput{
		OwnerID:  ownerID,
		File:     file,
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Type:     mediaType,
		Profile:  profile,
	}

	created, err := h.uploadMediaUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToMediaItemDTO(created))
}

func (h *MediaHandler) ListMedia(c *gin.Context) {
	isAdmin := c.Query("is_admin") == "true"

	var ownerID uuid.UUID
	if !isAdmin {
		var err error
		ownerID, err = uuid.Parse(c.Query("owner_id"))
		if err != nil {
			c.Error(apperror.NewInvalidInput("'owner_id' query param is required for non-admin listing", err))
			return
		}
	}

	items, err := h.listMediaUC.Execute(c.Request.Context(), mediaUC.ListMediaInput{
		OwnerID: ownerID,
		IsAdmin: isAdmin,
	})
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]MediaItemDTO, len(items))
	for i, m := range items {
		dtos[i] = ToMediaItemDTO(m)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *MediaHandler) AttachAnalysis(c *gin.Context) {
	mediaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid media ID", err))
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(apperror.NewInvalidInput("failed to read analysis payload", err))
		return
	}

	input := mediaUC.AttachAnalysisInput{
		MediaID: mediaID,
		Payload: json.RawMessage(payload),
	}
	if err := h.attachAnalysisUC.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	mediaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid media ID", err))
		return
	}

	if err := h.deleteMediaUC.Execute(c.Request.Context(), mediaUC.DeleteMediaInput{MediaID: mediaID}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
