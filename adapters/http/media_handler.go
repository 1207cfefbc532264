package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	mediaUC "github.com/vere-app/vere/internal/application/usecase/media"
	"github.com/vere-app/vere/pkg/apperror"
)

type MediaHandler struct {
	uploadAssetUC *mediaUC.UploadAssetUseCase
}

func NewMediaHandler(uploadUC *mediaUC.UploadAssetUseCase) *MediaHandler {
	return &MediaHandler{
		uploadAssetUC: uploadUC,
	}
}

// UploadAsset accepts a multipart form: file, profile_id, kind, and
// for audio the optional start/end trim times in seconds.
func (h *MediaHandler) UploadAsset(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
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

	profileID, err := uuid.Parse(c.PostForm("profile_id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("'profile_id' is not a valid UUID", err))
		return
	}

	input := mediaUC.UploadAssetInput{
		OwnerID:   ownerID,
		ProfileID: profileID,
		Kind:      c.PostForm("kind"),
		File:      file,
	}
	if s := c.PostForm("audio_start_time"); s != "" {
		input.AudioStartTime, _ = strconv.ParseFloat(s, 64)
	}
	if s := c.PostForm("audio_end_time"); s != "" {
		input.AudioEndTime, _ = strconv.ParseFloat(s, 64)
	}

	output, err := h.uploadAssetUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": output.URL})
}
