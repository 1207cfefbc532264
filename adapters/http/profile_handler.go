package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "github.com/vere-app/vere/internal/application/usecase/profile"
	"github.com/vere-app/vere/pkg/apperror"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
}

func NewProfileHandler(uc *profileUC.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
	}
}

func profileIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("profile id is not a valid UUID", err))
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	profileID, ok := profileIDParam(c)
	if !ok {
		return
	}

	input := profileUC.GetProfileInput{ProfileID: profileID, OwnerID: ownerID}
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Record))
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	input := profileUC.ListProfilesInput{OwnerID: ownerID}
	output, err := h.profileUseCase.ExecuteListProfiles(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ProfileDTO, len(output.Records))
	for i := range output.Records {
		dtos[i] = ToProfileDTO(&output.Records[i])
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile create", err))
		return
	}

	input := profileUC.CreateProfileInput{
		OwnerID:  ownerID,
		Username: req.Username,
		Kind:     req.Kind,
		Data:     req.Data,
	}
	output, err := h.profileUseCase.ExecuteCreateProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToProfileDTO(output.Record))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	profileID, ok := profileIDParam(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		ProfileID: profileID,
		OwnerID:   ownerID,
		Data:      req.Data,
	}
	output, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Record))
}
