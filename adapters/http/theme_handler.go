package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	themeUC "github.com/vere-app/vere/internal/application/usecase/theme"
	"github.com/vere-app/vere/internal/domain/profile"
	"github.com/vere-app/vere/pkg/apperror"
)

type ThemeHandler struct {
	themeUseCase *themeUC.ThemeUseCase
}

func NewThemeHandler(uc *themeUC.ThemeUseCase) *ThemeHandler {
	return &ThemeHandler{
		themeUseCase: uc,
	}
}

// ListThemes is public; authenticated callers also get their own
// unpublished themes back.
func (h *ThemeHandler) ListThemes(c *gin.Context) {
	viewerID, _ := GetViewerFromGinContext(c)

	input := themeUC.ListThemesInput{
		ProfileType: profile.Kind(c.Query("profile_type")),
		AuthorID:    viewerID,
	}
	output, err := h.themeUseCase.ExecuteListThemes(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"builtin":   ToThemeDTOs(output.Builtin),
		"community": ToThemeDTOs(output.Community),
		"own":       ToThemeDTOs(output.Own),
	})
}

func (h *ThemeHandler) ApplyTheme(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	profileID, ok := profileIDParam(c)
	if !ok {
		return
	}

	var req ApplyThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for theme apply", err))
		return
	}

	input := themeUC.ApplyThemeInput{
		ProfileID: profileID,
		ThemeID:   req.ThemeID,
		OwnerID:   ownerID,
	}
	output, err := h.themeUseCase.ExecuteApplyTheme(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Record))
}

func (h *ThemeHandler) CreateTheme(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req CreateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for theme create", err))
		return
	}
	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		c.Error(apperror.NewInvalidInput("profile_id is not a valid UUID", err))
		return
	}

	input := themeUC.CreateThemeInput{
		ProfileID: profileID,
		OwnerID:   ownerID,
		Name:      req.Name,
	}
	output, err := h.themeUseCase.ExecuteCreateTheme(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToThemeDTO(*output.Theme))
}

func (h *ThemeHandler) PublishTheme(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req PublishThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for theme publish", err))
		return
	}

	input := themeUC.PublishThemeInput{
		ThemeID:   c.Param("id"),
		AuthorID:  ownerID,
		Published: *req.Published,
	}
	if err := h.themeUseCase.ExecutePublishTheme(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"published": *req.Published})
}
