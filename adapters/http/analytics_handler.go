package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	analyticsUC "github.com/vere-app/vere/internal/application/usecase/analytics"
	"github.com/vere-app/vere/pkg/apperror"
)

type AnalyticsHandler struct {
	analyticsUseCase *analyticsUC.AnalyticsUseCase
}

func NewAnalyticsHandler(uc *analyticsUC.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: uc,
	}
}

func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	profileID, ok := profileIDParam(c)
	if !ok {
		return
	}

	input := analyticsUC.GetSummaryInput{ProfileID: profileID, OwnerID: ownerID}
	output, err := h.analyticsUseCase.ExecuteGetSummary(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToSummaryDTO(output.Summary, output.Saves, output.Vheart))
}

// SaveProfile is the public "vheart" action.
func (h *AnalyticsHandler) SaveProfile(c *gin.Context) {
	profileID, ok := profileIDParam(c)
	if !ok {
		return
	}

	input := analyticsUC.SaveProfileInput{ProfileID: profileID}
	if err := h.analyticsUseCase.ExecuteSaveProfile(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": true})
}
