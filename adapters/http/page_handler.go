package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pageUC "github.com/vere-app/vere/internal/application/usecase/page"
)

type PageHandler struct {
	viewPageUC *pageUC.ViewPageUseCase
}

func NewPageHandler(viewUC *pageUC.ViewPageUseCase) *PageHandler {
	return &PageHandler{
		viewPageUC: viewUC,
	}
}

// ViewPageHTML serves GET /u/:username. Private profiles still get a
// 200 with the content-free notice page; only missing ones 404.
func (h *PageHandler) ViewPageHTML(c *gin.Context) {
	viewerID, viewerUsername := GetViewerFromGinContext(c)

	input := pageUC.ViewPageInput{
		Username:       c.Param("username"),
		ViewerID:       viewerID,
		ViewerUsername: viewerUsername,
		PreviewThemeID: c.Query("theme"),
	}

	output, err := h.viewPageUC.ExecuteHTML(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(output.HTML))
}

// ViewPageJSON serves GET /api/pages/:username with the render tree,
// for clients that hydrate the page themselves.
func (h *PageHandler) ViewPageJSON(c *gin.Context) {
	viewerID, viewerUsername := GetViewerFromGinContext(c)

	input := pageUC.ViewPageInput{
		Username:       c.Param("username"),
		ViewerID:       viewerID,
		ViewerUsername: viewerUsername,
		PreviewThemeID: c.Query("theme"),
	}

	output, err := h.viewPageUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, PageDTO{
		Username: output.Profile.Username,
		Kind:     output.Profile.Kind,
		State:    output.Result.State,
		Tree:     output.Result.Tree,
	})
}
