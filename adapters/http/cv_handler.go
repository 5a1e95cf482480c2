package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cvUC "portfolio-api/internal/application/usecase/cv"
)

type CVHandler struct {
	useCase *cvUC.CVUseCase
}

func NewCVHandler(uc *cvUC.CVUseCase) *CVHandler {
	return &CVHandler{useCase: uc}
}

func (h *CVHandler) GetCompleteCV(c *gin.Context) {
	doc, err := h.useCase.GetCompleteCV(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DownloadCV reserves the PDF export route. Rendering is not built yet, so
// the route reports 501 rather than 404.
func (h *CVHandler) DownloadCV(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"error":   "not implemented",
		"message": "CV download is not available yet",
	})
}
