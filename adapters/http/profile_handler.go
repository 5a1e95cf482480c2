package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "portfolio-api/internal/application/usecase/profile"
	"portfolio-api/pkg/apperror"
)

type ProfileHandler struct {
	useCase *profileUC.ProfileUseCase
}

func NewProfileHandler(uc *profileUC.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{useCase: uc}
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	input := profileUC.CreateProfileInput{
		Name:      req.Name,
		Headline:  req.Headline,
		Bio:       req.Bio,
		Location:  req.Location,
		AvatarURL: req.AvatarURL,
	}

	p, err := h.useCase.CreateProfile(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.useCase.GetProfile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	input := profileUC.UpdateProfileInput{
		Name:      req.Name,
		Headline:  req.Headline,
		Bio:       req.Bio,
		Location:  req.Location,
		AvatarURL: req.AvatarURL,
	}

	p, err := h.useCase.UpdateProfile(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.useCase.DeleteProfile(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		respondError(c, apperror.NewInvalidInput("'avatar' file is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	p, err := h.useCase.UpdateAvatar(c.Request.Context(), profileUC.UpdateAvatarInput{
		File:     file,
		Filename: fileHeader.Filename,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
