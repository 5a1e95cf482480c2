package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactinfoUC "portfolio-api/internal/application/usecase/contactinfo"
	"portfolio-api/internal/domain/contactinfo"
)

type ContactInfoHandler struct {
	useCase *contactinfoUC.ContactInfoUseCase
}

func NewContactInfoHandler(uc *contactinfoUC.ContactInfoUseCase) *ContactInfoHandler {
	return &ContactInfoHandler{useCase: uc}
}

func (h *ContactInfoHandler) CreateContactInfo(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}

	var req CreateContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	info, err := h.useCase.CreateContactInfo(c.Request.Context(), contactinfoUC.CreateContactInfoInput{
		ProfileID:   profileID,
		Email:       req.Email,
		Phone:       req.Phone,
		LinkedInURL: req.LinkedInURL,
		GitHubURL:   req.GitHubURL,
		WebsiteURL:  req.WebsiteURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, info)
}

func (h *ContactInfoHandler) GetContactInfo(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}

	info, err := h.useCase.GetContactInfo(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *ContactInfoHandler) UpdateContactInfo(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}

	var req UpdateContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	info, err := h.useCase.UpdateContactInfo(c.Request.Context(), contactinfoUC.UpdateContactInfoInput{
		ProfileID: profileID,
		Update: contactinfo.Update{
			Email:       req.Email,
			Phone:       req.Phone.Value,
			PhoneSet:    req.Phone.Set,
			LinkedInURL: req.LinkedInURL,
			GitHubURL:   req.GitHubURL,
			WebsiteURL:  req.WebsiteURL,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *ContactInfoHandler) DeleteContactInfo(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}

	if err := h.useCase.DeleteContactInfo(c.Request.Context(), profileID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
