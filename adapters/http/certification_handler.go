package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	certificationUC "portfolio-api/internal/application/usecase/certification"
	"portfolio-api/internal/domain/certification"
)

type CertificationHandler struct {
	useCase *certificationUC.CertificationUseCase
}

func NewCertificationHandler(uc *certificationUC.CertificationUseCase) *CertificationHandler {
	return &CertificationHandler{useCase: uc}
}

func (h *CertificationHandler) CreateCertification(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}

	var req CreateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	cert, err := h.useCase.CreateCertification(c.Request.Context(), certificationUC.CreateCertificationInput{
		ProfileID:     profileID,
		Title:         req.Title,
		Issuer:        req.Issuer,
		IssueDate:     req.IssueDate,
		ExpiryDate:    req.ExpiryDate,
		CredentialID:  req.CredentialID,
		CredentialURL: req.CredentialURL,
		OrderIndex:    req.OrderIndex,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cert)
}

func (h *CertificationHandler) GetCertification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid certification ID"})
		return
	}

	cert, err := h.useCase.GetCertification(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *CertificationHandler) ListCertifications(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}

	items, err := h.useCase.ListCertifications(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CertificationHandler) UpdateCertification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid certification ID"})
		return
	}

	var req UpdateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	cert, err := h.useCase.UpdateCertification(c.Request.Context(), certificationUC.UpdateCertificationInput{
		ID: id,
		Update: certification.Update{
			Title:         req.Title,
			Issuer:        req.Issuer,
			IssueDate:     req.IssueDate,
			ExpiryDate:    req.ExpiryDate.Value,
			ExpiryDateSet: req.ExpiryDate.Set,
			CredentialID:  req.CredentialID,
			CredentialURL: req.CredentialURL,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *CertificationHandler) DeleteCertification(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid certification ID"})
		return
	}

	if err := h.useCase.DeleteCertification(c.Request.Context(), profileID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CertificationHandler) ReorderCertification(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid certification ID"})
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	if err := h.useCase.ReorderCertification(c.Request.Context(), profileID, id, *req.OrderIndex); err != nil {
		respondError(c, err)
		return
	}

	items, err := h.useCase.ListCertifications(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
