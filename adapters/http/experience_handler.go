package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	experienceUC "portfolio-api/internal/application/usecase/experience"
	"portfolio-api/internal/domain/experience"
)

type ExperienceHandler struct {
	useCase *experienceUC.ExperienceUseCase
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase) *ExperienceHandler {
	return &ExperienceHandler{useCase: uc}
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}

	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	exp, err := h.useCase.CreateExperience(c.Request.Context(), experienceUC.CreateExperienceInput{
		ProfileID:        profileID,
		Role:             req.Role,
		Company:          req.Company,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		OrderIndex:       req.OrderIndex,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exp)
}

func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid experience ID"})
		return
	}

	exp, err := h.useCase.GetExperience(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}

	items, err := h.useCase.ListExperiences(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid experience ID"})
		return
	}

	var req UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	exp, err := h.useCase.UpdateExperience(c.Request.Context(), experienceUC.UpdateExperienceInput{
		ID: id,
		Update: experience.Update{
			Role:             req.Role,
			Company:          req.Company,
			Description:      req.Description,
			StartDate:        req.StartDate,
			EndDate:          req.EndDate.Value,
			EndDateSet:       req.EndDate.Set,
			Responsibilities: req.Responsibilities,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid experience ID"})
		return
	}

	if err := h.useCase.DeleteExperience(c.Request.Context(), profileID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExperienceHandler) ReorderExperience(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid experience ID"})
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	if err := h.useCase.ReorderExperience(c.Request.Context(), profileID, id, *req.OrderIndex); err != nil {
		respondError(c, err)
		return
	}

	items, err := h.useCase.ListExperiences(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
