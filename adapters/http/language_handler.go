package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	languageUC "portfolio-api/internal/application/usecase/language"
	proglangUC "portfolio-api/internal/application/usecase/proglang"
)

type LanguageHandler struct {
	useCase *languageUC.LanguageUseCase
}

func NewLanguageHandler(uc *languageUC.LanguageUseCase) *LanguageHandler {
	return &LanguageHandler{useCase: uc}
}

func (h *LanguageHandler) CreateLanguage(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}

	var req CreateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	l, err := h.useCase.CreateLanguage(c.Request.Context(), languageUC.CreateLanguageInput{
		ProfileID:   profileID,
		Name:        req.Name,
		Proficiency: req.Proficiency,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *LanguageHandler) GetLanguage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid language ID"})
		return
	}

	l, err := h.useCase.GetLanguage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LanguageHandler) ListLanguages(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}

	items, err := h.useCase.ListLanguages(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *LanguageHandler) UpdateLanguage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid language ID"})
		return
	}

	var req UpdateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	l, err := h.useCase.UpdateLanguage(c.Request.Context(), languageUC.UpdateLanguageInput{
		ID:          id,
		Name:        req.Name,
		Proficiency: req.Proficiency,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LanguageHandler) DeleteLanguage(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid language ID"})
		return
	}

	if err := h.useCase.DeleteLanguage(c.Request.Context(), profileID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LanguageHandler) ReorderLanguage(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid language ID"})
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	if err := h.useCase.ReorderLanguage(c.Request.Context(), profileID, id, *req.OrderIndex); err != nil {
		respondError(c, err)
		return
	}

	items, err := h.useCase.ListLanguages(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type ProgrammingLanguageHandler struct {
	useCase *proglangUC.ProgrammingLanguageUseCase
}

func NewProgrammingLanguageHandler(uc *proglangUC.ProgrammingLanguageUseCase) *ProgrammingLanguageHandler {
	return &ProgrammingLanguageHandler{useCase: uc}
}

func (h *ProgrammingLanguageHandler) CreateProgrammingLanguage(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}

	var req CreateProgrammingLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	pl, err := h.useCase.CreateProgrammingLanguage(c.Request.Context(), proglangUC.CreateProgrammingLanguageInput{
		ProfileID:  profileID,
		Name:       req.Name,
		Level:      req.Level,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pl)
}

func (h *ProgrammingLanguageHandler) GetProgrammingLanguage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid programming language ID"})
		return
	}

	pl, err := h.useCase.GetProgrammingLanguage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pl)
}

func (h *ProgrammingLanguageHandler) ListProgrammingLanguages(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}

	items, err := h.useCase.ListProgrammingLanguages(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProgrammingLanguageHandler) UpdateProgrammingLanguage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid programming language ID"})
		return
	}

	var req UpdateProgrammingLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	pl, err := h.useCase.UpdateProgrammingLanguage(c.Request.Context(), proglangUC.UpdateProgrammingLanguageInput{
		ID:    id,
		Name:  req.Name,
		Level: req.Level,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pl)
}

func (h *ProgrammingLanguageHandler) DeleteProgrammingLanguage(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid programming language ID"})
		return
	}

	if err := h.useCase.DeleteProgrammingLanguage(c.Request.Context(), profileID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProgrammingLanguageHandler) ReorderProgrammingLanguage(c *gin.Context) {
	profileID, ok := GetProfileIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile information not found"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid programming language ID"})
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	if err := h.useCase.ReorderProgrammingLanguage(c.Request.Context(), profileID, id, *req.OrderIndex); err != nil {
		respondError(c, err)
		return
	}

	items, err := h.useCase.ListProgrammingLanguages(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
