package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Alireza01sjd/project-god-mode/internal/api/dto"
	"github.com/Alireza01sjd/project-god-mode/internal/api/middleware"
	"github.com/Alireza01sjd/project-god-mode/internal/api/service"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	svc service.AuthorService
}

func NewAuthorHandler(svc service.AuthorService) *AuthorHandler {
	return &AuthorHandler{svc: svc}
}

func (h *AuthorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:author_id", h.Get)
	rg.POST("", middleware.RequireAdmin(), h.Create)
	rg.PUT("/:author_id", middleware.RequireAdmin(), h.Update)
	rg.DELETE("/:author_id", middleware.RequireAdmin(), h.Delete)
}

func (h *AuthorHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.AuthorResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, dto.AuthorFromModel(a))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthorHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("author_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	a, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AuthorFromModel(*a))
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var in dto.CreateAuthorDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := in.ToModel()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Create(ctx, &model); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.AuthorFromModel(model))
}

func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("author_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var in dto.CreateAuthorDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := in.ToModel()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Update(ctx, id, &model); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AuthorFromModel(model))
}

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("author_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
