package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Alireza01sjd/project-god-mode/internal/api/dto"
	"github.com/Alireza01sjd/project-god-mode/internal/api/middleware"
	"github.com/Alireza01sjd/project-god-mode/internal/api/models"
	"github.com/Alireza01sjd/project-god-mode/internal/api/service"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	svc service.BookService
}

func NewBookHandler(svc service.BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Public routes (any authenticated user)
	rg.GET("", h.List)
	rg.GET("/search", h.SearchByTitle)
	rg.GET("/:book_id", h.Get)

	// Admin-only routes
	rg.POST("", middleware.RequireAdmin(), h.Create)
	rg.PUT("/:book_id", middleware.RequireAdmin(), h.Update)
	rg.DELETE("/:book_id", middleware.RequireAdmin(), h.Delete)
}

func (h *BookHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	// Parse pagination parameters
	page := 1
	pageSize := 20

	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if parsed, err := strconv.Atoi(ps); err == nil && parsed > 0 && parsed <= 100 {
			pageSize = parsed
		}
	}

	list, total, err := h.svc.GetAll(ctx, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.BookBasicResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, dto.FromBookModelToBasic(b))
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resp,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		},
	})
}

func (h *BookHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	b, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBookModel(*b))
}

func (h *BookHandler) SearchByTitle(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.SearchByTitle(ctx, query)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.BookBasicResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, dto.FromBookModelToBasic(b))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookHandler) Create(c *gin.Context) {
	var in dto.CreateBookDTO
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

	if len(in.CategoryIDs) > 0 {
		if err := h.svc.ReplaceCategories(ctx, model.ID, in.CategoryIDs); err != nil {
			respondError(c, err)
			return
		}
	}
	if len(in.TagIDs) > 0 {
		if err := h.svc.ReplaceTags(ctx, model.ID, in.TagIDs); err != nil {
			respondError(c, err)
			return
		}
	}

	created, err := h.svc.GetByID(ctx, model.ID)
	if err != nil {
		c.JSON(http.StatusCreated, dto.FromBookModel(model))
		return
	}
	c.JSON(http.StatusCreated, dto.FromBookModel(*created))
}

func (h *BookHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var in dto.UpdateBookDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var m models.Book
	in.ApplyTo(&m)

	if err := h.svc.Update(ctx, id, &m); err != nil {
		respondError(c, err)
		return
	}

	if in.CategoryIDs != nil {
		if err := h.svc.ReplaceCategories(ctx, id, in.CategoryIDs); err != nil {
			respondError(c, err)
			return
		}
	}
	if in.TagIDs != nil {
		if err := h.svc.ReplaceTags(ctx, id, in.TagIDs); err != nil {
			respondError(c, err)
			return
		}
	}

	updated, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBookModel(*updated))
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
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
