package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thesisai/backend/internal/repository"
	"github.com/thesisai/backend/internal/service"
)

// SectionHandler 章节小节接口
type SectionHandler struct {
	service *service.SectionService
}

// NewSectionHandler 创建小节处理器
func NewSectionHandler(service *service.SectionService) *SectionHandler {
	return &SectionHandler{service: service}
}

func (h *SectionHandler) ListByChapter(c *gin.Context) {
	sections, err := h.service.ListByChapter(c.Param("id"), c.Param("chapterId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sections)
}

func (h *SectionHandler) Get(c *gin.Context) {
	section, err := h.service.Get(c.Param("id"), c.Param("chapterId"), c.Param("sectionId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "section not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, section)
}

type saveSectionRequest struct {
	Content string `json:"content"`
}

// Save 显式保存小节文本
func (h *SectionHandler) Save(c *gin.Context) {
	var req saveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	section, err := h.service.Save(c.Param("id"), c.Param("chapterId"), c.Param("sectionId"), req.Content)
	if err != nil {
		respondSectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

type applyRevisionRequest struct {
	RevisedText string `json:"revised_text" binding:"required"`
}

// ApplyRevision 把用户采纳的修订文本写入小节
func (h *SectionHandler) ApplyRevision(c *gin.Context) {
	var req applyRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "revised_text is required"})
		return
	}

	section, err := h.service.ApplyRevision(c.Param("id"), c.Param("chapterId"), c.Param("sectionId"), req.RevisedText)
	if err != nil {
		respondSectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

func respondSectionError(c *gin.Context, err error) {
	var inputErr *service.InvalidInputError
	if errors.As(err, &inputErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
