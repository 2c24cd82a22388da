package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thesisai/backend/internal/service/papersearch"
)

// PaperHandler 文献检索接口
type PaperHandler struct {
	service *papersearch.Service
}

// NewPaperHandler 创建文献检索处理器
func NewPaperHandler(service *papersearch.Service) *PaperHandler {
	return &PaperHandler{service: service}
}

// Search 并行查询多个学术数据源，合并去重后返回
func (h *PaperHandler) Search(c *gin.Context) {
	var query papersearch.SearchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, papersearch.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
