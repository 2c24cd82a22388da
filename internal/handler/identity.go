package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIDHeader 网关注入的用户身份头
const UserIDHeader = "X-User-ID"

// currentUserID 从请求头取出用户身份，缺失时直接应答 401
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetHeader(UserIDHeader)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return "", false
	}
	return userID, true
}
