package middleware

import (
	"net/http"

	"barbershop/models"

	"github.com/gin-gonic/gin"
)

// OwnerOnly 老板权限校验中间件
// 需在 JWTAuth 之后使用。收银员访问管理类接口返回 403。
func OwnerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetCurrentUserRole(c) != models.RoleOwner {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    http.StatusForbidden,
				"message": "您没有访问该功能的权限",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
