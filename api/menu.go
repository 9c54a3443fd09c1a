package api

import (
	"barbershop/database"
	"barbershop/middleware"
	"barbershop/models"

	"github.com/gin-gonic/gin"
)

// MenuHandler 菜单处理器
type MenuHandler struct{}

// NewMenuHandler 创建菜单处理器
func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// List 获取当前角色可见的菜单
// @Summary 获取当前角色可见的菜单
// @Description 收银员只会看到录入交易和交易记录，老板看到全部菜单
// @Tags 菜单
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Menu} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/menus [get]
func (h *MenuHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Menu{})
	if middleware.GetCurrentUserRole(c) != models.RoleOwner {
		query = query.Where("owner_only = ?", false)
	}

	var menus []models.Menu
	if err := query.Order("sort_order ASC, id ASC").Find(&menus).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, menus)
}
