package api

import (
	"strconv"
	"strings"

	"barbershop/database"
	"barbershop/models"

	"github.com/gin-gonic/gin"
)

// BarberHandler 理发师管理处理器
type BarberHandler struct{}

// NewBarberHandler 创建理发师管理处理器
func NewBarberHandler() *BarberHandler {
	return &BarberHandler{}
}

// BarberRequest 创建/更新理发师请求
type BarberRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"Agus"`
}

// List 获取理发师列表
// @Summary 获取理发师列表
// @Description 按创建时间倒序返回全部理发师
// @Tags 理发师管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Barber} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/barbers [get]
func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := database.DB.Order("created_at DESC").Find(&barbers).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, barbers)
}

// Create 新增理发师
// @Summary 新增理发师
// @Tags 理发师管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BarberRequest true "理发师信息"
// @Success 200 {object} Response{data=models.Barber} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/barbers [post]
func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "理发师姓名不能为空")
		return
	}

	barber := models.Barber{Name: req.Name}
	if err := database.DB.Create(&barber).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", barber)
}

// Update 更新理发师
// @Summary 更新理发师
// @Tags 理发师管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "理发师ID"
// @Param request body BarberRequest true "理发师信息"
// @Success 200 {object} Response{data=models.Barber} "更新成功"
// @Failure 404 {object} Response "理发师不存在"
// @Router /api/v1/barbers/{id} [put]
func (h *BarberHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var barber models.Barber
	if err := database.DB.First(&barber, id).Error; err != nil {
		NotFound(c, "理发师不存在")
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "理发师姓名不能为空")
		return
	}

	if err := database.DB.Model(&barber).Update("name", req.Name).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	database.DB.First(&barber, barber.ID)
	SuccessWithMessage(c, "更新成功", barber)
}

// Delete 删除理发师
// @Summary 删除理发师
// @Description 软删除。历史交易中对该理发师的引用保留，报表与交易记录仍可显示其姓名。
// @Tags 理发师管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "理发师ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "理发师不存在"
// @Router /api/v1/barbers/{id} [delete]
func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var barber models.Barber
	if err := database.DB.First(&barber, id).Error; err != nil {
		NotFound(c, "理发师不存在")
		return
	}

	if err := database.DB.Delete(&barber).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
