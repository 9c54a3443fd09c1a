package api

import (
	"strconv"
	"strings"

	"barbershop/database"
	"barbershop/models"

	"github.com/gin-gonic/gin"
)

// ServiceHandler 服务项目管理处理器
type ServiceHandler struct{}

// NewServiceHandler 创建服务项目管理处理器
func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{}
}

// ServiceRequest 创建/更新服务项目请求
// Price 单位为卢比整数，必须非负
type ServiceRequest struct {
	ServiceName string `json:"service_name" binding:"required,max=100" example:"Potong Rambut"`
	Price       *int64 `json:"price" binding:"required,gte=0" example:"50000"`
}

// List 获取服务项目列表
// @Summary 获取服务项目列表
// @Tags 服务项目管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Service} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := database.DB.Order("created_at DESC").Find(&services).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, services)
}

// Create 新增服务项目
// @Summary 新增服务项目
// @Tags 服务项目管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ServiceRequest true "服务项目信息"
// @Success 200 {object} Response{data=models.Service} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	req.ServiceName = strings.TrimSpace(req.ServiceName)
	if req.ServiceName == "" {
		BadRequest(c, "服务名称不能为空")
		return
	}

	service := models.Service{ServiceName: req.ServiceName, Price: *req.Price}
	if err := database.DB.Create(&service).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", service)
}

// Update 更新服务项目
// @Summary 更新服务项目
// @Tags 服务项目管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "服务项目ID"
// @Param request body ServiceRequest true "服务项目信息"
// @Success 200 {object} Response{data=models.Service} "更新成功"
// @Failure 404 {object} Response "服务项目不存在"
// @Router /api/v1/services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var service models.Service
	if err := database.DB.First(&service, id).Error; err != nil {
		NotFound(c, "服务项目不存在")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	req.ServiceName = strings.TrimSpace(req.ServiceName)
	if req.ServiceName == "" {
		BadRequest(c, "服务名称不能为空")
		return
	}

	updates := map[string]interface{}{
		"service_name": req.ServiceName,
		"price":        *req.Price,
	}
	if err := database.DB.Model(&service).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	database.DB.First(&service, service.ID)
	SuccessWithMessage(c, "更新成功", service)
}

// Delete 删除服务项目
// @Summary 删除服务项目
// @Description 软删除，历史交易中的引用保留
// @Tags 服务项目管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "服务项目ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "服务项目不存在"
// @Router /api/v1/services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var service models.Service
	if err := database.DB.First(&service, id).Error; err != nil {
		NotFound(c, "服务项目不存在")
		return
	}

	if err := database.DB.Delete(&service).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
