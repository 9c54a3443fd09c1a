package api

import (
	"strconv"
	"strings"

	"barbershop/database"
	"barbershop/models"

	"github.com/gin-gonic/gin"
)

// ProductHandler 商品管理处理器
type ProductHandler struct{}

// NewProductHandler 创建商品管理处理器
func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

// ProductRequest 创建/更新商品请求
type ProductRequest struct {
	ProductName string `json:"product_name" binding:"required,max=100" example:"Pomade"`
	Price       *int64 `json:"price" binding:"required,gte=0" example:"35000"`
}

// List 获取商品列表
// @Summary 获取商品列表
// @Tags 商品管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Product} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product
	if err := database.DB.Order("created_at DESC").Find(&products).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, products)
}

// Create 新增商品
// @Summary 新增商品
// @Tags 商品管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductRequest true "商品信息"
// @Success 200 {object} Response{data=models.Product} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	req.ProductName = strings.TrimSpace(req.ProductName)
	if req.ProductName == "" {
		BadRequest(c, "商品名称不能为空")
		return
	}

	product := models.Product{ProductName: req.ProductName, Price: *req.Price}
	if err := database.DB.Create(&product).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", product)
}

// Update 更新商品
// @Summary 更新商品
// @Tags 商品管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "商品ID"
// @Param request body ProductRequest true "商品信息"
// @Success 200 {object} Response{data=models.Product} "更新成功"
// @Failure 404 {object} Response "商品不存在"
// @Router /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		NotFound(c, "商品不存在")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	req.ProductName = strings.TrimSpace(req.ProductName)
	if req.ProductName == "" {
		BadRequest(c, "商品名称不能为空")
		return
	}

	updates := map[string]interface{}{
		"product_name": req.ProductName,
		"price":        *req.Price,
	}
	if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	database.DB.First(&product, product.ID)
	SuccessWithMessage(c, "更新成功", product)
}

// Delete 删除商品
// @Summary 删除商品
// @Description 软删除，历史交易中的引用保留
// @Tags 商品管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "商品ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "商品不存在"
// @Router /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		NotFound(c, "商品不存在")
		return
	}

	if err := database.DB.Delete(&product).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
