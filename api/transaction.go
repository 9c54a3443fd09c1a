package api

import (
	"time"

	"barbershop/database"
	"barbershop/middleware"
	"barbershop/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler 交易处理器
type TransactionHandler struct{}

// NewTransactionHandler 创建交易处理器
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// CreateTransactionRequest 录入交易请求
// 服务与商品均可选，但至少要选一项；总价由服务端按价目表计算，不接受客户端传入
type CreateTransactionRequest struct {
	BarberID  uint  `json:"barber_id" binding:"required" example:"1"`
	ServiceID *uint `json:"service_id" example:"2"`
	ProductID *uint `json:"product_id" example:"3"`
}

// TransactionListRequest 交易记录列表请求
type TransactionListRequest struct {
	Page     int `form:"page" example:"1"`
	PageSize int `form:"page_size" example:"10"`
}

// Create 录入交易
// @Summary 录入交易
// @Description 选择理发师和至少一项服务/商品，总价为所选项目价目表价格之和。校验失败不会产生任何写入。
// @Tags 交易
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "交易信息"
// @Success 200 {object} Response{data=models.Transaction} "录入成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 服务与商品至少选一项，在任何数据库操作之前拦截
	if req.ServiceID == nil && req.ProductID == nil {
		BadRequest(c, "请至少选择一项服务或商品")
		return
	}

	var barber models.Barber
	if err := database.DB.First(&barber, req.BarberID).Error; err != nil {
		BadRequest(c, "理发师不存在")
		return
	}

	// 按所选项目汇总价目表价格
	var total int64
	if req.ServiceID != nil {
		var service models.Service
		if err := database.DB.First(&service, *req.ServiceID).Error; err != nil {
			BadRequest(c, "服务项目不存在")
			return
		}
		total += service.Price
	}
	if req.ProductID != nil {
		var product models.Product
		if err := database.DB.First(&product, *req.ProductID).Error; err != nil {
			BadRequest(c, "商品不存在")
			return
		}
		total += product.Price
	}

	if total <= 0 {
		BadRequest(c, "交易总价必须大于零")
		return
	}

	transaction := models.Transaction{
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		ProductID:       req.ProductID,
		TotalPrice:      total,
		TransactionDate: time.Now(),
		RecordedBy:      userID,
	}

	if err := database.DB.Create(&transaction).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "录入交易失败"))
		return
	}

	SuccessWithMessage(c, "交易录入成功", transaction)
}

// List 获取交易记录
// @Summary 获取交易记录
// @Description 按交易时间倒序分页返回。收银员只能看到自己录入的交易，老板可以看到全部。已删除的理发师/服务/商品仍会显示名称。
// @Tags 交易
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} Response{data=PageResponse{list=[]models.Transaction}} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	var req TransactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 默认分页参数
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Transaction{})

	// 收银员只能查看自己录入的交易
	if middleware.GetCurrentUserRole(c) != models.RoleOwner {
		query = query.Where("recorded_by = ?", middleware.GetCurrentUserID(c))
	}

	var total int64
	query.Count(&total)

	// 关联名称带 Unscoped 预加载，已软删的理发师/服务/商品仍可显示
	var transactions []models.Transaction
	offset := (req.Page - 1) * req.PageSize
	if err := query.
		Preload("Barber", unscoped).
		Preload("Service", unscoped).
		Preload("Product", unscoped).
		Order("transaction_date DESC").
		Offset(offset).Limit(req.PageSize).
		Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     transactions,
	})
}

func unscoped(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}
