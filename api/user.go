package api

import (
	"strconv"

	"barbershop/database"
	"barbershop/middleware"
	"barbershop/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler 账号管理处理器（仅老板可用）
type UserHandler struct{}

// NewUserHandler 创建账号管理处理器
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// CreateUserRequest 创建账号请求
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"kasir1"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"password123"`
	Name     string `json:"name" binding:"required,max=100" example:"Siti"`
	Role     string `json:"role" binding:"omitempty,oneof=owner cashier" example:"cashier"`
}

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6,max=50"`
}

// List 获取账号列表
// @Summary 获取账号列表
// @Tags 账号管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.User} "获取成功"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("id ASC").Find(&users).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, users)
}

// Create 创建账号
// @Summary 创建账号
// @Description 老板为收银员（或其他老板）创建登录账号，不开放自助注册
// @Tags 账号管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserRequest true "账号信息"
// @Success 200 {object} Response{data=models.User} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 检查用户名是否已存在
	var existing models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		BadRequest(c, "用户名已存在")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleCashier
	}

	user := models.User{
		Username: req.Username,
		Password: string(hashed),
		Name:     req.Name,
		Role:     role,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建账号失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", user)
}

// ResetPassword 重置指定账号的密码
// @Summary 重置账号密码
// @Description 老板直接为账号设置新密码，无需旧密码
// @Tags 账号管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账号ID"
// @Param request body ResetPasswordRequest true "新密码"
// @Success 200 {object} Response "重置成功"
// @Failure 404 {object} Response "账号不存在"
// @Router /api/v1/users/{id}/password [put]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		NotFound(c, "账号不存在")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	if err := database.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "重置密码失败"))
		return
	}

	SuccessWithMessage(c, "重置成功", nil)
}

// Delete 删除账号
// @Summary 删除账号
// @Description 软删除账号，不能删除自己
// @Tags 账号管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "账号ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "不能删除当前登录账号"
// @Failure 404 {object} Response "账号不存在"
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	if uint(id) == middleware.GetCurrentUserID(c) {
		BadRequest(c, "不能删除当前登录账号")
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		NotFound(c, "账号不存在")
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
