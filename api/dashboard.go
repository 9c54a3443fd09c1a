package api

import (
	"time"

	"barbershop/database"
	"barbershop/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// DashboardHandler 仪表盘处理器
type DashboardHandler struct{}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// DashboardStats 仪表盘统计数据
type DashboardStats struct {
	TotalBarbers  int64 `json:"total_barbers"`
	TotalServices int64 `json:"total_services"`
	TotalProducts int64 `json:"total_products"`
	TodayRevenue  int64 `json:"today_revenue"`
}

// GetStats 获取仪表盘统计
// @Summary 获取仪表盘统计
// @Description 理发师/服务/商品总数和今日营收。四个查询并发执行，全部完成后合并返回。
// @Tags 仪表盘
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=DashboardStats} "获取成功"
// @Failure 403 {object} Response "权限不足"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	var stats DashboardStats

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var g errgroup.Group
	g.Go(func() error {
		return database.DB.Model(&models.Barber{}).Count(&stats.TotalBarbers).Error
	})
	g.Go(func() error {
		return database.DB.Model(&models.Service{}).Count(&stats.TotalServices).Error
	})
	g.Go(func() error {
		return database.DB.Model(&models.Product{}).Count(&stats.TotalProducts).Error
	})
	g.Go(func() error {
		return database.DB.Model(&models.Transaction{}).
			Where("transaction_date >= ?", todayStart).
			Select("COALESCE(SUM(total_price), 0)").
			Scan(&stats.TodayRevenue).Error
	})

	if err := g.Wait(); err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, stats)
}
