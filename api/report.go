package api

import (
	"fmt"
	"time"

	"barbershop/config"
	"barbershop/database"
	"barbershop/models"
	"barbershop/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler 工资报表处理器
type ReportHandler struct {
	emailService *service.EmailService
}

// NewReportHandler 创建工资报表处理器
func NewReportHandler(cfg *config.Config) *ReportHandler {
	return &ReportHandler{
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// EarningsReportResponse 工资报表响应
type EarningsReportResponse struct {
	Period    string                   `json:"period"`
	StartDate string                   `json:"start_date"`
	EndDate   string                   `json:"end_date"`
	Earnings  []service.BarberEarnings `json:"earnings"`
}

// EmailReportRequest 报表发送邮件请求
type EmailReportRequest struct {
	To     string `json:"to" binding:"required,email" example:"boss@example.com"`
	Period string `json:"period" binding:"required" example:"daily"`
	Date   string `json:"date" example:"2024-03-10"`
}

// parseReportQuery 解析统计周期与基准日期，date 为空时取今天
func parseReportQuery(periodStr, dateStr string) (service.Period, time.Time, error) {
	period, err := service.ParsePeriod(periodStr)
	if err != nil {
		return "", time.Time{}, err
	}

	ref := time.Now()
	if dateStr != "" {
		ref, err = time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return "", time.Time{}, fmt.Errorf("日期格式错误，应为: 2006-01-02")
		}
	}
	return period, ref, nil
}

// loadEarnings 查询区间内的交易并按理发师汇总
// 区间为左闭右开：transaction_date >= start 且 < end
func loadEarnings(start, end time.Time) ([]service.BarberEarnings, error) {
	var records []service.EarningsRecord
	err := database.DB.Model(&models.Transaction{}).
		Select("transactions.barber_id AS barber_id, barbers.name AS barber_name, transactions.total_price AS total_price").
		Joins("LEFT JOIN barbers ON barbers.id = transactions.barber_id").
		Where("transactions.transaction_date >= ? AND transactions.transaction_date < ?", start, end).
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return service.AggregateEarnings(records), nil
}

// periodLabel 生成报表周期的展示文本
func periodLabel(period service.Period, start time.Time) string {
	switch period {
	case service.PeriodWeekly:
		return fmt.Sprintf("%s 起一周", start.Format("2006年1月2日"))
	case service.PeriodMonthly:
		return start.Format("2006年1月")
	default:
		return start.Format("2006年1月2日")
	}
}

// GetEarnings 获取理发师工资报表
// @Summary 获取理发师工资报表
// @Description 按日/周/月统计每位理发师的总收入和交易笔数，按总收入降序排列。周以周日为第一天。区间为左闭右开，恰好落在结束时刻的交易不计入。无数据返回空列表。
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param period query string true "统计周期" Enums(daily,weekly,monthly)
// @Param date query string false "基准日期 (2024-03-10)，默认今天"
// @Success 200 {object} Response{data=EarningsReportResponse} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/reports/earnings [get]
func (h *ReportHandler) GetEarnings(c *gin.Context) {
	period, ref, err := parseReportQuery(c.Query("period"), c.Query("date"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	start, end := service.DateRange(period, ref)

	earnings, err := loadEarnings(start, end)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, EarningsReportResponse{
		Period:    string(period),
		StartDate: start.Format("2006-01-02 15:04:05"),
		EndDate:   end.Format("2006-01-02 15:04:05"),
		Earnings:  earnings,
	})
}

// SendEarningsEmail 将工资报表发送到指定邮箱
// @Summary 将工资报表发送到指定邮箱
// @Description 按统计周期生成报表并通过邮件发送，需要在配置中启用邮件服务
// @Tags 报表
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EmailReportRequest true "发送信息"
// @Success 200 {object} Response "发送成功"
// @Failure 400 {object} Response "请求参数错误或邮件服务未启用"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/reports/email [post]
func (h *ReportHandler) SendEarningsEmail(c *gin.Context) {
	var req EmailReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	period, ref, err := parseReportQuery(req.Period, req.Date)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	start, end := service.DateRange(period, ref)

	earnings, err := loadEarnings(start, end)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	if err := h.emailService.SendEarningsReport(req.To, periodLabel(period, start), earnings); err != nil {
		BadRequest(c, SafeErrorMessage(err, "发送失败"))
		return
	}

	SuccessWithMessage(c, "发送成功", nil)
}
