package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"barbershop/database"
	"barbershop/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// exportRow 导出用的扁平行，关联名称通过 JOIN 内联
type exportRow struct {
	ID              uint
	BarberName      string
	ServiceName     string
	ProductName     string
	TotalPrice      int64
	TransactionDate time.Time
}

// parseExportRange 解析导出时间范围，结束日期含当天
func parseExportRange(c *gin.Context) (start, end time.Time, ok bool) {
	startStr := c.Query("start_time")
	endStr := c.Query("end_time")

	if startStr == "" || endStr == "" {
		BadRequest(c, "请提供开始时间和结束时间")
		return
	}

	var err error
	start, err = time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		BadRequest(c, "开始时间格式错误，应为: 2006-01-02")
		return
	}
	end, err = time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		BadRequest(c, "结束时间格式错误，应为: 2006-01-02")
		return
	}
	end = end.AddDate(0, 0, 1)
	return start, end, true
}

// loadExportRows 查询时间范围内的交易（含已软删关联的名称）
func loadExportRows(start, end time.Time) ([]exportRow, error) {
	var rows []exportRow
	err := database.DB.Model(&models.Transaction{}).
		Select("transactions.id AS id, barbers.name AS barber_name, services.service_name AS service_name, products.product_name AS product_name, transactions.total_price AS total_price, transactions.transaction_date AS transaction_date").
		Joins("LEFT JOIN barbers ON barbers.id = transactions.barber_id").
		Joins("LEFT JOIN services ON services.id = transactions.service_id").
		Joins("LEFT JOIN products ON products.id = transactions.product_id").
		Where("transactions.transaction_date >= ? AND transactions.transaction_date < ?", start, end).
		Order("transactions.transaction_date DESC").
		Scan(&rows).Error
	return rows, err
}

// ExportCSV 导出交易记录为 CSV
// @Summary 导出交易记录为 CSV
// @Description 根据时间范围导出交易记录为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	start, end, ok := parseExportRange(c)
	if !ok {
		return
	}

	rows, err := loadExportRows(start, end)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "理发师", "服务项目", "商品", "总价", "交易时间"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%d", row.ID),
			row.BarberName,
			row.ServiceName,
			row.ProductName,
			fmt.Sprintf("%d", row.TotalPrice),
			row.TransactionDate.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("transactions_%s_%s.csv", c.Query("start_time"), c.Query("end_time"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出交易记录为 Excel
// @Summary 导出交易记录为 Excel
// @Description 根据时间范围导出交易记录为 xlsx 文件
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	start, end, ok := parseExportRange(c)
	if !ok {
		return
	}

	rows, err := loadExportRows(start, end)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "交易记录"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"ID", "理发师", "服务项目", "商品", "总价", "交易时间"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A1", "F1", headerStyle)

	for i, row := range rows {
		rowNum := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), row.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), row.BarberName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), row.ServiceName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), row.ProductName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), row.TotalPrice)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), row.TransactionDate.Format("2006-01-02 15:04:05"))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("F%d", rowNum), dataStyle)
	}

	f.SetColWidth(sheetName, "B", "D", 18)
	f.SetColWidth(sheetName, "F", "F", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	filename := fmt.Sprintf("transactions_%s_%s.xlsx", c.Query("start_time"), c.Query("end_time"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
