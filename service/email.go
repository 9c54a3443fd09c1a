package service

import (
	"fmt"
	"strings"

	"barbershop/config"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendEarningsReport 将指定周期的工资报表发送到老板邮箱
func (s *EmailService) SendEarningsReport(toEmail, periodLabel string, earnings []BarberEarnings) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请先在配置中开启 email.enabled")
	}

	subject := fmt.Sprintf("【理发店管理系统】工资报表 %s", periodLabel)
	body := s.generateReportEmailBody(periodLabel, earnings)

	return s.sendEmail(toEmail, subject, body)
}

// generateReportEmailBody 生成报表邮件内容
func (s *EmailService) generateReportEmailBody(periodLabel string, earnings []BarberEarnings) string {
	var rows strings.Builder
	var total int64
	if len(earnings) == 0 {
		rows.WriteString(`<tr><td colspan="3" style="text-align:center;color:#6c757d;">该周期内暂无交易数据</td></tr>`)
	}
	for _, e := range earnings {
		total += e.TotalEarnings
		rows.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td style="text-align:right;">%d</td><td style="text-align:right;">Rp %d</td></tr>`,
			e.BarberName, e.TransactionCount, e.TotalEarnings))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #b45309, #92400e); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 30px; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        th, td { border: 1px solid #e5e7eb; padding: 10px 12px; font-size: 14px; }
        th { background: #f9fafb; text-align: left; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>✂️ 理发店管理系统</h1>
        </div>
        <div class="content">
            <p>统计周期：<strong>%s</strong></p>
            <table>
                <tr><th>理发师</th><th style="text-align:right;">交易笔数</th><th style="text-align:right;">总收入</th></tr>
                %s
            </table>
            <p>合计收入：<strong>Rp %d</strong></p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
        </div>
    </div>
</body>
</html>
`, periodLabel, rows.String(), total)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}
