package service

import (
	"testing"

	"barbershop/config"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func TestGenerateReportEmailBody(t *testing.T) {
	s := newTestEmailService()

	earnings := []BarberEarnings{
		{BarberID: 1, BarberName: "Agus", TotalEarnings: 80000, TransactionCount: 2},
		{BarberID: 2, BarberName: "Budi", TotalEarnings: 20000, TransactionCount: 1},
	}
	body := s.generateReportEmailBody("2024年3月10日（日报）", earnings)
	assert.Contains(t, body, "Agus")
	assert.Contains(t, body, "Budi")
	assert.Contains(t, body, "Rp 80000")
	assert.Contains(t, body, "2024年3月10日（日报）")
	// 合计 = 80000 + 20000
	assert.Contains(t, body, "Rp 100000")
}

func TestGenerateReportEmailBodyEmpty(t *testing.T) {
	s := newTestEmailService()
	body := s.generateReportEmailBody("2024年3月", nil)
	assert.Contains(t, body, "暂无交易数据")
	assert.Contains(t, body, "Rp 0")
}

func TestSendEarningsReportDisabled(t *testing.T) {
	s := newTestEmailService()
	err := s.SendEarningsReport("boss@example.com", "2024年3月", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "未启用")
}
