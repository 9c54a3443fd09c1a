package service

import (
	"fmt"
	"sort"
	"time"
)

// Period 报表统计周期
type Period string

const (
	// PeriodDaily 按日
	PeriodDaily Period = "daily"
	// PeriodWeekly 按周（周日为一周的第一天）
	PeriodWeekly Period = "weekly"
	// PeriodMonthly 按月
	PeriodMonthly Period = "monthly"
)

// ParsePeriod 解析统计周期参数
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return Period(s), nil
	}
	return "", fmt.Errorf("无效的统计周期: %q，可选值: daily、weekly、monthly", s)
}

// DateRange 根据统计周期和基准日期推导左闭右开区间 [start, end)
// 任意合法日期都能得到非空区间，不存在错误分支：
//   - daily:   基准日零点起一天
//   - weekly:  回退到基准日所在周的周日零点起七天（end 必须从回退后的 start 推
//     算，保证区间恒为七天整）
//   - monthly: 当月一日零点到下月一日零点（按月滚动，不假设 30/31 天）
func DateRange(period Period, ref time.Time) (start, end time.Time) {
	midnight := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())

	switch period {
	case PeriodWeekly:
		start = midnight.AddDate(0, 0, -int(midnight.Weekday()))
		end = start.AddDate(0, 0, 7)
	case PeriodMonthly:
		start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		end = start.AddDate(0, 1, 0)
	default: // PeriodDaily
		start = midnight
		end = start.AddDate(0, 0, 1)
	}
	return start, end
}

// EarningsRecord 参与汇总的一条交易（已按区间筛选）
type EarningsRecord struct {
	BarberID   uint
	BarberName string
	TotalPrice int64
}

// BarberEarnings 单个理发师的收入汇总，仅在报表请求期间存在，不落库
type BarberEarnings struct {
	BarberID         uint   `json:"barber_id"`
	BarberName       string `json:"barber_name"`
	TotalEarnings    int64  `json:"total_earnings"`
	TransactionCount int64  `json:"transaction_count"`
}

// AggregateEarnings 按理发师分组汇总收入并按总额降序排列
// 纯函数：相同输入必得相同输出，无副作用。金额为整数，求和不存在精度损失。
// 总额相同的两条记录之间的先后顺序不作约定。
// 空输入返回空切片而非错误，由展示层显示"无数据"。
func AggregateEarnings(records []EarningsRecord) []BarberEarnings {
	grouped := make(map[uint]*BarberEarnings)
	for _, r := range records {
		e, ok := grouped[r.BarberID]
		if !ok {
			e = &BarberEarnings{
				BarberID:   r.BarberID,
				BarberName: r.BarberName,
			}
			grouped[r.BarberID] = e
		}
		e.TotalEarnings += r.TotalPrice
		e.TransactionCount++
	}

	result := make([]BarberEarnings, 0, len(grouped))
	for _, e := range grouped {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TotalEarnings > result[j].TotalEarnings
	})
	return result
}
