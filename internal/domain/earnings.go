package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DailyEarning is the delivered total for one calendar day of order creation.
type DailyEarning struct {
	Date  time.Time
	Total decimal.Decimal
}

type Earnings struct {
	Total decimal.Decimal
	Daily []DailyEarning
}

// SummarizeEarnings sums the amount of delivered orders assigned to
// partnerID, in total and per UTC creation date, newest day first.
func SummarizeEarnings(partnerID string, orders []Order) Earnings {
	e := Earnings{Total: decimal.Zero, Daily: []DailyEarning{}}
	byDay := make(map[time.Time]decimal.Decimal)

	for _, o := range orders {
		if o.DeliveryPartnerID != partnerID || o.Status != StatusDelivered {
			continue
		}
		e.Total = e.Total.Add(o.Amount)
		day := truncateToDay(o.CreatedAt)
		byDay[day] = byDay[day].Add(o.Amount)
	}

	for day, total := range byDay {
		e.Daily = append(e.Daily, DailyEarning{Date: day, Total: total})
	}
	sort.Slice(e.Daily, func(i, j int) bool {
		return e.Daily[i].Date.After(e.Daily[j].Date)
	})
	return e
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
